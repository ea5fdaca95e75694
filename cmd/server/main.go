package main

import (
	"chat-hub/auth"
	"chat-hub/domain/event"
	grpcserver "chat-hub/infrastructure/grpc/server"
	httpserver "chat-hub/infrastructure/http/server"
	"chat-hub/internal"
	"chat-hub/moderation"
	"chat-hub/observability"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/runtime/workers"
	"chat-hub/services"
	"chat-hub/sink"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"gorm.io/gorm/logger"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat hub terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a shutdown signal or a server failure.
// Deferred closes run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage
	sqlDB, err := repositories.OpenSQLite(config.SQLiteFilepath, logger.Warn)
	if err != nil {
		return exitRuntime, fmt.Errorf("sqlite opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing SQLite...")
		_ = repositories.CloseSQLite(sqlDB)
	}()

	kv, err := badger.Open(buildBadgerOpts(config, log, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = kv.Close()
	}()

	if log.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		log.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(kv, config.DebugPort, endpoint, MessageMapper)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	users := repositories.NewUserRepository(sqlDB)
	rooms := repositories.NewRoomRepository(sqlDB)
	messages := repositories.NewMessageRepository(kv, log)
	typing := repositories.NewTypingRepository(kv, config.TypingTTL)
	index := repositories.NewSearchIndex(blugeWriter)

	// No connection survives a restart
	reset, err := users.ResetPresence(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("presence reset failed: %w", err)
	}
	log.Info("Presence reset", "users", reset)

	// 3. Supervision, telemetry and fanout
	telemetryChan := make(chan event.Telemetry, config.EventBufferSize)
	domainEvents := make(chan event.Event, config.EventBufferSize)
	supervisor := workers.NewSupervisor(log).
		WithRestartInterval(config.RestartInterval).
		WithTelemetry(telemetryChan)

	counter := event.NewCounter()
	monitor := observability.NewMonitoringManager(log)
	searchSink := sink.NewSearchSink(index, log, config.SearchBatchSize, config.SearchBufferTimeout)

	registry := runtime.NewRegistry()
	presence := runtime.NewPresenceTracker(log, users, registry)
	coordinator := runtime.NewCoordinator(log, registry, supervisor, rooms, users, messages, typing,
		domainEvents, telemetryChan, runtime.CoordinatorConfig{
			RoomBufferSize: config.RoomBufferSize,
			EventTimeout:   config.EventTimeout,
		})

	moderator, err := buildModerator(config, charReplacement, log)
	if err != nil {
		return exitConfig, err
	}
	if moderator != nil {
		coordinator.WithModerator(moderator)
	}

	capacity := workers.NewChannelCapacityWorker(log, []workers.NamedChannel{
		{Name: "domain_events", Channel: domainEvents},
		{Name: "telemetry", Channel: telemetryChan},
	}, telemetryChan, config.MetricInterval).WithDynamicChannels(coordinator.Mailboxes)

	supervisor.Add(
		workers.NewEventFanout(log, domainEvents, config.SinkTimeout, searchSink, sink.NewLogSink(log)),
		workers.NewTelemetryWorker(log, telemetryChan,
			event.NewWorkerRestartedAfterPanicHandler(log, counter),
			event.NewCensoredHandler(log, counter),
			event.NewChannelCapacityHandler(log, config.LowCapacityThreshold),
			event.NewLatencyHandler(log, config.LatencyThreshold),
			event.NewProcessStatsHandler(log, config.RSSThresholdMb*1024*1024),
			monitor,
		),
		capacity,
		workers.NewHealthMonitoringWorker(log, telemetryChan, config.MetricInterval),
	)

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	go supervisor.Run(workersCtx)

	// 4. Services
	authService := services.NewAuthService(log, users, auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration))
	roomService, err := services.NewRoomService(log, rooms, users, messages)
	if err != nil {
		return exitRuntime, err
	}
	chatService := services.NewChatService(log, coordinator, messages, index)
	sessionService := services.NewSessionService(log, authService, registry, presence, coordinator)

	// 5. Servers
	errChan := make(chan error, 2)
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", config.HealthPort))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %d: %w", config.HealthPort, err)
	}

	server := httpserver.NewServer(log, httpserver.Dependencies{
		Auth:      authService,
		Rooms:     roomService,
		Chat:      chatService,
		Sessions:  sessionService,
		Monitor:   monitor,
		Registry:  registry,
		Presence:  presence,
		Telemetry: telemetryChan,
	}, httpserver.Config{
		CORSOrigin:             config.CORSOrigin,
		RateLimitMax:           config.RateLimitMax,
		RateLimitWindow:        config.RateLimitWindow,
		AuthRateLimitMax:       config.AuthRateLimitMax,
		AuthRateLimitWindow:    config.AuthRateLimitWindow,
		MessageRateLimitMax:    config.MessageRateLimitMax,
		MessageRateLimitWindow: config.MessageRateLimitWindow,
		ConnectionBufferSize:   config.ConnectionBufferSize,
		DeliveryTimeout:        config.DeliveryTimeout,
		PingInterval:           config.PingInterval,
	})
	go func() {
		if err := server.Listen(fmt.Sprintf(":%d", config.Port)); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	health := grpcserver.NewHealthServer(log)
	go func() {
		if err := health.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC health server error: %w", err)
		}
	}()

	// 6. Wait for a signal or a server failure, then stop in dependency order:
	// health checks first, then the surfaces, then the room workers and the pipeline.
	shutdown := func(ctx context.Context) error {
		health.SetServing(false)
		err := server.Shutdown(ctx)
		coordinator.Stop()
		stopWorkers()
		supervisor.Wait()
		if flushErr := searchSink.Flush(); flushErr != nil {
			log.Error("Search index flush failed", "error", flushErr)
		}
		health.Shutdown()
		return err
	}
	wait := gfshutdown.GracefulShutdown(ctx, config.ShutdownTimeout, map[string]gfshutdown.Operation{
		"chat-hub": shutdown,
	})

	select {
	case code := <-wait:
		log.Info("Program stopped", "exit_code", code)
		if code != exitOK {
			return exitRuntime, fmt.Errorf("shutdown did not complete cleanly")
		}
		return exitOK, nil
	case err := <-errChan:
		shutdownCtx, cancel := context.WithTimeout(ctx, config.ShutdownTimeout)
		defer cancel()
		_ = shutdown(shutdownCtx)
		return exitRuntime, err
	}
}

func buildBadgerOpts(config internal.Config, log *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if log.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG).WithBypassLockGuard(true)
	}
	return options.WithLoggingLevel(badger.INFO)
}

// buildModerator returns nil when no censored word is configured.
func buildModerator(config internal.Config, replacement rune, log *slog.Logger) (*moderation.Moderator, error) {
	var words []string
	for _, w := range strings.Split(config.CensoredWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	if config.CensoredDir != "" {
		data, err := moderation.NewCensoredLoader(os.DirFS(config.CensoredDir)).LoadAll(".", words...)
		if err != nil {
			return nil, fmt.Errorf("censored dictionaries: %w", err)
		}
		words = data.Words
		log.Info("Censored dictionaries loaded", "languages", data.Languages, "words", len(words))
	}
	if len(words) == 0 {
		return nil, nil
	}
	return moderation.NewModerator(words, replacement, log)
}

// MessageMapper renders message records in the Badger inspector.
// Other records keep the raw default rendering.
func MessageMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	message, err := repositories.DecodeMessage(val)
	if err != nil || message.ID == "" {
		return row
	}
	row.Type = "MESSAGE"
	row.Detail = fmt.Sprintf("[%s] %s: %s", message.RoomID, message.Sender.Username, message.Content)
	return row
}
