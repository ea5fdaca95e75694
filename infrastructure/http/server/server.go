package server

import (
	"chat-hub/domain/event"
	"chat-hub/observability"
	"chat-hub/runtime"
	"chat-hub/services"
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Config struct {
	CORSOrigin             string
	RateLimitMax           int
	RateLimitWindow        time.Duration
	AuthRateLimitMax       int
	AuthRateLimitWindow    time.Duration
	MessageRateLimitMax    int
	MessageRateLimitWindow time.Duration
	ConnectionBufferSize   int
	DeliveryTimeout        time.Duration
	PingInterval           time.Duration
}

// Dependencies groups what the routes call into.
// Monitor, Registry and Presence only feed /health and may be nil.
type Dependencies struct {
	Auth      services.IAuthService
	Rooms     services.IRoomService
	Chat      services.IChatService
	Sessions  services.ISessionService
	Monitor   *observability.MonitoringManager
	Registry  *runtime.Registry
	Presence  *runtime.PresenceTracker
	Telemetry chan<- event.Telemetry
}

// Server is the request/response surface and the push channel on one fiber app.
type Server struct {
	app     *fiber.App
	log     *slog.Logger
	deps    Dependencies
	config  Config
	gateway *Gateway
}

func NewServer(log *slog.Logger, deps Dependencies, config Config) *Server {
	s := &Server{
		log:    log,
		deps:   deps,
		config: config,
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "chat-hub",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.gateway = NewGateway(log, deps.Sessions, deps.Telemetry, config)

	s.app.Use(recover.New())
	s.app.Use(requestLogger(log))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: config.CORSOrigin != "*",
	}))
	s.routes()
	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	s.log.Info("Starting HTTP server", "address", addr, "at", time.Now().UTC())
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)

	s.app.Use("/ws", s.gateway.Upgrade)
	s.app.Get("/ws", websocket.New(s.gateway.Handle))

	api := s.app.Group("/api", rateLimit(s.config.RateLimitMax, s.config.RateLimitWindow,
		"Too many requests from this IP, please try again later.", nil))

	authRoutes := api.Group("/auth")
	authLimit := rateLimit(s.config.AuthRateLimitMax, s.config.AuthRateLimitWindow,
		"Too many authentication attempts, please try again later.", nil)
	authRoutes.Post("/register", authLimit, s.register)
	authRoutes.Post("/login", authLimit, s.login)
	authRoutes.Get("/profile", Authenticated(s.deps.Auth), s.profile)

	rooms := api.Group("/rooms")
	rooms.Get("/public", OptionalAuth(s.deps.Auth), s.publicRooms)
	rooms.Use(Authenticated(s.deps.Auth))
	rooms.Post("/", s.createRoom)
	rooms.Get("/my-rooms", s.myRooms)
	rooms.Post("/join", s.joinRoom)
	rooms.Get("/:roomId", s.roomDetails)

	messages := api.Group("/messages", Authenticated(s.deps.Auth))
	messages.Get("/room/:roomId", s.roomMessages)
	messages.Get("/room/:roomId/search", s.searchMessages)
	messages.Post("/", rateLimit(s.config.MessageRateLimitMax, s.config.MessageRateLimitWindow,
		"Too many messages sent, please slow down.", userKey), s.postMessage)
	messages.Put("/:messageId", s.editMessage)
	messages.Delete("/:messageId", s.deleteMessage)
}

// rateLimit keys on the client IP unless key is given. A non-positive max disables it.
func rateLimit(max int, window time.Duration, message string, key func(c *fiber.Ctx) string) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	config := limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return fail(c, fiber.StatusTooManyRequests, message)
		},
	}
	if key != nil {
		config.KeyGenerator = key
	}
	return limiter.New(config)
}

func userKey(c *fiber.Ctx) string {
	if identity, found := identityOf(c); found {
		return identity.UserID
	}
	return c.IP()
}
