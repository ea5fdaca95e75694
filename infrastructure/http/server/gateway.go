package server

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/services"
	"chat-hub/sink"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Client intents accepted on the push channel.
const (
	JoinRoomIntent    = "join_room"
	SendMessageIntent = "send_message"
	TypingIntent      = "typing"
)

const (
	writeWait    = 10 * time.Second
	maxFrameSize = 16 * 1024
)

type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outboundFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type joinRoomPayload struct {
	RoomID string `json:"roomId"`
}

type sendMessagePayload struct {
	RoomID  string `json:"roomId"`
	Content string `json:"content"`
}

type typingPayload struct {
	RoomID   string `json:"roomId"`
	IsTyping bool   `json:"isTyping"`
}

// Gateway terminates push channel connections. It authenticates the handshake,
// decodes intents and hands them to the session service verbatim.
type Gateway struct {
	log       *slog.Logger
	sessions  services.ISessionService
	telemetry chan<- event.Telemetry
	config    Config
}

func NewGateway(log *slog.Logger, sessions services.ISessionService,
	telemetry chan<- event.Telemetry, config Config) *Gateway {
	return &Gateway{log: log, sessions: sessions, telemetry: telemetry, config: config}
}

// Upgrade rejects the handshake unless it is a websocket upgrade with a valid credential.
func (g *Gateway) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	token := bearerToken(c)
	if token == "" {
		return errors.ErrUnauthenticated
	}
	identity, err := g.sessions.Authenticate(c.UserContext(), token)
	if err != nil {
		return err
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// Handle serves one connection until the client goes away.
// Only the writer goroutine writes on the socket.
func (g *Gateway) Handle(conn *websocket.Conn) {
	identity, found := conn.Locals(identityKey).(domain.Identity)
	if !found {
		return
	}
	connID := uuid.NewString()
	log := g.log.With("conn_id", connID, "user_id", identity.UserID)

	ctx, cancel := context.WithCancel(context.Background())
	out := sink.NewConnectionSink(connID, g.config.ConnectionBufferSize, g.config.DeliveryTimeout, g.telemetry, g.log)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		g.write(ctx, conn, out, log)
	}()

	g.sessions.Register(ctx, connID, identity, out)
	log.Info("Client connected", "username", identity.Username)

	defer func() {
		g.sessions.Unregister(ctx, connID)
		out.Close()
		cancel()
		<-writerDone
		log.Info("Client disconnected")
	}()

	g.read(ctx, conn, connID, out, log)
}

func (g *Gateway) read(ctx context.Context, conn *websocket.Conn, connID string, out *sink.ConnectionSink, log *slog.Logger) {
	conn.SetReadLimit(maxFrameSize)
	if g.config.PingInterval > 0 {
		pongWait := 2 * g.config.PingInterval
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("Connection closed unexpectedly", "error", err)
			}
			return
		}
		if err := g.dispatch(ctx, connID, raw); err != nil {
			log.Debug("Client event rejected", "error", err)
			if err := out.Consume(ctx, event.Failure{Message: errors.Message(err)}); err != nil {
				log.Debug("Error event not delivered", "error", err)
			}
		}
	}
}

func (g *Gateway) write(ctx context.Context, conn *websocket.Conn, out *sink.ConnectionSink, log *slog.Logger) {
	var ping <-chan time.Time
	if g.config.PingInterval > 0 {
		ticker := time.NewTicker(g.config.PingInterval)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-out.Done():
			return
		case e := <-out.Events():
			if err := writeEvent(conn, e); err != nil {
				log.Warn("Failed to push event", "event", e.Name(), "error", err)
				_ = conn.Close()
				return
			}
		case <-ping:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug("Ping failed", "error", err)
				_ = conn.Close()
				return
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, e event.Event) error {
	payload, err := encodeEvent(e)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func encodeEvent(e event.Event) ([]byte, error) {
	return json.Marshal(outboundFrame{Event: e.Name(), Data: e})
}

// dispatch decodes one client frame and runs the matching intent.
func (g *Gateway) dispatch(ctx context.Context, connID string, raw []byte) error {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return errors.ErrInvalidPayload
	}

	switch frame.Event {
	case JoinRoomIntent:
		var p joinRoomPayload
		if err := decode(frame.Data, &p); err != nil {
			return err
		}
		if p.RoomID == "" {
			return fmt.Errorf("%w: roomId is required", errors.ErrValidationFailed)
		}
		return g.sessions.JoinRoom(ctx, connID, p.RoomID)
	case SendMessageIntent:
		var p sendMessagePayload
		if err := decode(frame.Data, &p); err != nil {
			return err
		}
		if p.RoomID == "" {
			return fmt.Errorf("%w: roomId is required", errors.ErrValidationFailed)
		}
		return g.sessions.SendMessage(ctx, connID, p.RoomID, p.Content)
	case TypingIntent:
		var p typingPayload
		if err := decode(frame.Data, &p); err != nil {
			return err
		}
		if p.RoomID == "" {
			return fmt.Errorf("%w: roomId is required", errors.ErrValidationFailed)
		}
		return g.sessions.Typing(ctx, connID, p.RoomID, p.IsTyping)
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownEvent, frame.Event)
	}
}

func decode(data json.RawMessage, target any) error {
	if len(data) == 0 {
		return errors.ErrInvalidPayload
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.ErrInvalidPayload
	}
	return nil
}
