package services

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/runtime"
	"context"
	"log/slog"
)

type ISessionService interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
	Register(ctx context.Context, connID string, identity domain.Identity, sink contract.EventSink)
	JoinRoom(ctx context.Context, connID, roomID string) error
	SendMessage(ctx context.Context, connID, roomID, content string) error
	Typing(ctx context.Context, connID, roomID string, isTyping bool) error
	Unregister(ctx context.Context, connID string)
}

// SessionService turns push channel intents into registry, presence and room operations.
// It performs no authorization of its own.
type SessionService struct {
	log         *slog.Logger
	auth        IAuthService
	registry    *runtime.Registry
	presence    *runtime.PresenceTracker
	coordinator runtime.IRoomCoordinator
}

func NewSessionService(log *slog.Logger, auth IAuthService, registry *runtime.Registry,
	presence *runtime.PresenceTracker, coordinator runtime.IRoomCoordinator) *SessionService {
	return &SessionService{
		log:         log,
		auth:        auth,
		registry:    registry,
		presence:    presence,
		coordinator: coordinator,
	}
}

// Authenticate checks the handshake credential before the connection is registered.
func (s *SessionService) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	return s.auth.Authenticate(ctx, token)
}

func (s *SessionService) Register(ctx context.Context, connID string, identity domain.Identity, sink contract.EventSink) {
	s.registry.Add(connID, identity, sink)
	s.presence.Reconcile(ctx, identity)
	s.log.Debug("Connection registered", "conn_id", connID, "user_id", identity.UserID)
}

// JoinRoom attaches the connection to a room the user is a member of,
// confirms it to the connection with the users currently typing there
// and announces it to the rest of the room.
func (s *SessionService) JoinRoom(ctx context.Context, connID, roomID string) error {
	session, ok := s.registry.Session(connID)
	if !ok {
		return errors.ErrSessionClosed
	}
	if _, err := s.coordinator.RequireMembership(ctx, session.Identity.UserID, roomID); err != nil {
		return err
	}
	if err := s.registry.Join(connID, roomID); err != nil {
		return err
	}
	if err := session.Sink.Consume(ctx, event.JoinedRoom{RoomID: roomID}); err != nil {
		s.log.Debug("Join confirmation not delivered", "conn_id", connID, "error", err)
	}
	typers, err := s.coordinator.TypingSnapshot(roomID, session.Identity.UserID)
	if err != nil {
		s.log.Warn("Unable to list typing users", "room_id", roomID, "error", err)
	}
	for _, typer := range typers {
		if err := session.Sink.Consume(ctx, typer); err != nil {
			s.log.Debug("Typing state not delivered", "conn_id", connID, "error", err)
		}
	}
	return s.coordinator.JoinRoomBroadcast(ctx, session.Identity, connID, roomID)
}

func (s *SessionService) SendMessage(ctx context.Context, connID, roomID, content string) error {
	session, ok := s.registry.Session(connID)
	if !ok {
		return errors.ErrSessionClosed
	}
	_, err := s.coordinator.PostMessage(ctx, session.Identity, roomID, content)
	return err
}

func (s *SessionService) Typing(ctx context.Context, connID, roomID string, isTyping bool) error {
	session, ok := s.registry.Session(connID)
	if !ok {
		return errors.ErrSessionClosed
	}
	return s.coordinator.SetTyping(ctx, session.Identity, connID, roomID, isTyping)
}

// Unregister tears a connection down once, whatever the number of callers.
// It runs to completion even when the connection context is already cancelled.
func (s *SessionService) Unregister(ctx context.Context, connID string) {
	session, rooms, ok := s.registry.Remove(connID)
	if !ok {
		return
	}
	ctx = context.WithoutCancel(ctx)
	s.coordinator.ClearTyping(ctx, session.Identity, rooms)
	s.presence.Reconcile(ctx, session.Identity)
	s.log.Debug("Connection unregistered", "conn_id", connID, "user_id", session.Identity.UserID)
}
