package services

import (
	"chat-hub/auth"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/runtime/workers"
	"chat-hub/sink"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type noopWorker struct{}

func (noopWorker) Run(ctx context.Context) error { return nil }

// hub wires every component on real storage engines.
type hub struct {
	auth     *AuthService
	rooms    *RoomService
	sessions *SessionService
	log      *slog.Logger
}

func newHub(t *testing.T) *hub {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	sqlDB, err := repositories.OpenSQLite(t.TempDir()+"/chat.db", logger.Silent)
	req.NoError(err)
	t.Cleanup(func() { _ = repositories.CloseSQLite(sqlDB) })
	kv, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = kv.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	supervisor := workers.NewSupervisor(log)
	go supervisor.Run(ctx)
	t.Cleanup(func() {
		cancel()
		supervisor.Wait()
	})
	req.Eventually(func() bool { return supervisor.Spawn(noopWorker{}) == nil }, time.Second, 5*time.Millisecond)

	users := repositories.NewUserRepository(sqlDB)
	rooms := repositories.NewRoomRepository(sqlDB)
	messages := repositories.NewMessageRepository(kv, log)
	typing := repositories.NewTypingRepository(kv, time.Minute)

	registry := runtime.NewRegistry()
	presence := runtime.NewPresenceTracker(log, users, registry)
	coordinator := runtime.NewCoordinator(log, registry, supervisor, rooms, users, messages, typing,
		nil, nil, runtime.CoordinatorConfig{RoomBufferSize: 16, EventTimeout: 2 * time.Second})

	authService := NewAuthService(log, users, auth.NewTokenManager("secret", time.Hour))
	roomService, err := NewRoomService(log, rooms, users, messages)
	req.NoError(err)
	return &hub{
		auth:     authService,
		rooms:    roomService,
		sessions: NewSessionService(log, authService, registry, presence, coordinator),
		log:      log,
	}
}

func (h *hub) register(t *testing.T, username string) AuthResult {
	t.Helper()
	result, err := h.auth.Register(context.Background(), auth.RegisterRequest{
		Email: username + "@chat.io", Username: username, Password: "Password123",
	})
	require.NoError(t, err)
	return result
}

// connect runs the handshake of a push connection and returns its outbound queue.
func (h *hub) connect(t *testing.T, connID, token string) *sink.ConnectionSink {
	t.Helper()
	ctx := context.Background()
	identity, err := h.sessions.Authenticate(ctx, token)
	require.NoError(t, err)
	s := sink.NewConnectionSink(connID, 64, time.Second, nil, h.log)
	h.sessions.Register(ctx, connID, identity, s)
	return s
}

// next waits for the next event with the given name, skipping the others.
func next(t *testing.T, s *sink.ConnectionSink, name string) event.Event {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case e := <-s.Events():
			if e.Name() == name {
				return e
			}
		case <-timeout:
			require.Failf(t, "event not received", "expected %s", name)
			return nil
		}
	}
}

// drain empties the queue and returns what was pending.
func drain(s *sink.ConnectionSink) []event.Event {
	var events []event.Event
	for {
		select {
		case e := <-s.Events():
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestSessionService_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	h := newHub(t)

	alice := h.register(t, "alice")
	bob := h.register(t, "bob")

	// A creates R and is its admin
	room, err := h.rooms.CreateRoom(ctx, alice.User.Identity(), auth.CreateRoomRequest{Name: "R", IsPrivate: true})
	req.NoError(err)
	req.NotNil(room.InviteCode)

	// B joins R via invite code
	roomID, err := h.rooms.JoinRoom(ctx, bob.User.Identity(), auth.JoinRoomRequest{InviteCode: *room.InviteCode})
	req.NoError(err)
	req.Equal(room.ID, roomID)

	// Both connect and join the room
	aliceConn := h.connect(t, "alice-1", alice.Token)
	bobConn := h.connect(t, "bob-1", bob.Token)
	drain(aliceConn)
	drain(bobConn)
	req.NoError(h.sessions.JoinRoom(ctx, "alice-1", room.ID))
	req.NoError(h.sessions.JoinRoom(ctx, "bob-1", room.ID))
	req.Equal(event.JoinedRoom{RoomID: room.ID}, next(t, bobConn, event.JoinedRoomName))
	joined := next(t, aliceConn, event.UserJoinedRoomName).(event.UserJoinedRoom)
	req.Equal(bob.User.ID, joined.UserID)

	// A posts "hi", B receives it
	req.NoError(h.sessions.SendMessage(ctx, "alice-1", room.ID, "  hi  "))
	received := next(t, bobConn, event.ReceiveMessageName).(event.MessageReceived)
	req.Equal("hi", received.Content)
	req.Equal("alice", received.Sender.Username)
	req.Equal("hi", next(t, aliceConn, event.ReceiveMessageName).(event.MessageReceived).Content)

	// B types, A receives typing
	req.NoError(h.sessions.Typing(ctx, "bob-1", room.ID, true))
	typing := next(t, aliceConn, event.TypingName).(event.TypingChanged)
	req.True(typing.IsTyping)
	req.Equal(bob.User.ID, typing.UserID)

	// B disconnects, A is told B went offline
	h.sessions.Unregister(ctx, "bob-1")
	h.sessions.Unregister(ctx, "bob-1")
	cleared := next(t, aliceConn, event.TypingName).(event.TypingChanged)
	req.False(cleared.IsTyping)
	status := next(t, aliceConn, event.UserStatusName).(event.UserStatus)
	req.Equal(event.UserStatus{UserID: bob.User.ID, IsOnline: false, Username: "bob"}, status)

	// B's connection is gone
	req.ErrorIs(h.sessions.SendMessage(ctx, "bob-1", room.ID, "ghost"), errors.ErrSessionClosed)
	user, err := h.auth.Profile(ctx, bob.User.ID)
	req.NoError(err)
	req.False(user.IsOnline)
}

func TestSessionService_Second_Device(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	h := newHub(t)

	alice := h.register(t, "alice")
	bob := h.register(t, "bob")
	aliceConn := h.connect(t, "alice-1", alice.Token)
	drain(aliceConn)

	h.connect(t, "bob-phone", bob.Token)
	status := next(t, aliceConn, event.UserStatusName).(event.UserStatus)
	req.True(status.IsOnline)

	// A second device emits no online status
	h.connect(t, "bob-laptop", bob.Token)
	// And disconnecting one of two devices emits no offline status
	h.sessions.Unregister(ctx, "bob-phone")
	time.Sleep(50 * time.Millisecond)
	for _, e := range drain(aliceConn) {
		req.NotEqual(event.UserStatusName, e.Name())
	}

	h.sessions.Unregister(ctx, "bob-laptop")
	status = next(t, aliceConn, event.UserStatusName).(event.UserStatus)
	req.False(status.IsOnline)
}

func TestSessionService_Join_Requires_Membership(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	h := newHub(t)

	alice := h.register(t, "alice")
	mallory := h.register(t, "mallory")
	room, err := h.rooms.CreateRoom(ctx, alice.User.Identity(), auth.CreateRoomRequest{Name: "R"})
	req.NoError(err)

	malloryConn := h.connect(t, "mallory-1", mallory.Token)
	req.ErrorIs(h.sessions.JoinRoom(ctx, "mallory-1", room.ID), errors.ErrNotAMember)
	req.ErrorIs(h.sessions.SendMessage(ctx, "mallory-1", room.ID, "hi"), errors.ErrNotAMember)

	// Typing from a non member is silently ignored
	req.NoError(h.sessions.Typing(ctx, "mallory-1", room.ID, true))
	for _, e := range drain(malloryConn) {
		req.Equal(event.UserStatusName, e.Name())
	}

	_, err = h.sessions.Authenticate(ctx, "garbage")
	req.ErrorIs(err, errors.ErrUnauthenticated)
}

func TestSessionService_Unknown_Connection(t *testing.T) {
	req := require.New(t)
	h := newHub(t)
	req.ErrorIs(h.sessions.JoinRoom(context.Background(), "ghost", "room"), errors.ErrSessionClosed)
	req.ErrorIs(h.sessions.Typing(context.Background(), "ghost", "room", true), errors.ErrSessionClosed)
	h.sessions.Unregister(context.Background(), "ghost")
}

func TestSessionService_Join_Replays_Current_Typers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	h := newHub(t)

	alice := h.register(t, "alice")
	bob := h.register(t, "bob")
	room, err := h.rooms.CreateRoom(ctx, alice.User.Identity(), auth.CreateRoomRequest{Name: "R"})
	req.NoError(err)
	_, err = h.rooms.JoinRoom(ctx, bob.User.Identity(), auth.JoinRoomRequest{RoomID: room.ID})
	req.NoError(err)

	// Given bob typing in the room
	h.connect(t, "bob-1", bob.Token)
	req.NoError(h.sessions.JoinRoom(ctx, "bob-1", room.ID))
	req.NoError(h.sessions.Typing(ctx, "bob-1", room.ID, true))

	// When alice joins, she learns bob is typing right after the confirmation
	aliceConn := h.connect(t, "alice-1", alice.Token)
	drain(aliceConn)
	req.NoError(h.sessions.JoinRoom(ctx, "alice-1", room.ID))

	req.Equal(event.JoinedRoom{RoomID: room.ID}, <-aliceConn.Events())
	req.Equal(event.TypingChanged{UserID: bob.User.ID, Username: "bob", IsTyping: true, RoomID: room.ID}, <-aliceConn.Events())

	// And bob does not get his own typing state back on a second device
	bobLaptop := h.connect(t, "bob-2", bob.Token)
	drain(bobLaptop)
	req.NoError(h.sessions.JoinRoom(ctx, "bob-2", room.ID))
	req.Equal(event.JoinedRoom{RoomID: room.ID}, <-bobLaptop.Events())
	for _, e := range drain(bobLaptop) {
		req.NotEqual(event.TypingName, e.Name())
	}
}
