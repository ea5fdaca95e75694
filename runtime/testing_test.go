package runtime

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/mocks"
	"chat-hub/repositories"
	"chat-hub/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *recordingSink) Consume(ctx context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

func (s *recordingSink) Named(name string) []event.Event {
	var out []event.Event
	for _, e := range s.Events() {
		if e.Name() == name {
			out = append(out, e)
		}
	}
	return out
}

type noopWorker struct{}

func (noopWorker) Run(ctx context.Context) error { return nil }

type fixture struct {
	log          *slog.Logger
	supervisor   *workers.Supervisor
	coordinator  *Coordinator
	registry     *Registry
	rooms        *mocks.MockIRoomRepository
	users        *mocks.MockIUserRepository
	messages     *repositories.MessageRepository
	typing       *repositories.TypingRepository
	domainEvents chan event.Event
	telemetry    chan event.Telemetry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	supervisor := workers.NewSupervisor(log)
	go supervisor.Run(ctx)
	t.Cleanup(func() {
		cancel()
		supervisor.Wait()
	})
	req.Eventually(func() bool { return supervisor.Spawn(noopWorker{}) == nil }, time.Second, 5*time.Millisecond)

	f := &fixture{
		log:          log,
		supervisor:   supervisor,
		registry:     NewRegistry(),
		rooms:        mocks.NewMockIRoomRepository(ctrl),
		users:        mocks.NewMockIUserRepository(ctrl),
		messages:     repositories.NewMessageRepository(db, log),
		typing:       repositories.NewTypingRepository(db, time.Minute),
		domainEvents: make(chan event.Event, 100),
		telemetry:    make(chan event.Telemetry, 100),
	}
	f.coordinator = NewCoordinator(log, f.registry, supervisor,
		f.rooms, f.users, f.messages, f.typing,
		f.domainEvents, f.telemetry,
		CoordinatorConfig{RoomBufferSize: 16, EventTimeout: 2 * time.Second})
	f.rooms.EXPECT().TouchRoom(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return f
}

// member declares a membership row for the user in the room.
func (f *fixture) member(identity domain.Identity, roomID string, isAdmin bool) {
	f.rooms.EXPECT().GetMembership(gomock.Any(), identity.UserID, roomID).
		Return(domain.RoomMember{UserID: identity.UserID, RoomID: roomID, IsAdmin: isAdmin}, nil).AnyTimes()
}

// stranger declares the user holds no membership row in the room.
func (f *fixture) stranger(identity domain.Identity, roomID string) {
	f.rooms.EXPECT().GetMembership(gomock.Any(), identity.UserID, roomID).
		Return(domain.RoomMember{}, fmt.Errorf("%w: Membership not found", errors.ErrNotFound)).AnyTimes()
}

func (f *fixture) user(identity domain.Identity) {
	f.users.EXPECT().GetUserByID(gomock.Any(), identity.UserID).
		Return(domain.User{ID: identity.UserID, Email: identity.Email, Username: identity.Username}, nil).AnyTimes()
}

// connect registers a connection joined to the given rooms.
func (f *fixture) connect(t *testing.T, connID string, identity domain.Identity, rooms ...string) *recordingSink {
	t.Helper()
	sink := &recordingSink{}
	f.registry.Add(connID, identity, sink)
	for _, roomID := range rooms {
		require.NoError(t, f.registry.Join(connID, roomID))
	}
	return sink
}
