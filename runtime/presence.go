package runtime

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/repositories"
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"
)

const presenceStripes = 64

// PresenceTracker derives online/offline transitions from the live connection count.
// A user becomes online with its first connection and offline with its last one,
// so extra devices never emit a transition.
type PresenceTracker struct {
	log      *slog.Logger
	users    repositories.IUserRepository
	registry *Registry
	now      func() time.Time

	stripes [presenceStripes]sync.Mutex
	mu      sync.Mutex
	online  map[string]bool
}

func NewPresenceTracker(log *slog.Logger, users repositories.IUserRepository, registry *Registry) *PresenceTracker {
	return &PresenceTracker{
		log:      log,
		users:    users,
		registry: registry,
		now:      func() time.Time { return time.Now().UTC() },
		online:   make(map[string]bool),
	}
}

// Reconcile compares the registry state of a user with the last published one.
// On a transition it persists the new presence and broadcasts user_status to every connection.
// Persistence failures are logged and never block the transition.
func (p *PresenceTracker) Reconcile(ctx context.Context, identity domain.Identity) bool {
	stripe := p.stripe(identity.UserID)
	stripe.Lock()
	defer stripe.Unlock()

	connected := p.registry.CountConnections(identity.UserID) > 0
	if connected == p.isOnline(identity.UserID) {
		return false
	}

	if err := p.users.SetPresence(ctx, identity.UserID, connected, p.now()); err != nil {
		p.log.Error("Unable to persist presence", "user_id", identity.UserID, "online", connected, "error", err)
	}
	p.setOnline(identity.UserID, connected)

	recipients := broadcast(ctx, p.registry.AllSinks(), event.UserStatus{
		UserID:   identity.UserID,
		IsOnline: connected,
		Username: identity.Username,
	})
	p.log.Debug("Presence changed", "user_id", identity.UserID, "online", connected, "recipients", recipients)
	return true
}

// Online returns the number of users currently seen online.
func (p *PresenceTracker) Online() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.online)
}

func (p *PresenceTracker) isOnline(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.online[userID]
}

func (p *PresenceTracker) setOnline(userID string, online bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if online {
		p.online[userID] = true
		return
	}
	delete(p.online, userID)
}

func (p *PresenceTracker) stripe(userID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return &p.stripes[h.Sum32()%presenceStripes]
}
