package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/errors"
	"sync"
)

type Set map[string]struct{}

// Session is one live connection of an authenticated user.
type Session struct {
	ConnID   string
	Identity domain.Identity
	Sink     contract.EventSink
	rooms    Set
}

// Registry tracks live connections, the user owning each of them
// and the rooms every connection has joined.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]*Session // connection -> session
	userConns   map[string]Set      // user -> connections
	roomMembers map[string]Set      // room -> connections
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[string]*Session),
		userConns:   make(map[string]Set),
		roomMembers: make(map[string]Set),
	}
}

// Add registers a connection for an identity. A user may hold several connections.
func (r *Registry) Add(connID string, identity domain.Identity, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[connID] = &Session{ConnID: connID, Identity: identity, Sink: sink, rooms: make(Set)}
	addTo(r.userConns, identity.UserID, connID)
}

// Join attaches a connection to a room. Membership has been checked by the caller.
func (r *Registry) Join(connID, roomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return errors.ErrSessionClosed
	}
	s.rooms[roomID] = struct{}{}
	addTo(r.roomMembers, roomID, connID)
	return nil
}

// Remove drops a connection and every room join it held.
// Only the first call for a connection reports ok, later calls are no-ops.
func (r *Registry) Remove(connID string) (Session, []string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return Session{}, nil, false
	}
	delete(r.sessions, connID)
	removeFrom(r.userConns, s.Identity.UserID, connID)

	rooms := make([]string, 0, len(s.rooms))
	for roomID := range s.rooms {
		removeFrom(r.roomMembers, roomID, connID)
		rooms = append(rooms, roomID)
	}
	return Session{ConnID: s.ConnID, Identity: s.Identity, Sink: s.Sink}, rooms, true
}

// SinksForRoom resolves the connections joined to a room into their sinks.
// excludeConnID, when not empty, leaves the originating connection out.
func (r *Registry) SinksForRoom(roomID, excludeConnID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(members))
	for connID := range members {
		if connID == excludeConnID {
			continue
		}
		if s, exists := r.sessions[connID]; exists {
			sinks = append(sinks, s.Sink)
		}
	}
	return sinks
}

// RoomIdentities returns the users joined to a room through at least one connection, keyed by user id.
func (r *Registry) RoomIdentities(roomID string) map[string]domain.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identities := make(map[string]domain.Identity, len(r.roomMembers[roomID]))
	for connID := range r.roomMembers[roomID] {
		if s, ok := r.sessions[connID]; ok {
			identities[s.Identity.UserID] = s.Identity
		}
	}
	return identities
}

// AllSinks returns the sink of every live connection.
func (r *Registry) AllSinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]contract.EventSink, 0, len(r.sessions))
	for _, s := range r.sessions {
		sinks = append(sinks, s.Sink)
	}
	return sinks
}

func (r *Registry) CountConnections(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.userConns[userID])
}

// UserInRoom reports whether any connection of the user is still joined to the room.
func (r *Registry) UserInRoom(userID, roomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for connID := range r.userConns[userID] {
		if _, ok := r.roomMembers[roomID][connID]; ok {
			return true
		}
	}
	return false
}

func (r *Registry) Session(connID string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[connID]
	if !ok {
		return Session{}, false
	}
	return Session{ConnID: s.ConnID, Identity: s.Identity, Sink: s.Sink}, true
}

// Stats returns the number of live connections and of rooms with at least one of them.
func (r *Registry) Stats() (connections, rooms int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), len(r.roomMembers)
}

func addTo(m map[string]Set, key, value string) {
	if _, ok := m[key]; !ok {
		m[key] = make(Set)
	}
	m[key][value] = struct{}{}
}

// removeFrom leaves no empty set behind to prevent memory leaks over time.
func removeFrom(m map[string]Set, key, value string) {
	if members, ok := m[key]; ok {
		delete(members, value)
		if len(members) == 0 {
			delete(m, key)
		}
	}
}
