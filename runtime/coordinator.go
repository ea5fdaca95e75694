//go:generate go run go.uber.org/mock/mockgen -source=coordinator.go -destination=../mocks/mock_coordinator.go -package=mocks
package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/moderation"
	"chat-hub/repositories"
	"chat-hub/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type IRoomCoordinator interface {
	PostMessage(ctx context.Context, identity domain.Identity, roomID, content string) (domain.Message, error)
	EditMessage(ctx context.Context, identity domain.Identity, messageID, content string) (domain.Message, error)
	DeleteMessage(ctx context.Context, identity domain.Identity, messageID string) error
	SetTyping(ctx context.Context, identity domain.Identity, connID, roomID string, isTyping bool) error
	JoinRoomBroadcast(ctx context.Context, identity domain.Identity, connID, roomID string) error
	ClearTyping(ctx context.Context, identity domain.Identity, rooms []string)
	TypingSnapshot(roomID, excludeUserID string) ([]event.TypingChanged, error)
	RequireMembership(ctx context.Context, userID, roomID string) (domain.RoomMember, error)
}

type CoordinatorConfig struct {
	RoomBufferSize int
	EventTimeout   time.Duration
}

// Coordinator is the authoritative entry point for room activity.
// Every room gets its own RoomWorker, spawned on first use, which serializes
// posts and typing updates of that room. Rooms never wait on each other.
type Coordinator struct {
	log          *slog.Logger
	registry     *Registry
	supervisor   contract.ISupervisor
	rooms        repositories.IRoomRepository
	users        repositories.IUserRepository
	messages     repositories.IMessageRepository
	typing       repositories.ITypingRepository
	moderator    *moderation.Moderator
	domainEvents chan<- event.Event
	telemetry    chan<- event.Telemetry
	config       CoordinatorConfig
	now          func() time.Time

	mu        sync.Mutex
	mailboxes map[string]chan workers.RoomCommand
	done      chan struct{}
	stopOnce  sync.Once
}

func NewCoordinator(
	log *slog.Logger,
	registry *Registry,
	supervisor contract.ISupervisor,
	rooms repositories.IRoomRepository,
	users repositories.IUserRepository,
	messages repositories.IMessageRepository,
	typing repositories.ITypingRepository,
	domainEvents chan<- event.Event,
	telemetry chan<- event.Telemetry,
	config CoordinatorConfig,
) *Coordinator {
	return &Coordinator{
		log:          log,
		registry:     registry,
		supervisor:   supervisor,
		rooms:        rooms,
		users:        users,
		messages:     messages,
		typing:       typing,
		domainEvents: domainEvents,
		telemetry:    telemetry,
		config:       config,
		now:          func() time.Time { return time.Now().UTC() },
		mailboxes:    make(map[string]chan workers.RoomCommand),
		done:         make(chan struct{}),
	}
}

// WithModerator masks censored words of every posted or edited message.
func (c *Coordinator) WithModerator(moderator *moderation.Moderator) *Coordinator {
	c.moderator = moderator
	return c
}

// RequireMembership is the single authorization gate for room actions.
func (c *Coordinator) RequireMembership(ctx context.Context, userID, roomID string) (domain.RoomMember, error) {
	member, err := c.rooms.GetMembership(ctx, userID, roomID)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return domain.RoomMember{}, errors.ErrNotAMember
		}
		return domain.RoomMember{}, err
	}
	return member, nil
}

// PostMessage persists a message and delivers receive_message to every
// connection joined to the room, in the order the room accepted them.
func (c *Coordinator) PostMessage(ctx context.Context, identity domain.Identity, roomID, content string) (domain.Message, error) {
	content, err := normalizeContent(content)
	if err != nil {
		return domain.Message{}, err
	}
	if _, err := c.RequireMembership(ctx, identity.UserID, roomID); err != nil {
		return domain.Message{}, err
	}
	sender, err := c.users.GetUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return domain.Message{}, errors.ErrIdentityNotFound
		}
		return domain.Message{}, err
	}
	content = c.moderate(roomID, content)

	var msg domain.Message
	err = c.submit(ctx, roomID, func(ctx context.Context, state *workers.RoomState) error {
		at := state.NextTimestamp(c.now())
		accepted := domain.Message{
			ID:        uuid.NewString(),
			RoomID:    roomID,
			SenderID:  sender.ID,
			Sender:    sender.Summary(),
			Content:   content,
			CreatedAt: at,
			UpdatedAt: at,
		}
		if err := c.messages.StoreMessage(accepted); err != nil {
			return err
		}
		if err := c.rooms.TouchRoom(ctx, roomID, at); err != nil {
			c.log.Warn("Unable to touch room", "room_id", roomID, "error", err)
		}
		recipients := broadcast(ctx, c.registry.SinksForRoom(roomID, ""), event.NewMessageReceived(accepted))
		c.emit(event.NewTelemetry(event.DeliveryLatencyType, event.DeliveryLatency{
			RoomID:     roomID,
			MessageID:  accepted.ID,
			AcceptedAt: at,
			Recipients: recipients,
		}))
		msg = accepted
		return nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	c.publish(event.NewMessageReceived(msg))
	return msg, nil
}

// EditMessage rewrites the content of a message owned by the caller.
// Nothing is pushed to connections, only in-process consumers are told.
func (c *Coordinator) EditMessage(ctx context.Context, identity domain.Identity, messageID, content string) (domain.Message, error) {
	content, err := normalizeContent(content)
	if err != nil {
		return domain.Message{}, err
	}
	msg, err := c.messages.GetMessage(messageID)
	if err != nil {
		return domain.Message{}, err
	}
	if msg.SenderID != identity.UserID {
		return domain.Message{}, fmt.Errorf("%w: You can only edit your own messages", errors.ErrForbidden)
	}
	if _, err := c.RequireMembership(ctx, identity.UserID, msg.RoomID); err != nil {
		return domain.Message{}, err
	}
	edited, err := c.messages.EditMessage(messageID, c.moderate(msg.RoomID, content), c.now())
	if err != nil {
		return domain.Message{}, err
	}
	c.publish(event.MessageEdited{Message: edited})
	return edited, nil
}

// DeleteMessage removes a message. The sender or any admin of the room may delete it.
func (c *Coordinator) DeleteMessage(ctx context.Context, identity domain.Identity, messageID string) error {
	msg, err := c.messages.GetMessage(messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != identity.UserID {
		member, err := c.rooms.GetMembership(ctx, identity.UserID, msg.RoomID)
		if err != nil && !errors.Is(err, errors.ErrNotFound) {
			return err
		}
		if err != nil || !member.IsAdmin {
			return fmt.Errorf("%w: You can only delete your own messages or must be an admin", errors.ErrForbidden)
		}
	}
	if _, err := c.messages.DeleteMessage(messageID); err != nil {
		return err
	}
	c.publish(event.MessageDeleted{MessageID: msg.ID, RoomID: msg.RoomID})
	return nil
}

// SetTyping records the typing state and tells the rest of the room.
// Non-members are ignored silently.
func (c *Coordinator) SetTyping(ctx context.Context, identity domain.Identity, connID, roomID string, isTyping bool) error {
	if _, err := c.RequireMembership(ctx, identity.UserID, roomID); err != nil {
		if errors.Is(err, errors.ErrNotAMember) {
			return nil
		}
		return err
	}
	return c.submit(ctx, roomID, func(ctx context.Context, state *workers.RoomState) error {
		return c.applyTyping(ctx, identity, connID, roomID, isTyping)
	})
}

// JoinRoomBroadcast announces a confirmed join to the other connections of the room.
func (c *Coordinator) JoinRoomBroadcast(ctx context.Context, identity domain.Identity, connID, roomID string) error {
	if _, err := c.RequireMembership(ctx, identity.UserID, roomID); err != nil {
		return err
	}
	return c.submit(ctx, roomID, func(ctx context.Context, state *workers.RoomState) error {
		broadcast(ctx, c.registry.SinksForRoom(roomID, connID), event.UserJoinedRoom{
			UserID:   identity.UserID,
			Username: identity.Username,
			RoomID:   roomID,
		})
		return nil
	})
}

// ClearTyping resets the typing state a user left behind in rooms none of
// its connections still occupies. Failures are logged, teardown goes on.
func (c *Coordinator) ClearTyping(ctx context.Context, identity domain.Identity, rooms []string) {
	for _, roomID := range rooms {
		if c.registry.UserInRoom(identity.UserID, roomID) {
			continue
		}
		status, found, err := c.typing.GetTyping(identity.UserID, roomID)
		if err != nil {
			c.log.Warn("Unable to read typing state", "user_id", identity.UserID, "room_id", roomID, "error", err)
			continue
		}
		if !found || !status.IsTyping {
			continue
		}
		err = c.submit(ctx, roomID, func(ctx context.Context, state *workers.RoomState) error {
			return c.applyTyping(ctx, identity, "", roomID, false)
		})
		if err != nil {
			c.log.Warn("Unable to clear typing state", "user_id", identity.UserID, "room_id", roomID, "error", err)
		}
	}
}

// TypingSnapshot lists the users typing in a room, restricted to those still joined to it.
func (c *Coordinator) TypingSnapshot(roomID, excludeUserID string) ([]event.TypingChanged, error) {
	statuses, err := c.typing.ListTyping(roomID)
	if err != nil {
		return nil, err
	}
	present := c.registry.RoomIdentities(roomID)
	var typers []event.TypingChanged
	for _, status := range statuses {
		identity, ok := present[status.UserID]
		if !ok || status.UserID == excludeUserID {
			continue
		}
		typers = append(typers, event.TypingChanged{
			UserID:   identity.UserID,
			Username: identity.Username,
			IsTyping: true,
			RoomID:   roomID,
		})
	}
	return typers, nil
}

// Stop rejects every later command. Room workers end with the supervisor.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Rooms returns the number of room workers spawned so far.
func (c *Coordinator) Rooms() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.mailboxes)
}

// Mailboxes names every room mailbox for channel capacity sampling.
func (c *Coordinator) Mailboxes() []workers.NamedChannel {
	c.mu.Lock()
	defer c.mu.Unlock()
	channels := make([]workers.NamedChannel, 0, len(c.mailboxes))
	for roomID, mailbox := range c.mailboxes {
		channels = append(channels, workers.NamedChannel{Name: "room:" + roomID, Channel: mailbox})
	}
	return channels
}

func (c *Coordinator) applyTyping(ctx context.Context, identity domain.Identity, excludeConnID, roomID string, isTyping bool) error {
	err := c.typing.UpsertTyping(domain.TypingStatus{
		UserID:    identity.UserID,
		RoomID:    roomID,
		IsTyping:  isTyping,
		StartedAt: c.now(),
	})
	if err != nil {
		return err
	}
	broadcast(ctx, c.registry.SinksForRoom(roomID, excludeConnID), event.TypingChanged{
		UserID:   identity.UserID,
		Username: identity.Username,
		IsTyping: isTyping,
		RoomID:   roomID,
	})
	return nil
}

// submit queues a command on the room worker and waits for its outcome.
// The event timeout bounds the wait until the worker starts the command.
// A started command is always waited for, so the reply matches its side effects.
func (c *Coordinator) submit(ctx context.Context, roomID string, fn func(ctx context.Context, state *workers.RoomState) error) error {
	select {
	case <-c.done:
		return errors.ErrCoordinatorStopped
	default:
	}
	mailbox, err := c.mailbox(roomID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.EventTimeout)
	defer cancel()

	cmd := workers.NewRoomCommand(fn)
	select {
	case mailbox <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return errors.ErrCoordinatorStopped
	}
	select {
	case err := <-cmd.Reply:
		return err
	case <-ctx.Done():
		if cmd.Abandon() {
			return ctx.Err()
		}
	case <-c.done:
		if cmd.Abandon() {
			return errors.ErrCoordinatorStopped
		}
	}
	return <-cmd.Reply
}

func (c *Coordinator) mailbox(roomID string) (chan workers.RoomCommand, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mailbox, ok := c.mailboxes[roomID]; ok {
		return mailbox, nil
	}
	mailbox := make(chan workers.RoomCommand, c.config.RoomBufferSize)
	if err := c.supervisor.Spawn(workers.NewRoomWorker(roomID, mailbox, c.log)); err != nil {
		if errors.Is(err, errors.ErrSupervisorStopped) {
			return nil, errors.ErrCoordinatorStopped
		}
		return nil, err
	}
	c.mailboxes[roomID] = mailbox
	c.log.Debug("Room worker spawned", "room_id", roomID)
	return mailbox, nil
}

func (c *Coordinator) moderate(roomID, content string) string {
	if c.moderator == nil {
		return content
	}
	censored, words := c.moderator.Censor(content)
	if len(words) == 0 {
		return content
	}
	lang := moderation.DetectLanguage(content)
	c.log.Info("Censored words found", "room_id", roomID, "count", len(words), "lang", lang)
	c.emit(event.NewTelemetry(event.CensorshipHitType, event.Censored{RoomID: roomID, Words: words, Lang: lang}))
	return censored
}

// publish hands a domain event to in-process consumers, dropping it past the event timeout.
func (c *Coordinator) publish(evt event.Event) {
	if c.domainEvents == nil {
		return
	}
	timer := time.NewTimer(c.config.EventTimeout)
	defer timer.Stop()
	select {
	case c.domainEvents <- evt:
	case <-timer.C:
		c.log.Warn("Domain event dropped", "event", evt.Name())
	}
}

func (c *Coordinator) emit(t event.Telemetry) {
	if c.telemetry == nil {
		return
	}
	select {
	case c.telemetry <- t:
	default:
		c.log.Debug("Observability telemetry event lost")
	}
}

func normalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errors.ErrEmptyContent
	}
	if domain.ContentTooLong(content) {
		return "", fmt.Errorf("%w: Message must be between 1 and %d characters", errors.ErrValidationFailed, domain.MaxContentLength)
	}
	return content, nil
}
