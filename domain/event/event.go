package event

import (
	"chat-hub/domain"
	"time"
)

// Push event names as they appear on the wire.
const (
	JoinedRoomName     = "joined_room"
	UserJoinedRoomName = "user_joined_room"
	ReceiveMessageName = "receive_message"
	TypingName         = "typing"
	UserStatusName     = "user_status"
	ErrorName          = "error"
	MessageEditedName  = "message_edited"
	MessageDeletedName = "message_deleted"
)

// Event is anything delivered to a sink: push events for connections
// and domain events for in-process consumers.
type Event interface {
	Name() string
}

type JoinedRoom struct {
	RoomID string `json:"roomId"`
}

func (JoinedRoom) Name() string { return JoinedRoomName }

type UserJoinedRoom struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	RoomID   string `json:"roomId"`
}

func (UserJoinedRoom) Name() string { return UserJoinedRoomName }

type MessageReceived struct {
	ID        string             `json:"id"`
	Content   string             `json:"content"`
	RoomID    string             `json:"roomId"`
	Sender    domain.UserSummary `json:"sender"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (MessageReceived) Name() string { return ReceiveMessageName }

func NewMessageReceived(m domain.Message) MessageReceived {
	return MessageReceived{
		ID:        m.ID,
		Content:   m.Content,
		RoomID:    m.RoomID,
		Sender:    m.Sender,
		CreatedAt: m.CreatedAt,
	}
}

type TypingChanged struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	IsTyping bool   `json:"isTyping"`
	RoomID   string `json:"roomId"`
}

func (TypingChanged) Name() string { return TypingName }

type UserStatus struct {
	UserID   string `json:"userId"`
	IsOnline bool   `json:"isOnline"`
	Username string `json:"username"`
}

func (UserStatus) Name() string { return UserStatusName }

type Failure struct {
	Message string `json:"message"`
}

func (Failure) Name() string { return ErrorName }

// MessageEdited and MessageDeleted never reach connections.
// They keep in-process consumers such as the search index in sync.
type MessageEdited struct {
	Message domain.Message
}

func (MessageEdited) Name() string { return MessageEditedName }

type MessageDeleted struct {
	MessageID string
	RoomID    string
}

func (MessageDeleted) Name() string { return MessageDeletedName }
