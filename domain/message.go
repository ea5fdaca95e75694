package domain

import (
	"time"
	"unicode/utf8"
)

const MaxContentLength = 1000

// Message is a persisted chat message.
// The sender snapshot is captured when the message is accepted.
type Message struct {
	ID        string      `json:"id"`
	RoomID    string      `json:"roomId"`
	SenderID  string      `json:"senderId"`
	Sender    UserSummary `json:"sender"`
	Content   string      `json:"content"`
	IsEdited  bool        `json:"isEdited"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func ContentTooLong(content string) bool {
	return utf8.RuneCountInString(content) > MaxContentLength
}
