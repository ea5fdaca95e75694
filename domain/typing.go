package domain

import "time"

// TypingStatus is ephemeral: the latest write wins and no history is kept.
type TypingStatus struct {
	UserID    string    `json:"userId"`
	RoomID    string    `json:"roomId"`
	IsTyping  bool      `json:"isTyping"`
	StartedAt time.Time `json:"startedAt"`
}
