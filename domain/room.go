package domain

import "time"

type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsPrivate   bool      `json:"isPrivate"`
	InviteCode  *string   `json:"inviteCode"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoomMember is the authorization gate of every room action.
// There is exactly one membership per (UserID, RoomID).
type RoomMember struct {
	UserID   string    `json:"userId"`
	RoomID   string    `json:"roomId"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Member is a membership joined with the member's public profile.
type Member struct {
	RoomMember
	User UserSummary `json:"user"`
}

type RoomCounts struct {
	Messages int64 `json:"messages"`
	Members  int64 `json:"members"`
}

// RoomView is a room enriched for listing and detail responses.
type RoomView struct {
	Room
	Creator UserSummary `json:"creator"`
	Members []Member    `json:"members,omitempty"`
	Count   RoomCounts  `json:"_count"`
}
