package repositories

import (
	"chat-hub/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTypingRepository_Last_Write_Wins(t *testing.T) {
	req := require.New(t)
	repo := NewTypingRepository(openBadger(t), time.Minute)

	_, found, err := repo.GetTyping("alice", "room")
	req.NoError(err)
	req.False(found)

	at := time.Now().UTC()
	req.NoError(repo.UpsertTyping(domain.TypingStatus{UserID: "alice", RoomID: "room", IsTyping: true, StartedAt: at}))
	req.NoError(repo.UpsertTyping(domain.TypingStatus{UserID: "bob", RoomID: "room", IsTyping: true, StartedAt: at}))

	typing, err := repo.ListTyping("room")
	req.NoError(err)
	req.Len(typing, 2)

	req.NoError(repo.UpsertTyping(domain.TypingStatus{UserID: "alice", RoomID: "room", IsTyping: false, StartedAt: at.Add(time.Second)}))

	status, found, err := repo.GetTyping("alice", "room")
	req.NoError(err)
	req.True(found)
	req.False(status.IsTyping)

	typing, err = repo.ListTyping("room")
	req.NoError(err)
	req.Len(typing, 1)
	req.Equal("bob", typing[0].UserID)
}
