package repositories

import (
	"chat-hub/domain"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(t.TempDir()+"/chat.db", logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseSQLite(db) })
	return db
}

func openBluge(t *testing.T) *bluge.Writer {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return writer
}

func newUser(username string) domain.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.User{
		ID:           uuid.NewString(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "hash",
		LastSeen:     now,
		CreatedAt:    now,
	}
}

func newMessage(roomID, content string, at time.Time) domain.Message {
	senderID := uuid.NewString()
	return domain.Message{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		SenderID:  senderID,
		Sender:    domain.UserSummary{ID: senderID, Username: "alice"},
		Content:   content,
		CreatedAt: at,
		UpdatedAt: at,
	}
}
