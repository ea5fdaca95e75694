//go:generate go run go.uber.org/mock/mockgen -source=typing.go -destination=../mocks/mock_typing_repository.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type ITypingRepository interface {
	UpsertTyping(status domain.TypingStatus) error
	GetTyping(userID, roomID string) (domain.TypingStatus, bool, error)
	ListTyping(roomID string) ([]domain.TypingStatus, error)
}

// TypingRepository keeps the latest typing state per (user, room).
// Entries carry a TTL so a client that vanishes mid-typing does not stay typing forever.
type TypingRepository struct {
	db  *badger.DB
	ttl time.Duration
}

func NewTypingRepository(db *badger.DB, ttl time.Duration) *TypingRepository {
	return &TypingRepository{db: db, ttl: ttl}
}

type typingRecord struct {
	UserID    string `cbor:"1,keyasint"`
	RoomID    string `cbor:"2,keyasint"`
	IsTyping  bool   `cbor:"3,keyasint"`
	StartedAt int64  `cbor:"4,keyasint"`
}

func typingKey(roomID, userID string) []byte {
	return []byte(fmt.Sprintf("typing:%s:%s", roomID, userID))
}

// UpsertTyping is last-write-wins: no read, no history.
func (r *TypingRepository) UpsertTyping(status domain.TypingStatus) error {
	bytes, err := marshal(typingRecord{
		UserID:    status.UserID,
		RoomID:    status.RoomID,
		IsTyping:  status.IsTyping,
		StartedAt: status.StartedAt.UnixNano(),
	})
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(typingKey(status.RoomID, status.UserID), bytes)
		if r.ttl > 0 {
			entry = entry.WithTTL(r.ttl)
		}
		return txn.SetEntry(entry)
	})
}

func (r *TypingRepository) GetTyping(userID, roomID string) (domain.TypingStatus, bool, error) {
	var status domain.TypingStatus
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(typingKey(roomID, userID))
		if err != nil {
			return err
		}
		var record typingRecord
		if err = item.Value(func(val []byte) error { return unmarshal(val, &record) }); err != nil {
			return err
		}
		status = toTyping(record)
		return nil
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.TypingStatus{}, false, nil
	}
	if err != nil {
		return domain.TypingStatus{}, false, err
	}
	return status, true, nil
}

// ListTyping returns the users currently typing in a room.
func (r *TypingRepository) ListTyping(roomID string) ([]domain.TypingStatus, error) {
	var statuses []domain.TypingStatus
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("typing:%s:", roomID))
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			var record typingRecord
			if err := it.Item().Value(func(val []byte) error { return unmarshal(val, &record) }); err != nil {
				return err
			}
			if record.IsTyping {
				statuses = append(statuses, toTyping(record))
			}
		}
		return nil
	})
	return statuses, err
}

func toTyping(r typingRecord) domain.TypingStatus {
	return domain.TypingStatus{
		UserID:    r.UserID,
		RoomID:    r.RoomID,
		IsTyping:  r.IsTyping,
		StartedAt: time.Unix(0, r.StartedAt).UTC(),
	}
}
