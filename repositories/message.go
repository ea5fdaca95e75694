//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	"chat-hub/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const maxTxnRetries = 3

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessage(id string) (domain.Message, error)
	EditMessage(id, content string, at time.Time) (domain.Message, error)
	DeleteMessage(id string) (domain.Message, error)
	GetMessages(roomID string, page domain.PageRequest) ([]domain.Message, int64, error)
	CountMessages(roomID string) (int64, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

type messageRecord struct {
	ID             string  `cbor:"1,keyasint"`
	RoomID         string  `cbor:"2,keyasint"`
	SenderID       string  `cbor:"3,keyasint"`
	SenderUsername string  `cbor:"4,keyasint"`
	SenderAvatar   *string `cbor:"5,keyasint,omitempty"`
	Content        string  `cbor:"6,keyasint"`
	IsEdited       bool    `cbor:"7,keyasint"`
	CreatedAt      int64   `cbor:"8,keyasint"`
	UpdatedAt      int64   `cbor:"9,keyasint"`
}

func roomPrefix(roomID string) []byte {
	return []byte(fmt.Sprintf("msg:%s:", roomID))
}

// messageKey is formatted as "msg:{room_id}:{timestamp_padded}:{id}" to:
//  1. Keep chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss with the id as a tie breaker when two messages share a nanosecond.
func messageKey(m domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", m.RoomID, m.CreatedAt.UnixNano(), m.ID))
}

// indexKey points from a message id to its primary key so edit and delete
// do not need the room.
func indexKey(id string) []byte {
	return []byte("msgid:" + id)
}

// StoreMessage persists a message and its id index in the same transaction.
func (m *MessageRepository) StoreMessage(message domain.Message) error {
	bytes, err := marshal(fromMessage(message))
	if err != nil {
		return err
	}
	key := messageKey(message)
	return m.update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(indexKey(message.ID), key)
	})
}

func (m *MessageRepository) GetMessage(id string) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		_, msg, err := m.load(txn, id)
		message = msg
		return err
	})
	return message, err
}

// EditMessage replaces the content and marks the message as edited.
// Concurrent edits are last-writer-wins.
func (m *MessageRepository) EditMessage(id, content string, at time.Time) (domain.Message, error) {
	var edited domain.Message
	err := m.update(func(txn *badger.Txn) error {
		key, msg, err := m.load(txn, id)
		if err != nil {
			return err
		}
		msg.Content = content
		msg.IsEdited = true
		msg.UpdatedAt = at
		bytes, err := marshal(fromMessage(msg))
		if err != nil {
			return err
		}
		edited = msg
		return txn.Set(key, bytes)
	})
	return edited, err
}

// DeleteMessage removes the message and returns what was deleted.
func (m *MessageRepository) DeleteMessage(id string) (domain.Message, error) {
	var deleted domain.Message
	err := m.update(func(txn *badger.Txn) error {
		key, msg, err := m.load(txn, id)
		if err != nil {
			return err
		}
		if err = txn.Delete(key); err != nil {
			return err
		}
		deleted = msg
		return txn.Delete(indexKey(id))
	})
	return deleted, err
}

// GetMessages pages through a room from the newest message backwards.
// Each page is returned in chronological order.
func (m *MessageRepository) GetMessages(roomID string, page domain.PageRequest) ([]domain.Message, int64, error) {
	var messages []domain.Message
	var total int64
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := roomPrefix(roomID)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek after the largest possible key of the room, then walk backwards
		seekKey := append(slices.Clone(prefix), 0xFF)
		skip := page.Offset()
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			total++
			if total <= int64(skip) || len(messages) >= page.Limit {
				continue
			}
			var record messageRecord
			err := it.Item().Value(func(val []byte) error {
				return unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			messages = append(messages, toMessage(record))
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	slices.Reverse(messages)
	return messages, total, nil
}

func (m *MessageRepository) CountMessages(roomID string) (int64, error) {
	var total int64
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := roomPrefix(roomID)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			total++
		}
		return nil
	})
	return total, err
}

func (m *MessageRepository) load(txn *badger.Txn, id string) ([]byte, domain.Message, error) {
	item, err := txn.Get(indexKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.Message{}, fmt.Errorf("%w: Message not found", errors.ErrNotFound)
	}
	if err != nil {
		return nil, domain.Message{}, err
	}
	key, err := item.ValueCopy(nil)
	if err != nil {
		return nil, domain.Message{}, err
	}
	item, err = txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.Message{}, fmt.Errorf("%w: Message not found", errors.ErrNotFound)
	}
	if err != nil {
		return nil, domain.Message{}, err
	}
	var record messageRecord
	if err = item.Value(func(val []byte) error { return unmarshal(val, &record) }); err != nil {
		return nil, domain.Message{}, err
	}
	return key, toMessage(record), nil
}

// update retries on transaction conflicts, which happen when two writers
// touch the same message.
func (m *MessageRepository) update(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err = m.db.Update(fn)
		if !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
		m.log.Debug("badger transaction conflict, retrying", "attempt", attempt+1)
	}
	return err
}

func fromMessage(m domain.Message) messageRecord {
	return messageRecord{
		ID:             m.ID,
		RoomID:         m.RoomID,
		SenderID:       m.SenderID,
		SenderUsername: m.Sender.Username,
		SenderAvatar:   m.Sender.Avatar,
		Content:        m.Content,
		IsEdited:       m.IsEdited,
		CreatedAt:      m.CreatedAt.UnixNano(),
		UpdatedAt:      m.UpdatedAt.UnixNano(),
	}
}

func toMessage(r messageRecord) domain.Message {
	return domain.Message{
		ID:       r.ID,
		RoomID:   r.RoomID,
		SenderID: r.SenderID,
		Sender: domain.UserSummary{
			ID:       r.SenderID,
			Username: r.SenderUsername,
			Avatar:   r.SenderAvatar,
		},
		Content:   r.Content,
		IsEdited:  r.IsEdited,
		CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
		UpdatedAt: time.Unix(0, r.UpdatedAt).UTC(),
	}
}

// DecodeMessage reads a raw message value, for inspection tools.
func DecodeMessage(val []byte) (domain.Message, error) {
	var record messageRecord
	if err := unmarshal(val, &record); err != nil {
		return domain.Message{}, err
	}
	return toMessage(record), nil
}
