package sink

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/moderation"
	"chat-hub/repositories"
	"context"
	"log/slog"
	"sync"
	"time"
)

// SearchSink keeps the full-text index in step with message activity.
// Changes are buffered and applied in batches, flushed either when
// maxBatch changes are pending or bufferTimeout after the first one.
type SearchSink struct {
	mu            sync.Mutex
	timer         *time.Timer
	index         repositories.ISearchIndex
	log           *slog.Logger
	pending       repositories.SearchBatch
	maxBatch      int
	bufferTimeout time.Duration
}

func NewSearchSink(index repositories.ISearchIndex, log *slog.Logger, maxBatch int, bufferTimeout time.Duration) *SearchSink {
	return &SearchSink{
		index:         index,
		log:           log,
		maxBatch:      maxBatch,
		bufferTimeout: bufferTimeout,
	}
}

func (s *SearchSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	switch evt := e.(type) {
	case event.MessageReceived:
		s.pending.Upserts = append(s.pending.Upserts, indexed(domain.Message{
			ID:        evt.ID,
			RoomID:    evt.RoomID,
			SenderID:  evt.Sender.ID,
			Content:   evt.Content,
			CreatedAt: evt.CreatedAt,
		}))
	case event.MessageEdited:
		s.pending.Upserts = append(s.pending.Upserts, indexed(evt.Message))
	case event.MessageDeleted:
		s.pending.Removals = append(s.pending.Removals, evt.MessageID)
	default:
		s.mu.Unlock()
		return nil
	}

	// First change of a new batch: make sure it does not wait forever on low traffic.
	if s.pending.Len() == 1 && s.timer == nil {
		s.timer = time.AfterFunc(s.bufferTimeout, func() {
			if err := s.Flush(); err != nil {
				s.log.Error("Batching: Timeout flush failed", "error", err)
			}
		})
	}
	isFull := s.pending.Len() >= s.maxBatch
	s.mu.Unlock()

	if isFull {
		return s.Flush()
	}
	return nil
}

// Flush applies pending changes. The buffer is swapped under the lock
// so the next batch fills while the index commits.
func (s *SearchSink) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.pending.Len() == 0 {
		s.mu.Unlock()
		return nil
	}
	batch := s.pending
	s.pending = repositories.SearchBatch{}
	s.mu.Unlock()

	if err := s.index.Apply(batch); err != nil {
		return err
	}
	s.log.Debug("Search batch applied", "upserts", len(batch.Upserts), "removals", len(batch.Removals))
	return nil
}

func indexed(m domain.Message) repositories.IndexedMessage {
	return repositories.IndexedMessage{Message: m, Lang: moderation.DetectLanguage(m.Content)}
}
