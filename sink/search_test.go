package sink_test

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/mocks"
	"chat-hub/repositories"
	"chat-hub/sink"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearchSink_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIndex := mocks.NewMockISearchIndex(ctrl)
	// Silencing logs for clean test output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	roomID := uuid.NewString()

	t.Run("Flush triggered by size limit", func(t *testing.T) {
		req := require.New(t)
		s := sink.NewSearchSink(mockIndex, logger, 3, 10*time.Second)

		mockIndex.EXPECT().
			Apply(gomock.Any()).
			DoAndReturn(func(batch repositories.SearchBatch) error {
				req.Len(batch.Upserts, 2)
				req.Equal([]string{"m1"}, batch.Removals)
				req.Equal("hello world", batch.Upserts[0].Message.Content)
				return nil
			}).Times(1)

		req.NoError(s.Consume(ctx, event.MessageReceived{ID: "m1", RoomID: roomID, Content: "hello world"}))
		req.NoError(s.Consume(ctx, event.MessageEdited{Message: domain.Message{ID: "m2", RoomID: roomID, Content: "edited"}}))
		req.NoError(s.Consume(ctx, event.MessageDeleted{MessageID: "m1", RoomID: roomID}))
	})

	t.Run("Push events are ignored", func(t *testing.T) {
		req := require.New(t)
		s := sink.NewSearchSink(mockIndex, logger, 1, 10*time.Second)
		req.NoError(s.Consume(ctx, event.TypingChanged{RoomID: roomID}))
		req.NoError(s.Flush())
	})

	t.Run("Flush triggered by timeout (asynchronous)", func(t *testing.T) {
		req := require.New(t)
		timeout := 50 * time.Millisecond
		s := sink.NewSearchSink(mockIndex, logger, 100, timeout)

		applied := make(chan struct{})
		mockIndex.EXPECT().
			Apply(gomock.Any()).
			DoAndReturn(func(batch repositories.SearchBatch) error {
				req.Equal(1, batch.Len())
				close(applied)
				return nil
			}).Times(1)

		req.NoError(s.Consume(ctx, event.MessageDeleted{MessageID: "m3", RoomID: roomID}))

		select {
		case <-applied:
		case <-time.After(time.Second):
			req.Fail("Timer flush did not happen")
		}
	})

	t.Run("Concurrent access safety", func(t *testing.T) {
		req := require.New(t)
		numWorkers := 10
		eventsPerWorker := 10
		totalEvents := numWorkers * eventsPerWorker
		s := sink.NewSearchSink(mockIndex, logger, totalEvents, 10*time.Second)

		mockIndex.EXPECT().
			Apply(gomock.Any()).
			DoAndReturn(func(batch repositories.SearchBatch) error {
				req.Equal(totalEvents, batch.Len())
				return nil
			}).Times(1)

		var wg sync.WaitGroup
		for range numWorkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range eventsPerWorker {
					_ = s.Consume(ctx, event.MessageDeleted{MessageID: uuid.NewString(), RoomID: roomID})
				}
			}()
		}
		wg.Wait()
	})
}
