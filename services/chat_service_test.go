package services

import (
	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/mocks"
	"chat-hub/repositories"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatMocks struct {
	coordinator *mocks.MockIRoomCoordinator
	messages    *mocks.MockIMessageRepository
	index       *mocks.MockISearchIndex
}

func newChatService(t *testing.T) (*ChatService, chatMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := chatMocks{
		coordinator: mocks.NewMockIRoomCoordinator(ctrl),
		messages:    mocks.NewMockIMessageRepository(ctrl),
		index:       mocks.NewMockISearchIndex(ctrl),
	}
	return NewChatService(logs.GetLoggerFromLevel(slog.LevelDebug), m.coordinator, m.messages, m.index), m
}

func TestChatService_GetMessages(t *testing.T) {
	ctx := context.Background()
	userID, roomID := uuid.NewString(), uuid.NewString()

	t.Run("members read a page with pagination", func(t *testing.T) {
		req := require.New(t)
		svc, m := newChatService(t)
		page := domain.NewPageRequest(0, 0, domain.DefaultMessagePageLimit)

		m.coordinator.EXPECT().RequireMembership(gomock.Any(), userID, roomID).Return(domain.RoomMember{}, nil)
		m.messages.EXPECT().GetMessages(roomID, page).Return(nil, int64(0), nil)

		result, err := svc.GetMessages(ctx, userID, roomID, page)

		req.NoError(err)
		req.NotNil(result.Messages)
		req.Equal(domain.Pagination{Page: 1, Limit: 50, Total: 0, Pages: 0}, result.Pagination)
	})

	t.Run("non members are rejected", func(t *testing.T) {
		req := require.New(t)
		svc, m := newChatService(t)

		m.coordinator.EXPECT().RequireMembership(gomock.Any(), userID, roomID).Return(domain.RoomMember{}, errors.ErrNotAMember)

		_, err := svc.GetMessages(ctx, userID, roomID, domain.NewPageRequest(1, 10, 50))
		req.ErrorIs(err, errors.ErrNotAMember)
	})
}

func TestChatService_PostMessage(t *testing.T) {
	ctx := context.Background()
	alice := domain.Identity{UserID: uuid.NewString(), Username: "alice"}
	roomID := uuid.NewString()

	t.Run("goes through the coordinator", func(t *testing.T) {
		req := require.New(t)
		svc, m := newChatService(t)
		m.coordinator.EXPECT().PostMessage(gomock.Any(), alice, roomID, "  hi  ").
			Return(domain.Message{ID: "m1", Content: "hi"}, nil)

		msg, err := svc.PostMessage(ctx, alice, auth.PostMessageRequest{RoomID: roomID, Content: "  hi  "})
		req.NoError(err)
		req.Equal("hi", msg.Content)
	})

	t.Run("blank content", func(t *testing.T) {
		req := require.New(t)
		svc, _ := newChatService(t)
		_, err := svc.PostMessage(ctx, alice, auth.PostMessageRequest{RoomID: roomID, Content: "   "})
		req.ErrorIs(err, errors.ErrEmptyContent)
	})

	t.Run("invalid room id", func(t *testing.T) {
		req := require.New(t)
		svc, _ := newChatService(t)
		_, err := svc.PostMessage(ctx, alice, auth.PostMessageRequest{RoomID: "nope", Content: "hi"})
		req.ErrorIs(err, errors.ErrValidationFailed)
	})
}

func TestChatService_Search(t *testing.T) {
	ctx := context.Background()
	userID, roomID := uuid.NewString(), uuid.NewString()

	t.Run("stale hits are skipped and limit is capped", func(t *testing.T) {
		req := require.New(t)
		svc, m := newChatService(t)
		kept := domain.Message{ID: "m1", RoomID: roomID, Content: "hello world"}

		m.coordinator.EXPECT().RequireMembership(gomock.Any(), userID, roomID).Return(domain.RoomMember{}, nil)
		m.index.EXPECT().Search(gomock.Any(), roomID, "hello", "en", MaxSearchLimit).
			Return([]repositories.SearchHit{{MessageID: "m1", Score: 2}, {MessageID: "gone", Score: 1}}, nil)
		m.messages.EXPECT().GetMessage("m1").Return(kept, nil)
		m.messages.EXPECT().GetMessage("gone").Return(domain.Message{}, fmt.Errorf("%w: Message not found", errors.ErrNotFound))

		messages, err := svc.Search(ctx, userID, roomID, SearchQuery{Text: " hello ", Lang: "en", Limit: 500})

		req.NoError(err)
		req.Equal([]domain.Message{kept}, messages)
	})

	t.Run("missing limit falls back to the default", func(t *testing.T) {
		req := require.New(t)
		svc, m := newChatService(t)

		m.coordinator.EXPECT().RequireMembership(gomock.Any(), userID, roomID).Return(domain.RoomMember{}, nil)
		m.index.EXPECT().Search(gomock.Any(), roomID, "hello", "", DefaultSearchLimit).Return(nil, nil)

		messages, err := svc.Search(ctx, userID, roomID, SearchQuery{Text: "hello", Limit: 0})

		req.NoError(err)
		req.Empty(messages)
	})

	t.Run("query is required", func(t *testing.T) {
		req := require.New(t)
		svc, _ := newChatService(t)
		_, err := svc.Search(ctx, userID, roomID, SearchQuery{})
		req.ErrorIs(err, errors.ErrValidationFailed)
	})

	t.Run("non members are rejected", func(t *testing.T) {
		req := require.New(t)
		svc, m := newChatService(t)
		m.coordinator.EXPECT().RequireMembership(gomock.Any(), userID, roomID).Return(domain.RoomMember{}, errors.ErrNotAMember)
		_, err := svc.Search(ctx, userID, roomID, SearchQuery{Text: "hello"})
		req.ErrorIs(err, errors.ErrNotAMember)
	})
}
