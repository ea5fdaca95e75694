package services

import (
	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 50
)

type IChatService interface {
	GetMessages(ctx context.Context, userID, roomID string, page domain.PageRequest) (MessagePage, error)
	PostMessage(ctx context.Context, identity domain.Identity, req auth.PostMessageRequest) (domain.Message, error)
	EditMessage(ctx context.Context, identity domain.Identity, messageID string, req auth.EditMessageRequest) (domain.Message, error)
	DeleteMessage(ctx context.Context, identity domain.Identity, messageID string) error
	Search(ctx context.Context, userID, roomID string, query SearchQuery) ([]domain.Message, error)
}

type MessagePage struct {
	Messages   []domain.Message  `json:"messages"`
	Pagination domain.Pagination `json:"pagination"`
}

type SearchQuery struct {
	Text  string
	Lang  string
	Limit int
}

// ChatService exposes messages to the request/response surface.
// Writes go through the room coordinator so HTTP posts are broadcast like push ones.
type ChatService struct {
	log         *slog.Logger
	coordinator runtime.IRoomCoordinator
	messages    repositories.IMessageRepository
	index       repositories.ISearchIndex
}

func NewChatService(log *slog.Logger, coordinator runtime.IRoomCoordinator,
	messages repositories.IMessageRepository, index repositories.ISearchIndex) *ChatService {
	return &ChatService{log: log, coordinator: coordinator, messages: messages, index: index}
}

// GetMessages returns a page of history, newest page first and each page in chronological order.
func (s *ChatService) GetMessages(ctx context.Context, userID, roomID string, page domain.PageRequest) (MessagePage, error) {
	if _, err := s.coordinator.RequireMembership(ctx, userID, roomID); err != nil {
		return MessagePage{}, err
	}
	messages, total, err := s.messages.GetMessages(roomID, page)
	if err != nil {
		return MessagePage{}, err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return MessagePage{Messages: messages, Pagination: domain.NewPagination(page, total)}, nil
}

func (s *ChatService) PostMessage(ctx context.Context, identity domain.Identity, req auth.PostMessageRequest) (domain.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	if err := auth.Validate(req); err != nil {
		return domain.Message{}, err
	}
	return s.coordinator.PostMessage(ctx, identity, req.RoomID, req.Content)
}

func (s *ChatService) EditMessage(ctx context.Context, identity domain.Identity, messageID string, req auth.EditMessageRequest) (domain.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	if err := auth.Validate(req); err != nil {
		return domain.Message{}, err
	}
	return s.coordinator.EditMessage(ctx, identity, messageID, req.Content)
}

func (s *ChatService) DeleteMessage(ctx context.Context, identity domain.Identity, messageID string) error {
	return s.coordinator.DeleteMessage(ctx, identity, messageID)
}

// Search runs a full-text query over one room. Hits whose message is gone
// (the index lags behind deletes) are skipped.
func (s *ChatService) Search(ctx context.Context, userID, roomID string, query SearchQuery) ([]domain.Message, error) {
	text := strings.TrimSpace(query.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: q is required", errors.ErrValidationFailed)
	}
	if _, err := s.coordinator.RequireMembership(ctx, userID, roomID); err != nil {
		return nil, err
	}
	limit := query.Limit
	switch {
	case limit < 1:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}
	hits, err := s.index.Search(ctx, roomID, text, query.Lang, limit)
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0, len(hits))
	for _, hit := range hits {
		msg, err := s.messages.GetMessage(hit.MessageID)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				s.log.Debug("Stale search hit", "message_id", hit.MessageID)
				continue
			}
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
