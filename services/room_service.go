package services

import (
	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"
)

const (
	inviteCodeLength   = 8
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type IRoomService interface {
	CreateRoom(ctx context.Context, identity domain.Identity, req auth.CreateRoomRequest) (domain.RoomView, error)
	MyRooms(ctx context.Context, userID string, page domain.PageRequest) (RoomPage, error)
	PublicRooms(ctx context.Context, page domain.PageRequest) (RoomPage, error)
	JoinRoom(ctx context.Context, identity domain.Identity, req auth.JoinRoomRequest) (string, error)
	RoomDetails(ctx context.Context, userID, roomID string) (domain.RoomView, error)
}

type RoomPage struct {
	Rooms      []domain.RoomView `json:"rooms"`
	Pagination domain.Pagination `json:"pagination"`
}

type RoomService struct {
	log        *slog.Logger
	rooms      repositories.IRoomRepository
	users      repositories.IUserRepository
	messages   repositories.IMessageRepository
	inviteCode func() string
	now        func() time.Time
}

func NewRoomService(log *slog.Logger, rooms repositories.IRoomRepository,
	users repositories.IUserRepository, messages repositories.IMessageRepository) (*RoomService, error) {
	generator, err := nanoid.CustomASCII(inviteCodeAlphabet, inviteCodeLength)
	if err != nil {
		return nil, fmt.Errorf("invite code generator: %w", err)
	}
	return &RoomService{
		log:        log,
		rooms:      rooms,
		users:      users,
		messages:   messages,
		inviteCode: generator,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

// CreateRoom stores the room with its creator as admin. Private rooms get an invite code.
func (s *RoomService) CreateRoom(ctx context.Context, identity domain.Identity, req auth.CreateRoomRequest) (domain.RoomView, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := auth.Validate(req); err != nil {
		return domain.RoomView{}, err
	}
	now := s.now()
	room := domain.Room{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		CreatedBy:   identity.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsPrivate {
		code := s.inviteCode()
		room.InviteCode = &code
	}
	created, err := s.rooms.CreateRoom(ctx, room)
	if err != nil {
		return domain.RoomView{}, err
	}
	s.log.Info("Room created", "room_id", created.ID, "user_id", identity.UserID, "private", created.IsPrivate)
	return s.view(ctx, created, true)
}

func (s *RoomService) MyRooms(ctx context.Context, userID string, page domain.PageRequest) (RoomPage, error) {
	rooms, total, err := s.rooms.ListRoomsForUser(ctx, userID, page)
	if err != nil {
		return RoomPage{}, err
	}
	return s.page(ctx, rooms, total, page, true)
}

func (s *RoomService) PublicRooms(ctx context.Context, page domain.PageRequest) (RoomPage, error) {
	rooms, total, err := s.rooms.ListPublicRooms(ctx, page)
	if err != nil {
		return RoomPage{}, err
	}
	return s.page(ctx, rooms, total, page, false)
}

// JoinRoom adds the caller to a room found by id, else by invite code.
// A private room can only be joined with its invite code, and an invite code
// sent along a room id must be the code of that room.
func (s *RoomService) JoinRoom(ctx context.Context, identity domain.Identity, req auth.JoinRoomRequest) (string, error) {
	if err := auth.Validate(req); err != nil {
		return "", err
	}

	var room domain.Room
	var err error
	if req.RoomID != "" {
		room, err = s.rooms.GetRoom(ctx, req.RoomID)
	} else {
		room, err = s.rooms.GetRoomByInviteCode(ctx, req.InviteCode)
	}
	if err != nil {
		return "", err
	}
	if req.RoomID != "" && req.InviteCode != "" && (room.InviteCode == nil || *room.InviteCode != req.InviteCode) {
		return "", fmt.Errorf("%w: inviteCode does not belong to roomId", errors.ErrValidationFailed)
	}

	_, err = s.rooms.GetMembership(ctx, identity.UserID, room.ID)
	switch {
	case err == nil:
		return "", errors.ErrAlreadyMember
	case !errors.Is(err, errors.ErrNotFound):
		return "", err
	}

	if room.IsPrivate && req.InviteCode == "" {
		return "", errors.ErrInviteCodeRequired
	}

	err = s.rooms.AddMember(ctx, domain.RoomMember{
		UserID:   identity.UserID,
		RoomID:   room.ID,
		JoinedAt: s.now(),
	})
	if err != nil {
		return "", err
	}
	s.log.Info("Room joined", "room_id", room.ID, "user_id", identity.UserID)
	return room.ID, nil
}

// RoomDetails is restricted to members.
func (s *RoomService) RoomDetails(ctx context.Context, userID, roomID string) (domain.RoomView, error) {
	room, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return domain.RoomView{}, err
	}
	if _, err := s.rooms.GetMembership(ctx, userID, roomID); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return domain.RoomView{}, errors.ErrNotAMember
		}
		return domain.RoomView{}, err
	}
	return s.view(ctx, room, true)
}

func (s *RoomService) page(ctx context.Context, rooms []domain.Room, total int64, req domain.PageRequest, withMembers bool) (RoomPage, error) {
	views := make([]domain.RoomView, 0, len(rooms))
	for _, room := range rooms {
		view, err := s.view(ctx, room, withMembers)
		if err != nil {
			return RoomPage{}, err
		}
		views = append(views, view)
	}
	return RoomPage{Rooms: views, Pagination: domain.NewPagination(req, total)}, nil
}

func (s *RoomService) view(ctx context.Context, room domain.Room, withMembers bool) (domain.RoomView, error) {
	view := domain.RoomView{Room: room}

	creator, err := s.users.GetUserByID(ctx, room.CreatedBy)
	switch {
	case err == nil:
		view.Creator = creator.Summary()
	case errors.Is(err, errors.ErrNotFound):
		view.Creator = domain.UserSummary{ID: room.CreatedBy}
	default:
		return domain.RoomView{}, err
	}

	if view.Count.Messages, err = s.messages.CountMessages(room.ID); err != nil {
		return domain.RoomView{}, err
	}
	if withMembers {
		if view.Members, err = s.rooms.ListMembers(ctx, room.ID); err != nil {
			return domain.RoomView{}, err
		}
		view.Count.Members = int64(len(view.Members))
		return view, nil
	}
	if view.Count.Members, err = s.rooms.CountMembers(ctx, room.ID); err != nil {
		return domain.RoomView{}, err
	}
	return view, nil
}
