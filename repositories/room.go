//go:generate go run go.uber.org/mock/mockgen -source=room.go -destination=../mocks/mock_room_repository.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	"chat-hub/errors"
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type IRoomRepository interface {
	CreateRoom(ctx context.Context, room domain.Room) (domain.Room, error)
	GetRoom(ctx context.Context, id string) (domain.Room, error)
	GetRoomByInviteCode(ctx context.Context, code string) (domain.Room, error)
	TouchRoom(ctx context.Context, id string, at time.Time) error
	ListRoomsForUser(ctx context.Context, userID string, page domain.PageRequest) ([]domain.Room, int64, error)
	ListPublicRooms(ctx context.Context, page domain.PageRequest) ([]domain.Room, int64, error)
	AddMember(ctx context.Context, member domain.RoomMember) error
	GetMembership(ctx context.Context, userID, roomID string) (domain.RoomMember, error)
	ListMembers(ctx context.Context, roomID string) ([]domain.Member, error)
	CountMembers(ctx context.Context, roomID string) (int64, error)
}

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// CreateRoom stores the room and its creator as admin member in one transaction.
func (r *RoomRepository) CreateRoom(ctx context.Context, room domain.Room) (domain.Room, error) {
	record := fromRoom(room)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create room: %w", err)
		}
		return tx.Create(&memberRecord{
			UserID:   room.CreatedBy,
			RoomID:   room.ID,
			IsAdmin:  true,
			JoinedAt: room.CreatedAt,
		}).Error
	})
	if err != nil {
		return domain.Room{}, err
	}
	return toRoom(record), nil
}

func (r *RoomRepository) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	var record roomRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return domain.Room{}, notFound(err, "Room not found")
	}
	return toRoom(record), nil
}

func (r *RoomRepository) GetRoomByInviteCode(ctx context.Context, code string) (domain.Room, error) {
	var record roomRecord
	if err := r.db.WithContext(ctx).First(&record, "invite_code = ?", code).Error; err != nil {
		return domain.Room{}, notFound(err, "Room not found")
	}
	return toRoom(record), nil
}

func (r *RoomRepository) TouchRoom(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&roomRecord{}).Where("id = ?", id).
		UpdateColumn("updated_at", at).Error
}

// ListRoomsForUser returns the rooms a user belongs to, most recently active first.
func (r *RoomRepository) ListRoomsForUser(ctx context.Context, userID string, page domain.PageRequest) ([]domain.Room, int64, error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&roomRecord{}).
			Joins("JOIN room_members ON room_members.room_id = rooms.id").
			Where("room_members.user_id = ?", userID)
	}
	return r.list(query, "rooms.updated_at desc", page)
}

// ListPublicRooms returns non private rooms, newest first.
func (r *RoomRepository) ListPublicRooms(ctx context.Context, page domain.PageRequest) ([]domain.Room, int64, error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&roomRecord{}).Where("rooms.is_private = ?", false)
	}
	return r.list(query, "rooms.created_at desc", page)
}

func (r *RoomRepository) list(query func() *gorm.DB, order string, page domain.PageRequest) ([]domain.Room, int64, error) {
	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	var records []roomRecord
	err := query().Select("rooms.*").Order(order).
		Offset(page.Offset()).Limit(page.Limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rooms: %w", err)
	}
	return lo.Map(records, func(rec roomRecord, _ int) domain.Room { return toRoom(rec) }), total, nil
}

// AddMember creates the membership row.
// A second membership for the same (user, room) is rejected with ErrAlreadyMember.
func (r *RoomRepository) AddMember(ctx context.Context, member domain.RoomMember) error {
	err := r.db.WithContext(ctx).Create(&memberRecord{
		UserID:   member.UserID,
		RoomID:   member.RoomID,
		IsAdmin:  member.IsAdmin,
		JoinedAt: member.JoinedAt,
	}).Error
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.ErrAlreadyMember
	}
	return err
}

func (r *RoomRepository) GetMembership(ctx context.Context, userID, roomID string) (domain.RoomMember, error) {
	var record memberRecord
	err := r.db.WithContext(ctx).First(&record, "user_id = ? AND room_id = ?", userID, roomID).Error
	if err != nil {
		return domain.RoomMember{}, notFound(err, "Membership not found")
	}
	return toMember(record), nil
}

type memberRow struct {
	UserID   string
	RoomID   string
	IsAdmin  bool
	JoinedAt time.Time
	Username string
	Avatar   *string
	IsOnline bool
	LastSeen time.Time
}

// ListMembers returns the room members joined with their public profile, oldest first.
func (r *RoomRepository) ListMembers(ctx context.Context, roomID string) ([]domain.Member, error) {
	var rows []memberRow
	err := r.db.WithContext(ctx).Table("room_members").
		Select("room_members.user_id, room_members.room_id, room_members.is_admin, room_members.joined_at, "+
			"users.username, users.avatar, users.is_online, users.last_seen").
		Joins("JOIN users ON users.id = room_members.user_id").
		Where("room_members.room_id = ?", roomID).
		Order("room_members.joined_at asc").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return lo.Map(rows, func(row memberRow, _ int) domain.Member {
		return domain.Member{
			RoomMember: domain.RoomMember{
				UserID:   row.UserID,
				RoomID:   row.RoomID,
				IsAdmin:  row.IsAdmin,
				JoinedAt: row.JoinedAt.UTC(),
			},
			User: domain.UserSummary{
				ID:       row.UserID,
				Username: row.Username,
				Avatar:   row.Avatar,
				IsOnline: lo.ToPtr(row.IsOnline),
				LastSeen: lo.ToPtr(row.LastSeen.UTC()),
			},
		}
	}), nil
}

func (r *RoomRepository) CountMembers(ctx context.Context, roomID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&memberRecord{}).Where("room_id = ?", roomID).Count(&total).Error
	return total, err
}

func fromRoom(room domain.Room) roomRecord {
	return roomRecord{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		IsPrivate:   room.IsPrivate,
		InviteCode:  room.InviteCode,
		CreatedBy:   room.CreatedBy,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

func toRoom(r roomRecord) domain.Room {
	return domain.Room{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsPrivate:   r.IsPrivate,
		InviteCode:  r.InviteCode,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func toMember(r memberRecord) domain.RoomMember {
	return domain.RoomMember{
		UserID:   r.UserID,
		RoomID:   r.RoomID,
		IsAdmin:  r.IsAdmin,
		JoinedAt: r.JoinedAt.UTC(),
	}
}
