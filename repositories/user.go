//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	"chat-hub/errors"
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	SetPresence(ctx context.Context, userID string, online bool, at time.Time) error
	TouchLastSeen(ctx context.Context, userID string, at time.Time) error
	ResetPresence(ctx context.Context) (int64, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists a new account.
// Email is checked before username, mirroring the order reported to the client.
func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	record := fromUser(user)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing userRecord
		err := tx.Where("email = ? OR username = ?", user.Email, user.Username).First(&existing).Error
		switch {
		case err == nil && existing.Email == user.Email:
			return errors.ErrEmailTaken
		case err == nil:
			return errors.ErrUsernameTaken
		case !stderrors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(&record).Error
	})
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.User{}, errors.ErrEmailTaken
	}
	if err != nil {
		return domain.User{}, err
	}
	return toUser(record), nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var record userRecord
	if err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error; err != nil {
		return domain.User{}, notFound(err, "User not found")
	}
	return toUser(record), nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var record userRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return domain.User{}, notFound(err, "User not found")
	}
	return toUser(record), nil
}

func (r *UserRepository) SetPresence(ctx context.Context, userID string, online bool, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", userID).
		Updates(map[string]any{"is_online": online, "last_seen": at})
	if result.Error != nil {
		return fmt.Errorf("failed to update presence: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: User not found", errors.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) TouchLastSeen(ctx context.Context, userID string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", userID).
		Update("last_seen", at).Error
}

// ResetPresence marks every user offline.
// Used at boot since no connection survives a restart.
func (r *UserRepository) ResetPresence(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Model(&userRecord{}).Where("is_online = ?", true).
		Update("is_online", false)
	return result.RowsAffected, result.Error
}

func notFound(err error, detail string) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", errors.ErrNotFound, detail)
	}
	return err
}

func fromUser(u domain.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Avatar:       u.Avatar,
		IsOnline:     u.IsOnline,
		LastSeen:     u.LastSeen,
		CreatedAt:    u.CreatedAt,
	}
}

func toUser(r userRecord) domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Avatar:       r.Avatar,
		IsOnline:     r.IsOnline,
		LastSeen:     r.LastSeen.UTC(),
		CreatedAt:    r.CreatedAt.UTC(),
	}
}
