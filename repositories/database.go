package repositories

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type userRecord struct {
	ID           string `gorm:"primarykey;size:36"`
	Email        string `gorm:"uniqueIndex;not null"`
	Username     string `gorm:"uniqueIndex;size:30;not null"`
	PasswordHash string `gorm:"not null"`
	Avatar       *string
	IsOnline     bool      `gorm:"not null;default:false"`
	LastSeen     time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userRecord) TableName() string { return "users" }

type roomRecord struct {
	ID          string  `gorm:"primarykey;size:36"`
	Name        string  `gorm:"size:100;not null"`
	Description *string `gorm:"size:500"`
	IsPrivate   bool    `gorm:"not null;default:false;index"`
	InviteCode  *string `gorm:"uniqueIndex"`
	CreatedBy   string  `gorm:"size:36;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (roomRecord) TableName() string { return "rooms" }

type memberRecord struct {
	UserID   string    `gorm:"primarykey;size:36"`
	RoomID   string    `gorm:"primarykey;size:36;index"`
	IsAdmin  bool      `gorm:"not null;default:false"`
	JoinedAt time.Time `gorm:"not null"`
}

func (memberRecord) TableName() string { return "room_members" }

// OpenSQLite opens the relational store and runs the migrations.
// SQLite allows a single writer so the pool is capped to one connection.
func OpenSQLite(path string, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(&userRecord{}, &roomRecord{}, &memberRecord{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func CloseSQLite(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
