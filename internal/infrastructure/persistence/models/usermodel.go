package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                  uint    `gorm:"primarykey"`
	Email               string  `gorm:"uniqueIndex;not null;size:254"`
	PasswordHash        *string `gorm:"size:255"`
	FirstName           string  `gorm:"size:100"`
	LastName            string  `gorm:"size:100"`
	Phone               string  `gorm:"size:20"`
	Role                string  `gorm:"not null;default:visitor;size:20;index"`
	IsSuperuser         bool    `gorm:"not null;default:false"`
	IsActive            bool    `gorm:"not null;default:true"`
	EmailVerified       bool    `gorm:"not null;default:false;index:idx_email_verified"`
	EmailVerifiedAt     *time.Time
	FailedLoginAttempts int `gorm:"not null;default:0"`
	LockedUntil         *time.Time
	LastLoginAt         *time.Time
	PasswordChangedAt   *time.Time
	Version             int `gorm:"not null;default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
