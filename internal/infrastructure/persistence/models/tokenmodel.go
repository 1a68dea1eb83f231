package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// TokenModel stores the SHA-256 of a single-use user token.
type TokenModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index:idx_user_tokens_user_purpose"`
	Purpose   string    `gorm:"not null;size:32;index:idx_user_tokens_user_purpose"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64"`
	ExpiresAt time.Time `gorm:"not null;index"`
	IsUsed    bool      `gorm:"not null;default:false"`
	UsedAt    *time.Time
	IPAddress string `gorm:"size:45"`
	CreatedAt time.Time

	User *UserModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (TokenModel) TableName() string {
	return constants.TableUserTokens
}
