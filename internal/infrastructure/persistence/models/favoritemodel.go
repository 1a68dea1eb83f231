package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// FavoriteModel links a user to an exhibition or company.
type FavoriteModel struct {
	ID         uint   `gorm:"primarykey"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_favorite_user_entity"`
	EntityKind string `gorm:"not null;size:20;uniqueIndex:idx_favorite_user_entity;index:idx_favorite_entity"`
	EntityID   uint   `gorm:"not null;uniqueIndex:idx_favorite_user_entity;index:idx_favorite_entity"`
	CreatedAt  time.Time

	User *UserModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (FavoriteModel) TableName() string {
	return constants.TableFavorites
}
