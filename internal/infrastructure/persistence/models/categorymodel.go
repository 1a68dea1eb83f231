package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// CategoryModel is an industry shared by exhibitions and companies.
type CategoryModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:100"`
	Slug        string `gorm:"uniqueIndex;not null;size:100"`
	Description string `gorm:"type:text"`
	IconRef     string `gorm:"size:500"`
	IsActive    bool   `gorm:"not null;index"`
	SortOrder   int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return constants.TableCategories
}
