package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// SiteSettingModel is the GORM model for site_settings table
type SiteSettingModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	SettingKey string    `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex"`
	Value      string    `gorm:"column:value;type:text"`
	UpdatedBy  uint      `gorm:"column:updated_by"`
	Version    int       `gorm:"column:version;default:1"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (SiteSettingModel) TableName() string {
	return constants.TableSiteSettings
}
