package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// DailyMetricModel is one (entity, metric, day) counter.
type DailyMetricModel struct {
	ID         uint      `gorm:"primarykey"`
	EntityKind string    `gorm:"not null;size:20;uniqueIndex:idx_daily_metric"`
	EntityID   uint      `gorm:"not null;uniqueIndex:idx_daily_metric"`
	Metric     string    `gorm:"not null;size:32;uniqueIndex:idx_daily_metric"`
	Date       time.Time `gorm:"not null;type:date;uniqueIndex:idx_daily_metric"`
	Value      int64     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (DailyMetricModel) TableName() string {
	return constants.TableEntityDailyMetrics
}
