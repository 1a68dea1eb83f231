package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/expohub/expohub/internal/shared/constants"
)

// ActivityLogModel is an append-only audit row.
type ActivityLogModel struct {
	ID          uint   `gorm:"primarykey"`
	UserID      *uint  `gorm:"index"`
	Type        string `gorm:"not null;size:32;index"`
	Description string `gorm:"size:500"`
	Metadata    datatypes.JSON
	IPAddress   string    `gorm:"size:45"`
	UserAgent   string    `gorm:"size:500"`
	CreatedAt   time.Time `gorm:"index"`

	User *UserModel `gorm:"constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM
func (ActivityLogModel) TableName() string {
	return constants.TableActivityLogs
}
