package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// ExhibitionModel represents the database persistence model for exhibitions
type ExhibitionModel struct {
	ID                   uint      `gorm:"primarykey"`
	Slug                 string    `gorm:"uniqueIndex;not null;size:200"`
	OwnerID              uint      `gorm:"not null;index"`
	Title                string    `gorm:"not null;size:200"`
	Description          string    `gorm:"type:text"`
	ShortDescription     string    `gorm:"size:500"`
	CategoryID           *uint     `gorm:"index"`
	StartDate            time.Time `gorm:"not null;index"`
	EndDate              time.Time `gorm:"not null;index"`
	RegistrationDeadline *time.Time
	VenueName            string `gorm:"size:200"`
	Address              string `gorm:"size:500"`
	City                 string `gorm:"size:100;index"`
	Country              string `gorm:"size:100"`
	ContactEmail         string `gorm:"size:254"`
	ContactPhone         string `gorm:"size:20"`
	Website              string `gorm:"size:500"`
	IsFree               bool   `gorm:"not null;default:true"`
	MaxParticipants      *int
	LogoRef              string `gorm:"size:500"`
	BannerRef            string `gorm:"size:500"`
	IsFeatured           bool   `gorm:"not null;default:false;index"`
	LifecycleColumns     `gorm:"embedded"`
	StatsColumns         `gorm:"embedded"`
	RegistrationsCount   int64 `gorm:"not null;default:0"`
	Version              int   `gorm:"not null;default:1"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Owner     *UserModel     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Moderator *UserModel     `gorm:"foreignKey:ModeratedBy;constraint:OnDelete:SET NULL"`
	Category  *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM
func (ExhibitionModel) TableName() string {
	return constants.TableExhibitions
}

// RegistrationModel is one visitor registration for an exhibition.
type RegistrationModel struct {
	ID           uint `gorm:"primarykey"`
	ExhibitionID uint `gorm:"not null;uniqueIndex:idx_registration_exhibition_user"`
	UserID       uint `gorm:"not null;uniqueIndex:idx_registration_exhibition_user;index"`
	CreatedAt    time.Time

	Exhibition *ExhibitionModel `gorm:"constraint:OnDelete:CASCADE"`
	User       *UserModel       `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (RegistrationModel) TableName() string {
	return constants.TableExhibitionRegs
}
