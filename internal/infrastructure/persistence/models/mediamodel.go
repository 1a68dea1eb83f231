package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// ExhibitionImageModel is one extra picture of an exhibition.
type ExhibitionImageModel struct {
	ID           uint   `gorm:"primarykey"`
	ExhibitionID uint   `gorm:"not null;index:idx_exhibition_image_order"`
	ImageRef     string `gorm:"not null;size:500"`
	Caption      string `gorm:"size:200"`
	SortOrder    int    `gorm:"not null;default:0;index:idx_exhibition_image_order"`
	CreatedAt    time.Time

	Exhibition *ExhibitionModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ExhibitionImageModel) TableName() string {
	return constants.TableExhibitionImages
}

// ExhibitionDocumentModel is a downloadable file attached to an exhibition.
type ExhibitionDocumentModel struct {
	ID            uint   `gorm:"primarykey"`
	ExhibitionID  uint   `gorm:"not null;index"`
	Title         string `gorm:"not null;size:200"`
	FileRef       string `gorm:"not null;size:500"`
	FileSize      int64  `gorm:"not null;default:0"`
	DownloadCount int64  `gorm:"not null;default:0"`
	CreatedAt     time.Time

	Exhibition *ExhibitionModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ExhibitionDocumentModel) TableName() string {
	return constants.TableExhibitionDocs
}

// CompanyGalleryModel is one picture in a company gallery.
type CompanyGalleryModel struct {
	ID          uint   `gorm:"primarykey"`
	CompanyID   uint   `gorm:"not null;index:idx_company_gallery_order"`
	ImageRef    string `gorm:"not null;size:500"`
	Title       string `gorm:"size:200"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"not null;default:0;index:idx_company_gallery_order"`
	CreatedAt   time.Time

	Company *CompanyModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (CompanyGalleryModel) TableName() string {
	return constants.TableCompanyGallery
}
