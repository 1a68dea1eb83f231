package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// CompanyModel represents the database persistence model for companies
type CompanyModel struct {
	ID                   uint   `gorm:"primarykey"`
	Slug                 string `gorm:"uniqueIndex;not null;size:200"`
	OwnerID              uint   `gorm:"not null;index"`
	Name                 string `gorm:"not null;size:200"`
	Description          string `gorm:"type:text"`
	ShortDescription     string `gorm:"size:500"`
	CategoryID           *uint  `gorm:"index"`
	City                 string `gorm:"size:100;index"`
	Country              string `gorm:"size:100"`
	Address              string `gorm:"size:500"`
	Website              string `gorm:"size:500"`
	Email                string `gorm:"size:254"`
	Phone                string `gorm:"size:20"`
	FoundedYear          *int
	EmployeesCount       string `gorm:"size:20"`
	LogoRef              string `gorm:"size:500"`
	IsVerified           bool   `gorm:"not null;default:false"`
	IsPremium            bool   `gorm:"not null;default:false"`
	LifecycleColumns     `gorm:"embedded"`
	StatsColumns         `gorm:"embedded"`
	ContactRequestsCount int64 `gorm:"not null;default:0"`
	Version              int   `gorm:"not null;default:1"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Owner     *UserModel     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Moderator *UserModel     `gorm:"foreignKey:ModeratedBy;constraint:OnDelete:SET NULL"`
	Category  *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM
func (CompanyModel) TableName() string {
	return constants.TableCompanies
}

// ProductModel belongs to a company; the slug is unique per company.
type ProductModel struct {
	ID             uint   `gorm:"primarykey"`
	CompanyID      uint   `gorm:"not null;uniqueIndex:idx_product_company_slug"`
	Name           string `gorm:"not null;size:200"`
	Slug           string `gorm:"not null;size:200;uniqueIndex:idx_product_company_slug"`
	Description    string `gorm:"type:text"`
	PriceFrom      *int64
	IsActive       bool  `gorm:"not null;default:true"`
	ViewsCount     int64 `gorm:"not null;default:0"`
	InquiriesCount int64 `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Company *CompanyModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}

// ContactRequestModel is a visitor message to a company or about a product.
type ContactRequestModel struct {
	ID        uint  `gorm:"primarykey"`
	CompanyID uint  `gorm:"not null;index"`
	ProductID *uint `gorm:"index"`
	UserID    *uint
	Name      string `gorm:"not null;size:100"`
	Email     string `gorm:"not null;size:254"`
	Phone     string `gorm:"size:20"`
	Message   string `gorm:"type:text"`
	CreatedAt time.Time

	Company *CompanyModel `gorm:"constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"constraint:OnDelete:SET NULL"`
	User    *UserModel    `gorm:"constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM
func (ContactRequestModel) TableName() string {
	return constants.TableContactRequests
}
