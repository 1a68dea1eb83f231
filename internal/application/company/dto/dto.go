package dto

import (
	"time"

	"github.com/expohub/expohub/internal/domain/company"
)

type CompanyDTO struct {
	ID                   uint         `json:"id"`
	Slug                 string       `json:"slug"`
	OwnerID              uint         `json:"owner_id"`
	Name                 string       `json:"name"`
	Description          string       `json:"description"`
	ShortDescription     string       `json:"short_description"`
	CategoryID           *uint        `json:"category_id,omitempty"`
	City                 string       `json:"city"`
	Country              string       `json:"country"`
	Address              string       `json:"address,omitempty"`
	Website              string       `json:"website,omitempty"`
	Email                string       `json:"email,omitempty"`
	Phone                string       `json:"phone,omitempty"`
	FoundedYear          *int         `json:"founded_year,omitempty"`
	EmployeesCount       string       `json:"employees_count,omitempty"`
	LogoURL              string       `json:"logo_url,omitempty"`
	Status               string       `json:"status"`
	IsVerified           bool         `json:"is_verified"`
	IsPremium            bool         `json:"is_premium"`
	PublishedAt          *time.Time   `json:"published_at,omitempty"`
	RejectionReason      string       `json:"rejection_reason,omitempty"`
	ModeratorNotes       string       `json:"moderator_notes,omitempty"`
	ViewsCount           int64        `json:"views_count"`
	FavoritesCount       int64        `json:"favorites_count"`
	Rating               string       `json:"rating"`
	ReviewsCount         int64        `json:"reviews_count"`
	ContactRequestsCount int64        `json:"contact_requests_count,omitempty"`
	Products             []ProductDTO `json:"products,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

type ProductDTO struct {
	ID             uint      `json:"id"`
	CompanyID      uint      `json:"company_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	PriceFrom      *int64    `json:"price_from,omitempty"`
	ViewsCount     int64     `json:"views_count"`
	InquiriesCount int64     `json:"inquiries_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToCompanyDTO renders c. Moderation fields and contact counts are included
// only for the owner and moderators.
func ToCompanyDTO(c *company.Company, privileged bool, resolve func(string) string) *CompanyDTO {
	if c == nil {
		return nil
	}
	if resolve == nil {
		resolve = func(ref string) string { return ref }
	}
	p := c.Profile()
	state := c.Lifecycle()
	stats := c.Stats()

	out := &CompanyDTO{
		ID:               c.ID(),
		Slug:             c.Slug(),
		OwnerID:          c.OwnerID(),
		Name:             p.Name,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		CategoryID:       p.CategoryID,
		City:             p.City,
		Country:          p.Country,
		Address:          p.Address,
		Website:          p.Website,
		Email:            p.Email,
		Phone:            p.Phone,
		FoundedYear:      p.FoundedYear,
		EmployeesCount:   p.EmployeesCount,
		LogoURL:          resolve(c.LogoRef()),
		Status:           state.Status().String(),
		IsVerified:       c.IsVerified(),
		IsPremium:        c.IsPremium(),
		PublishedAt:      state.PublishedAt(),
		ViewsCount:       stats.Views,
		FavoritesCount:   stats.Favorites,
		Rating:           stats.Rating.String(),
		ReviewsCount:     stats.ReviewsCount,
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
	if privileged {
		out.RejectionReason = state.RejectionReason()
		out.ModeratorNotes = state.ModeratorNotes()
		out.ContactRequestsCount = c.ContactRequestsCount()
	}
	return out
}

func ToProductDTO(p *company.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID(),
		CompanyID:      p.CompanyID(),
		Name:           p.Name(),
		Slug:           p.Slug(),
		Description:    p.Description(),
		PriceFrom:      p.PriceFrom(),
		ViewsCount:     p.ViewsCount(),
		InquiriesCount: p.InquiriesCount(),
		CreatedAt:      p.CreatedAt(),
	}
}

// ListResult is one page of companies.
type ListResult struct {
	Items    []*CompanyDTO `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
