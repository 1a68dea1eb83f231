package dto

import (
	"time"

	"github.com/expohub/expohub/internal/domain/exhibition"
)

type ExhibitionDTO struct {
	ID                   uint       `json:"id"`
	Slug                 string     `json:"slug"`
	OwnerID              uint       `json:"owner_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	ShortDescription     string     `json:"short_description"`
	CategoryID           *uint      `json:"category_id,omitempty"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	VenueName            string     `json:"venue_name"`
	Address              string     `json:"address"`
	City                 string     `json:"city"`
	Country              string     `json:"country"`
	ContactEmail         string     `json:"contact_email,omitempty"`
	ContactPhone         string     `json:"contact_phone,omitempty"`
	Website              string     `json:"website,omitempty"`
	IsFree               bool       `json:"is_free"`
	MaxParticipants      *int       `json:"max_participants,omitempty"`
	LogoURL              string     `json:"logo_url,omitempty"`
	BannerURL            string     `json:"banner_url,omitempty"`
	IsFeatured           bool       `json:"is_featured"`
	Status               string     `json:"status"`
	Type                 string     `json:"type"`
	PublishedAt          *time.Time `json:"published_at,omitempty"`
	RejectionReason      string     `json:"rejection_reason,omitempty"`
	ModeratorNotes       string     `json:"moderator_notes,omitempty"`
	ViewsCount           int64      `json:"views_count"`
	FavoritesCount       int64      `json:"favorites_count"`
	Rating               string     `json:"rating"`
	ReviewsCount         int64      `json:"reviews_count"`
	RegistrationsCount   int64      `json:"registrations_count"`
	RegistrationOpen     bool       `json:"registration_open"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ToExhibitionDTO renders e as readers see it at now: the status is the
// effective one. Moderation notes are shown only when withModeration is set.
func ToExhibitionDTO(e *exhibition.Exhibition, now time.Time, withModeration bool, resolve func(string) string) *ExhibitionDTO {
	if e == nil {
		return nil
	}
	if resolve == nil {
		resolve = func(ref string) string { return ref }
	}
	d := e.Details()
	state := e.Lifecycle()
	stats := e.Stats()

	out := &ExhibitionDTO{
		ID:                   e.ID(),
		Slug:                 e.Slug(),
		OwnerID:              e.OwnerID(),
		Title:                d.Title,
		Description:          d.Description,
		ShortDescription:     d.ShortDescription,
		CategoryID:           d.CategoryID,
		StartDate:            d.StartDate,
		EndDate:              d.EndDate,
		RegistrationDeadline: d.RegistrationDeadline,
		VenueName:            d.VenueName,
		Address:              d.Address,
		City:                 d.City,
		Country:              d.Country,
		ContactEmail:         d.ContactEmail,
		ContactPhone:         d.ContactPhone,
		Website:              d.Website,
		IsFree:               d.IsFree,
		MaxParticipants:      d.MaxParticipants,
		LogoURL:              resolve(e.LogoRef()),
		BannerURL:            resolve(e.BannerRef()),
		IsFeatured:           e.IsFeatured(),
		Status:               e.EffectiveStatus(now).String(),
		Type:                 string(e.TypeAt(now)),
		PublishedAt:          state.PublishedAt(),
		ViewsCount:           stats.Views,
		FavoritesCount:       stats.Favorites,
		Rating:               stats.Rating.String(),
		ReviewsCount:         stats.ReviewsCount,
		RegistrationsCount:   e.RegistrationsCount(),
		RegistrationOpen:     e.IsRegistrationOpen(now),
		CreatedAt:            e.CreatedAt(),
		UpdatedAt:            e.UpdatedAt(),
	}
	if withModeration {
		out.RejectionReason = state.RejectionReason()
		out.ModeratorNotes = state.ModeratorNotes()
	}
	return out
}

// ListResult is one page of exhibitions.
type ListResult struct {
	Items    []*ExhibitionDTO `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
