package dto

import (
	"time"

	"github.com/expohub/expohub/internal/domain/review"
)

type ReviewDTO struct {
	ID              uint      `json:"id"`
	EntityType      string    `json:"entity_type"`
	EntityID        uint      `json:"entity_id"`
	UserID          uint      `json:"user_id"`
	Rating          int       `json:"rating"`
	Quality         *int      `json:"quality_rating,omitempty"`
	Service         *int      `json:"service_rating,omitempty"`
	Price           *int      `json:"price_rating,omitempty"`
	Title           string    `json:"title,omitempty"`
	Text            string    `json:"text"`
	Pros            string    `json:"pros,omitempty"`
	Cons            string    `json:"cons,omitempty"`
	IsApproved      bool      `json:"is_approved"`
	IsPublished     bool      `json:"is_published"`
	HelpfulCount    int64     `json:"helpful_count"`
	NotHelpfulCount int64     `json:"not_helpful_count"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToReviewDTO(r *review.Review) *ReviewDTO {
	c := r.Content()
	return &ReviewDTO{
		ID:              r.ID(),
		EntityType:      r.Target().Kind().String(),
		EntityID:        r.Target().ID(),
		UserID:          r.UserID(),
		Rating:          c.Rating,
		Quality:         c.Quality,
		Service:         c.Service,
		Price:           c.Price,
		Title:           c.Title,
		Text:            c.Text,
		Pros:            c.Pros,
		Cons:            c.Cons,
		IsApproved:      r.IsApproved(),
		IsPublished:     r.IsPublished(),
		HelpfulCount:    r.HelpfulCount(),
		NotHelpfulCount: r.NotHelpfulCount(),
		CreatedAt:       r.CreatedAt(),
	}
}

// ListResult is one page of reviews together with the target's rating.
type ListResult struct {
	Items        []*ReviewDTO `json:"items"`
	Total        int64        `json:"total"`
	Page         int          `json:"page"`
	PageSize     int          `json:"page_size"`
	Rating       string       `json:"rating"`
	ReviewsCount int64        `json:"reviews_count"`
}
