package mappers

import (
	"fmt"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
)

// ReviewToEntity converts a review row to the domain review.
func ReviewToEntity(model *models.ReviewModel) (*review.Review, error) {
	target, err := lifecycle.NewEntityRef(model.EntityKind, model.EntityID)
	if err != nil {
		return nil, fmt.Errorf("review %d: %w", model.ID, err)
	}
	content := review.Content{
		Rating:  model.Rating,
		Quality: model.QualityRating,
		Service: model.ServiceRating,
		Price:   model.PriceRating,
		Title:   model.Title,
		Text:    model.Text,
		Pros:    model.Pros,
		Cons:    model.Cons,
	}
	return review.ReconstructReview(
		model.ID,
		target,
		model.UserID,
		content,
		model.IsApproved,
		model.IsPublished,
		model.ModeratedBy,
		model.ModeratedAt,
		model.HelpfulCount,
		model.NotHelpfulCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ReviewToModel converts a domain review to its row.
func ReviewToModel(entity *review.Review) *models.ReviewModel {
	c := entity.Content()
	return &models.ReviewModel{
		ID:              entity.ID(),
		EntityKind:      entity.Target().Kind().String(),
		EntityID:        entity.Target().ID(),
		UserID:          entity.UserID(),
		Rating:          c.Rating,
		QualityRating:   c.Quality,
		ServiceRating:   c.Service,
		PriceRating:     c.Price,
		Title:           c.Title,
		Text:            c.Text,
		Pros:            c.Pros,
		Cons:            c.Cons,
		IsApproved:      entity.IsApproved(),
		IsPublished:     entity.IsPublished(),
		ModeratedBy:     entity.ModeratedBy(),
		ModeratedAt:     entity.ModeratedAt(),
		HelpfulCount:    entity.HelpfulCount(),
		NotHelpfulCount: entity.NotHelpfulCount(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}
