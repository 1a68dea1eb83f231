package aggregation

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/review"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
	"github.com/expohub/expohub/internal/shared/db"
	"github.com/expohub/expohub/internal/shared/logger"
)

// RatingService recomputes rating and reviews_count from visible reviews.
type RatingService struct {
	reviews review.Repository
	store   counter.Store
	logger  logger.Interface
}

// NewRatingService creates a new RatingService
func NewRatingService(reviews review.Repository, store counter.Store, logger logger.Interface) *RatingService {
	return &RatingService{reviews: reviews, store: store, logger: logger}
}

// Recompute writes the rounded mean of approved and published reviews.
// An entity without such reviews gets (0.00, 0).
func (s *RatingService) Recompute(ctx context.Context, ref lifecycle.EntityRef) (svo.Rating, error) {
	agg, err := s.reviews.AggregateVisible(ctx, ref)
	if err != nil {
		return svo.ZeroRating, fmt.Errorf("failed to aggregate reviews of %s: %w", ref, err)
	}
	rating := svo.ComputeRating(agg.Sum, agg.Count)
	if err := s.store.SetRating(ctx, ref, rating, agg.Count); err != nil {
		return svo.ZeroRating, fmt.Errorf("failed to store rating of %s: %w", ref, err)
	}
	s.logger.Debugw("rating recomputed",
		"ref", ref.String(),
		"rating", rating.String(),
		"reviews_count", agg.Count,
	)
	return rating, nil
}

// RecomputeAfterCommit schedules Recompute for when the transaction in ctx
// commits. Errors are logged; the review change itself already succeeded.
func (s *RatingService) RecomputeAfterCommit(ctx context.Context, ref lifecycle.EntityRef) {
	db.AfterCommit(ctx, func(ctx context.Context) {
		if _, err := s.Recompute(ctx, ref); err != nil {
			s.logger.Errorw("failed to recompute rating", "ref", ref.String(), "error", err)
		}
	})
}
