package review

import (
	"context"

	"github.com/expohub/expohub/internal/domain/lifecycle"
)

// Aggregate is the sum and count of qualifying review ratings for one target.
type Aggregate struct {
	Sum   int64
	Count int64
}

type Repository interface {
	// Create returns ErrAlreadyReviewed when the user already reviewed the target.
	Create(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	ListByTarget(ctx context.Context, target lifecycle.EntityRef, onlyVisible bool, page, pageSize int) ([]*Review, int64, error)
	// AggregateVisible sums ratings of approved and published reviews.
	AggregateVisible(ctx context.Context, target lifecycle.EntityRef) (Aggregate, error)
	// ListTargets returns every target with at least one review row.
	ListTargets(ctx context.Context) ([]lifecycle.EntityRef, error)
	// AddVote stores a helpfulness vote and bumps the matching counter.
	// Returns ErrAlreadyVoted on a second vote by the same user.
	AddVote(ctx context.Context, reviewID, userID uint, helpful bool) error
}
