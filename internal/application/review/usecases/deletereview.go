package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ReviewID uint
	Actor    user.Principal
}

type DeleteReviewUseCase struct {
	reviews   review.Repository
	ratings   *aggregation.RatingService
	txManager common.TransactionManager
	logger    logger.Interface
}

func NewDeleteReviewUseCase(
	reviews review.Repository,
	ratings *aggregation.RatingService,
	txManager common.TransactionManager,
	logger logger.Interface,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviews:   reviews,
		ratings:   ratings,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) error {
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		r, err := uc.reviews.GetByID(ctx, cmd.ReviewID)
		if err != nil {
			if errors.Is(err, review.ErrReviewNotFound) {
				return apperrors.NewNotFoundError("review not found")
			}
			return err
		}
		if !r.CanDelete(cmd.Actor) {
			return apperrors.NewForbiddenError("only the author or a moderator can delete a review")
		}
		if err := uc.reviews.Delete(ctx, r.ID()); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		// reviews_count is recomputed for every deletion, counted or not.
		uc.ratings.RecomputeAfterCommit(ctx, r.Target())
		return nil
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("failed to delete review", "review_id", cmd.ReviewID, "error", err)
		}
		return err
	}
	uc.logger.Infow("review deleted", "review_id", cmd.ReviewID, "actor_id", cmd.Actor.UserID)
	return nil
}
