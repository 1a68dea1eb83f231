package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type VoteReviewCommand struct {
	ReviewID uint
	Actor    user.Principal
	Helpful  bool
}

// VoteReviewUseCase stores one helpfulness vote per user and review.
type VoteReviewUseCase struct {
	reviews review.Repository
	logger  logger.Interface
}

func NewVoteReviewUseCase(reviews review.Repository, logger logger.Interface) *VoteReviewUseCase {
	return &VoteReviewUseCase{reviews: reviews, logger: logger}
}

func (uc *VoteReviewUseCase) Execute(ctx context.Context, cmd VoteReviewCommand) error {
	if cmd.Actor.UserID == 0 {
		return apperrors.NewUnauthorizedError("authentication required")
	}
	r, err := uc.reviews.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		if errors.Is(err, review.ErrReviewNotFound) {
			return apperrors.NewNotFoundError("review not found")
		}
		return err
	}
	if !r.Counts() {
		return apperrors.NewNotFoundError("review not found")
	}
	if r.UserID() == cmd.Actor.UserID {
		return apperrors.NewForbiddenError(review.ErrOwnReview.Error())
	}

	if err := uc.reviews.AddVote(ctx, r.ID(), cmd.Actor.UserID, cmd.Helpful); err != nil {
		if errors.Is(err, review.ErrAlreadyVoted) || apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(review.ErrAlreadyVoted.Error())
		}
		uc.logger.Errorw("failed to store review vote", "review_id", r.ID(), "error", err)
		return err
	}
	return nil
}
