package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/review/dto"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

// ReviewAction is a moderator decision on a review.
type ReviewAction string

const (
	ReviewApprove   ReviewAction = "approve"
	ReviewReject    ReviewAction = "reject"
	ReviewUnpublish ReviewAction = "unpublish"
)

type ModerateReviewCommand struct {
	ReviewID uint
	Actor    user.Principal
	Action   ReviewAction
}

// ModerateReviewUseCase applies a moderator decision and refreshes the
// target's rating once the change is committed.
type ModerateReviewUseCase struct {
	reviews   review.Repository
	ratings   *aggregation.RatingService
	txManager common.TransactionManager
	logger    logger.Interface
}

func NewModerateReviewUseCase(
	reviews review.Repository,
	ratings *aggregation.RatingService,
	txManager common.TransactionManager,
	logger logger.Interface,
) *ModerateReviewUseCase {
	return &ModerateReviewUseCase{
		reviews:   reviews,
		ratings:   ratings,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ModerateReviewUseCase) Execute(ctx context.Context, cmd ModerateReviewCommand) (*dto.ReviewDTO, error) {
	if !user.HasCapability(cmd.Actor, user.CapabilityModerate) {
		return nil, apperrors.NewForbiddenError("moderator role required")
	}

	var out *review.Review
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		r, err := uc.reviews.GetByID(ctx, cmd.ReviewID)
		if err != nil {
			if errors.Is(err, review.ErrReviewNotFound) {
				return apperrors.NewNotFoundError("review not found")
			}
			return err
		}

		countedBefore := r.Counts()
		now := biztime.NowUTC()
		switch cmd.Action {
		case ReviewApprove:
			err = r.Approve(cmd.Actor, now)
		case ReviewReject:
			err = r.Reject(cmd.Actor, now)
		case ReviewUnpublish:
			err = r.Unpublish(cmd.Actor, now)
		default:
			return apperrors.NewValidationError(fmt.Sprintf("unknown review action %q", cmd.Action))
		}
		if err != nil {
			if errors.Is(err, lifecycle.ErrUnauthorized) {
				return apperrors.NewForbiddenError("moderator role required")
			}
			return err
		}

		if err := uc.reviews.Update(ctx, r); err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}
		if countedBefore != r.Counts() {
			uc.ratings.RecomputeAfterCommit(ctx, r.Target())
		}
		out = r
		return nil
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("failed to moderate review", "review_id", cmd.ReviewID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("review moderated",
		"review_id", out.ID(),
		"action", cmd.Action,
		"moderator_id", cmd.Actor.UserID,
	)
	return dto.ToReviewDTO(out), nil
}
