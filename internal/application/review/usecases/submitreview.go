package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/review/dto"
	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	"github.com/expohub/expohub/internal/shared/db"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

// ModerationPolicy tells whether new reviews wait for a moderator.
type ModerationPolicy interface {
	ModerationRequired(ctx context.Context) bool
}

type SubmitReviewCommand struct {
	Actor   user.Principal
	Target  lifecycle.EntityRef
	Content review.Content
	Meta    common.RequestMeta
}

type SubmitReviewUseCase struct {
	reviews   review.Repository
	targets   common.Targets
	ratings   *aggregation.RatingService
	txManager common.TransactionManager
	policy    ModerationPolicy
	activity  activity.Sink
	metrics   analytics.Repository
	logger    logger.Interface
}

func NewSubmitReviewUseCase(
	reviews review.Repository,
	targets common.Targets,
	ratings *aggregation.RatingService,
	txManager common.TransactionManager,
	policy ModerationPolicy,
	activitySink activity.Sink,
	metrics analytics.Repository,
	logger logger.Interface,
) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{
		reviews:   reviews,
		targets:   targets,
		ratings:   ratings,
		txManager: txManager,
		policy:    policy,
		activity:  activitySink,
		metrics:   metrics,
		logger:    logger,
	}
}

func (uc *SubmitReviewUseCase) Execute(ctx context.Context, cmd SubmitReviewCommand) (*dto.ReviewDTO, error) {
	uc.logger.Infow("executing submit review use case", "user_id", cmd.Actor.UserID, "target", cmd.Target.String())

	autoPublish := uc.policy == nil || !uc.policy.ModerationRequired(ctx)
	now := biztime.NowUTC()

	var created *review.Review
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		target, err := uc.targets.LoadPublic(ctx, cmd.Target)
		if err != nil {
			return err
		}
		if target.OwnerID() == cmd.Actor.UserID {
			return apperrors.NewForbiddenError("owners cannot review their own listings")
		}

		r, err := review.NewReview(cmd.Target, cmd.Actor, sanitizeContent(cmd.Content), autoPublish, now)
		if err != nil {
			if errors.Is(err, lifecycle.ErrUnauthorized) {
				return apperrors.NewForbiddenError("not allowed to write reviews")
			}
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.reviews.Create(ctx, r); err != nil {
			if errors.Is(err, review.ErrAlreadyReviewed) || apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError(review.ErrAlreadyReviewed.Error())
			}
			return fmt.Errorf("failed to create review: %w", err)
		}
		created = r

		if r.Counts() {
			uc.ratings.RecomputeAfterCommit(ctx, cmd.Target)
		}
		db.AfterCommit(ctx, func(ctx context.Context) {
			uc.afterCreate(ctx, cmd, r)
		})
		return nil
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("failed to submit review", "user_id", cmd.Actor.UserID, "target", cmd.Target.String(), "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("review submitted", "review_id", created.ID(), "published", created.IsPublished())
	return dto.ToReviewDTO(created), nil
}

func (uc *SubmitReviewUseCase) afterCreate(ctx context.Context, cmd SubmitReviewCommand, r *review.Review) {
	if uc.metrics != nil {
		if err := uc.metrics.Record(ctx, cmd.Target, analytics.MetricReviews, r.CreatedAt(), 1); err != nil {
			uc.logger.Warnw("failed to record reviews metric", "target", cmd.Target.String(), "error", err)
		}
	}
	if uc.activity == nil {
		return
	}
	userID := cmd.Actor.UserID
	err := uc.activity.Record(ctx, activity.Entry{
		UserID:      &userID,
		Type:        activity.TypeReviewCreate,
		Description: fmt.Sprintf("review of %s", cmd.Target),
		Metadata: map[string]any{
			"review_id":   r.ID(),
			"entity_type": cmd.Target.Kind().String(),
			"entity_id":   cmd.Target.ID(),
			"rating":      r.Rating(),
		},
		IPAddress: cmd.Meta.IPAddress,
		UserAgent: cmd.Meta.UserAgent,
		CreatedAt: r.CreatedAt(),
	})
	if err != nil {
		uc.logger.Warnw("failed to record activity", "type", activity.TypeReviewCreate, "error", err)
	}
}
