package usecases

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/logger"
)

type SubmitForReviewCommand struct {
	Ref   lifecycle.EntityRef
	Actor user.Principal
}

// SubmitForReviewUseCase sends a draft or returned listing to moderators.
type SubmitForReviewUseCase struct {
	*transitioner
}

func NewSubmitForReviewUseCase(
	subjects SubjectRepositories,
	txManager common.TransactionManager,
	dispatcher *hooks.Dispatcher,
	logger logger.Interface,
) *SubmitForReviewUseCase {
	return &SubmitForReviewUseCase{newTransitioner(subjects, txManager, dispatcher, logger)}
}

func (uc *SubmitForReviewUseCase) Execute(ctx context.Context, cmd SubmitForReviewCommand) (*TransitionResult, error) {
	return uc.apply(ctx, cmd.Ref, func(s lifecycle.Subject, now time.Time) error {
		if s.OwnerID() != cmd.Actor.UserID {
			return lifecycle.ErrUnauthorized
		}
		return s.Lifecycle().SubmitForReview(cmd.Actor.UserID, now)
	})
}
