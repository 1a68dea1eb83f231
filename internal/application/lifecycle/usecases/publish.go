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

type PublishCommand struct {
	Ref   lifecycle.EntityRef
	Actor user.Principal
}

// PublishUseCase makes an approved listing public. Publishing twice is a
// no-op that reports Changed=false.
type PublishUseCase struct {
	*transitioner
}

func NewPublishUseCase(
	subjects SubjectRepositories,
	txManager common.TransactionManager,
	dispatcher *hooks.Dispatcher,
	logger logger.Interface,
) *PublishUseCase {
	return &PublishUseCase{newTransitioner(subjects, txManager, dispatcher, logger)}
}

func (uc *PublishUseCase) Execute(ctx context.Context, cmd PublishCommand) (*TransitionResult, error) {
	return uc.apply(ctx, cmd.Ref, func(s lifecycle.Subject, now time.Time) error {
		if err := requireOwnerOrModerator(s, cmd.Actor); err != nil {
			return err
		}
		return s.Lifecycle().Publish(cmd.Actor.UserID, now)
	})
}
