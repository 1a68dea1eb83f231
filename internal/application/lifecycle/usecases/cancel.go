package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/logger"
)

type CancelCommand struct {
	Ref    lifecycle.EntityRef
	Actor  user.Principal
	Reason string
}

// CancelUseCase withdraws a listing. Only families whose table allows it
// (exhibitions) accept the command.
type CancelUseCase struct {
	*transitioner
}

func NewCancelUseCase(
	subjects SubjectRepositories,
	txManager common.TransactionManager,
	dispatcher *hooks.Dispatcher,
	logger logger.Interface,
) *CancelUseCase {
	return &CancelUseCase{newTransitioner(subjects, txManager, dispatcher, logger)}
}

func (uc *CancelUseCase) Execute(ctx context.Context, cmd CancelCommand) (*TransitionResult, error) {
	return uc.apply(ctx, cmd.Ref, func(s lifecycle.Subject, now time.Time) error {
		if err := requireOwnerOrModerator(s, cmd.Actor); err != nil {
			return err
		}
		return s.Lifecycle().Cancel(cmd.Actor.UserID, strings.TrimSpace(cmd.Reason), now)
	})
}
