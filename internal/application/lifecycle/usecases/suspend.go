package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type SuspendCommand struct {
	Ref       lifecycle.EntityRef
	Moderator user.Principal
	Reason    string
}

// SuspendUseCase takes an active company down for good.
type SuspendUseCase struct {
	*transitioner
}

func NewSuspendUseCase(
	subjects SubjectRepositories,
	txManager common.TransactionManager,
	dispatcher *hooks.Dispatcher,
	logger logger.Interface,
) *SuspendUseCase {
	return &SuspendUseCase{newTransitioner(subjects, txManager, dispatcher, logger)}
}

func (uc *SuspendUseCase) Execute(ctx context.Context, cmd SuspendCommand) (*TransitionResult, error) {
	if strings.TrimSpace(cmd.Reason) == "" {
		return nil, apperrors.NewValidationError("suspension reason is required")
	}
	return uc.apply(ctx, cmd.Ref, func(s lifecycle.Subject, now time.Time) error {
		return s.Lifecycle().Suspend(cmd.Moderator, cmd.Reason, now)
	})
}
