package usecases

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type ModerateCommand struct {
	Ref       lifecycle.EntityRef
	Decision  lvo.Decision
	Moderator user.Principal
	Notes     string
	Reason    string
}

// ModerateUseCase applies a moderator decision to a pending listing.
type ModerateUseCase struct {
	*transitioner
}

func NewModerateUseCase(
	subjects SubjectRepositories,
	txManager common.TransactionManager,
	dispatcher *hooks.Dispatcher,
	logger logger.Interface,
) *ModerateUseCase {
	return &ModerateUseCase{newTransitioner(subjects, txManager, dispatcher, logger)}
}

func (uc *ModerateUseCase) Execute(ctx context.Context, cmd ModerateCommand) (*TransitionResult, error) {
	if !cmd.Decision.IsValid() {
		return nil, apperrors.NewValidationError("invalid moderation decision", string(cmd.Decision))
	}
	if !user.HasCapability(cmd.Moderator, user.CapabilityModerate) {
		return nil, mapLifecycleError(lifecycle.ErrUnauthorized)
	}
	return uc.apply(ctx, cmd.Ref, func(s lifecycle.Subject, now time.Time) error {
		return s.Lifecycle().Moderate(cmd.Decision, cmd.Moderator, cmd.Notes, cmd.Reason, now)
	})
}
