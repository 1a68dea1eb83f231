package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

// TransitionResult reports the outcome of one lifecycle command.
type TransitionResult struct {
	Ref          lifecycle.EntityRef
	FromStatus   lvo.Status
	ToStatus     lvo.Status
	Changed      bool
	EmailWarning string
}

type transitionFunc func(s lifecycle.Subject, now time.Time) error

// transitioner loads a subject, applies one command and saves it in a single
// transaction. Events reach the hooks only after the commit.
type transitioner struct {
	subjects   SubjectRepositories
	txManager  common.TransactionManager
	dispatcher *hooks.Dispatcher
	logger     logger.Interface
	now        func() time.Time
}

func newTransitioner(
	subjects SubjectRepositories,
	txManager common.TransactionManager,
	dispatcher *hooks.Dispatcher,
	logger logger.Interface,
) *transitioner {
	return &transitioner{
		subjects:   subjects,
		txManager:  txManager,
		dispatcher: dispatcher,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (t *transitioner) apply(ctx context.Context, ref lifecycle.EntityRef, fn transitionFunc) (*TransitionResult, error) {
	repo, err := lifecycle.Lookup(t.subjects, ref)
	if err != nil {
		return nil, mapLifecycleError(err)
	}

	result := &TransitionResult{Ref: ref}
	var collected hooks.Collector
	err = t.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		subject, err := repo.Load(ctx, ref.ID())
		if err != nil {
			return err
		}
		state := subject.Lifecycle()
		result.FromStatus = state.Status()

		now := t.now()
		if err := fn(subject, now); err != nil {
			return err
		}
		result.ToStatus = state.Status()

		transitions := state.PullTransitions()
		if len(transitions) == 0 {
			return nil
		}
		result.Changed = true
		subject.Touch(now)
		if err := repo.Save(ctx, subject); err != nil {
			return err
		}

		events := lifecycle.EventsFrom(ref, subject.OwnerID(), subject.DisplayName(), transitions)
		t.dispatcher.DispatchAfterCommit(ctx, events, &collected)
		return nil
	})
	if err != nil {
		return nil, mapLifecycleError(err)
	}

	result.EmailWarning = collected.First()
	if result.Changed {
		t.logger.Infow("lifecycle transition applied",
			"ref", ref.String(),
			"from", result.FromStatus,
			"to", result.ToStatus,
		)
	}
	return result, nil
}

// requireOwnerOrModerator lets the owner or any moderator act on a subject.
func requireOwnerOrModerator(s lifecycle.Subject, actor user.Principal) error {
	if actor.UserID != 0 && s.OwnerID() == actor.UserID {
		return nil
	}
	if user.HasCapability(actor, user.CapabilityModerate) {
		return nil
	}
	return lifecycle.ErrUnauthorized
}

func mapLifecycleError(err error) error {
	var transitionErr *lifecycle.TransitionError
	switch {
	case err == nil:
		return nil
	case apperrors.IsAppError(err):
		return err
	case errors.As(err, &transitionErr):
		return apperrors.NewConflictError(transitionErr.Error())
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return apperrors.NewConflictError(err.Error())
	case errors.Is(err, lifecycle.ErrUnauthorized):
		return apperrors.NewForbiddenError("not allowed to change the status of this entity")
	case errors.Is(err, lifecycle.ErrRejectionReasonRequired):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, lifecycle.ErrUnknownKind):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, exhibition.ErrExhibitionNotFound):
		return apperrors.NewNotFoundError("exhibition not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		return apperrors.NewNotFoundError("company not found")
	case errors.Is(err, exhibition.ErrConcurrentUpdate), errors.Is(err, company.ErrConcurrentUpdate):
		return apperrors.NewConflictError("entity was modified concurrently, retry")
	default:
		return err
	}
}
