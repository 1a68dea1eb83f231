package usecases

import (
	"context"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

// ObjectDeleter removes stored files once their row is gone.
type ObjectDeleter interface {
	Delete(ctx context.Context, ref string) error
}

// listings resolves the listing a media item hangs off and applies the
// per-action access rules.
type listings struct {
	targets common.Targets
}

func (l listings) load(ctx context.Context, ref lifecycle.EntityRef) (lifecycle.Subject, error) {
	load, err := lifecycle.Lookup(l.targets, ref)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	s, err := load(ctx, ref.ID())
	if err != nil {
		if common.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError(ref.Kind().String() + " not found")
		}
		return nil, err
	}
	return s, nil
}

// forEdit allows the owner only, and not after suspension or cancellation.
func (l listings) forEdit(ctx context.Context, ref lifecycle.EntityRef, actor user.Principal) (lifecycle.Subject, error) {
	s, err := l.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if actor.UserID == 0 || s.OwnerID() != actor.UserID {
		return nil, apperrors.NewForbiddenError("only the owner can change media of this " + ref.Kind().String())
	}
	if s.Lifecycle().IsTerminal() {
		return nil, apperrors.NewConflictError(ref.Kind().String() + " can no longer be changed")
	}
	return s, nil
}

// forRemove allows the owner or a moderator.
func (l listings) forRemove(ctx context.Context, ref lifecycle.EntityRef, actor user.Principal) (lifecycle.Subject, error) {
	s, err := l.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if actor.UserID != 0 && s.OwnerID() == actor.UserID {
		return s, nil
	}
	if user.HasCapability(actor, user.CapabilityModerate) {
		return s, nil
	}
	return nil, apperrors.NewForbiddenError("not allowed to remove media of this " + ref.Kind().String())
}

// forRead hides media of unpublished listings from everyone but the owner
// and moderators.
func (l listings) forRead(ctx context.Context, ref lifecycle.EntityRef, viewer user.Principal) (lifecycle.Subject, error) {
	s, err := l.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !common.IsPublic(s) && !common.CanSeeUnpublished(s, viewer) {
		return nil, apperrors.NewNotFoundError(ref.Kind().String() + " not found")
	}
	return s, nil
}
