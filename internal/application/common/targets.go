package common

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

// TargetLoader loads one entity of a family.
type TargetLoader func(ctx context.Context, id uint) (lifecycle.Subject, error)

// Targets resolves favorite and review targets through a per-kind table.
type Targets map[lvo.Kind]TargetLoader

// NewTargets registers every entity family.
func NewTargets(exhibitions exhibition.Repository, companies company.Repository) Targets {
	return Targets{
		lvo.KindExhibition: func(ctx context.Context, id uint) (lifecycle.Subject, error) {
			e, err := exhibitions.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return e, nil
		},
		lvo.KindCompany: func(ctx context.Context, id uint) (lifecycle.Subject, error) {
			c, err := companies.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
}

// LoadPublic returns the target if readers may see it, NotFound otherwise.
func (t Targets) LoadPublic(ctx context.Context, ref lifecycle.EntityRef) (lifecycle.Subject, error) {
	load, err := lifecycle.Lookup(t, ref)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	s, err := load(ctx, ref.ID())
	if err != nil {
		if IsNotFound(err) {
			return nil, apperrors.NewNotFoundError(ref.Kind().String() + " not found")
		}
		return nil, err
	}
	if !IsPublic(s) {
		return nil, apperrors.NewNotFoundError(ref.Kind().String() + " not found")
	}
	return s, nil
}

// IsPublic reports whether s is visible to everyone: published, active or
// completed.
func IsPublic(s lifecycle.Subject) bool {
	state := s.Lifecycle()
	return state.IsPublished() || state.Status() == lvo.StatusCompleted
}

// CanSeeUnpublished lets owners and moderators read listings that are not
// public yet.
func CanSeeUnpublished(s lifecycle.Subject, viewer user.Principal) bool {
	if viewer.UserID != 0 && viewer.UserID == s.OwnerID() {
		return true
	}
	return user.HasCapability(viewer, user.CapabilityModerate)
}

// IsNotFound matches the not-found sentinels of the entity repositories.
func IsNotFound(err error) bool {
	return errors.Is(err, exhibition.ErrExhibitionNotFound) ||
		errors.Is(err, company.ErrCompanyNotFound) ||
		errors.Is(err, company.ErrProductNotFound)
}
