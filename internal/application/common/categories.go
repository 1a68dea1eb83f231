package common

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/domain/category"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

// CategoryReader loads categories for listing validation.
type CategoryReader interface {
	GetByID(ctx context.Context, id uint) (*category.Category, error)
}

// CheckCategory validates the category a listing is filed under. Keeping
// the current category passes even after it was deactivated; a nil reader
// skips the check.
func CheckCategory(ctx context.Context, categories CategoryReader, id, current *uint) error {
	if id == nil || categories == nil {
		return nil
	}
	if current != nil && *current == *id {
		return nil
	}
	c, err := categories.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return apperrors.NewValidationError("category not found")
		}
		return err
	}
	if !c.IsActive() {
		return apperrors.NewValidationError(category.ErrCategoryInactive.Error())
	}
	return nil
}
