package common

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/domain/shared/services"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

// InsertWithSlug assigns the first free slug derived from base and calls
// insert with it. The unique index has the final say: when insert fails
// with a duplicate key the assignment is redone once.
func InsertWithSlug(
	ctx context.Context,
	base string,
	exists services.SlugExistsFunc,
	insert func(ctx context.Context, slug string) error,
) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		slug, err := services.AssignSlug(ctx, base, exists)
		if err != nil {
			return "", err
		}
		lastErr = insert(ctx, slug)
		if lastErr == nil {
			return slug, nil
		}
		if !apperrors.IsDuplicateError(lastErr) {
			return "", lastErr
		}
	}
	return "", fmt.Errorf("slug %q still taken after retry: %w", base, lastErr)
}
