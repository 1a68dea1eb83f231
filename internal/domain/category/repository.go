package category

import (
	"context"
	"errors"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInactive = errors.New("category is inactive")
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	// List orders by sort order, then name.
	List(ctx context.Context, activeOnly bool) ([]*Category, error)
}
