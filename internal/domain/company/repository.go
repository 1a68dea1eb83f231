package company

import (
	"context"
	"errors"

	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrConcurrentUpdate   = errors.New("company was modified concurrently")
	ErrContactsNotAllowed = errors.New("company does not accept contact requests")
)

// ListFilter narrows List results. Zero values are ignored.
type ListFilter struct {
	Status     lvo.Status
	OwnerID    uint
	City       string
	CategoryID uint
	Page       int
	PageSize   int
}

type Repository interface {
	Create(ctx context.Context, c *Company) error
	// Update saves c with optimistic locking on the version it was loaded with.
	Update(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id uint) (*Company, error)
	GetBySlug(ctx context.Context, slug string) (*Company, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Company, int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySlug(ctx context.Context, companyID uint, slug string) (*Product, error)
	// SlugExists checks slug uniqueness inside one company.
	SlugExists(ctx context.Context, companyID uint, slug string, excludeID uint) (bool, error)
	ListByCompany(ctx context.Context, companyID uint) ([]*Product, error)
}
