package exhibition

import (
	"context"
	"errors"
	"time"

	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

var (
	ErrExhibitionNotFound = errors.New("exhibition not found")
	ErrConcurrentUpdate   = errors.New("exhibition was modified concurrently")
	ErrRegistrationClosed = errors.New("registration is closed")
)

// ListFilter narrows List results. Zero values are ignored.
type ListFilter struct {
	Status     lvo.Status
	OwnerID    uint
	City       string
	CategoryID uint
	Type       Type
	Featured   *bool
	Now        time.Time
	Page       int
	PageSize   int
}

type Repository interface {
	Create(ctx context.Context, e *Exhibition) error
	// Update saves e with optimistic locking on the version it was loaded with.
	Update(ctx context.Context, e *Exhibition) error
	GetByID(ctx context.Context, id uint) (*Exhibition, error)
	GetBySlug(ctx context.Context, slug string) (*Exhibition, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Exhibition, int64, error)
	// ListPublishedEndedBefore returns published exhibitions whose end date passed.
	ListPublishedEndedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*Exhibition, error)
}
