package favorite

import (
	"context"
	"errors"
	"time"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

var (
	ErrAlreadyFavorited = errors.New("entity is already in favorites")
	ErrNotFavorited     = errors.New("entity is not in favorites")
)

// Favorite links a user to an exhibition or company. Its creation and
// deletion are the only things that move favorites_count.
type Favorite struct {
	ID        uint
	UserID    uint
	Target    lifecycle.EntityRef
	CreatedAt time.Time
}

type Repository interface {
	// Create returns ErrAlreadyFavorited when the pair already exists.
	Create(ctx context.Context, f *Favorite) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, userID uint, target lifecycle.EntityRef) (bool, error)
	Exists(ctx context.Context, userID uint, target lifecycle.EntityRef) (bool, error)
	CountByTarget(ctx context.Context, target lifecycle.EntityRef) (int64, error)
	ListByUser(ctx context.Context, userID uint, kind lvo.Kind) ([]*Favorite, error)
}
