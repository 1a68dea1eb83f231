package exhibition

import (
	"context"
	"errors"
	"time"
)

var ErrAlreadyRegistered = errors.New("user is already registered for this exhibition")

// Registration records a visitor signing up for an exhibition. Rows drive
// registrations_count.
type Registration struct {
	ID           uint
	ExhibitionID uint
	UserID       uint
	CreatedAt    time.Time
}

type RegistrationRepository interface {
	// Create returns ErrAlreadyRegistered for a repeated (exhibition, user) pair.
	Create(ctx context.Context, r *Registration) error
	CountByExhibition(ctx context.Context, exhibitionID uint) (int64, error)
}
