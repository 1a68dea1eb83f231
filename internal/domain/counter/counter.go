package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
)

var ErrUnsupportedCounter = errors.New("counter not supported for entity kind")

// Counter names a denormalized column on an entity.
type Counter string

const (
	Views           Counter = "views"
	Favorites       Counter = "favorites"
	Reviews         Counter = "reviews"
	ContactRequests Counter = "contact_requests"
	Registrations   Counter = "registrations"
)

// ProductCounter names a denormalized column on a product.
type ProductCounter string

const (
	ProductViews     ProductCounter = "views"
	ProductInquiries ProductCounter = "inquiries"
)

var supported = map[lvo.Kind]map[Counter]bool{
	lvo.KindExhibition: {Views: true, Favorites: true, Reviews: true, Registrations: true},
	lvo.KindCompany:    {Views: true, Favorites: true, Reviews: true, ContactRequests: true},
}

// Supports reports whether kind carries counter c.
func Supports(kind lvo.Kind, c Counter) bool {
	return supported[kind][c]
}

// Check returns ErrUnsupportedCounter for an unknown kind/counter pair.
func Check(ref lifecycle.EntityRef, c Counter) error {
	if !Supports(ref.Kind(), c) {
		return fmt.Errorf("%w: %s.%s", ErrUnsupportedCounter, ref.Kind(), c)
	}
	return nil
}

// Store applies counter updates with single statements.
type Store interface {
	// Increment adds delta, flooring the column at zero.
	Increment(ctx context.Context, ref lifecycle.EntityRef, c Counter, delta int64) error
	Set(ctx context.Context, ref lifecycle.EntityRef, c Counter, value int64) error
	SetRating(ctx context.Context, ref lifecycle.EntityRef, rating svo.Rating, reviewsCount int64) error
	IncrementProduct(ctx context.Context, productID uint, c ProductCounter, delta int64) error
	// ListRefs pages through entity ids of one kind in id order.
	ListRefs(ctx context.Context, kind lvo.Kind, afterID uint, limit int) ([]lifecycle.EntityRef, error)
}
