package analytics

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/domain/lifecycle"
)

// Metric is a daily per-entity counter.
type Metric string

const (
	MetricViews        Metric = "views"
	MetricContacts     Metric = "contacts"
	MetricFavorites    Metric = "favorites"
	MetricProductViews Metric = "product_views"
	MetricReviews      Metric = "reviews"
	MetricRegistration Metric = "registrations"
)

func (m Metric) IsValid() bool {
	switch m {
	case MetricViews, MetricContacts, MetricFavorites, MetricProductViews, MetricReviews, MetricRegistration:
		return true
	}
	return false
}

// DailyPoint is one (entity, metric, day) row.
type DailyPoint struct {
	Target lifecycle.EntityRef
	Metric Metric
	Date   time.Time
	Value  int64
}

type Repository interface {
	// Record adds delta to the row for the day containing date, creating it if needed.
	Record(ctx context.Context, target lifecycle.EntityRef, metric Metric, date time.Time, delta int64) error
	Range(ctx context.Context, target lifecycle.EntityRef, from, to time.Time) ([]DailyPoint, error)
}
