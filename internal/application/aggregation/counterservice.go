// Package aggregation keeps denormalized counters and ratings in step with
// the rows they summarize.
package aggregation

import (
	"context"
	"fmt"
	"time"

	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/shared/biztime"
	"github.com/expohub/expohub/internal/shared/logger"
)

// ViewDeduplicator remembers recent (viewer, entity) pairs. FirstView
// reports true when the pair was not seen within window.
type ViewDeduplicator interface {
	FirstView(ctx context.Context, viewerKey string, target string, window time.Duration) (bool, error)
}

// WindowFunc returns the current view dedup window.
type WindowFunc func(ctx context.Context) time.Duration

var counterMetrics = map[counter.Counter]analytics.Metric{
	counter.Views:           analytics.MetricViews,
	counter.Favorites:       analytics.MetricFavorites,
	counter.Reviews:         analytics.MetricReviews,
	counter.ContactRequests: analytics.MetricContacts,
	counter.Registrations:   analytics.MetricRegistration,
}

// CounterService applies lightweight signals. Failures never reach the
// caller: a lost view must not fail the page that produced it.
type CounterService struct {
	store   counter.Store
	metrics analytics.Repository
	dedup   ViewDeduplicator
	window  WindowFunc
	logger  logger.Interface
	now     func() time.Time
}

// NewCounterService creates a CounterService. dedup and metrics may be nil.
func NewCounterService(
	store counter.Store,
	metrics analytics.Repository,
	dedup ViewDeduplicator,
	window WindowFunc,
	logger logger.Interface,
) *CounterService {
	if window == nil {
		window = func(context.Context) time.Duration { return 30 * time.Minute }
	}
	return &CounterService{
		store:   store,
		metrics: metrics,
		dedup:   dedup,
		window:  window,
		logger:  logger,
		now:     biztime.NowUTC,
	}
}

// Bump adds delta to counter c of ref and records the daily metric.
func (s *CounterService) Bump(ctx context.Context, ref lifecycle.EntityRef, c counter.Counter, delta int64) {
	if err := counter.Check(ref, c); err != nil {
		s.logger.Warnw("skipping counter update", "ref", ref.String(), "counter", c, "error", err)
		return
	}
	if err := s.store.Increment(ctx, ref, c, delta); err != nil {
		s.logger.Warnw("failed to increment counter",
			"ref", ref.String(),
			"counter", c,
			"delta", delta,
			"error", err,
		)
		return
	}
	if delta > 0 {
		s.record(ctx, ref, counterMetrics[c], delta)
	}
}

// RecordView counts a view unless the viewer was seen recently. It reports
// whether the view was counted.
func (s *CounterService) RecordView(ctx context.Context, ref lifecycle.EntityRef, viewerKey string) bool {
	if !s.firstView(ctx, viewerKey, ref.String()) {
		return false
	}
	s.Bump(ctx, ref, counter.Views, 1)
	return true
}

// RecordProductView counts a product view and credits the owning company's
// daily product_views metric.
func (s *CounterService) RecordProductView(ctx context.Context, companyID, productID uint, viewerKey string) bool {
	if !s.firstView(ctx, viewerKey, fmt.Sprintf("product:%d", productID)) {
		return false
	}
	if err := s.store.IncrementProduct(ctx, productID, counter.ProductViews, 1); err != nil {
		s.logger.Warnw("failed to increment product views", "product_id", productID, "error", err)
		return false
	}
	s.record(ctx, lifecycle.CompanyRef(companyID), analytics.MetricProductViews, 1)
	return true
}

// BumpProduct adds delta to a product counter.
func (s *CounterService) BumpProduct(ctx context.Context, productID uint, c counter.ProductCounter, delta int64) {
	if err := s.store.IncrementProduct(ctx, productID, c, delta); err != nil {
		s.logger.Warnw("failed to increment product counter",
			"product_id", productID,
			"counter", c,
			"error", err,
		)
	}
}

func (s *CounterService) firstView(ctx context.Context, viewerKey, target string) bool {
	if s.dedup == nil || viewerKey == "" {
		return true
	}
	window := s.window(ctx)
	if window <= 0 {
		return true
	}
	first, err := s.dedup.FirstView(ctx, viewerKey, target, window)
	if err != nil {
		s.logger.Warnw("view dedup unavailable, counting view", "target", target, "error", err)
		return true
	}
	return first
}

func (s *CounterService) record(ctx context.Context, ref lifecycle.EntityRef, metric analytics.Metric, delta int64) {
	if s.metrics == nil || metric == "" {
		return
	}
	if err := s.metrics.Record(ctx, ref, metric, s.now(), delta); err != nil {
		s.logger.Warnw("failed to record daily metric",
			"ref", ref.String(),
			"metric", metric,
			"error", err,
		)
	}
}
