package aggregation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/shared/logger"
)

func TestCounterService_Bump(t *testing.T) {
	t.Run("increments and records metric", func(t *testing.T) {
		var gotDelta int64
		store := &mockCounterStore{
			IncrementFunc: func(_ context.Context, _ lifecycle.EntityRef, c counter.Counter, delta int64) error {
				assert.Equal(t, counter.Favorites, c)
				gotDelta = delta
				return nil
			},
		}
		metrics := &mockMetrics{}
		svc := NewCounterService(store, metrics, nil, nil, logger.NewNopLogger())

		svc.Bump(context.Background(), lifecycle.CompanyRef(3), counter.Favorites, 1)

		assert.Equal(t, int64(1), gotDelta)
		assert.Equal(t, []analytics.Metric{analytics.MetricFavorites}, metrics.recorded)
	})

	t.Run("negative delta is not a metric", func(t *testing.T) {
		metrics := &mockMetrics{}
		svc := NewCounterService(&mockCounterStore{}, metrics, nil, nil, logger.NewNopLogger())

		svc.Bump(context.Background(), lifecycle.CompanyRef(3), counter.Favorites, -1)

		assert.Empty(t, metrics.recorded)
	})

	t.Run("unsupported counter is skipped", func(t *testing.T) {
		called := false
		store := &mockCounterStore{
			IncrementFunc: func(context.Context, lifecycle.EntityRef, counter.Counter, int64) error {
				called = true
				return nil
			},
		}
		svc := NewCounterService(store, nil, nil, nil, logger.NewNopLogger())

		svc.Bump(context.Background(), lifecycle.ExhibitionRef(1), counter.ContactRequests, 1)

		assert.False(t, called)
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		store := &mockCounterStore{
			IncrementFunc: func(context.Context, lifecycle.EntityRef, counter.Counter, int64) error {
				return errors.New("deadlock")
			},
		}
		metrics := &mockMetrics{}
		svc := NewCounterService(store, metrics, nil, nil, logger.NewNopLogger())

		assert.NotPanics(t, func() {
			svc.Bump(context.Background(), lifecycle.ExhibitionRef(1), counter.Views, 1)
		})
		assert.Empty(t, metrics.recorded)
	})
}

func TestCounterService_RecordView(t *testing.T) {
	ref := lifecycle.ExhibitionRef(7)

	t.Run("dedups repeated viewer", func(t *testing.T) {
		increments := 0
		store := &mockCounterStore{
			IncrementFunc: func(context.Context, lifecycle.EntityRef, counter.Counter, int64) error {
				increments++
				return nil
			},
		}
		svc := NewCounterService(store, nil, &mockDedup{seen: map[string]bool{}}, nil, logger.NewNopLogger())

		assert.True(t, svc.RecordView(context.Background(), ref, "user:1"))
		assert.False(t, svc.RecordView(context.Background(), ref, "user:1"))
		assert.True(t, svc.RecordView(context.Background(), ref, "user:2"))
		assert.Equal(t, 2, increments)
	})

	t.Run("without dedup every view counts", func(t *testing.T) {
		increments := 0
		store := &mockCounterStore{
			IncrementFunc: func(context.Context, lifecycle.EntityRef, counter.Counter, int64) error {
				increments++
				return nil
			},
		}
		svc := NewCounterService(store, nil, nil, nil, logger.NewNopLogger())

		svc.RecordView(context.Background(), ref, "user:1")
		svc.RecordView(context.Background(), ref, "user:1")
		assert.Equal(t, 2, increments)
	})

	t.Run("dedup error counts the view", func(t *testing.T) {
		increments := 0
		store := &mockCounterStore{
			IncrementFunc: func(context.Context, lifecycle.EntityRef, counter.Counter, int64) error {
				increments++
				return nil
			},
		}
		svc := NewCounterService(store, nil, &mockDedup{err: errors.New("redis down")}, nil, logger.NewNopLogger())

		assert.True(t, svc.RecordView(context.Background(), ref, "user:1"))
		assert.Equal(t, 1, increments)
	})
}

func TestCounterService_RecordProductView(t *testing.T) {
	var productID uint
	store := &mockCounterStore{
		IncrementProductFunc: func(_ context.Context, id uint, c counter.ProductCounter, _ int64) error {
			assert.Equal(t, counter.ProductViews, c)
			productID = id
			return nil
		},
	}
	metrics := &mockMetrics{}
	svc := NewCounterService(store, metrics, &mockDedup{seen: map[string]bool{}}, nil, logger.NewNopLogger())

	assert.True(t, svc.RecordProductView(context.Background(), 2, 9, "ip:1.2.3.4"))
	assert.False(t, svc.RecordProductView(context.Background(), 2, 9, "ip:1.2.3.4"))
	assert.Equal(t, uint(9), productID)
	assert.Equal(t, []analytics.Metric{analytics.MetricProductViews}, metrics.recorded)
}
