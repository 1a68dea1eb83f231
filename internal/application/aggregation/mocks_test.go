package aggregation

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/favorite"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/review"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
)

type mockCounterStore struct {
	IncrementFunc        func(ctx context.Context, ref lifecycle.EntityRef, c counter.Counter, delta int64) error
	SetFunc              func(ctx context.Context, ref lifecycle.EntityRef, c counter.Counter, value int64) error
	SetRatingFunc        func(ctx context.Context, ref lifecycle.EntityRef, rating svo.Rating, reviewsCount int64) error
	IncrementProductFunc func(ctx context.Context, productID uint, c counter.ProductCounter, delta int64) error
	ListRefsFunc         func(ctx context.Context, kind lvo.Kind, afterID uint, limit int) ([]lifecycle.EntityRef, error)
}

func (m *mockCounterStore) Increment(ctx context.Context, ref lifecycle.EntityRef, c counter.Counter, delta int64) error {
	if m.IncrementFunc != nil {
		return m.IncrementFunc(ctx, ref, c, delta)
	}
	return nil
}

func (m *mockCounterStore) Set(ctx context.Context, ref lifecycle.EntityRef, c counter.Counter, value int64) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, ref, c, value)
	}
	return nil
}

func (m *mockCounterStore) SetRating(ctx context.Context, ref lifecycle.EntityRef, rating svo.Rating, reviewsCount int64) error {
	if m.SetRatingFunc != nil {
		return m.SetRatingFunc(ctx, ref, rating, reviewsCount)
	}
	return nil
}

func (m *mockCounterStore) IncrementProduct(ctx context.Context, productID uint, c counter.ProductCounter, delta int64) error {
	if m.IncrementProductFunc != nil {
		return m.IncrementProductFunc(ctx, productID, c, delta)
	}
	return nil
}

func (m *mockCounterStore) ListRefs(ctx context.Context, kind lvo.Kind, afterID uint, limit int) ([]lifecycle.EntityRef, error) {
	if m.ListRefsFunc != nil {
		return m.ListRefsFunc(ctx, kind, afterID, limit)
	}
	return nil, nil
}

type mockMetrics struct {
	recorded []analytics.Metric
}

func (m *mockMetrics) Record(_ context.Context, _ lifecycle.EntityRef, metric analytics.Metric, _ time.Time, _ int64) error {
	m.recorded = append(m.recorded, metric)
	return nil
}

func (m *mockMetrics) Range(context.Context, lifecycle.EntityRef, time.Time, time.Time) ([]analytics.DailyPoint, error) {
	return nil, nil
}

type mockDedup struct {
	seen map[string]bool
	err  error
}

func (m *mockDedup) FirstView(_ context.Context, viewerKey, target string, _ time.Duration) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	key := viewerKey + "|" + target
	if m.seen[key] {
		return false, nil
	}
	m.seen[key] = true
	return true, nil
}

type mockReviewRepository struct {
	review.Repository
	AggregateVisibleFunc func(ctx context.Context, target lifecycle.EntityRef) (review.Aggregate, error)
}

func (m *mockReviewRepository) AggregateVisible(ctx context.Context, target lifecycle.EntityRef) (review.Aggregate, error) {
	return m.AggregateVisibleFunc(ctx, target)
}

type mockFavoriteRepository struct {
	favorite.Repository
	CountByTargetFunc func(ctx context.Context, target lifecycle.EntityRef) (int64, error)
}

func (m *mockFavoriteRepository) CountByTarget(ctx context.Context, target lifecycle.EntityRef) (int64, error) {
	return m.CountByTargetFunc(ctx, target)
}

type mockRegistrationRepository struct {
	exhibition.RegistrationRepository
	CountByExhibitionFunc func(ctx context.Context, exhibitionID uint) (int64, error)
}

func (m *mockRegistrationRepository) CountByExhibition(ctx context.Context, exhibitionID uint) (int64, error) {
	return m.CountByExhibitionFunc(ctx, exhibitionID)
}

type mockContactRepository struct {
	company.ContactRepository
	CountByCompanyFunc func(ctx context.Context, companyID uint) (int64, error)
}

func (m *mockContactRepository) CountByCompany(ctx context.Context, companyID uint) (int64, error) {
	return m.CountByCompanyFunc(ctx, companyID)
}
