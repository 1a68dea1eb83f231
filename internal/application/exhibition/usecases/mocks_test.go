package usecases

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/domain/exhibition"
)

type mockExhibitionRepository struct {
	CreateFunc                   func(ctx context.Context, e *exhibition.Exhibition) error
	UpdateFunc                   func(ctx context.Context, e *exhibition.Exhibition) error
	GetByIDFunc                  func(ctx context.Context, id uint) (*exhibition.Exhibition, error)
	GetBySlugFunc                func(ctx context.Context, slug string) (*exhibition.Exhibition, error)
	SlugExistsFunc               func(ctx context.Context, slug string, excludeID uint) (bool, error)
	ListFunc                     func(ctx context.Context, filter exhibition.ListFilter) ([]*exhibition.Exhibition, int64, error)
	ListPublishedEndedBeforeFunc func(ctx context.Context, cutoff time.Time, limit int) ([]*exhibition.Exhibition, error)
}

func (m *mockExhibitionRepository) Create(ctx context.Context, e *exhibition.Exhibition) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockExhibitionRepository) Update(ctx context.Context, e *exhibition.Exhibition) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockExhibitionRepository) GetByID(ctx context.Context, id uint) (*exhibition.Exhibition, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, exhibition.ErrExhibitionNotFound
}

func (m *mockExhibitionRepository) GetBySlug(ctx context.Context, slug string) (*exhibition.Exhibition, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, exhibition.ErrExhibitionNotFound
}

func (m *mockExhibitionRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *mockExhibitionRepository) List(ctx context.Context, filter exhibition.ListFilter) ([]*exhibition.Exhibition, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockExhibitionRepository) ListPublishedEndedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*exhibition.Exhibition, error) {
	if m.ListPublishedEndedBeforeFunc != nil {
		return m.ListPublishedEndedBeforeFunc(ctx, cutoff, limit)
	}
	return nil, nil
}

type mockRegistrationRepository struct {
	CreateFunc            func(ctx context.Context, r *exhibition.Registration) error
	CountByExhibitionFunc func(ctx context.Context, exhibitionID uint) (int64, error)
}

func (m *mockRegistrationRepository) Create(ctx context.Context, r *exhibition.Registration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	r.ID = 1
	return nil
}

func (m *mockRegistrationRepository) CountByExhibition(ctx context.Context, exhibitionID uint) (int64, error) {
	if m.CountByExhibitionFunc != nil {
		return m.CountByExhibitionFunc(ctx, exhibitionID)
	}
	return 0, nil
}
