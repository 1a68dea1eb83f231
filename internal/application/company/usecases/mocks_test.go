package usecases

import (
	"context"

	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/lifecycle"
)

type mockCompanyRepository struct {
	CreateFunc     func(ctx context.Context, c *company.Company) error
	UpdateFunc     func(ctx context.Context, c *company.Company) error
	GetByIDFunc    func(ctx context.Context, id uint) (*company.Company, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (*company.Company, error)
	SlugExistsFunc func(ctx context.Context, slug string, excludeID uint) (bool, error)
	ListFunc       func(ctx context.Context, filter company.ListFilter) ([]*company.Company, int64, error)
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.SetID(1)
	return nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, company.ErrCompanyNotFound
}

func (m *mockCompanyRepository) GetBySlug(ctx context.Context, slug string) (*company.Company, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, company.ErrCompanyNotFound
}

func (m *mockCompanyRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *mockCompanyRepository) List(ctx context.Context, filter company.ListFilter) ([]*company.Company, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockProductRepository struct {
	CreateFunc        func(ctx context.Context, p *company.Product) error
	GetByIDFunc       func(ctx context.Context, id uint) (*company.Product, error)
	SlugExistsFunc    func(ctx context.Context, companyID uint, slug string, excludeID uint) (bool, error)
	ListByCompanyFunc func(ctx context.Context, companyID uint) ([]*company.Product, error)
}

func (m *mockProductRepository) Create(ctx context.Context, p *company.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	p.SetID(1)
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*company.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, company.ErrProductNotFound
}

func (m *mockProductRepository) GetBySlug(context.Context, uint, string) (*company.Product, error) {
	return nil, company.ErrProductNotFound
}

func (m *mockProductRepository) SlugExists(ctx context.Context, companyID uint, slug string, excludeID uint) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, companyID, slug, excludeID)
	}
	return false, nil
}

func (m *mockProductRepository) ListByCompany(ctx context.Context, companyID uint) ([]*company.Product, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

type mockContactRepository struct {
	created []*company.ContactRequest
}

func (m *mockContactRepository) Create(_ context.Context, r *company.ContactRequest) error {
	r.ID = uint(len(m.created) + 1)
	m.created = append(m.created, r)
	return nil
}

func (m *mockContactRepository) CountByCompany(context.Context, uint) (int64, error) {
	return int64(len(m.created)), nil
}

type recordingCounterStore struct {
	counter.Store
	company  []counter.Counter
	products []counter.ProductCounter
}

func (s *recordingCounterStore) Increment(_ context.Context, _ lifecycle.EntityRef, c counter.Counter, _ int64) error {
	s.company = append(s.company, c)
	return nil
}

func (s *recordingCounterStore) IncrementProduct(_ context.Context, _ uint, c counter.ProductCounter, _ int64) error {
	s.products = append(s.products, c)
	return nil
}
