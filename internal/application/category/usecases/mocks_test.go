package usecases

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/category"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type mockCategoryRepository struct {
	categories map[uint]*category.Category
	nextID     uint
	// takenOnInsert makes the first Create fail with a duplicate key.
	takenOnInsert bool
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[uint]*category.Category), nextID: 1}
}

func (m *mockCategoryRepository) Create(_ context.Context, c *category.Category) error {
	if m.takenOnInsert {
		m.takenOnInsert = false
		return gorm.ErrDuplicatedKey
	}
	c.SetID(m.nextID)
	m.nextID++
	m.categories[c.ID()] = c
	return nil
}

func (m *mockCategoryRepository) Update(_ context.Context, c *category.Category) error {
	if _, ok := m.categories[c.ID()]; !ok {
		return category.ErrCategoryNotFound
	}
	m.categories[c.ID()] = c
	return nil
}

func (m *mockCategoryRepository) GetByID(_ context.Context, id uint) (*category.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}

func (m *mockCategoryRepository) SlugExists(_ context.Context, slug string, excludeID uint) (bool, error) {
	for id, c := range m.categories {
		if id != excludeID && c.Slug() == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCategoryRepository) List(_ context.Context, activeOnly bool) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range m.categories {
		if activeOnly && !c.IsActive() {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder() != out[j].SortOrder() {
			return out[i].SortOrder() < out[j].SortOrder()
		}
		return out[i].Name() < out[j].Name()
	})
	return out, nil
}

type prefixResolver struct{}

func (prefixResolver) URL(ref string) string { return "https://cdn.example.com/" + ref }
