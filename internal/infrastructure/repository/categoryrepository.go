package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/category"
	"github.com/expohub/expohub/internal/infrastructure/persistence/mappers"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
)

// CategoryRepository implements category.Repository
type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db, mapper: mappers.NewCategoryMapper()}
}

// Create inserts the category. A slug collision is returned as a duplicate error.
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

// Update writes the editable columns; the slug is fixed at creation.
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"description": model.Description,
			"icon_ref":    model.IconRef,
			"is_active":   model.IsActive,
			"sort_order":  model.SortOrder,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *CategoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CategoryModel{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]*category.Category, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CategoryModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var modelList []*models.CategoryModel
	if err := query.Order("sort_order ASC, name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	out := make([]*category.Category, 0, len(modelList))
	for _, m := range modelList {
		out = append(out, r.mapper.ToEntity(m))
	}
	return out, nil
}
