package mappers

import (
	"github.com/expohub/expohub/internal/domain/category"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
)

// CategoryMapper converts between category entities and rows.
type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) *category.Category
	ToModel(c *category.Category) *models.CategoryModel
}

type categoryMapper struct{}

func NewCategoryMapper() CategoryMapper {
	return &categoryMapper{}
}

func (m *categoryMapper) ToEntity(model *models.CategoryModel) *category.Category {
	if model == nil {
		return nil
	}
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Slug,
		model.Description,
		model.IconRef,
		model.IsActive,
		model.SortOrder,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *categoryMapper) ToModel(c *category.Category) *models.CategoryModel {
	if c == nil {
		return nil
	}
	return &models.CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		Description: c.Description(),
		IconRef:     c.IconRef(),
		IsActive:    c.IsActive(),
		SortOrder:   c.SortOrder(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
