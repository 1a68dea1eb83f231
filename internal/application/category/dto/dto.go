package dto

import (
	"time"

	"github.com/expohub/expohub/internal/domain/category"
)

type CategoryDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IconURL     string    `json:"icon_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToCategoryDTO(c *category.Category, resolve func(string) string) CategoryDTO {
	icon := c.IconRef()
	if resolve != nil {
		icon = resolve(icon)
	}
	return CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		Description: c.Description(),
		IconURL:     icon,
		IsActive:    c.IsActive(),
		SortOrder:   c.SortOrder(),
		CreatedAt:   c.CreatedAt(),
	}
}
