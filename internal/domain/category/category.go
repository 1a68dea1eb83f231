// Package category holds the industries exhibitions and companies are
// filed under.
package category

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxNameLength = 100

// Category is an industry listing. Inactive categories stay attached to
// existing listings but cannot be picked for new ones.
type Category struct {
	id          uint
	name        string
	slug        string
	description string
	iconRef     string
	isActive    bool
	sortOrder   int
	createdAt   time.Time
	updatedAt   time.Time
}

// Details are the editable fields.
type Details struct {
	Name        string
	Description string
	IconRef     string
	SortOrder   int
}

func (d *Details) normalize() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.IconRef = strings.TrimSpace(d.IconRef)
	if d.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if utf8.RuneCountInString(d.Name) > maxNameLength {
		return fmt.Errorf("category name exceeds maximum length of %d characters", maxNameLength)
	}
	if d.SortOrder < 0 {
		return fmt.Errorf("sort order cannot be negative")
	}
	return nil
}

func NewCategory(d Details, now time.Time) (*Category, error) {
	if err := d.normalize(); err != nil {
		return nil, err
	}
	return &Category{
		name:        d.Name,
		description: d.Description,
		iconRef:     d.IconRef,
		isActive:    true,
		sortOrder:   d.SortOrder,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructCategory rebuilds a Category from persistence.
func ReconstructCategory(
	id uint,
	name, slug, description, iconRef string,
	isActive bool,
	sortOrder int,
	createdAt, updatedAt time.Time,
) *Category {
	return &Category{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		iconRef:     iconRef,
		isActive:    isActive,
		sortOrder:   sortOrder,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Slug() string         { return c.slug }
func (c *Category) Description() string  { return c.description }
func (c *Category) IconRef() string      { return c.iconRef }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) SortOrder() int       { return c.sortOrder }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the category ID (only for persistence layer use)
func (c *Category) SetID(id uint) {
	c.id = id
}

// AssignSlug sets the slug once. The slug does not follow later renames.
func (c *Category) AssignSlug(slug string) error {
	if c.slug != "" {
		return fmt.Errorf("slug is already assigned")
	}
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}
	c.slug = slug
	return nil
}

// ClearSlug drops an unsaved slug so a collided insert can be retried.
func (c *Category) ClearSlug() {
	if c.id == 0 {
		c.slug = ""
	}
}

// Edit replaces the editable fields.
func (c *Category) Edit(d Details, now time.Time) error {
	if err := d.normalize(); err != nil {
		return err
	}
	c.name = d.Name
	c.description = d.Description
	c.iconRef = d.IconRef
	c.sortOrder = d.SortOrder
	c.updatedAt = now
	return nil
}

// SetActive toggles availability for new listings.
func (c *Category) SetActive(active bool, now time.Time) {
	if c.isActive == active {
		return
	}
	c.isActive = active
	c.updatedAt = now
}
