package company

import (
	"fmt"
	"strings"
	"time"
)

// Product belongs to exactly one company; its slug is unique within it.
type Product struct {
	id             uint
	companyID      uint
	name           string
	slug           string
	description    string
	priceFrom      *int64
	isActive       bool
	viewsCount     int64
	inquiriesCount int64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewProduct(companyID uint, name, description string, priceFrom *int64, now time.Time) (*Product, error) {
	name = strings.TrimSpace(name)
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("product name exceeds maximum length of 200 characters")
	}
	if priceFrom != nil && *priceFrom < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	return &Product{
		companyID:   companyID,
		name:        name,
		description: description,
		priceFrom:   priceFrom,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProduct rebuilds a Product from persistence.
func ReconstructProduct(
	id, companyID uint,
	name, slug, description string,
	priceFrom *int64,
	isActive bool,
	viewsCount, inquiriesCount int64,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:             id,
		companyID:      companyID,
		name:           name,
		slug:           slug,
		description:    description,
		priceFrom:      priceFrom,
		isActive:       isActive,
		viewsCount:     viewsCount,
		inquiriesCount: inquiriesCount,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *Product) ID() uint              { return p.id }
func (p *Product) CompanyID() uint       { return p.companyID }
func (p *Product) Name() string          { return p.name }
func (p *Product) Slug() string          { return p.slug }
func (p *Product) Description() string   { return p.description }
func (p *Product) PriceFrom() *int64     { return p.priceFrom }
func (p *Product) IsActive() bool        { return p.isActive }
func (p *Product) ViewsCount() int64     { return p.viewsCount }
func (p *Product) InquiriesCount() int64 { return p.inquiriesCount }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }

// SetID sets the product ID (only for persistence layer use)
func (p *Product) SetID(id uint) {
	p.id = id
}

// AssignSlug sets the slug once.
func (p *Product) AssignSlug(slug string) error {
	if p.slug != "" {
		return fmt.Errorf("slug is already assigned")
	}
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}
	p.slug = slug
	return nil
}

// ClearSlug drops an unsaved slug so a collided insert can be retried.
func (p *Product) ClearSlug() {
	if p.id == 0 {
		p.slug = ""
	}
}
