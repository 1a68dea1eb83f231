package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/infrastructure/persistence/mappers"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

// CompanyRepository implements company.Repository
type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
	logger logger.Interface
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB, logger logger.Interface) *CompanyRepository {
	return &CompanyRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
		logger: logger,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	c.SetID(model.ID)
	r.logger.Infow("company created", "id", model.ID, "slug", model.Slug)
	return nil
}

// Update writes profile and lifecycle columns; counters are left alone.
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	previousVersion := model.Version - 1

	result := db.GetTxFromContext(ctx, r.db).Model(&models.CompanyModel{}).
		Where("id = ? AND version = ?", model.ID, previousVersion).
		Updates(map[string]any{
			"name":              model.Name,
			"description":       model.Description,
			"short_description": model.ShortDescription,
			"category_id":       model.CategoryID,
			"city":              model.City,
			"country":           model.Country,
			"address":           model.Address,
			"website":           model.Website,
			"email":             model.Email,
			"phone":             model.Phone,
			"founded_year":      model.FoundedYear,
			"employees_count":   model.EmployeesCount,
			"logo_ref":          model.LogoRef,
			"is_verified":       model.IsVerified,
			"is_premium":        model.IsPremium,
			"status":            model.Status,
			"published_at":      model.PublishedAt,
			"moderated_by":      model.ModeratedBy,
			"moderated_at":      model.ModeratedAt,
			"moderator_notes":   model.ModeratorNotes,
			"rejection_reason":  model.RejectionReason,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update company", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return company.ErrConcurrentUpdate
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CompanyRepository) GetBySlug(ctx context.Context, slug string) (*company.Company, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *CompanyRepository) first(ctx context.Context, query string, arg any) (*company.Company, error) {
	var model models.CompanyModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, company.ErrCompanyNotFound
		}
		r.logger.Errorw("failed to get company", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CompanyRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CompanyModel{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check company slug: %w", err)
	}
	return count > 0, nil
}

func (r *CompanyRepository) List(ctx context.Context, filter company.ListFilter) ([]*company.Company, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CompanyModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count companies", "error", err)
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	p := utils.Pagination{Page: filter.Page, PageSize: filter.PageSize}.Normalize()
	var modelList []*models.CompanyModel
	if err := query.Order("is_premium DESC, rating DESC, id ASC").Offset(p.Offset()).Limit(p.PageSize).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list companies", "error", err)
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ProductRepository implements company.ProductRepository
type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db, mapper: mappers.NewCompanyMapper()}
}

func (r *ProductRepository) Create(ctx context.Context, p *company.Product) error {
	model := r.mapper.ProductToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	p.SetID(model.ID)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*company.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProductRepository) GetBySlug(ctx context.Context, companyID uint, slug string) (*company.Product, error) {
	return r.first(ctx, "company_id = ? AND slug = ?", companyID, slug)
}

func (r *ProductRepository) first(ctx context.Context, query string, args ...any) (*company.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, company.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.mapper.ProductToEntity(&model), nil
}

func (r *ProductRepository) SlugExists(ctx context.Context, companyID uint, slug string, excludeID uint) (bool, error) {
	var count int64
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{}).
		Where("company_id = ? AND slug = ?", companyID, slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check product slug: %w", err)
	}
	return count > 0, nil
}

func (r *ProductRepository) ListByCompany(ctx context.Context, companyID uint) ([]*company.Product, error) {
	var modelList []*models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]*company.Product, 0, len(modelList))
	for _, m := range modelList {
		products = append(products, r.mapper.ProductToEntity(m))
	}
	return products, nil
}

// ContactRepository implements company.ContactRepository
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact request repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, req *company.ContactRequest) error {
	model := &models.ContactRequestModel{
		CompanyID: req.CompanyID,
		ProductID: req.ProductID,
		UserID:    req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: req.CreatedAt,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact request: %w", err)
	}
	req.ID = model.ID
	return nil
}

// CountByCompany counts company-level requests; product inquiries are excluded.
func (r *ContactRepository) CountByCompany(ctx context.Context, companyID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ContactRequestModel{}).
		Where("company_id = ? AND product_id IS NULL", companyID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count contact requests: %w", err)
	}
	return count, nil
}
