package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/exhibition"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/infrastructure/persistence/mappers"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

// ExhibitionRepository implements exhibition.Repository
type ExhibitionRepository struct {
	db     *gorm.DB
	mapper mappers.ExhibitionMapper
	logger logger.Interface
}

// NewExhibitionRepository creates a new exhibition repository
func NewExhibitionRepository(db *gorm.DB, logger logger.Interface) *ExhibitionRepository {
	return &ExhibitionRepository{
		db:     db,
		mapper: mappers.NewExhibitionMapper(),
		logger: logger,
	}
}

// Create inserts the exhibition. A slug collision is returned as a duplicate error.
func (r *ExhibitionRepository) Create(ctx context.Context, e *exhibition.Exhibition) error {
	model := r.mapper.ToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create exhibition: %w", err)
	}
	e.SetID(model.ID)
	r.logger.Infow("exhibition created", "id", model.ID, "slug", model.Slug)
	return nil
}

// Update writes editable and lifecycle columns. Counter columns are owned by
// the counter store and never written here.
func (r *ExhibitionRepository) Update(ctx context.Context, e *exhibition.Exhibition) error {
	model := r.mapper.ToModel(e)
	previousVersion := model.Version - 1

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ExhibitionModel{}).
		Where("id = ? AND version = ?", model.ID, previousVersion).
		Updates(map[string]any{
			"title":                 model.Title,
			"description":           model.Description,
			"short_description":     model.ShortDescription,
			"category_id":           model.CategoryID,
			"start_date":            model.StartDate,
			"end_date":              model.EndDate,
			"registration_deadline": model.RegistrationDeadline,
			"venue_name":            model.VenueName,
			"address":               model.Address,
			"city":                  model.City,
			"country":               model.Country,
			"contact_email":         model.ContactEmail,
			"contact_phone":         model.ContactPhone,
			"website":               model.Website,
			"is_free":               model.IsFree,
			"max_participants":      model.MaxParticipants,
			"logo_ref":              model.LogoRef,
			"banner_ref":            model.BannerRef,
			"is_featured":           model.IsFeatured,
			"status":                model.Status,
			"published_at":          model.PublishedAt,
			"moderated_by":          model.ModeratedBy,
			"moderated_at":          model.ModeratedAt,
			"moderator_notes":       model.ModeratorNotes,
			"rejection_reason":      model.RejectionReason,
			"version":               model.Version,
			"updated_at":            model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update exhibition", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update exhibition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return exhibition.ErrConcurrentUpdate
	}
	return nil
}

func (r *ExhibitionRepository) GetByID(ctx context.Context, id uint) (*exhibition.Exhibition, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ExhibitionRepository) GetBySlug(ctx context.Context, slug string) (*exhibition.Exhibition, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *ExhibitionRepository) first(ctx context.Context, query string, arg any) (*exhibition.Exhibition, error) {
	var model models.ExhibitionModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exhibition.ErrExhibitionNotFound
		}
		r.logger.Errorw("failed to get exhibition", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get exhibition: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ExhibitionRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ExhibitionModel{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check exhibition slug: %w", err)
	}
	return count > 0, nil
}

// List filters on the status readers see: a published exhibition past its
// end date matches "completed", not "published".
func (r *ExhibitionRepository) List(ctx context.Context, filter exhibition.ListFilter) ([]*exhibition.Exhibition, int64, error) {
	now := filter.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ExhibitionModel{})

	switch filter.Status {
	case "":
	case lvo.StatusCompleted:
		query = query.Where("status = ? OR (status = ? AND end_date < ?)", lvo.StatusCompleted, lvo.StatusPublished, now)
	case lvo.StatusPublished:
		query = query.Where("status = ? AND end_date >= ?", lvo.StatusPublished, now)
	default:
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
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	switch filter.Type {
	case exhibition.TypeUpcoming:
		query = query.Where("start_date > ?", now)
	case exhibition.TypeCurrent:
		query = query.Where("start_date <= ? AND end_date >= ?", now, now)
	case exhibition.TypeCompleted:
		query = query.Where("end_date < ?", now)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count exhibitions", "error", err)
		return nil, 0, fmt.Errorf("failed to count exhibitions: %w", err)
	}

	p := utils.Pagination{Page: filter.Page, PageSize: filter.PageSize}.Normalize()
	var modelList []*models.ExhibitionModel
	if err := query.Order("start_date ASC, id ASC").Offset(p.Offset()).Limit(p.PageSize).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list exhibitions", "error", err)
		return nil, 0, fmt.Errorf("failed to list exhibitions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ExhibitionRepository) ListPublishedEndedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*exhibition.Exhibition, error) {
	var modelList []*models.ExhibitionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND end_date < ?", lvo.StatusPublished, cutoff).
		Order("end_date ASC, id ASC").
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ended exhibitions: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

// RegistrationRepository implements exhibition.RegistrationRepository
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *exhibition.Registration) error {
	model := &models.RegistrationModel{
		ExhibitionID: reg.ExhibitionID,
		UserID:       reg.UserID,
		CreatedAt:    reg.CreatedAt,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return exhibition.ErrAlreadyRegistered
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	reg.ID = model.ID
	return nil
}

func (r *RegistrationRepository) CountByExhibition(ctx context.Context, exhibitionID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RegistrationModel{}).
		Where("exhibition_id = ?", exhibitionID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}
