package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/infrastructure/persistence/mappers"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

// ReviewRepository implements review.Repository
type ReviewRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB, logger logger.Interface) *ReviewRepository {
	return &ReviewRepository{db: db, logger: logger}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := mappers.ReviewToModel(rv)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return review.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	rv.SetID(model.ID)
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := mappers.ReviewToModel(rv)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"is_approved":  model.IsApproved,
			"is_published": model.IsPublished,
			"moderated_by": model.ModeratedBy,
			"moderated_at": model.ModeratedAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update review", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

// Delete removes the review and its votes.
func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("review_id = ?", id).Delete(&models.ReviewVoteModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete review votes: %w", err)
	}
	result := tx.Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return mappers.ReviewToEntity(&model)
}

func (r *ReviewRepository) ListByTarget(ctx context.Context, target lifecycle.EntityRef, onlyVisible bool, page, pageSize int) ([]*review.Review, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ReviewModel{}).
		Where("entity_kind = ? AND entity_id = ?", target.Kind().String(), target.ID())
	if onlyVisible {
		query = query.Where("is_approved = ? AND is_published = ?", true, true)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	p := utils.Pagination{Page: page, PageSize: pageSize}.Normalize()
	var modelList []*models.ReviewModel
	if err := query.Order("created_at DESC, id DESC").Offset(p.Offset()).Limit(p.PageSize).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	reviews := make([]*review.Review, 0, len(modelList))
	for _, m := range modelList {
		rv, err := mappers.ReviewToEntity(m)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, total, nil
}

func (r *ReviewRepository) AggregateVisible(ctx context.Context, target lifecycle.EntityRef) (review.Aggregate, error) {
	var row struct {
		Sum   int64
		Count int64
	}
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ReviewModel{}).
		Select("COALESCE(SUM(rating), 0) AS sum, COUNT(*) AS count").
		Where("entity_kind = ? AND entity_id = ? AND is_approved = ? AND is_published = ?",
			target.Kind().String(), target.ID(), true, true).
		Scan(&row).Error
	if err != nil {
		return review.Aggregate{}, fmt.Errorf("failed to aggregate reviews: %w", err)
	}
	return review.Aggregate{Sum: row.Sum, Count: row.Count}, nil
}

func (r *ReviewRepository) ListTargets(ctx context.Context) ([]lifecycle.EntityRef, error) {
	var rows []struct {
		EntityKind string
		EntityID   uint
	}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ReviewModel{}).
		Distinct("entity_kind", "entity_id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list review targets: %w", err)
	}
	refs := make([]lifecycle.EntityRef, 0, len(rows))
	for _, row := range rows {
		ref, err := lifecycle.NewEntityRef(row.EntityKind, row.EntityID)
		if err != nil {
			r.logger.Warnw("skipping review target", "kind", row.EntityKind, "id", row.EntityID, "error", err)
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// AddVote inserts the vote and bumps the counter in the caller's transaction.
func (r *ReviewRepository) AddVote(ctx context.Context, reviewID, userID uint, helpful bool) error {
	tx := db.GetTxFromContext(ctx, r.db)
	vote := &models.ReviewVoteModel{ReviewID: reviewID, UserID: userID, IsHelpful: helpful}
	if err := tx.Create(vote).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return review.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to create review vote: %w", err)
	}
	column := "not_helpful_count"
	if helpful {
		column = "helpful_count"
	}
	result := tx.Model(&models.ReviewModel{}).
		Where("id = ?", reviewID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to update review vote count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}
