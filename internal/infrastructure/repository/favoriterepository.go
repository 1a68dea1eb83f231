package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/favorite"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

// FavoriteRepository implements favorite.Repository
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) error {
	model := &models.FavoriteModel{
		UserID:     f.UserID,
		EntityKind: f.Target.Kind().String(),
		EntityID:   f.Target.ID(),
		CreatedAt:  f.CreatedAt,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return favorite.ErrAlreadyFavorited
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	f.ID = model.ID
	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID uint, target lifecycle.EntityRef) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND entity_kind = ? AND entity_id = ?", userID, target.Kind().String(), target.ID()).
		Delete(&models.FavoriteModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID uint, target lifecycle.EntityRef) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.FavoriteModel{}).
		Where("user_id = ? AND entity_kind = ? AND entity_id = ?", userID, target.Kind().String(), target.ID()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

func (r *FavoriteRepository) CountByTarget(ctx context.Context, target lifecycle.EntityRef) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.FavoriteModel{}).
		Where("entity_kind = ? AND entity_id = ?", target.Kind().String(), target.ID()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uint, kind lvo.Kind) ([]*favorite.Favorite, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID)
	if kind != "" {
		query = query.Where("entity_kind = ?", kind.String())
	}
	var modelList []*models.FavoriteModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	out := make([]*favorite.Favorite, 0, len(modelList))
	for _, m := range modelList {
		ref, err := lifecycle.NewEntityRef(m.EntityKind, m.EntityID)
		if err != nil {
			continue
		}
		out = append(out, &favorite.Favorite{ID: m.ID, UserID: m.UserID, Target: ref, CreatedAt: m.CreatedAt})
	}
	return out, nil
}
