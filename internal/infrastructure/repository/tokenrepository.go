package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/token"
	"github.com/expohub/expohub/internal/infrastructure/persistence/mappers"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
	"github.com/expohub/expohub/internal/shared/logger"
)

// TokenRepository implements token.Repository
type TokenRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB, logger logger.Interface) *TokenRepository {
	return &TokenRepository{db: db, logger: logger}
}

// Create inserts a token; a colliding hash surfaces as a duplicate error.
func (r *TokenRepository) Create(ctx context.Context, t *token.Token) error {
	model := mappers.TokenToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *TokenRepository) GetByHash(ctx context.Context, purpose token.Purpose, tokenHash string) (*token.Token, error) {
	var model models.TokenModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("token_hash = ? AND purpose = ?", tokenHash, purpose.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, token.ErrTokenNotFound
		}
		r.logger.Errorw("failed to get token", "purpose", purpose, "error", err)
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return mappers.TokenToEntity(&model), nil
}

func (r *TokenRepository) InvalidateLive(ctx context.Context, userID uint, purpose token.Purpose, now time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.TokenModel{}).
		Where("user_id = ? AND purpose = ? AND is_used = ? AND expires_at > ?", userID, purpose.String(), false, now).
		Updates(map[string]any{
			"is_used": true,
			"used_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to invalidate tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ConsumeIfValid is a single conditional UPDATE; the affected row count
// decides which of several concurrent consumers wins.
func (r *TokenRepository) ConsumeIfValid(ctx context.Context, id uint, now time.Time, ipAddress string) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.TokenModel{}).
		Where("id = ? AND is_used = ? AND expires_at > ?", id, false, now).
		Updates(map[string]any{
			"is_used":    true,
			"used_at":    now,
			"ip_address": ipAddress,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to consume token: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *TokenRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("expires_at < ? OR (is_used = ? AND used_at < ?)", cutoff, true, cutoff).
		Delete(&models.TokenModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete stale tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
