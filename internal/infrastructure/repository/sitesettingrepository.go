package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expohub/expohub/internal/domain/setting"
	"github.com/expohub/expohub/internal/infrastructure/persistence/mappers"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
	"github.com/expohub/expohub/internal/shared/logger"
)

// SiteSettingRepository implements setting.Repository
type SiteSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SiteSettingMapper
}

// NewSiteSettingRepository creates a new SiteSettingRepository
func NewSiteSettingRepository(db *gorm.DB, logger logger.Interface) *SiteSettingRepository {
	return &SiteSettingRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSiteSettingMapper(),
	}
}

// GetByKey retrieves a setting by key
func (r *SiteSettingRepository) GetByKey(ctx context.Context, key setting.Key) (*setting.SiteSetting, error) {
	var model models.SiteSettingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("setting_key = ?", key.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting by key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// GetAll retrieves all stored settings; rows with unknown keys are skipped
func (r *SiteSettingRepository) GetAll(ctx context.Context) ([]*setting.SiteSetting, error) {
	var modelList []*models.SiteSettingModel
	if err := db.GetTxFromContext(ctx, r.db).Order("setting_key ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}
	settings := make([]*setting.SiteSetting, 0, len(modelList))
	for _, m := range modelList {
		s, err := r.mapper.ToDomain(m)
		if err != nil {
			r.logger.Warnw("skipping unknown setting", "key", m.SettingKey, "error", err)
			continue
		}
		settings = append(settings, s)
	}
	return settings, nil
}

// Upsert creates or updates a setting
func (r *SiteSettingRepository) Upsert(ctx context.Context, s *setting.SiteSetting) error {
	model := r.mapper.ToModel(s)
	// the key is the conflict target; a stale id must not collide on the primary key
	model.ID = 0
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "version", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}
