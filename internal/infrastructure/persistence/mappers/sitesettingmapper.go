package mappers

import (
	"github.com/expohub/expohub/internal/domain/setting"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
)

// SiteSettingMapper handles conversion between domain and persistence models
type SiteSettingMapper interface {
	ToDomain(model *models.SiteSettingModel) (*setting.SiteSetting, error)
	ToModel(entity *setting.SiteSetting) *models.SiteSettingModel
}

type siteSettingMapper struct{}

// NewSiteSettingMapper creates a new SiteSettingMapper
func NewSiteSettingMapper() SiteSettingMapper {
	return &siteSettingMapper{}
}

// ToDomain converts a persistence model to a domain entity
func (m *siteSettingMapper) ToDomain(model *models.SiteSettingModel) (*setting.SiteSetting, error) {
	if model == nil {
		return nil, nil
	}
	return setting.ReconstructSiteSetting(
		model.ID,
		setting.Key(model.SettingKey),
		model.Value,
		model.UpdatedBy,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model
func (m *siteSettingMapper) ToModel(entity *setting.SiteSetting) *models.SiteSettingModel {
	if entity == nil {
		return nil
	}
	return &models.SiteSettingModel{
		ID:         entity.ID(),
		SettingKey: entity.Key().String(),
		Value:      entity.Value(),
		UpdatedBy:  entity.UpdatedBy(),
		Version:    entity.Version(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}
