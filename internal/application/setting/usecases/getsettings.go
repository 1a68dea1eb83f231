package usecases

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/application/setting/dto"
	"github.com/expohub/expohub/internal/domain/setting"
	"github.com/expohub/expohub/internal/shared/logger"
)

// GetSettingsUseCase lists every known key with its effective value.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	provider    *SettingProvider
	logger      logger.Interface
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase
func NewGetSettingsUseCase(settingRepo setting.Repository, provider *SettingProvider, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, provider: provider, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) ([]dto.SettingItem, error) {
	stored, err := uc.settingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	byKey := make(map[setting.Key]*setting.SiteSetting, len(stored))
	for _, s := range stored {
		byKey[s.Key()] = s
	}

	items := make([]dto.SettingItem, 0, len(setting.Keys))
	for _, key := range setting.Keys {
		def, _ := setting.DefinitionOf(key)
		item := dto.SettingItem{
			Key:         key.String(),
			ValueType:   string(def.Type),
			Description: def.Description,
		}
		if s, ok := byKey[key]; ok {
			updatedAt := s.UpdatedAt()
			item.Value = s.Value()
			item.Source = "database"
			item.UpdatedAt = &updatedAt
		} else {
			item.Value, item.Source = uc.provider.Raw(ctx, key)
		}
		items = append(items, item)
	}
	return items, nil
}
