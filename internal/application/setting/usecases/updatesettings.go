package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/setting"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type UpdateSettingsCommand struct {
	Actor  user.Principal
	Values map[string]string
}

// UpdateSettingsUseCase validates and stores a batch of settings atomically.
type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	txManager   common.TransactionManager
	provider    *SettingProvider
	logger      logger.Interface
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase
func NewUpdateSettingsUseCase(
	settingRepo setting.Repository,
	txManager common.TransactionManager,
	provider *SettingProvider,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		txManager:   txManager,
		provider:    provider,
		logger:      logger,
	}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) error {
	if !user.HasCapability(cmd.Actor, user.CapabilityManageSettings) {
		return apperrors.NewForbiddenError("managing settings requires administrator rights")
	}
	if len(cmd.Values) == 0 {
		return apperrors.NewValidationError("no settings to update")
	}

	now := biztime.NowUTC()
	keys := make([]setting.Key, 0, len(cmd.Values))
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for raw, value := range cmd.Values {
			key, err := setting.ParseKey(raw)
			if err != nil {
				return apperrors.NewValidationError(fmt.Sprintf("unknown setting: %s", raw))
			}
			s, err := uc.settingRepo.GetByKey(ctx, key)
			if errors.Is(err, setting.ErrSettingNotFound) {
				s, err = setting.NewSiteSetting(key, now)
			}
			if err != nil {
				return err
			}
			if err := s.SetRaw(value, cmd.Actor.UserID, now); err != nil {
				return apperrors.NewValidationError(fmt.Sprintf("%s: %v", key, err))
			}
			if err := uc.settingRepo.Upsert(ctx, s); err != nil {
				return err
			}
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to update settings", "error", err)
		return fmt.Errorf("failed to update settings: %w", err)
	}

	uc.provider.Invalidate(keys...)
	uc.logger.Infow("settings updated", "keys", keys, "updated_by", cmd.Actor.UserID)
	return nil
}
