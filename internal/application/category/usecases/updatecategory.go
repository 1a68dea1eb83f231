package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/category/dto"
	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/category"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	ID      uint
	Actor   user.Principal
	Details category.Details
	// IsActive is left unchanged when nil.
	IsActive *bool
}

// UpdateCategoryUseCase edits a category. Deactivating hides it from new
// listings; listings already filed under it keep it.
type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
	assets       common.AssetURLResolver
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(
	categoryRepo category.Repository,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		assets:       assets,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	if !user.HasCapability(cmd.Actor, user.CapabilityManageSettings) {
		return nil, apperrors.NewForbiddenError("managing categories requires administrator rights")
	}

	c, err := uc.categoryRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, err
	}

	now := biztime.NowUTC()
	if err := c.Edit(cmd.Details, now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.IsActive != nil {
		c.SetActive(*cmd.IsActive, now)
	}

	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		uc.logger.Errorw("failed to update category", "category_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("category updated", "category_id", c.ID(), "active", c.IsActive(), "actor_id", cmd.Actor.UserID)
	out := dto.ToCategoryDTO(c, func(ref string) string { return common.ResolveURL(uc.assets, ref) })
	return &out, nil
}
