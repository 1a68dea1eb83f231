package usecases

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/application/category/dto"
	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/category"
	"github.com/expohub/expohub/internal/domain/shared/services"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Actor   user.Principal
	Details category.Details
}

// CreateCategoryUseCase adds an industry with a unique slug.
type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	assets       common.AssetURLResolver
	logger       logger.Interface
}

func NewCreateCategoryUseCase(
	categoryRepo category.Repository,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		assets:       assets,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	if !user.HasCapability(cmd.Actor, user.CapabilityManageSettings) {
		return nil, apperrors.NewForbiddenError("managing categories requires administrator rights")
	}

	c, err := category.NewCategory(cmd.Details, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists := func(ctx context.Context, candidate string) (bool, error) {
		return uc.categoryRepo.SlugExists(ctx, candidate, 0)
	}
	_, err = common.InsertWithSlug(ctx, services.Slugify(c.Name(), "category"), exists, func(ctx context.Context, slug string) error {
		c.ClearSlug()
		if err := c.AssignSlug(slug); err != nil {
			return err
		}
		return uc.categoryRepo.Create(ctx, c)
	})
	if err != nil {
		uc.logger.Errorw("failed to create category", "name", c.Name(), "error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	uc.logger.Infow("category created", "category_id", c.ID(), "slug", c.Slug(), "actor_id", cmd.Actor.UserID)
	out := dto.ToCategoryDTO(c, uc.resolve)
	return &out, nil
}

func (uc *CreateCategoryUseCase) resolve(ref string) string {
	return common.ResolveURL(uc.assets, ref)
}
