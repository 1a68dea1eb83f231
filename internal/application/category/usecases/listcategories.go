package usecases

import (
	"context"

	"github.com/expohub/expohub/internal/application/category/dto"
	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/category"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/logger"
)

type ListCategoriesQuery struct {
	Viewer user.Principal
	// IncludeInactive is honored for administrators only.
	IncludeInactive bool
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	assets       common.AssetURLResolver
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, assets common.AssetURLResolver, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo, assets: assets, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query ListCategoriesQuery) ([]dto.CategoryDTO, error) {
	activeOnly := !(query.IncludeInactive && user.HasCapability(query.Viewer, user.CapabilityManageSettings))
	list, err := uc.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	resolve := func(ref string) string { return common.ResolveURL(uc.assets, ref) }
	out := make([]dto.CategoryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCategoryDTO(c, resolve))
	}
	return out, nil
}
