package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/company/dto"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type GetCompanyQuery struct {
	ID     uint
	Slug   string
	Viewer user.Principal
}

// GetCompanyUseCase returns a company with its products.
type GetCompanyUseCase struct {
	companyRepo company.Repository
	productRepo company.ProductRepository
	assets      common.AssetURLResolver
	logger      logger.Interface
}

func NewGetCompanyUseCase(
	companyRepo company.Repository,
	productRepo company.ProductRepository,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		productRepo: productRepo,
		assets:      assets,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, query GetCompanyQuery) (*dto.CompanyDTO, error) {
	var (
		c   *company.Company
		err error
	)
	switch {
	case query.Slug != "":
		c, err = uc.companyRepo.GetBySlug(ctx, query.Slug)
	case query.ID != 0:
		c, err = uc.companyRepo.GetByID(ctx, query.ID)
	default:
		return nil, apperrors.NewValidationError("company ID or slug is required")
	}
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		uc.logger.Errorw("failed to load company", "slug", query.Slug, "id", query.ID, "error", err)
		return nil, err
	}

	privileged := common.CanSeeUnpublished(c, query.Viewer)
	if !common.IsPublic(c) && !privileged {
		return nil, apperrors.NewNotFoundError("company not found")
	}

	out := dto.ToCompanyDTO(c, privileged, func(ref string) string { return common.ResolveURL(uc.assets, ref) })
	products, err := uc.productRepo.ListByCompany(ctx, c.ID())
	if err != nil {
		uc.logger.Warnw("failed to load products", "company_id", c.ID(), "error", err)
		return out, nil
	}
	for _, p := range products {
		if p.IsActive() || privileged {
			out.Products = append(out.Products, dto.ToProductDTO(p))
		}
	}
	return out, nil
}
