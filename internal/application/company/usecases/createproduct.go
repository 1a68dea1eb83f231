package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/company/dto"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/shared/services"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type CreateProductCommand struct {
	CompanyID   uint
	Actor       user.Principal
	Name        string
	Description string
	PriceFrom   *int64
}

// CreateProductUseCase adds a product. Product slugs are unique per company.
type CreateProductUseCase struct {
	companyRepo company.Repository
	productRepo company.ProductRepository
	logger      logger.Interface
}

func NewCreateProductUseCase(
	companyRepo company.Repository,
	productRepo company.ProductRepository,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		companyRepo: companyRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*dto.ProductDTO, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, err
	}
	if c.OwnerID() != cmd.Actor.UserID {
		return nil, apperrors.NewForbiddenError("only the owner can add products")
	}
	if c.Lifecycle().IsTerminal() {
		return nil, apperrors.NewConflictError("company is suspended")
	}

	p, err := company.NewProduct(c.ID(), cmd.Name, cmd.Description, cmd.PriceFrom, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists := func(ctx context.Context, candidate string) (bool, error) {
		return uc.productRepo.SlugExists(ctx, c.ID(), candidate, 0)
	}
	_, err = common.InsertWithSlug(ctx, services.Slugify(p.Name(), "product"), exists, func(ctx context.Context, slug string) error {
		p.ClearSlug()
		if err := p.AssignSlug(slug); err != nil {
			return err
		}
		return uc.productRepo.Create(ctx, p)
	})
	if err != nil {
		uc.logger.Errorw("failed to create product", "company_id", c.ID(), "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	uc.logger.Infow("product created", "company_id", c.ID(), "product_id", p.ID(), "slug", p.Slug())
	out := dto.ToProductDTO(p)
	return &out, nil
}
