package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/company/dto"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type UpdateCompanyCommand struct {
	ID      uint
	Actor   user.Principal
	Profile company.Profile
	LogoRef *string
}

type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	categories  common.CategoryReader
	assets      common.AssetURLResolver
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(
	companyRepo company.Repository,
	categories common.CategoryReader,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{companyRepo: companyRepo, categories: categories, assets: assets, logger: logger}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*dto.CompanyDTO, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, err
	}
	if c.OwnerID() != cmd.Actor.UserID && !user.HasCapability(cmd.Actor, user.CapabilityModerate) {
		return nil, apperrors.NewForbiddenError("only the owner can edit this company")
	}

	if err := common.CheckCategory(ctx, uc.categories, cmd.Profile.CategoryID, c.Profile().CategoryID); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	if err := c.UpdateProfile(cmd.Profile, now); err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.LogoRef != nil {
		c.SetLogo(*cmd.LogoRef, now)
	}

	if err := uc.companyRepo.Update(ctx, c); err != nil {
		if errors.Is(err, company.ErrConcurrentUpdate) {
			return nil, apperrors.NewConflictError("company was modified concurrently, retry")
		}
		uc.logger.Errorw("failed to update company", "company_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("company updated", "company_id", c.ID(), "version", c.Version())
	return dto.ToCompanyDTO(c, true, func(ref string) string { return common.ResolveURL(uc.assets, ref) }), nil
}
