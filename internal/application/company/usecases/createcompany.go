package usecases

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/company/dto"
	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/shared/services"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type CreateCompanyCommand struct {
	Actor   user.Principal
	Profile company.Profile
}

// CreateCompanyUseCase stores a new draft company with a unique slug.
type CreateCompanyUseCase struct {
	companyRepo company.Repository
	categories  common.CategoryReader
	dispatcher  *hooks.Dispatcher
	assets      common.AssetURLResolver
	logger      logger.Interface
}

func NewCreateCompanyUseCase(
	companyRepo company.Repository,
	categories common.CategoryReader,
	dispatcher *hooks.Dispatcher,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		categories:  categories,
		dispatcher:  dispatcher,
		assets:      assets,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*dto.CompanyDTO, error) {
	uc.logger.Infow("executing create company use case", "owner_id", cmd.Actor.UserID, "name", cmd.Profile.Name)

	if !user.HasCapability(cmd.Actor, user.CapabilityCreateCompany) {
		return nil, apperrors.NewForbiddenError("not allowed to create companies")
	}

	now := biztime.NowUTC()
	c, err := company.NewCompany(cmd.Actor.UserID, cmd.Profile, now)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := common.CheckCategory(ctx, uc.categories, cmd.Profile.CategoryID, nil); err != nil {
		return nil, err
	}

	exists := func(ctx context.Context, candidate string) (bool, error) {
		return uc.companyRepo.SlugExists(ctx, candidate, 0)
	}
	_, err = common.InsertWithSlug(ctx, services.Slugify(c.Name(), "company"), exists, func(ctx context.Context, slug string) error {
		c.ClearSlug()
		if err := c.AssignSlug(slug); err != nil {
			return err
		}
		return uc.companyRepo.Create(ctx, c)
	})
	if err != nil {
		uc.logger.Errorw("failed to create company", "owner_id", cmd.Actor.UserID, "error", err)
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	uc.dispatcher.Dispatch(ctx, []lifecycle.Event{{
		Type:       lifecycle.EventCreated,
		Ref:        c.Ref(),
		OwnerID:    c.OwnerID(),
		Title:      c.Name(),
		ActorID:    cmd.Actor.UserID,
		To:         lvo.StatusDraft,
		OccurredAt: now,
	}})

	uc.logger.Infow("company created", "company_id", c.ID(), "slug", c.Slug())
	return dto.ToCompanyDTO(c, true, func(ref string) string { return common.ResolveURL(uc.assets, ref) }), nil
}
