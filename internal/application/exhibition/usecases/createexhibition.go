package usecases

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/exhibition/dto"
	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/shared/services"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type CreateExhibitionCommand struct {
	Actor   user.Principal
	Details exhibition.Details
}

// CreateExhibitionUseCase stores a new draft with a unique slug.
type CreateExhibitionUseCase struct {
	exhibitionRepo exhibition.Repository
	categories     common.CategoryReader
	dispatcher     *hooks.Dispatcher
	assets         common.AssetURLResolver
	logger         logger.Interface
}

func NewCreateExhibitionUseCase(
	exhibitionRepo exhibition.Repository,
	categories common.CategoryReader,
	dispatcher *hooks.Dispatcher,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *CreateExhibitionUseCase {
	return &CreateExhibitionUseCase{
		exhibitionRepo: exhibitionRepo,
		categories:     categories,
		dispatcher:     dispatcher,
		assets:         assets,
		logger:         logger,
	}
}

func (uc *CreateExhibitionUseCase) Execute(ctx context.Context, cmd CreateExhibitionCommand) (*dto.ExhibitionDTO, error) {
	uc.logger.Infow("executing create exhibition use case", "owner_id", cmd.Actor.UserID, "title", cmd.Details.Title)

	if !user.HasCapability(cmd.Actor, user.CapabilityCreateExhibition) {
		return nil, apperrors.NewForbiddenError("only organizers can create exhibitions")
	}

	now := biztime.NowUTC()
	e, err := exhibition.NewExhibition(cmd.Actor.UserID, cmd.Details, now)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := common.CheckCategory(ctx, uc.categories, cmd.Details.CategoryID, nil); err != nil {
		return nil, err
	}

	base := services.Slugify(e.Title(), "exhibition")
	exists := func(ctx context.Context, candidate string) (bool, error) {
		return uc.exhibitionRepo.SlugExists(ctx, candidate, 0)
	}
	_, err = common.InsertWithSlug(ctx, base, exists, func(ctx context.Context, slug string) error {
		e.ClearSlug()
		if err := e.AssignSlug(slug); err != nil {
			return err
		}
		return uc.exhibitionRepo.Create(ctx, e)
	})
	if err != nil {
		uc.logger.Errorw("failed to create exhibition", "owner_id", cmd.Actor.UserID, "error", err)
		return nil, fmt.Errorf("failed to create exhibition: %w", err)
	}

	uc.dispatcher.Dispatch(ctx, []lifecycle.Event{{
		Type:       lifecycle.EventCreated,
		Ref:        e.Ref(),
		OwnerID:    e.OwnerID(),
		Title:      e.Title(),
		ActorID:    cmd.Actor.UserID,
		To:         lvo.StatusDraft,
		OccurredAt: now,
	}})

	uc.logger.Infow("exhibition created", "exhibition_id", e.ID(), "slug", e.Slug())
	return dto.ToExhibitionDTO(e, now, true, uc.resolve), nil
}

func (uc *CreateExhibitionUseCase) resolve(ref string) string {
	return common.ResolveURL(uc.assets, ref)
}
