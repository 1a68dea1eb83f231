package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/exhibition/dto"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type UpdateExhibitionCommand struct {
	ID        uint
	Actor     user.Principal
	Details   exhibition.Details
	LogoRef   *string
	BannerRef *string
}

// UpdateExhibitionUseCase edits a listing. The slug never changes.
type UpdateExhibitionUseCase struct {
	exhibitionRepo exhibition.Repository
	categories     common.CategoryReader
	assets         common.AssetURLResolver
	logger         logger.Interface
}

func NewUpdateExhibitionUseCase(
	exhibitionRepo exhibition.Repository,
	categories common.CategoryReader,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *UpdateExhibitionUseCase {
	return &UpdateExhibitionUseCase{
		exhibitionRepo: exhibitionRepo,
		categories:     categories,
		assets:         assets,
		logger:         logger,
	}
}

func (uc *UpdateExhibitionUseCase) Execute(ctx context.Context, cmd UpdateExhibitionCommand) (*dto.ExhibitionDTO, error) {
	e, err := uc.exhibitionRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, exhibition.ErrExhibitionNotFound) {
			return nil, apperrors.NewNotFoundError("exhibition not found")
		}
		return nil, err
	}
	if e.OwnerID() != cmd.Actor.UserID && !user.HasCapability(cmd.Actor, user.CapabilityModerate) {
		return nil, apperrors.NewForbiddenError("only the owner can edit this exhibition")
	}

	if err := common.CheckCategory(ctx, uc.categories, cmd.Details.CategoryID, e.Details().CategoryID); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	if err := e.UpdateDetails(cmd.Details, now); err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.LogoRef != nil || cmd.BannerRef != nil {
		logo, banner := e.LogoRef(), e.BannerRef()
		if cmd.LogoRef != nil {
			logo = *cmd.LogoRef
		}
		if cmd.BannerRef != nil {
			banner = *cmd.BannerRef
		}
		e.SetMedia(logo, banner, now)
	}

	if err := uc.exhibitionRepo.Update(ctx, e); err != nil {
		if errors.Is(err, exhibition.ErrConcurrentUpdate) {
			return nil, apperrors.NewConflictError("exhibition was modified concurrently, retry")
		}
		uc.logger.Errorw("failed to update exhibition", "exhibition_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("exhibition updated", "exhibition_id", e.ID(), "version", e.Version())
	return dto.ToExhibitionDTO(e, now, true, func(ref string) string {
		return common.ResolveURL(uc.assets, ref)
	}), nil
}
