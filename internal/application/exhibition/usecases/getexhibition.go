package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/exhibition/dto"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type GetExhibitionQuery struct {
	ID     uint
	Slug   string
	Viewer user.Principal
}

// GetExhibitionUseCase returns one exhibition with its effective status.
// Listings that are not public are visible only to owners and moderators.
type GetExhibitionUseCase struct {
	exhibitionRepo exhibition.Repository
	assets         common.AssetURLResolver
	logger         logger.Interface
}

func NewGetExhibitionUseCase(
	exhibitionRepo exhibition.Repository,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *GetExhibitionUseCase {
	return &GetExhibitionUseCase{
		exhibitionRepo: exhibitionRepo,
		assets:         assets,
		logger:         logger,
	}
}

func (uc *GetExhibitionUseCase) Execute(ctx context.Context, query GetExhibitionQuery) (*dto.ExhibitionDTO, error) {
	var (
		e   *exhibition.Exhibition
		err error
	)
	switch {
	case query.Slug != "":
		e, err = uc.exhibitionRepo.GetBySlug(ctx, query.Slug)
	case query.ID != 0:
		e, err = uc.exhibitionRepo.GetByID(ctx, query.ID)
	default:
		return nil, apperrors.NewValidationError("exhibition ID or slug is required")
	}
	if err != nil {
		if errors.Is(err, exhibition.ErrExhibitionNotFound) {
			return nil, apperrors.NewNotFoundError("exhibition not found")
		}
		uc.logger.Errorw("failed to load exhibition", "slug", query.Slug, "id", query.ID, "error", err)
		return nil, err
	}

	privileged := common.CanSeeUnpublished(e, query.Viewer)
	if !common.IsPublic(e) && !privileged {
		return nil, apperrors.NewNotFoundError("exhibition not found")
	}

	return dto.ToExhibitionDTO(e, biztime.NowUTC(), privileged, func(ref string) string {
		return common.ResolveURL(uc.assets, ref)
	}), nil
}
