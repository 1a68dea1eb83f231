package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/media/dto"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/media"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type AddImageCommand struct {
	Listing     lifecycle.EntityRef
	Actor       user.Principal
	Ref         string
	Title       string
	Description string
	SortOrder   int
}

// AddImageUseCase attaches an uploaded picture to an exhibition or a
// company gallery.
type AddImageUseCase struct {
	listings listings
	images   media.ImageRepository
	assets   common.AssetURLResolver
	logger   logger.Interface
}

func NewAddImageUseCase(
	targets common.Targets,
	images media.ImageRepository,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *AddImageUseCase {
	return &AddImageUseCase{
		listings: listings{targets: targets},
		images:   images,
		assets:   assets,
		logger:   logger,
	}
}

func (uc *AddImageUseCase) Execute(ctx context.Context, cmd AddImageCommand) (*dto.ImageDTO, error) {
	if _, err := uc.listings.forEdit(ctx, cmd.Listing, cmd.Actor); err != nil {
		return nil, err
	}

	img, err := media.NewImage(cmd.Listing, cmd.Ref, cmd.Title, cmd.Description, cmd.SortOrder, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	count, err := uc.images.CountByOwner(ctx, cmd.Listing)
	if err != nil {
		return nil, err
	}
	if count >= media.MaxImagesPerListing {
		return nil, apperrors.NewConflictError("image limit reached")
	}

	if err := uc.images.Create(ctx, img); err != nil {
		uc.logger.Errorw("failed to add image", "listing", cmd.Listing.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("image added", "listing", cmd.Listing.String(), "image_id", img.ID(), "actor_id", cmd.Actor.UserID)
	out := dto.ToImageDTO(img, uc.resolve)
	return &out, nil
}

func (uc *AddImageUseCase) resolve(ref string) string {
	return common.ResolveURL(uc.assets, ref)
}

type RemoveImageCommand struct {
	Listing lifecycle.EntityRef
	ImageID uint
	Actor   user.Principal
}

// RemoveImageUseCase deletes the row first and the stored file after. A
// file that cannot be removed is logged and left behind.
type RemoveImageUseCase struct {
	listings listings
	images   media.ImageRepository
	objects  ObjectDeleter
	logger   logger.Interface
}

func NewRemoveImageUseCase(
	targets common.Targets,
	images media.ImageRepository,
	objects ObjectDeleter,
	logger logger.Interface,
) *RemoveImageUseCase {
	return &RemoveImageUseCase{
		listings: listings{targets: targets},
		images:   images,
		objects:  objects,
		logger:   logger,
	}
}

func (uc *RemoveImageUseCase) Execute(ctx context.Context, cmd RemoveImageCommand) error {
	if _, err := uc.listings.forRemove(ctx, cmd.Listing, cmd.Actor); err != nil {
		return err
	}

	img, err := uc.images.GetByID(ctx, cmd.Listing, cmd.ImageID)
	if err != nil {
		if errors.Is(err, media.ErrImageNotFound) {
			return apperrors.NewNotFoundError("image not found")
		}
		return err
	}
	if err := uc.images.Delete(ctx, cmd.Listing, img.ID()); err != nil {
		if errors.Is(err, media.ErrImageNotFound) {
			return apperrors.NewNotFoundError("image not found")
		}
		return err
	}

	if uc.objects != nil {
		if err := uc.objects.Delete(ctx, img.Ref()); err != nil {
			uc.logger.Warnw("failed to delete image file", "ref", img.Ref(), "error", err)
		}
	}
	uc.logger.Infow("image removed", "listing", cmd.Listing.String(), "image_id", img.ID(), "actor_id", cmd.Actor.UserID)
	return nil
}

type ListImagesQuery struct {
	Listing lifecycle.EntityRef
	Viewer  user.Principal
}

type ListImagesUseCase struct {
	listings listings
	images   media.ImageRepository
	assets   common.AssetURLResolver
}

func NewListImagesUseCase(targets common.Targets, images media.ImageRepository, assets common.AssetURLResolver) *ListImagesUseCase {
	return &ListImagesUseCase{listings: listings{targets: targets}, images: images, assets: assets}
}

func (uc *ListImagesUseCase) Execute(ctx context.Context, query ListImagesQuery) ([]dto.ImageDTO, error) {
	if _, err := uc.listings.forRead(ctx, query.Listing, query.Viewer); err != nil {
		return nil, err
	}
	list, err := uc.images.ListByOwner(ctx, query.Listing)
	if err != nil {
		return nil, err
	}
	resolve := func(ref string) string { return common.ResolveURL(uc.assets, ref) }
	out := make([]dto.ImageDTO, 0, len(list))
	for _, img := range list {
		out = append(out, dto.ToImageDTO(img, resolve))
	}
	return out, nil
}
