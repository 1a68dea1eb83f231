package usecases

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/exhibition/dto"
	"github.com/expohub/expohub/internal/domain/exhibition"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type ListExhibitionsQuery struct {
	Viewer     user.Principal
	Status     string
	OwnerID    uint
	City       string
	CategoryID uint
	Type       string
	Featured   *bool
	Page       int
	PageSize   int
}

// ListExhibitionsUseCase pages through exhibitions. Anonymous and regular
// callers see public listings only; owners may list their own in any status.
type ListExhibitionsUseCase struct {
	exhibitionRepo exhibition.Repository
	assets         common.AssetURLResolver
	logger         logger.Interface
}

func NewListExhibitionsUseCase(
	exhibitionRepo exhibition.Repository,
	assets common.AssetURLResolver,
	logger logger.Interface,
) *ListExhibitionsUseCase {
	return &ListExhibitionsUseCase{
		exhibitionRepo: exhibitionRepo,
		assets:         assets,
		logger:         logger,
	}
}

func (uc *ListExhibitionsUseCase) Execute(ctx context.Context, query ListExhibitionsQuery) (*dto.ListResult, error) {
	page := utils.Pagination{Page: query.Page, PageSize: query.PageSize}.Normalize()
	now := biztime.NowUTC()

	filter := exhibition.ListFilter{
		OwnerID:    query.OwnerID,
		City:       query.City,
		CategoryID: query.CategoryID,
		Featured:   query.Featured,
		Now:        now,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}

	if query.Status != "" {
		status, err := lvo.NewStatus(lvo.KindExhibition, query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = status
	}
	if query.Type != "" {
		switch t := exhibition.Type(query.Type); t {
		case exhibition.TypeUpcoming, exhibition.TypeCurrent, exhibition.TypeCompleted:
			filter.Type = t
		default:
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid exhibition type: %s", query.Type))
		}
	}

	ownView := query.OwnerID != 0 && query.OwnerID == query.Viewer.UserID
	privileged := ownView || user.HasCapability(query.Viewer, user.CapabilityModerate)
	if !privileged {
		switch filter.Status {
		case "":
			filter.Status = lvo.StatusPublished
		case lvo.StatusPublished, lvo.StatusCompleted:
		default:
			return nil, apperrors.NewForbiddenError("only public exhibitions can be listed")
		}
	}

	items, total, err := uc.exhibitionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list exhibitions", "error", err)
		return nil, fmt.Errorf("failed to list exhibitions: %w", err)
	}

	resolve := func(ref string) string { return common.ResolveURL(uc.assets, ref) }
	out := &dto.ListResult{
		Items:    make([]*dto.ExhibitionDTO, 0, len(items)),
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for _, e := range items {
		out.Items = append(out.Items, dto.ToExhibitionDTO(e, now, privileged, resolve))
	}
	return out, nil
}
