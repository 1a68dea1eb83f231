package usecases

import (
	"context"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/review/dto"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/review"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type ListReviewsQuery struct {
	Target   lifecycle.EntityRef
	Viewer   user.Principal
	Page     int
	PageSize int
}

// ListReviewsUseCase pages the reviews of a public target. Moderators also
// see reviews that do not count toward the rating.
type ListReviewsUseCase struct {
	reviews review.Repository
	targets common.Targets
	logger  logger.Interface
}

func NewListReviewsUseCase(reviews review.Repository, targets common.Targets, logger logger.Interface) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviews: reviews, targets: targets, logger: logger}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, query ListReviewsQuery) (*dto.ListResult, error) {
	target, err := uc.targets.LoadPublic(ctx, query.Target)
	if err != nil {
		return nil, err
	}

	page := utils.Pagination{Page: query.Page, PageSize: query.PageSize}.Normalize()
	onlyVisible := !user.HasCapability(query.Viewer, user.CapabilityModerate)
	items, total, err := uc.reviews.ListByTarget(ctx, query.Target, onlyVisible, page.Page, page.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list reviews", "target", query.Target.String(), "error", err)
		return nil, err
	}

	out := &dto.ListResult{
		Items:    make([]*dto.ReviewDTO, 0, len(items)),
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Rating:   svo.ZeroRating.String(),
	}
	if rated, ok := target.(interface{ Stats() svo.Stats }); ok {
		out.Rating = rated.Stats().Rating.String()
		out.ReviewsCount = rated.Stats().ReviewsCount
	}
	for _, r := range items {
		out.Items = append(out.Items, dto.ToReviewDTO(r))
	}
	return out, nil
}
