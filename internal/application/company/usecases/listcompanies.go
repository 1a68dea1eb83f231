package usecases

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/company/dto"
	"github.com/expohub/expohub/internal/domain/company"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type ListCompaniesQuery struct {
	Viewer     user.Principal
	Status     string
	OwnerID    uint
	City       string
	CategoryID uint
	Page       int
	PageSize   int
}

type ListCompaniesUseCase struct {
	companyRepo company.Repository
	assets      common.AssetURLResolver
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, assets common.AssetURLResolver, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo, assets: assets, logger: logger}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, query ListCompaniesQuery) (*dto.ListResult, error) {
	page := utils.Pagination{Page: query.Page, PageSize: query.PageSize}.Normalize()
	filter := company.ListFilter{
		OwnerID:    query.OwnerID,
		City:       query.City,
		CategoryID: query.CategoryID,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	if query.Status != "" {
		status, err := lvo.NewStatus(lvo.KindCompany, query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = status
	}

	ownView := query.OwnerID != 0 && query.OwnerID == query.Viewer.UserID
	privileged := ownView || user.HasCapability(query.Viewer, user.CapabilityModerate)
	if !privileged {
		switch filter.Status {
		case "":
			filter.Status = lvo.StatusActive
		case lvo.StatusActive:
		default:
			return nil, apperrors.NewForbiddenError("only active companies can be listed")
		}
	}

	items, total, err := uc.companyRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	resolve := func(ref string) string { return common.ResolveURL(uc.assets, ref) }
	out := &dto.ListResult{
		Items:    make([]*dto.CompanyDTO, 0, len(items)),
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for _, c := range items {
		out.Items = append(out.Items, dto.ToCompanyDTO(c, privileged, resolve))
	}
	return out, nil
}
