// Package category serves the industry list and its admin editing.
package category

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/category/dto"
	"github.com/expohub/expohub/internal/application/category/usecases"
	"github.com/expohub/expohub/internal/domain/category"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type createCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type updateCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCategoryCommand) (*dto.CategoryDTO, error)
}

type listCategoriesUseCase interface {
	Execute(ctx context.Context, query usecases.ListCategoriesQuery) ([]dto.CategoryDTO, error)
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=2000"`
	IconRef     string `json:"icon_ref" binding:"max=500"`
	SortOrder   int    `json:"sort_order" binding:"gte=0"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (r *CategoryRequest) details() category.Details {
	return category.Details{
		Name:        r.Name,
		Description: r.Description,
		IconRef:     r.IconRef,
		SortOrder:   r.SortOrder,
	}
}

type Handler struct {
	createUC createCategoryUseCase
	updateUC updateCategoryUseCase
	listUC   listCategoriesUseCase
	logger   logger.Interface
}

func NewHandler(
	createUC createCategoryUseCase,
	updateUC updateCategoryUseCase,
	listUC listCategoriesUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// List handles GET /categories. Admins may pass include_inactive=true.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Param		include_inactive	query		bool	false	"Admins only"
//	@Success	200					{object}	utils.APIResponse{data=[]dto.CategoryDTO}
//	@Router		/categories [get]
func (h *Handler) List(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))
	items, err := h.listUC.Execute(c.Request.Context(), usecases.ListCategoriesQuery{
		Viewer:          middleware.GetPrincipal(c),
		IncludeInactive: includeInactive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Create handles POST /admin/categories
func (h *Handler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}
	out, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Actor:   middleware.GetPrincipal(c),
		Details: req.details(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, out, "Category created")
}

// Update handles PUT /admin/categories/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}
	out, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		ID:       id,
		Actor:    middleware.GetPrincipal(c),
		Details:  req.details(),
		IsActive: req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Category updated", out)
}
