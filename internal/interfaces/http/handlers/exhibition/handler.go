// Package exhibition serves the exhibition catalogue endpoints.
package exhibition

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/exhibition/dto"
	"github.com/expohub/expohub/internal/application/exhibition/usecases"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type createExhibitionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateExhibitionCommand) (*dto.ExhibitionDTO, error)
}

type updateExhibitionUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateExhibitionCommand) (*dto.ExhibitionDTO, error)
}

type getExhibitionUseCase interface {
	Execute(ctx context.Context, query usecases.GetExhibitionQuery) (*dto.ExhibitionDTO, error)
}

type listExhibitionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListExhibitionsQuery) (*dto.ListResult, error)
}

type recordViewUseCase interface {
	Execute(ctx context.Context, exhibitionID uint, viewerKey string) bool
}

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type Handler struct {
	createUC   createExhibitionUseCase
	updateUC   updateExhibitionUseCase
	getUC      getExhibitionUseCase
	listUC     listExhibitionsUseCase
	viewUC     recordViewUseCase
	registerUC registerUseCase
	logger     logger.Interface
}

func NewHandler(
	createUC createExhibitionUseCase,
	updateUC updateExhibitionUseCase,
	getUC getExhibitionUseCase,
	listUC listExhibitionsUseCase,
	viewUC recordViewUseCase,
	registerUC registerUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:   createUC,
		updateUC:   updateUC,
		getUC:      getUC,
		listUC:     listUC,
		viewUC:     viewUC,
		registerUC: registerUC,
		logger:     logger,
	}
}

// Create handles POST /exhibitions
//
//	@Summary	Create an exhibition draft
//	@Tags		exhibitions
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		request	body		ExhibitionRequest	true	"Exhibition details"
//	@Success	201		{object}	utils.APIResponse{data=dto.ExhibitionDTO}
//	@Failure	400		{object}	utils.APIResponse
//	@Failure	403		{object}	utils.APIResponse
//	@Router		/exhibitions [post]
func (h *Handler) Create(c *gin.Context) {
	var req ExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create exhibition", "error", err)
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCreateCommand(middleware.GetPrincipal(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Exhibition created")
}

// Update handles PUT /exhibitions/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "exhibition")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id, middleware.GetPrincipal(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Exhibition updated", result)
}

// Get handles GET /exhibitions/:id. A numeric value is an ID; anything else
// is looked up as a slug.
//
//	@Summary	Get an exhibition by ID or slug
//	@Tags		exhibitions
//	@Produce	json
//	@Param		id	path		string	true	"Exhibition ID or slug"
//	@Success	200	{object}	utils.APIResponse{data=dto.ExhibitionDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/exhibitions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	query := usecases.GetExhibitionQuery{Viewer: middleware.GetPrincipal(c)}
	var param lookupParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("exhibition not found"))
		return
	}
	if id, err := strconv.ParseUint(param.Value, 10, 64); err == nil && id > 0 {
		query.ID = uint(id)
	} else {
		query.Slug = param.Value
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /exhibitions
//
//	@Summary	List exhibitions
//	@Tags		exhibitions
//	@Produce	json
//	@Param		status		query		string	false	"Status filter (moderators and owners only)"
//	@Param		type		query		string	false	"upcoming, current or completed"
//	@Param		city		query		string	false	"City"
//	@Param		featured	query		bool	false	"Featured only"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	utils.APIResponse{data=utils.ListResponse}
//	@Router		/exhibitions [get]
func (h *Handler) List(c *gin.Context) {
	query, err := parseListQuery(c, middleware.GetPrincipal(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// RecordView handles POST /exhibitions/:id/view. Repeated views by the same
// viewer inside the dedup window are not counted.
func (h *Handler) RecordView(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "exhibition")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	counted := h.viewUC.Execute(c.Request.Context(), id, middleware.ViewerKey(c))
	utils.SuccessResponse(c, http.StatusOK, "", ViewResponse{Counted: counted})
}

// Register handles POST /exhibitions/:id/register
func (h *Handler) Register(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "exhibition")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		ExhibitionID: id,
		Actor:        middleware.GetPrincipal(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, RegistrationResponse{
		RegistrationID: result.RegistrationID,
		ExhibitionID:   result.ExhibitionID,
	}, "Registered")
}
