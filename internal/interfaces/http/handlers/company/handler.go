// Package company serves company profiles, their products and inquiries.
package company

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/company/dto"
	"github.com/expohub/expohub/internal/application/company/usecases"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type createCompanyUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCompanyCommand) (*dto.CompanyDTO, error)
}

type updateCompanyUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCompanyCommand) (*dto.CompanyDTO, error)
}

type getCompanyUseCase interface {
	Execute(ctx context.Context, query usecases.GetCompanyQuery) (*dto.CompanyDTO, error)
}

type listCompaniesUseCase interface {
	Execute(ctx context.Context, query usecases.ListCompaniesQuery) (*dto.ListResult, error)
}

type createProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*dto.ProductDTO, error)
}

type viewRecorder interface {
	Company(ctx context.Context, companyID uint, viewerKey string) bool
	Product(ctx context.Context, companyID, productID uint, viewerKey string) bool
}

type submitContactUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitContactCommand) (*usecases.SubmitContactResult, error)
}

type Handler struct {
	createUC        createCompanyUseCase
	updateUC        updateCompanyUseCase
	getUC           getCompanyUseCase
	listUC          listCompaniesUseCase
	createProductUC createProductUseCase
	views           viewRecorder
	contactUC       submitContactUseCase
	logger          logger.Interface
}

func NewHandler(
	createUC createCompanyUseCase,
	updateUC updateCompanyUseCase,
	getUC getCompanyUseCase,
	listUC listCompaniesUseCase,
	createProductUC createProductUseCase,
	views viewRecorder,
	contactUC submitContactUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:        createUC,
		updateUC:        updateUC,
		getUC:           getUC,
		listUC:          listUC,
		createProductUC: createProductUC,
		views:           views,
		contactUC:       contactUC,
		logger:          logger,
	}
}

// Create handles POST /companies
//
//	@Summary	Create a company profile draft
//	@Tags		companies
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		request	body		CompanyRequest	true	"Company profile"
//	@Success	201		{object}	utils.APIResponse{data=dto.CompanyDTO}
//	@Failure	400		{object}	utils.APIResponse
//	@Router		/companies [post]
func (h *Handler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create company", "error", err)
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCreateCommand(middleware.GetPrincipal(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Company created")
}

// Update handles PUT /companies/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id, middleware.GetPrincipal(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company updated", result)
}

// Get handles GET /companies/:id where id may also be a slug.
func (h *Handler) Get(c *gin.Context) {
	query := usecases.GetCompanyQuery{Viewer: middleware.GetPrincipal(c)}
	var param lookupParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("company not found"))
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

// List handles GET /companies
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

// RecordView handles POST /companies/:id/view
func (h *Handler) RecordView(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	counted := h.views.Company(c.Request.Context(), id, middleware.ViewerKey(c))
	utils.SuccessResponse(c, http.StatusOK, "", ViewResponse{Counted: counted})
}

// CreateProduct handles POST /companies/:id/products
func (h *Handler) CreateProduct(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.createProductUC.Execute(c.Request.Context(), usecases.CreateProductCommand{
		CompanyID:   id,
		Actor:       middleware.GetPrincipal(c),
		Name:        req.Name,
		Description: req.Description,
		PriceFrom:   req.PriceFrom,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Product created")
}

// RecordProductView handles POST /companies/:id/products/:productId/view
func (h *Handler) RecordProductView(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	productID, err := utils.ParseUintParam(c, "productId", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	counted := h.views.Product(c.Request.Context(), companyID, productID, middleware.ViewerKey(c))
	utils.SuccessResponse(c, http.StatusOK, "", ViewResponse{Counted: counted})
}

// SubmitContact handles POST /companies/:id/contact
//
//	@Summary	Send an inquiry to a company
//	@Tags		companies
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Company ID"
//	@Param		request	body		ContactRequest	true	"Inquiry"
//	@Success	201		{object}	utils.APIResponse{data=ContactResponse}
//	@Failure	404		{object}	utils.APIResponse
//	@Failure	429		{object}	utils.APIResponse
//	@Router		/companies/{id}/contact [post]
func (h *Handler) SubmitContact(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.contactUC.Execute(c.Request.Context(), req.ToCommand(id, middleware.GetPrincipal(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ContactResponse{RequestID: result.RequestID}, "Inquiry sent")
}
