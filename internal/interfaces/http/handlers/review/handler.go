// Package review serves reviews of exhibitions and companies.
package review

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/review/dto"
	"github.com/expohub/expohub/internal/application/review/usecases"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type submitReviewUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitReviewCommand) (*dto.ReviewDTO, error)
}

type listReviewsUseCase interface {
	Execute(ctx context.Context, query usecases.ListReviewsQuery) (*dto.ListResult, error)
}

type moderateReviewUseCase interface {
	Execute(ctx context.Context, cmd usecases.ModerateReviewCommand) (*dto.ReviewDTO, error)
}

type deleteReviewUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteReviewCommand) error
}

type voteReviewUseCase interface {
	Execute(ctx context.Context, cmd usecases.VoteReviewCommand) error
}

type Handler struct {
	submitUC   submitReviewUseCase
	listUC     listReviewsUseCase
	moderateUC moderateReviewUseCase
	deleteUC   deleteReviewUseCase
	voteUC     voteReviewUseCase
	logger     logger.Interface
}

func NewHandler(
	submitUC submitReviewUseCase,
	listUC listReviewsUseCase,
	moderateUC moderateReviewUseCase,
	deleteUC deleteReviewUseCase,
	voteUC voteReviewUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC:   submitUC,
		listUC:     listUC,
		moderateUC: moderateUC,
		deleteUC:   deleteUC,
		voteUC:     voteUC,
		logger:     logger,
	}
}

// Submit handles POST /targets/:kind/:id/reviews
//
//	@Summary	Review an exhibition or company
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		kind	path		string				true	"exhibition or company"
//	@Param		id		path		int					true	"Entity ID"
//	@Param		request	body		SubmitReviewRequest	true	"Review"
//	@Success	201		{object}	utils.APIResponse{data=dto.ReviewDTO}
//	@Failure	409		{object}	utils.APIResponse
//	@Router		/targets/{kind}/{id}/reviews [post]
func (h *Handler) Submit(c *gin.Context) {
	target, err := common.ParseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand(middleware.GetPrincipal(c), target, common.RequestMeta(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msg := "Review published"
	if !result.IsPublished {
		msg = "Review submitted for moderation"
	}
	utils.CreatedResponse(c, result, msg)
}

// List handles GET /targets/:kind/:id/reviews. The page carries the
// target's current rating.
func (h *Handler) List(c *gin.Context) {
	target, err := common.ParseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListReviewsQuery{
		Target:   target,
		Viewer:   middleware.GetPrincipal(c),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete handles DELETE /reviews/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteReviewCommand{
		ReviewID: id,
		Actor:    middleware.GetPrincipal(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Vote handles POST /reviews/:id/vote
func (h *Handler) Vote(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	if err := h.voteUC.Execute(c.Request.Context(), usecases.VoteReviewCommand{
		ReviewID: id,
		Actor:    middleware.GetPrincipal(c),
		Helpful:  *req.Helpful,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vote recorded", nil)
}

// Moderate handles POST /admin/reviews/:id/moderate
func (h *Handler) Moderate(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.moderateUC.Execute(c.Request.Context(), usecases.ModerateReviewCommand{
		ReviewID: id,
		Actor:    middleware.GetPrincipal(c),
		Action:   usecases.ReviewAction(req.Action),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
