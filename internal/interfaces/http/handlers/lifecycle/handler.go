// Package lifecycle serves the status transitions shared by exhibitions and
// companies: owner actions and moderation.
package lifecycle

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/lifecycle/usecases"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type submitUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitForReviewCommand) (*usecases.TransitionResult, error)
}

type publishUseCase interface {
	Execute(ctx context.Context, cmd usecases.PublishCommand) (*usecases.TransitionResult, error)
}

type cancelUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelCommand) (*usecases.TransitionResult, error)
}

type suspendUseCase interface {
	Execute(ctx context.Context, cmd usecases.SuspendCommand) (*usecases.TransitionResult, error)
}

type moderateUseCase interface {
	Execute(ctx context.Context, cmd usecases.ModerateCommand) (*usecases.TransitionResult, error)
}

type bulkModerateUseCase interface {
	Execute(ctx context.Context, cmd usecases.BulkModerateCommand) (*usecases.BulkModerateResult, error)
}

type Handler struct {
	submitUC   submitUseCase
	publishUC  publishUseCase
	cancelUC   cancelUseCase
	suspendUC  suspendUseCase
	moderateUC moderateUseCase
	bulkUC     bulkModerateUseCase
	logger     logger.Interface
}

func NewHandler(
	submitUC submitUseCase,
	publishUC publishUseCase,
	cancelUC cancelUseCase,
	suspendUC suspendUseCase,
	moderateUC moderateUseCase,
	bulkUC bulkModerateUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC:   submitUC,
		publishUC:  publishUC,
		cancelUC:   cancelUC,
		suspendUC:  suspendUC,
		moderateUC: moderateUC,
		bulkUC:     bulkUC,
		logger:     logger,
	}
}

// Submit returns the handler for POST /<kind>s/:id/submit.
func (h *Handler) Submit(kind lvo.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, ok := h.entityRef(c, kind)
		if !ok {
			return
		}
		result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitForReviewCommand{
			Ref:   ref,
			Actor: middleware.GetPrincipal(c),
		})
		h.respond(c, result, err)
	}
}

// Publish returns the handler for POST /<kind>s/:id/publish.
func (h *Handler) Publish(kind lvo.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, ok := h.entityRef(c, kind)
		if !ok {
			return
		}
		result, err := h.publishUC.Execute(c.Request.Context(), usecases.PublishCommand{
			Ref:   ref,
			Actor: middleware.GetPrincipal(c),
		})
		h.respond(c, result, err)
	}
}

// Cancel returns the handler for POST /<kind>s/:id/cancel. The body is
// optional.
func (h *Handler) Cancel(kind lvo.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, ok := h.entityRef(c, kind)
		if !ok {
			return
		}
		var req ReasonRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				utils.ErrorResponseWithError(c, common.BindError(err))
				return
			}
		}
		result, err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelCommand{
			Ref:    ref,
			Actor:  middleware.GetPrincipal(c),
			Reason: req.Reason,
		})
		h.respond(c, result, err)
	}
}

// Moderate handles POST /moderation/:kind/:id
//
//	@Summary	Apply a moderation decision
//	@Tags		moderation
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		kind	path		string			true	"exhibition or company"
//	@Param		id		path		int				true	"Entity ID"
//	@Param		request	body		ModerateRequest	true	"Decision"
//	@Success	200		{object}	utils.APIResponse{data=TransitionResponse}
//	@Failure	409		{object}	utils.APIResponse
//	@Router		/moderation/{kind}/{id} [post]
func (h *Handler) Moderate(c *gin.Context) {
	ref, err := common.ParseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}
	decision, err := lvo.NewDecision(req.Decision)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.moderateUC.Execute(c.Request.Context(), usecases.ModerateCommand{
		Ref:       ref,
		Decision:  decision,
		Moderator: middleware.GetPrincipal(c),
		Notes:     req.Notes,
		Reason:    req.Reason,
	})
	h.respond(c, result, err)
}

// Suspend handles POST /moderation/:kind/:id/suspend
func (h *Handler) Suspend(c *gin.Context) {
	ref, err := common.ParseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SuspendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.suspendUC.Execute(c.Request.Context(), usecases.SuspendCommand{
		Ref:       ref,
		Moderator: middleware.GetPrincipal(c),
		Reason:    req.Reason,
	})
	h.respond(c, result, err)
}

// BulkModerate handles POST /moderation/:kind/bulk. Items are processed
// independently and the response lists each outcome.
func (h *Handler) BulkModerate(c *gin.Context) {
	kind, err := lvo.NewKind(c.Param("kind"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	var req BulkModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}
	decision, err := lvo.NewDecision(req.Decision)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.bulkUC.Execute(c.Request.Context(), usecases.BulkModerateCommand{
		Kind:      kind,
		IDs:       req.IDs,
		Decision:  decision,
		Moderator: middleware.GetPrincipal(c),
		Notes:     req.Notes,
		Reason:    req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("bulk moderation finished",
		"kind", kind,
		"decision", decision,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) entityRef(c *gin.Context, kind lvo.Kind) (lifecycle.EntityRef, bool) {
	id, err := utils.ParseUintParam(c, "id", kind.String())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return lifecycle.EntityRef{}, false
	}
	ref, err := lifecycle.NewEntityRef(kind.String(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return lifecycle.EntityRef{}, false
	}
	return ref, true
}

func (h *Handler) respond(c *gin.Context, result *usecases.TransitionResult, err error) {
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessWithWarnings(c, http.StatusOK, "", toTransitionResponse(result), result.EmailWarning)
}
