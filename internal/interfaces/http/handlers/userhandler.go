package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/user/usecases"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type bulkVerifyEmailUseCase interface {
	Execute(ctx context.Context, cmd usecases.BulkVerifyEmailCommand) (*usecases.BulkVerifyResult, error)
}

// HealthProbe reports whether a backing service answers.
type HealthProbe func(ctx context.Context) error

// UserHandler serves administrator user operations and the health check.
type UserHandler struct {
	bulkVerifyUC bulkVerifyEmailUseCase
	probes       map[string]HealthProbe
	logger       logger.Interface
}

func NewUserHandler(bulkVerifyUC bulkVerifyEmailUseCase, probes map[string]HealthProbe, logger logger.Interface) *UserHandler {
	return &UserHandler{
		bulkVerifyUC: bulkVerifyUC,
		probes:       probes,
		logger:       logger,
	}
}

type BulkVerifyEmailRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1,max=500,dive,gt=0"`
}

// BulkVerifyEmail handles POST /admin/users/verify-email. Every id gets its
// own result; one failure never aborts the batch.
func (h *UserHandler) BulkVerifyEmail(c *gin.Context) {
	var req BulkVerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.bulkVerifyUC.Execute(c.Request.Context(), usecases.BulkVerifyEmailCommand{
		Actor:   middleware.GetPrincipal(c),
		UserIDs: req.UserIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.probes))
	healthy := true
	for name, probe := range h.probes {
		if err := probe(ctx); err != nil {
			h.logger.Warnw("health probe failed", "probe", name, "error", err)
			checks[name] = "unavailable"
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	status := http.StatusOK
	state := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{
		"status":  state,
		"service": "expohub",
		"checks":  checks,
	})
}
