// Package admin provides HTTP handlers for administrative operations.
package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/setting/dto"
	"github.com/expohub/expohub/internal/application/setting/usecases"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type getSettingsUseCase interface {
	Execute(ctx context.Context) ([]dto.SettingItem, error)
}

type updateSettingsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSettingsCommand) error
}

// SettingHandler handles site settings admin API operations
type SettingHandler struct {
	getUC    getSettingsUseCase
	updateUC updateSettingsUseCase
	logger   logger.Interface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(getUC getSettingsUseCase, updateUC updateSettingsUseCase, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		getUC:    getUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

// GetSettings lists every known setting with its effective value and source.
// GET /admin/settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	items, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get settings", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// UpdateSettings batch updates settings. Unknown keys or bad values reject
// the whole batch.
// PUT /admin/settings
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		Actor:  middleware.GetPrincipal(c),
		Values: req.Settings,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", nil)
}
