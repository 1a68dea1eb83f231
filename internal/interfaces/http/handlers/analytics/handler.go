// Package analytics serves per-listing daily metrics.
package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/analytics/usecases"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/biztime"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

const dateLayout = "2006-01-02"

type getAnalyticsUseCase interface {
	Execute(ctx context.Context, query usecases.GetAnalyticsQuery) (*usecases.AnalyticsResult, error)
}

type Handler struct {
	getUC  getAnalyticsUseCase
	logger logger.Interface
}

func NewHandler(getUC getAnalyticsUseCase, logger logger.Interface) *Handler {
	return &Handler{getUC: getUC, logger: logger}
}

// Get handles GET /targets/:kind/:id/analytics?from=YYYY-MM-DD&to=YYYY-MM-DD
//
//	@Summary	Daily metrics of a listing
//	@Tags		analytics
//	@Produce	json
//	@Security	Bearer
//	@Param		kind	path		string	true	"exhibition or company"
//	@Param		id		path		int		true	"Entity ID"
//	@Param		from	query		string	false	"First day, YYYY-MM-DD"
//	@Param		to		query		string	false	"Last day, YYYY-MM-DD"
//	@Success	200		{object}	utils.APIResponse{data=usecases.AnalyticsResult}
//	@Failure	403		{object}	utils.APIResponse
//	@Router		/targets/{kind}/{id}/analytics [get]
func (h *Handler) Get(c *gin.Context) {
	target, err := common.ParseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	from, err := parseDate(c, "from")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	to, err := parseDate(c, "to")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetAnalyticsQuery{
		Target: target,
		Viewer: middleware.GetPrincipal(c),
		From:   from,
		To:     to,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseDate(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, biztime.Location())
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key+" date", "use YYYY-MM-DD")
	}
	return &t, nil
}
