package admin

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type jobRunner interface {
	RunNow(ctx context.Context, name string) (int, error)
	JobNames() []string
}

// JobHandler triggers maintenance jobs on demand.
type JobHandler struct {
	runner jobRunner
	logger logger.Interface
}

func NewJobHandler(runner jobRunner, logger logger.Interface) *JobHandler {
	return &JobHandler{runner: runner, logger: logger}
}

type JobRunResponse struct {
	Job       string `json:"job"`
	Processed int    `json:"processed"`
}

// ListJobs handles GET /admin/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.runner.JobNames())
}

// RunJob handles POST /admin/jobs/:name/run
func (h *JobHandler) RunJob(c *gin.Context) {
	name := c.Param("name")
	if !slices.Contains(h.runner.JobNames(), name) {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("job not found", name))
		return
	}

	processed, err := h.runner.RunNow(c.Request.Context(), name)
	if err != nil {
		h.logger.Errorw("manual job run failed", "job", name, "user_id", middleware.GetPrincipal(c).UserID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("job failed", err.Error()))
		return
	}

	h.logger.Infow("manual job run finished", "job", name, "processed", processed, "user_id", middleware.GetPrincipal(c).UserID)
	utils.SuccessResponse(c, http.StatusOK, "", JobRunResponse{Job: name, Processed: processed})
}
