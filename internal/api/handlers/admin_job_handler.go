package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/pkg/utils"
)

type AdminJobHandler struct {
	svc     *application.ModerationService
	aliases map[string]string
}

func NewAdminJobHandler(svc *application.ModerationService, aliases map[string]string) *AdminJobHandler {
	return &AdminJobHandler{svc: svc, aliases: aliases}
}

// ListJobs godoc
// @Summary Moderation queue
// @Description Jobs in any status. Every row carries the derived flagged marker.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "draft, open, in_progress, completed, cancelled or all"
// @Param flagged query bool false "Only flagged (true) or unflagged (false) jobs"
// @Param search query string false "Case-insensitive search in title, description and skills"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} application.AdminJobPage
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /api/admin/jobs [get]
func (h *AdminJobHandler) ListJobs(c *gin.Context) {
	var q job.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	f := q.Filter(h.aliases)
	if q.Status != "" && q.Status != "all" {
		status := job.Status(q.Status)
		f.Status = &status
	}
	f.Flagged = q.Flagged

	page, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ModerateJob godoc
// @Summary Apply a moderation action to a job
// @Description approve, reject, suspend, feature, unfeature or close. Approvals and rejections notify the client.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body job.ModerateJobInput true "Action"
// @Success 200 {object} job.Job
// @Failure 400 {object} response.ErrorResponse "Unknown action"
// @Failure 404 {object} response.ErrorResponse "Job not found"
// @Failure 409 {object} response.ErrorResponse "Transition not allowed"
// @Router /api/admin/jobs [patch]
func (h *AdminJobHandler) ModerateJob(c *gin.Context) {
	var input job.ModerateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	j, err := h.svc.Moderate(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}
