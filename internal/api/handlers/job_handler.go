package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

// JobHandler serves the public listing and the client's job management.
type JobHandler struct {
	svc *application.JobService
}

func NewJobHandler(svc *application.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// jobIDFromRequest reads the job id from the :id path segment, then from the
// id or jobId query parameters. It returns 0 when none is present.
func jobIDFromRequest(c *gin.Context) (uint, error) {
	for _, raw := range []string{c.Param("id"), c.Query("id"), c.Query("jobId")} {
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return 0, strconv.ErrSyntax
		}
		return uint(id), nil
	}
	return 0, nil
}

// ListJobs godoc
// @Summary List open jobs
// @Tags jobs
// @Produce json
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 12"
// @Param category query string false "Category"
// @Param search query string false "Search in title, description and skills"
// @Param budgetType query string false "fixed or hourly"
// @Param urgency query string false "low, medium or high"
// @Param featured query bool false "Featured only"
// @Success 200 {object} application.JobPage
// @Failure 400 {object} response.ErrorResponse
// @Router /api/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q job.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	page, err := h.svc.ListPublic(c.Request.Context(), q.Filter(h.svc.CategoryAliases()))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListMyJobs godoc
// @Summary List the caller's own jobs in every status
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} application.JobPage
// @Router /api/jobs/mine [get]
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	var q job.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	f := q.Filter(h.svc.CategoryAliases())
	if q.Status != "" && q.Status != "all" {
		status := job.Status(q.Status)
		f.Status = &status
	}
	page, err := h.svc.ListMine(c.Request.Context(), uid, f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetJob godoc
// @Summary Get one job
// @Description Open jobs are public. Other jobs are visible to their client, their freelancer and admins.
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} job.Job
// @Failure 404 {object} response.ErrorResponse
// @Router /api/jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	claims, _ := utils.GetClaimsFromContext(c)

	j, err := h.svc.Get(c.Request.Context(), id, claims)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// CreateJob godoc
// @Summary Post a job
// @Description The job starts as a draft awaiting approval. A featured request without a qualifying payment is downgraded and reported in featureDowngraded.
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body job.CreateJobInput true "Job"
// @Success 201 {object} job.CreateResult
// @Failure 400 {object} response.ErrorResponse
// @Router /api/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var input job.CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.svc.Create(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateJob godoc
// @Summary Edit a draft or open job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body job.UpdateJobInput true "Fields to change; jobId is required unless the path carries it"
// @Success 200 {object} job.CreateResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/jobs [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var input job.UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	id, err := jobIDFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if id != 0 {
		input.ID = id
	}
	if input.ID == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "jobId is required"})
		return
	}

	res, err := h.svc.Update(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteJob godoc
// @Summary Delete a job
// @Description Jobs in progress cannot be deleted.
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id query int false "Job ID, or use /api/jobs/{id} or a jobId body field"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/jobs [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := jobIDFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if id == 0 && c.Request.ContentLength != 0 {
		var body struct {
			JobID uint `json:"jobId"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			id = body.JobID
		}
	}
	if id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "jobId is required"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), utils.ActorFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Job deleted"})
}
