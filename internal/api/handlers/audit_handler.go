package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/response"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

type auditQuery struct {
	UserID       *uint      `form:"userId"`
	ResourceType *string    `form:"resourceType"`
	ResourceID   *string    `form:"resourceId"`
	Action       *string    `form:"action"`
	StartTime    *time.Time `form:"startTime" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime      *time.Time `form:"endTime" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit        int        `form:"limit"`
	Offset       int        `form:"offset"`
}

// GetAuditLogs godoc
// @Summary Query the audit trail
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param userId query int false "Actor"
// @Param resourceType query string false "job, proposal, contract, freelancer, client, admin"
// @Param resourceId query string false "Resource id"
// @Param action query string false "Action"
// @Param startTime query string false "RFC3339"
// @Param endTime query string false "RFC3339"
// @Param limit query int false "Max rows, default 100"
// @Param offset query int false "Offset"
// @Success 200 {array} audit.AuditLog
// @Router /api/admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var q auditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid query: " + err.Error()})
		return
	}
	if q.Limit <= 0 || q.Limit > 500 {
		q.Limit = 100
	}

	logs, err := h.svc.QueryAuditLogs(c.Request.Context(), repository.AuditQueryParams{
		UserID:       q.UserID,
		ResourceType: q.ResourceType,
		ResourceID:   q.ResourceID,
		Action:       q.Action,
		StartTime:    q.StartTime,
		EndTime:      q.EndTime,
		Limit:        q.Limit,
		Offset:       q.Offset,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
