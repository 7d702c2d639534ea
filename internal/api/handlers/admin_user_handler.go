package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

type AdminUserHandler struct {
	svc *application.AccountService
}

func NewAdminUserHandler(svc *application.AccountService) *AdminUserHandler {
	return &AdminUserHandler{svc: svc}
}

// ListUsers godoc
// @Summary List accounts across roles
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param role query string false "freelancer, client or admin"
// @Param status query string false "active or suspended"
// @Param search query string false "Name or email"
// @Param page query int false "Page"
// @Param limit query int false "Page size, default 20"
// @Success 200 {object} application.UserPage
// @Router /api/admin/users [get]
func (h *AdminUserHandler) ListUsers(c *gin.Context) {
	var q account.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	page, err := h.svc.List(c.Request.Context(), q.Filter())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ModerateUser godoc
// @Summary Suspend, activate, verify or unverify an account
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body account.ModerateUserInput true "Action"
// @Success 200 {object} account.UserView
// @Failure 403 {object} response.ErrorResponse "Reserved account"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/users [patch]
func (h *AdminUserHandler) ModerateUser(c *gin.Context) {
	var input account.ModerateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	a, err := h.svc.Moderate(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, account.NewUserView(a))
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param userId query int true "Account ID"
// @Param role query string true "freelancer, client or admin"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Reserved account"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/admin/users [delete]
func (h *AdminUserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseQueryUintParam(c, "userId")
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "userId is required"})
		return
	}
	role := account.Role(c.Query("role"))
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "role must be one of [freelancer client admin]"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), utils.ActorFromContext(c), role, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted"})
}
