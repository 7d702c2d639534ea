package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

const maxAvatarBytes = 5 << 20

type SettingsHandler struct {
	svc *application.SettingsService
}

func NewSettingsHandler(svc *application.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetSettings godoc
// @Summary Current account profile and settings
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} account.SettingsView
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	view, err := h.svc.Get(c.Request.Context(), claims.UserID, claims.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateSettings godoc
// @Summary Update profile fields and settings
// @Description settings accepts nested objects or dotted paths such as privacy.showEmail. Unknown fields are rejected.
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body account.UpdateSettingsInput true "Profile and settings changes"
// @Success 200 {object} account.SettingsView
// @Failure 400 {object} response.ErrorResponse
// @Router /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	var input account.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if len(input.Profile) == 0 && len(input.Settings) == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "profile or settings is required"})
		return
	}

	view, err := h.svc.Update(c.Request.Context(), utils.ActorFromContext(c), claims.UserID, claims.Role, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags settings
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image, at most 5 MiB"
// @Success 200 {object} account.SettingsView
// @Failure 400 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse "Storage not configured"
// @Router /api/settings/avatar [post]
func (h *SettingsHandler) UploadAvatar(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "avatar file is required"})
		return
	}
	if file.Size > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "avatar must be at most 5 MiB"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read avatar"})
		return
	}
	defer f.Close()

	view, err := h.svc.UploadAvatar(c.Request.Context(), claims.UserID, claims.Role, f, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
