package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

type AuthHandler struct {
	svc *application.AccountService
}

func NewAuthHandler(svc *application.AccountService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Create a freelancer or client account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body account.RegisterInput true "Account details"
// @Success 201 {object} map[string]interface{} "Created account"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input account.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	acct, err := h.svc.Register(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": acct, "role": acct.Role()})
}

// Login godoc
// @Summary Log in and receive a JWT
// @Description Without a role the freelancer, client and admin tables are tried in that order.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body account.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Failure 403 {object} response.ErrorResponse "Account suspended"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input account.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.svc.Login(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		res.Token,
		int(config.TokenLifetime.Seconds()),
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	p := res.User.Base()
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:  res.Token,
		UserID: p.ID,
		Role:   string(res.Role),
		Name:   p.Name,
	})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", config.IsProduction, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}
