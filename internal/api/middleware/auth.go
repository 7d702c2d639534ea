package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Admin requires an admin token whose account still exists and is active.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}

		acc, err := a.repos.Account.GetByID(c.Request.Context(), account.RoleAdmin, claims.UserID)
		if err != nil {
			if repository.IsNotFound(err) {
				c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}
		if acc.Base().Status != account.StatusActive {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "account suspended"})
			return
		}
		c.Next()
	}
}

// RequireRole lets the request through only when the token's role is one of roles.
func (a *Auth) RequireRole(roles ...account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := utils.GetRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !slices.Contains(roles, account.Role(role)) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "insufficient role"})
			return
		}
		c.Next()
	}
}
