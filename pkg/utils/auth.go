package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/pkg/types"
)

var ErrNoClaims = errors.New("user claims not found in context")

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// GetRoleFromContext returns the role carried by the token, which may be empty.
var GetRoleFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

// ActorFromContext collects the audit identity of the caller. Anonymous
// requests produce an actor with only the network fields set.
func ActorFromContext(c *gin.Context) audit.Actor {
	actor := audit.Actor{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}
	if claims, err := GetClaimsFromContext(c); err == nil {
		actor.UserID = claims.UserID
		actor.Role = claims.Role
	}
	return actor
}
