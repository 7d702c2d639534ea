package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the authenticated identity stored in the gin context under "claims".
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}
