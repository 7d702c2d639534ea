package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/types"
)

var jwtKey []byte

var ErrInvalidClaims = errors.New("token carries no user id")

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token for an account.
var GenerateToken = func(userID uint, role, email string, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		UserID: userID,
		Role:   role,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates the token and extracts claims. Older tokens used "id"
// and "userType" instead of "userId" and "role"; both spellings are accepted.
// The role may be absent.
func ParseToken(tokenStr string) (*types.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, ok := uintClaim(mc, "userId", "id", "sub")
	if !ok {
		return nil, ErrInvalidClaims
	}
	claims := &types.Claims{
		UserID: userID,
		Role:   stringClaim(mc, "role", "userType"),
		Email:  stringClaim(mc, "email"),
	}
	if exp, err := mc.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mc.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}
	claims.Issuer, _ = mc.GetIssuer()
	return claims, nil
}

func uintClaim(mc jwt.MapClaims, keys ...string) (uint, bool) {
	for _, key := range keys {
		switch v := mc[key].(type) {
		case float64:
			if v > 0 {
				return uint(v), true
			}
		case string:
			if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
				return uint(n), true
			}
		}
	}
	return 0, false
}

func stringClaim(mc jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := mc[key].(string); ok && v != "" {
			return strings.ToLower(v)
		}
	}
	return ""
}

// JWTAuthMiddleware validates Bearer token in Authorization header or cookie.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
				return
			}
			tokenStr = parts[1]
		} else {
			cookie, err := c.Cookie("token")
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required (header or cookie)"})
				return
			}
			tokenStr = cookie
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token: " + err.Error()})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalJWTMiddleware sets claims when a valid token is present and lets
// anonymous or invalid requests through untouched.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			tokenStr = parts[1]
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}
		if tokenStr != "" {
			if claims, err := ParseToken(tokenStr); err == nil {
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}
