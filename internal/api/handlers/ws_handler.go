package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/freelance-market/internal/api/middleware"
	"github.com/linskybing/freelance-market/internal/realtime"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

// WSHandler upgrades authenticated requests to notification streams.
type WSHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *realtime.Hub, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || slices.Contains(allowedOrigins, "*") {
					return true
				}
				return slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// Notifications godoc
// @Summary Live notification stream
// @Description Browsers cannot set headers on websocket requests, so the token may be passed as ?token=.
// @Tags notifications
// @Param token query string false "JWT"
// @Success 101
// @Failure 401 {object} response.ErrorResponse
// @Router /ws/notifications [get]
func (h *WSHandler) Notifications(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		tok := c.Query("token")
		if tok == "" {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required (header, cookie or token query)"})
			return
		}
		if claims, err = middleware.ParseToken(tok); err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token: " + err.Error()})
			return
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already answered the client.
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	h.hub.Serve(conn, realtime.Key{UserID: claims.UserID, Role: claims.Role})
}
