package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	jwtsvc "deskbooker/internal/pkg/jwt"
	"deskbooker/internal/pkg/response"
)

// Handler upgrades notification sockets. Authentication is via a token
// query parameter because WebSocket clients cannot set headers.
type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", h.Serve)
}

func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		return
	}

	// Blocks for the lifetime of the connection.
	_ = h.hub.Upgrade(c.Writer, c.Request, claims.UserID)
}
