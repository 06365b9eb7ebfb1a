package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/middleware"
)

// RegisterRoutes maps the selection routes.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := api.Group("/selection/:sessionId")
	{
		sessions.GET("", mw.Auth(), h.Get)
		sessions.PUT("/select", mw.Auth(), h.Select)
		sessions.PUT("/expand", mw.Auth(), h.ToggleParent)
		sessions.PUT("/restore", mw.Auth(), h.Restore)
		sessions.DELETE("", mw.Auth(), h.Clear)
	}
}
