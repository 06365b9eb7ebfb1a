package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/middleware"
)

// RegisterRoutes maps the category routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/categories", mw.Auth(), h.Derive)
}
