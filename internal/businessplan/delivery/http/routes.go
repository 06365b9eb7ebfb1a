package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/middleware"
)

// RegisterRoutes maps the business plan routes.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plans := api.Group("/business-plans")
	{
		plans.GET("/:id", mw.Auth(), h.Detail)
		plans.PUT("/:id", mw.Auth(), h.Update)
		plans.PUT("/:id/sections/:sectionId", mw.Auth(), h.SaveSection)
	}
}
