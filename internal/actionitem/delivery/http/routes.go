package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := api.Group("/action-items")
	{
		items.POST("", mw.Auth(), h.Create)
		items.GET("", mw.Auth(), h.List)
		items.PUT("/:id/complete", mw.Auth(), h.SetCompleted)
		items.DELETE("/:id", mw.Auth(), h.Delete)
	}

	lists := api.Group("/action-item-lists")
	{
		lists.GET("", mw.Auth(), h.ListTree)
		lists.GET("/:id", mw.Auth(), h.ListDetail)
	}
}
