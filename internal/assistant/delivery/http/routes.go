package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Message
// routes carry the rate limiter: every message can fan out to paid
// suggestion providers.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := api.Group("/assistant/sessions")
	{
		sessions.POST("", mw.Auth(), h.CreateSession)
		sessions.GET("/:id", mw.Auth(), h.GetSession)
		sessions.POST("/:id/messages", mw.Auth(), mw.RateLimit(), h.SendMessage)
		sessions.PUT("/:id/focus", mw.Auth(), h.SetFocus)
		sessions.POST("/:id/apply", mw.Auth(), h.Apply)
		sessions.POST("/:id/dismiss", mw.Auth(), h.Dismiss)
	}
}
