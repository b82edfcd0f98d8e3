package http

import (
	"github.com/gin-gonic/gin"

	"smart-quick-add/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/parse", h.Parse)
	rg.POST("/confirm", h.Confirm)
	rg.POST("/toggle", h.Toggle)
	rg.POST("/ics", h.ExportICS)
	rg.GET("/categories", h.Categories)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.NewSession)
		sessions.POST("/:id/parse", h.SessionParse)
		sessions.POST("/:id/confirm", h.SessionConfirm)
		sessions.POST("/:id/toggle", h.SessionToggle)
	}
}
