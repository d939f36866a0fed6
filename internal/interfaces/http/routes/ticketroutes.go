package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "jirant/internal/interfaces/http/handlers/ticket"
	"jirant/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	Handler        *tickethandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	// GenerationLimiter is optional; nil leaves generation unthrottled.
	GenerationLimiter *middleware.RateLimitMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		generate := []gin.HandlerFunc{}
		if config.GenerationLimiter != nil {
			generate = append(generate, config.GenerationLimiter.Limit())
		}
		generate = append(generate, config.Handler.GenerateTicket)

		// Specific paths (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/generate", generate...)
		tickets.GET("", config.Handler.ListTickets)

		tickets.GET("/:id/context", config.Handler.GetTicketContext)
		tickets.POST("/:id/restore", config.Handler.RestoreTicket)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.Handler.GetTicket)
		tickets.DELETE("/:id", config.Handler.SoftDeleteTicket)
	}
}
