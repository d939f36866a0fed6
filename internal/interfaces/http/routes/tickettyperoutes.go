package routes

import (
	"github.com/gin-gonic/gin"

	tickettypehandlers "jirant/internal/interfaces/http/handlers/tickettype"
	"jirant/internal/interfaces/http/middleware"
)

type TicketTypeRouteConfig struct {
	Handler        *tickettypehandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketTypeRoutes(api *gin.RouterGroup, config *TicketTypeRouteConfig) {
	types := api.Group("/ticket-types")
	types.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		types.GET("", config.Handler.ListTicketTypes)
		types.POST("", config.Handler.CreateTicketType)

		// Specific paths (must come BEFORE /:id to avoid conflicts)
		types.POST("/defaults", config.Handler.SeedDefaults)
		types.POST("/restore", config.Handler.RestoreTicketType)
		types.GET("/:id/check-usage", config.Handler.CheckUsage)

		// Generic parameterized routes (must come LAST)
		types.GET("/:id", config.Handler.GetTicketType)
		types.PUT("/:id", config.Handler.UpdateTicketType)
		types.DELETE("/:id", config.Handler.DeleteTicketType)
	}
}
