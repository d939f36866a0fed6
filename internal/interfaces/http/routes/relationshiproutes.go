package routes

import (
	"github.com/gin-gonic/gin"

	relationshiphandlers "jirant/internal/interfaces/http/handlers/relationship"
	"jirant/internal/interfaces/http/middleware"
)

type RelationshipRouteConfig struct {
	Handler        *relationshiphandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRelationshipRoutes(api *gin.RouterGroup, config *RelationshipRouteConfig) {
	rels := api.Group("/ticket-relationships")
	rels.Use(config.AuthMiddleware.RequireAuth())
	{
		rels.GET("", config.Handler.ListRelationships)
		rels.POST("", config.Handler.CreateRelationship)
		// the pair travels in the body so both orders address the same edge
		rels.DELETE("", config.Handler.DeleteRelationship)
	}
}
