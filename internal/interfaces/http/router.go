package http

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jirant/internal/interfaces/http/middleware"
	"jirant/internal/interfaces/http/routes"

	_ "jirant/docs"
)

// Router exposes the API on top of a wired Container.
type Router struct {
	*Container
}

// NewRouter wraps a wired container; call SetupRoutes before serving.
func NewRouter(c *Container) *Router {
	return &Router{Container: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	if r.metrics != nil {
		r.engine.Use(middleware.Metrics(r.metrics))
	}

	r.engine.GET("/health", r.healthHandler.HealthCheck)
	if r.metrics != nil {
		r.engine.GET(r.cfg.Metrics.Path, gin.WrapH(r.metrics.Handler()))
	}
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")

	routes.SetupTicketTypeRoutes(api, &routes.TicketTypeRouteConfig{
		Handler:        r.ticketTypeHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		Handler:           r.ticketHandler,
		AuthMiddleware:    r.authMiddleware,
		GenerationLimiter: r.generationLimiter,
	})

	routes.SetupRelationshipRoutes(api, &routes.RelationshipRouteConfig{
		Handler:        r.relationshipHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
