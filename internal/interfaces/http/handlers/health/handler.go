package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jirant/internal/shared/logger"
	"jirant/internal/shared/version"
)

const checkTimeout = 2 * time.Second

// Checker reports whether one dependency is reachable.
type Checker interface {
	Ping(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Ping(ctx context.Context) error { return f(ctx) }

type Handler struct {
	service  string
	checkers map[string]Checker
	logger   logger.Interface
}

// NewHandler reports the named checkers on every request. A nil checker
// marks the dependency as disabled.
func NewHandler(service string, checkers map[string]Checker, log logger.Interface) *Handler {
	return &Handler{service: service, checkers: checkers, logger: log}
}

// HealthCheck godoc
// @Summary Service health
// @Description 200 when every enabled dependency answers, 503 otherwise
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	status := "healthy"
	code := http.StatusOK
	checks := make(map[string]string, len(h.checkers))
	for name, checker := range h.checkers {
		if checker == nil {
			checks[name] = "disabled"
			continue
		}
		if err := checker.Ping(ctx); err != nil {
			h.logger.Warnw("health check failed", "dependency", name, "error", err)
			checks[name] = "unavailable"
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	c.JSON(code, gin.H{
		"status":  status,
		"service": h.service,
		"version": version.String(),
		"checks":  checks,
	})
}
