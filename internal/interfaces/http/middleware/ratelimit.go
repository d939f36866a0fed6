package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jirant/internal/infrastructure/ratelimit"
	"jirant/internal/shared/constants"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/utils"
)

// RateLimitMiddleware limits requests per authenticated user, falling back
// to the client IP. Limiter failures let the request through.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(constants.ContextKeyUserID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		result, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(result.ResetIn.Seconds())+1))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
