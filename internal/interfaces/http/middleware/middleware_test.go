package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirant/internal/infrastructure/auth"
	"jirant/internal/infrastructure/ratelimit"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/constants"
	"jirant/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(constants.ContextKeyUserID),
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 5)
	token, err := jwtService.Generate("alice", authorization.RoleAdmin)
	require.NoError(t, err)

	expired, err := jwtService.GenerateWithExpiry("alice", authorization.RoleUser, -time.Minute)
	require.NoError(t, err)

	r := newEngine(NewAuthMiddleware(jwtService, logger.NewNop()).RequireAuth())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set(constants.HeaderAuthorization, tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"user_id":"alice"`)
				assert.Contains(t, w.Body.String(), `"role":"admin"`)
			}
		})
	}
}

func TestRequireAuth_ErrorTypes(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 5)
	expired, err := jwtService.GenerateWithExpiry("alice", authorization.RoleUser, -time.Minute)
	require.NoError(t, err)

	r := newEngine(NewAuthMiddleware(jwtService, logger.NewNop()).RequireAuth())

	tests := []struct {
		header   string
		wantType string
	}{
		{"", `"type":"token_missing"`},
		{"Bearer " + expired, `"type":"token_expired"`},
		{"Bearer not-a-jwt", `"type":"token_invalid"`},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if tt.header != "" {
			req.Header.Set(constants.HeaderAuthorization, tt.header)
		}
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), tt.wantType)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	t.Run("generates when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
		assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))
	})

	t.Run("propagates caller value", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(constants.HeaderXRequestID, "req-123")
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get(constants.HeaderXRequestID))
	})
}

type stubLimiter struct {
	result ratelimit.Result
	err    error
	keys   []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Result, error) {
	s.keys = append(s.keys, key)
	return s.result, s.err
}

func (s *stubLimiter) Reset(context.Context, string) error { return nil }

func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed sets headers", func(t *testing.T) {
		limiter := &stubLimiter{result: ratelimit.Result{Allowed: true, Limit: 5, Remaining: 4}}
		r := newEngine(withUser("alice"), NewRateLimitMiddleware(limiter, logger.NewNop()).Limit())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, []string{"alice"}, limiter.keys)
	})

	t.Run("denied returns 429", func(t *testing.T) {
		limiter := &stubLimiter{result: ratelimit.Result{Allowed: false, Limit: 5, ResetIn: 10 * time.Second}}
		r := newEngine(withUser("alice"), NewRateLimitMiddleware(limiter, logger.NewNop()).Limit())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "11", w.Header().Get("Retry-After"))
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		limiter := &stubLimiter{err: errors.New("redis down")}
		r := newEngine(NewRateLimitMiddleware(limiter, logger.NewNop()).Limit())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, limiter.keys, 1)
		assert.Contains(t, limiter.keys[0], "ip:")
	})
}

type recordedRequest struct {
	method, path string
	status       int
}

type stubRecorder struct {
	requests []recordedRequest
}

func (s *stubRecorder) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	s.requests = append(s.requests, recordedRequest{method, path, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	rec := &stubRecorder{}
	r := gin.New()
	r.Use(Metrics(rec))
	r.GET("/tickets/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tickets/tkt_abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, rec.requests, 2)
	assert.Equal(t, recordedRequest{http.MethodGet, "/tickets/:id", http.StatusNoContent}, rec.requests[0])
	assert.Equal(t, "unmatched", rec.requests[1].path)
	assert.Equal(t, http.StatusNotFound, rec.requests[1].status)
}

func TestRecovery_ReturnsEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"http://localhost:3000"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
