package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"jirant/internal/shared/constants"
)

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole("superuser"))
}

func TestCanAccessOwnedBy(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		owner  string
		want   bool
	}{
		{"owner", Caller{UserID: "u1", Role: RoleUser}, "u1", true},
		{"other user", Caller{UserID: "u2", Role: RoleUser}, "u1", false},
		{"admin", Caller{UserID: "root", Role: RoleAdmin}, "u1", true},
		{"anonymous", Caller{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessOwnedBy(tt.caller, tt.owner))
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(role string) int {
		r := gin.New()
		r.GET("/", func(c *gin.Context) {
			c.Set(constants.ContextKeyUserRole, role)
			c.Next()
		}, RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run("admin"))
	assert.Equal(t, http.StatusForbidden, run("user"))
}
