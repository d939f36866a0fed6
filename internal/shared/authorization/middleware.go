package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jirant/internal/shared/constants"
)

// Caller identifies the authenticated user an operation runs on behalf of.
type Caller struct {
	UserID string
	Role   UserRole
}

func (c Caller) IsAdmin() bool {
	return c.Role.IsAdmin()
}

// CallerFromContext reads the identity set by the auth middleware.
func CallerFromContext(c *gin.Context) (Caller, bool) {
	userID := c.GetString(constants.ContextKeyUserID)
	if userID == "" {
		return Caller{}, false
	}
	return Caller{
		UserID: userID,
		Role:   ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessOwnedBy reports whether the caller may touch a resource owned by ownerID.
func CanAccessOwnedBy(caller Caller, ownerID string) bool {
	if caller.IsAdmin() {
		return true
	}
	return caller.UserID != "" && caller.UserID == ownerID
}
