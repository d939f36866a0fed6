package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jirant/internal/infrastructure/auth"
	"jirant/internal/shared/constants"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/utils"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.AbortWithError(c, apperrors.NewTokenMissingError("missing authorization token"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			utils.AbortWithError(c, apperrors.NewTokenMissingError("invalid authorization header format"))
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			if apperrors.ShouldLogAuthError(err) {
				m.logger.Warnw("failed to verify token", "error", err, "client_ip", c.ClientIP())
			}
			if !apperrors.IsAuthError(err) {
				err = apperrors.NewTokenInvalidError(err)
			}
			utils.AbortWithError(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role.String())

		c.Next()
	}
}
