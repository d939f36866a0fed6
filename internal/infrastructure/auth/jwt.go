package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jirant/internal/shared/authorization"
	"jirant/internal/shared/biztime"
	apperrors "jirant/internal/shared/errors"
)

const issuer = "jirant"

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity the API trusts. Tokens are minted by an
// external identity provider sharing the secret, or by `jirant token` in dev.
type Claims struct {
	UserID string                 `json:"user_id"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token for userID.
func (s *JWTService) Generate(userID string, role authorization.UserRole) (string, error) {
	return s.GenerateWithExpiry(userID, role, time.Duration(s.accessExpMinutes)*time.Minute)
}

func (s *JWTService) GenerateWithExpiry(userID string, role authorization.UserRole, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q", role)
	}

	now := biztime.NowUTC()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Verify returns an *errors.AuthError on failure; invalid tokens also wrap
// ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError(err)
		}
		return nil, apperrors.NewTokenInvalidError(fmt.Errorf("%w: %v", ErrInvalidToken, err))
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewTokenInvalidError(ErrInvalidToken)
	}
	if claims.UserID == "" {
		return nil, apperrors.NewTokenInvalidError(fmt.Errorf("%w: missing user_id", ErrInvalidToken))
	}

	claims.Role = authorization.ParseUserRole(string(claims.Role))
	return claims, nil
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
