package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeTokenMissing ErrorType = "token_missing"
	ErrorTypeTokenExpired ErrorType = "token_expired"
	ErrorTypeTokenInvalid ErrorType = "token_invalid"
)

// AuthError is a 401 that also says whether it is worth logging.
type AuthError struct {
	*AppError
	// ShouldLog is false for failures clients cause routinely, such as expiry.
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

func newAuthError(errType ErrorType, message string, shouldLog bool, cause error) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    errType,
			Message: message,
			Code:    http.StatusUnauthorized,
			cause:   cause,
		},
		ShouldLog: shouldLog,
	}
}

// NewTokenMissingError reports a request without usable bearer credentials.
func NewTokenMissingError(message string) *AuthError {
	return newAuthError(ErrorTypeTokenMissing, message, false, nil)
}

// NewTokenExpiredError reports a well-formed token past its expiry.
func NewTokenExpiredError(cause error) *AuthError {
	return newAuthError(ErrorTypeTokenExpired, "token has expired", false, cause)
}

// NewTokenInvalidError reports a token that failed signature or claim checks.
func NewTokenInvalidError(cause error) *AuthError {
	return newAuthError(ErrorTypeTokenInvalid, "invalid token", true, cause)
}

// IsAuthError checks if the error is an AuthError (supports wrapped errors via errors.As)
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error chain (supports wrapped errors via errors.As)
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
