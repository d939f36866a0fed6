// Package errors provides application-level error types and utilities.
// It defines the error taxonomy shared by use cases and the HTTP layer:
// validation, not found, duplicate, conflict, upstream and authorization errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeDuplicate    ErrorType = "duplicate"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUpstream     ErrorType = "upstream_error"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
)

// Reasons narrow an error type down to a specific domain condition so callers
// can react without parsing messages.
const (
	ReasonInvalidEdge       = "invalid_edge"
	ReasonDuplicateEdge     = "duplicate_edge"
	ReasonDuplicateName     = "duplicate_name"
	ReasonInvalidContext    = "invalid_context"
	ReasonTemplateInUse     = "template_in_use"
	ReasonGenerationFailed  = "generation_failed"
	ReasonGenerationTimeout = "generation_timeout"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Code    int                    `json:"code"`
	Details string                 `json:"details,omitempty"`
	Reason  string                 `json:"reason,omitempty"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithReason sets the machine-readable reason and returns the same error.
func (e *AppError) WithReason(reason string) *AppError {
	e.Reason = reason
	return e
}

// WithField attaches a structured field surfaced to API clients.
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithCause records the error that triggered this one.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewDuplicateError creates an error for a record that already exists
func NewDuplicateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeDuplicate, http.StatusConflict, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUpstreamError creates an error for a failed call to an external service
func NewUpstreamError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUpstream, http.StatusBadGateway, message, details)
}

// NewUpstreamTimeoutError creates an error for an external call that ran out of time
func NewUpstreamTimeoutError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUpstream, http.StatusGatewayTimeout, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewTemplateInUseError reports that live tickets still reference a template.
func NewTemplateInUseError(count int64) *AppError {
	return NewConflictError(
		"template is in use",
		fmt.Sprintf("%d active ticket(s) reference this template", count),
	).WithReason(ReasonTemplateInUse).WithField("count", count)
}

// NewDuplicateEdgeError reports an existing edge for the normalized pair low, high.
func NewDuplicateEdgeError(low, high string) *AppError {
	return NewDuplicateError(
		"relationship already exists",
		fmt.Sprintf("%s <-> %s", low, high),
	).WithReason(ReasonDuplicateEdge)
}

// NewInvalidEdgeError rejects an edge that cannot exist, such as a self-loop.
func NewInvalidEdgeError(message string) *AppError {
	return NewValidationError(message).WithReason(ReasonInvalidEdge)
}

// NewInvalidContextError names the context ticket that is missing, deleted or not visible.
func NewInvalidContextError(ticketID string) *AppError {
	return NewValidationError(
		"context ticket is not available",
		ticketID,
	).WithReason(ReasonInvalidContext).WithField("ticketId", ticketID)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasReason reports whether err is an AppError carrying the given reason.
func HasReason(err error, reason string) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Reason == reason
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsDuplicateAppError checks if the error is an application duplicate error
func IsDuplicateAppError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeDuplicate
}

// IsUpstreamError checks if the error is an upstream error
func IsUpstreamError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeUpstream
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeForbidden
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
