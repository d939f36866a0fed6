package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_SetTypeAndCode(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"duplicate", NewDuplicateError("exists"), ErrorTypeDuplicate, http.StatusConflict},
		{"conflict", NewConflictError("busy"), ErrorTypeConflict, http.StatusConflict},
		{"upstream", NewUpstreamError("llm down"), ErrorTypeUpstream, http.StatusBadGateway},
		{"upstream timeout", NewUpstreamTimeoutError("slow"), ErrorTypeUpstream, http.StatusGatewayTimeout},
		{"forbidden", NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestNewTemplateInUseError(t *testing.T) {
	err := NewTemplateInUseError(3)

	assert.Equal(t, ErrorTypeConflict, err.Type)
	assert.Equal(t, http.StatusConflict, err.Code)
	assert.True(t, HasReason(err, ReasonTemplateInUse))
	assert.Equal(t, int64(3), err.Fields["count"])
	assert.Contains(t, err.Details, "3 active ticket(s)")
}

func TestGetAppError_Wrapped(t *testing.T) {
	base := NewNotFoundError("ticket not found").WithReason("x")
	wrapped := fmt.Errorf("loading: %w", base)

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, "ticket not found", appErr.Message)
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
}

func TestAppError_UnwrapCause(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := NewUpstreamTimeoutError("generation timed out").WithCause(cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql", errors.New("Error 1062: Duplicate entry 'a-b' for key 'idx_pair'"), true},
		{"postgres", errors.New("ERROR: duplicate key value violates unique constraint"), true},
		{"sqlite", errors.New("UNIQUE constraint failed: ticket_relationships.pair_low, ticket_relationships.pair_high"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}

func TestDomainReasonConstructors(t *testing.T) {
	dup := NewDuplicateEdgeError("tkt_a", "tkt_b")
	assert.True(t, IsDuplicateAppError(dup))
	assert.True(t, HasReason(dup, ReasonDuplicateEdge))
	assert.Equal(t, "tkt_a <-> tkt_b", dup.Details)

	edge := NewInvalidEdgeError("a ticket cannot be related to itself")
	assert.True(t, IsValidationError(edge))
	assert.True(t, HasReason(edge, ReasonInvalidEdge))

	ctx := NewInvalidContextError("tkt_gone")
	assert.True(t, IsValidationError(ctx))
	assert.True(t, HasReason(ctx, ReasonInvalidContext))
	assert.Equal(t, "tkt_gone", ctx.Fields["ticketId"])
}

func TestAuthErrors(t *testing.T) {
	base := errors.New("signature is invalid")

	invalid := NewTokenInvalidError(base)
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
	assert.Equal(t, ErrorTypeTokenInvalid, invalid.Type)
	assert.True(t, ShouldLogAuthError(invalid))
	assert.ErrorIs(t, invalid, base)

	expired := fmt.Errorf("verify: %w", NewTokenExpiredError(nil))
	assert.True(t, IsAuthError(expired))
	assert.False(t, ShouldLogAuthError(expired))
	require.NotNil(t, GetAppError(expired))
	assert.Equal(t, ErrorTypeTokenExpired, GetAppError(expired).Type)

	assert.True(t, ShouldLogAuthError(errors.New("plain")))
}
