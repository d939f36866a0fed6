package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirant/internal/shared/errors"
)

type sampleRequest struct {
	Name string `json:"name" binding:"required" validate:"required,max=5"`
	Tier int    `json:"tier" validate:"gte=1,lte=5"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sampleRequest{Name: "Bug", Tier: 1}))

	err := ValidateStruct(sampleRequest{Name: "", Tier: 9})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "name is required")
	assert.Contains(t, appErr.Details, "tier must be less than or equal to 5")
}

func TestTranslateBindingError_NonValidator(t *testing.T) {
	err := TranslateBindingError(assert.AnError)
	assert.True(t, errors.IsValidationError(err))
	assert.Nil(t, TranslateBindingError(nil))
}
