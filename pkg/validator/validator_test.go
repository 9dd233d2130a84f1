package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namesvc/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain value", "Alice Johnson", true},
		{"padded value", "  TestUser  ", true},
		{"empty", "", false},
		{"whitespace is not trimmed", " \t\n ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.RequiredString("name", tt.value))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, validator.IsValidationError(err))

			var ve validator.ValidationErrors
			require.True(t, errors.As(err, &ve))
			require.Len(t, ve, 1)
			assert.Equal(t, "name", ve[0].Field)
			assert.Equal(t, "field is required", ve[0].Message)
			assert.Equal(t, "validation.required", ve[0].TranslationKey)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply())

	err := validator.Apply(
		validator.RequiredString("first", ""),
		validator.RequiredString("second", "ok"),
		validator.RequiredString("third", ""),
	)
	require.Error(t, err)
	assert.Equal(t, "validation failed: first: field is required; third: field is required", err.Error())

	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve, 2)
	assert.Equal(t, "first", ve[0].Field)
	assert.Equal(t, "third", ve[1].Field)
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("other")))

	wrapped := fmt.Errorf("add name: %w", validator.Apply(validator.RequiredString("name", "")))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}
