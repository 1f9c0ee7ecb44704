package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/errors"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Status   string `json:"status" validate:"omitempty,oneof=CREATED COMPLETED"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, cv.Validate(&sample{Email: "a@b.io", Password: "secret1"}))
	})

	t.Run("fields named by json tag", func(t *testing.T) {
		err := cv.Validate(&sample{Email: "nope", Password: "123", Status: "DONE"})
		require.Error(t, err)

		validationErr, ok := errors.Find[*ValidationError](err)
		require.True(t, ok)
		assert.Equal(t, 400, validationErr.HTTPCode())
		assert.Equal(t, "Validation failed", validationErr.Message())
		assert.Equal(t, []FieldError{
			{Field: "email", Message: "email must be a valid email"},
			{Field: "password", Message: "password must be at least 6 characters"},
			{Field: "status", Message: "status must be one of: CREATED, COMPLETED"},
		}, validationErr.Fields)
	})

	t.Run("missing required", func(t *testing.T) {
		err := cv.Validate(&sample{})
		validationErr, ok := errors.Find[*ValidationError](err)
		require.True(t, ok)
		require.Len(t, validationErr.Fields, 1)
		assert.Equal(t, "email is required", validationErr.Fields[0].Message)
	})
}
