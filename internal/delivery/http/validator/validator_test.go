package validator

import (
	"testing"

	domainerrors "creativehub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"firstName" validate:"required,min=2"`
	Role  string `json:"role" validate:"omitempty,oneof=buyer seller"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Email: "a@b.co", Name: "Al", Role: "buyer"}))

	err := v.Validate(&signup{Email: "nope", Name: "A", Role: "admin"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "email must be a valid email")
	assert.Contains(t, appErr.Details(), "firstName must be at least 2")
	assert.Contains(t, appErr.Details(), "role must be one of [buyer seller]")
}
