package errors

import (
	"net/http"
	"testing"

	stderrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrEmailTaken.WrapMessage("registration failed")

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Contains(t, err.Error(), "registration failed")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "EMAIL_TAKEN", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrPersistenceFailed.WithDetails("write not acknowledged")

	assert.Equal(t, "write not acknowledged", detailed.Details())
	// The original sentinel is untouched.
	assert.Empty(t, ErrPersistenceFailed.Details())
}

func TestFieldValidationError(t *testing.T) {
	err := NewFieldValidationError("email", "not-an-email", "must be a valid email address")

	assert.Equal(t, `invalid email "not-an-email": must be a valid email address`, err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "invalid email", err.Message())
}

func TestIsValidation(t *testing.T) {
	fieldErr := NewFieldValidationError("id", "123", "must be a valid UUID")

	assert.True(t, IsValidation(fieldErr))
	assert.True(t, IsValidation(stderrors.Wrap(fieldErr, "get user failed")))
	assert.False(t, IsValidation(ErrUserNotFound))
}
