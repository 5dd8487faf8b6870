package errors

import (
	"net/http"
	"testing"

	"profilecard/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("name is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrSaveFailed))
	assert.Equal(t, "name is required", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Contains(t, err.Error(), "name is required")
}

func TestAsAppError_ThroughWrap(t *testing.T) {
	wrapped := errors.Wrap(ErrProfileNotFound, "resolve profile")

	appErr, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "PROFILE_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "PROFILE_NOT_FOUND", Code(wrapped))
	assert.Equal(t, "", Code(errors.New("plain")))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert social links")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
