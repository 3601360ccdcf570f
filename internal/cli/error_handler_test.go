package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"work-forge/internal/errors"
	"work-forge/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	t.Run("validation error", func(t *testing.T) {
		validationErr := validation.NewValidationError()
		validationErr.AddRequiredError("task")

		err := eh.Handle("add entry", validationErr)
		assert.Contains(t, err.Error(), "failed to add entry")
		assert.Contains(t, err.Error(), "task")
	})

	t.Run("app error", func(t *testing.T) {
		err := eh.Handle("approve entry", errors.NewNotFoundError("time entry", "abc"))
		assert.Contains(t, err.Error(), "failed to approve entry")
	})

	t.Run("database error masked", func(t *testing.T) {
		dbErr := errors.NewDatabaseError("insert", stderrors.New("disk I/O error at offset 4096"))
		err := eh.Handle("add entry", dbErr)
		assert.NotContains(t, err.Error(), "disk I/O")
	})

	t.Run("unknown error", func(t *testing.T) {
		err := eh.Handle("list entries", stderrors.New("boom"))
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	validationErr := validation.NewValidationError()
	validationErr.AddRequiredError("task")

	assert.True(t, eh.IsValidationError(validationErr))
	assert.True(t, eh.IsNotFoundError(errors.NewNotFoundError("time entry", "abc")))
	assert.True(t, eh.IsInvalidStateError(errors.NewInvalidStateError("approved", "update entry")))
	assert.True(t, eh.IsAuthorizationError(errors.NewAuthorizationError("user-1", "approve entry")))
	assert.False(t, eh.IsNotFoundError(stderrors.New("boom")))
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	eh := NewErrorHandler()

	assert.Equal(t, "INVALID_STATE_TRANSITION",
		eh.GetErrorCode(errors.NewInvalidStateError("approved", "update entry")))
	assert.Equal(t, "NOT_AUTHORIZED",
		eh.GetErrorCode(errors.NewAuthorizationError("user-1", "approve entry")))
}
