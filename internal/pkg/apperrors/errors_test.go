package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersistenceErrorUnwrapsKindAndCause(t *testing.T) {
	err := NewPersistenceError("insert task", context.DeadlineExceeded, false)

	assert.True(t, errors.Is(err, ErrPersistence))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, errors.Is(err, ErrResourceNotFound))
	assert.Contains(t, err.Error(), "insert task")
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(NewPersistenceError("select", errors.New("conn reset"), true)))
	assert.False(t, IsTransient(NewPersistenceError("select", errors.New("syntax"), false)))
	assert.False(t, IsTransient(errors.New("plain")))

	wrapped := fmt.Errorf("summary: %w", NewPersistenceError("select", errors.New("eof"), true))
	assert.True(t, IsTransient(wrapped))
}

func TestSpecificErrorsMatchKinds(t *testing.T) {
	assert.ErrorIs(t, ErrStudentNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrTaskNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrNationalIDExists, ErrResourceAlreadyExists)

	v := NewValidationError("title", "title is required")
	assert.ErrorIs(t, v, ErrValidationFailed)

	var ce *CustomError
	assert.True(t, errors.As(v, &ce))
	assert.Equal(t, "title", ce.Field)
}

func TestIsAnyOf(t *testing.T) {
	err := fmt.Errorf("lookup: %w", ErrExamNotFound)
	assert.True(t, Is(err, ErrPermissionDenied, ErrResourceNotFound))
	assert.False(t, Is(err, ErrPermissionDenied, ErrConflict))
}
