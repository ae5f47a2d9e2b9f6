package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "project"}
		assert.Equal(t, "project not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "crew member"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrProjectNotFound, ErrProjectNotFound))
		assert.False(t, errors.Is(ErrProjectNotFound, ErrCrewNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrProjectNotFound))
		assert.True(t, IsNotFound(ErrNoCrewInDepartment))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "crew member", Context: "with this email"}
		assert.Equal(t, "crew member already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project"}
		assert.Equal(t, "project already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "project", Context: "with this code"}
		err2 := &AlreadyExistsError{Entity: "project", Context: "with this code"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is ignores context", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "project", Context: "with this code"}
		err2 := &AlreadyExistsError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProjectExists))
		assert.True(t, IsAlreadyExists(ErrCrewExists))
		assert.False(t, IsAlreadyExists(ErrProjectNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "shoot_date", Message: "must be a date in YYYY-MM-DD format"}
		assert.Equal(t, "validation error: shoot_date - must be a date in YYYY-MM-DD format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("call_time", "must be in HH:MM format")))
		assert.False(t, IsValidation(ErrInvalidCallTime))
	})

	t.Run("IsValidation matches wrapped struct-tag violations", func(t *testing.T) {
		req := struct {
			Email string `validate:"required,email"`
		}{}
		err := validator.New().Struct(&req)
		assert.Error(t, err)
		assert.True(t, IsValidation(fmt.Errorf("validation failed: %w", err)))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("call sheet record")
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "call sheet record not found", err.Error())
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("schedule assignment", "for this date")
		assert.True(t, IsAlreadyExists(err))
		assert.Equal(t, "schedule assignment already exists for this date", err.Error())
	})
}
