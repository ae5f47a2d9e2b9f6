package errors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrCrewNotFound       = &NotFoundError{Entity: "crew member"}
	ErrNoCrewInDepartment = &NotFoundError{Entity: "crew in department"}
)

// Already Exists Errors
var (
	ErrProjectExists = &AlreadyExistsError{Entity: "project", Context: "with this code"}
	ErrCrewExists    = &AlreadyExistsError{Entity: "crew member", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid project status")
	ErrInvalidStatusTransition = errors.New("invalid project status transition")
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
	ErrInvalidCallTime         = errors.New("call time must be in HH:MM format")
	ErrNoAssignmentsForDate    = errors.New("no assignments exist for this date")
	ErrMailerNotConfigured     = errors.New("email dispatch is not configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a validation failure: either a domain
// ValidationError or struct-tag violations raised by the request validator,
// wrapped or not.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	var fieldErrors validator.ValidationErrors
	return errors.As(err, &fieldErrors)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
