package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Store errors
	ErrPersistence   = errors.New("persistence failure")
	ErrPartialFanout = errors.New("task created but assignment fan-out incomplete")
)

// Student errors
var (
	ErrStudentNotFound  = fmt.Errorf("student not found: %w", ErrResourceNotFound)
	ErrNationalIDExists = fmt.Errorf("national ID already registered: %w", ErrResourceAlreadyExists)
)

// Task errors
var (
	ErrTaskNotFound = fmt.Errorf("task not found: %w", ErrResourceNotFound)
)

// Exam errors
var (
	ErrExamNotFound = fmt.Errorf("exam not found: %w", ErrResourceNotFound)
	ErrWeekNotFound = fmt.Errorf("week not found: %w", ErrResourceNotFound)
)

// Teacher errors
var (
	ErrTeacherNotFound    = fmt.Errorf("teacher not found: %w", ErrResourceNotFound)
	ErrEmailAlreadyExists = fmt.Errorf("email already exists: %w", ErrResourceAlreadyExists)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError reports a missing or malformed input field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewPersistenceError wraps a store failure for the named operation.
// Transient marks failures a caller may safely retry (connection loss and the like).
func NewPersistenceError(op string, cause error, transient bool) error {
	return &CustomError{
		Err:       ErrPersistence,
		Cause:     cause,
		Message:   fmt.Sprintf("%s: %v", op, cause),
		Transient: transient,
	}
}

// IsTransient reports whether err is a persistence failure marked as retryable.
func IsTransient(err error) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Transient
	}
	return false
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Cause     error
	Message   string
	Field     string
	Code      string
	Transient bool
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the sentinel kind and the underlying cause.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
