// Package errors defines the classified error taxonomy of the directory.
// Every error leaving the usecase layer is one of these types so that callers
// can distinguish validation, conflict, not-found, authentication and
// persistence failures without string matching.
package errors

import (
	"fmt"
	"net/http"

	"userdir/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code equivalent
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code equivalent
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrUserNotFound is returned when no record exists for a given identifier.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"no user exists for the given identifier",
		"",
	)

	// ErrEmailTaken is the uniqueness conflict on registration.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"email address is already registered",
		"",
	)

	// ErrInvalidCredentials covers both unknown email/username and a wrong
	// password. The shape is deliberately identical in both cases so callers
	// cannot enumerate accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"credentials did not match any account",
		"",
	)

	// ErrPersistenceFailed is returned when the store acknowledged neither
	// success nor the expected effect: write not acknowledged or a post-write
	// re-read came back empty.
	ErrPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"store did not acknowledge the expected effect",
		"",
	)

	// ErrPasswordStrength is returned when a password fails the strength policy.
	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password does not meet the strength policy",
		"",
	)

	// ErrPasswordHashFailed is returned when the hashing primitive itself fails.
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password could not be processed",
		"",
	)
)

// FieldValidationError reports malformed input, naming the offending field
// and the value that was rejected. It implements the AppError interface.
type FieldValidationError struct {
	Field string
	Value string
	Rule  string
}

// NewFieldValidationError creates a validation error for a single input field.
func NewFieldValidationError(field, value, rule string) *FieldValidationError {
	return &FieldValidationError{
		Field: field,
		Value: value,
		Rule:  rule,
	}
}

// Error implements the error interface
func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Rule)
}

// HTTPCode returns the HTTP status code equivalent
func (e *FieldValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldValidationError) Message() string {
	return fmt.Sprintf("invalid %s", e.Field)
}

// Details returns detailed error information
func (e *FieldValidationError) Details() string {
	return e.Error()
}

// IsValidation reports whether err is (or wraps) a FieldValidationError.
func IsValidation(err error) bool {
	var fieldErr *FieldValidationError

	return errors.As(err, &fieldErr)
}
