package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest   = 4000
	CodeMissingField     = 4001
	CodeInvalidCupcakeID = 4002
	CodeCupcakeNotFound  = 4040
	CodeTooManyRequests  = 4290

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeDatabaseUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request body cannot be decoded
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingField is returned when a required field is absent from a create request
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidCupcakeID is returned when the cupcake ID is not a positive integer
	ErrInvalidCupcakeID = errors.New("cupcake ID must be a positive integer")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrCupcakeNotFound is returned when no cupcake matches the requested ID
	ErrCupcakeNotFound = fmt.Errorf("cupcake not found: %w", ErrNotFound)

	// ErrTooManyRequests is returned when a client exceeds the request rate
	ErrTooManyRequests = errors.New("too many requests")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrInvalidCupcakeID):
		return CodeInvalidCupcakeID
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrConstraintViolation):
		return CodeInvalidRequest
	case errors.Is(err, ErrCupcakeNotFound), errors.Is(err, ErrNotFound):
		return CodeCupcakeNotFound
	case errors.Is(err, ErrTooManyRequests):
		return CodeTooManyRequests
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseUnavailable
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the HTTP status code the API answers with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrConstraintViolation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidCupcakeID):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError reports which field of a request failed validation
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Field)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewMissingFieldError creates a validation error for an absent required field
func NewMissingFieldError(field string) error {
	return &ValidationError{
		Field: field,
		Err:   ErrMissingField,
	}
}

// CupcakeError wraps a failure of a cupcake operation with its context
type CupcakeError struct {
	CupcakeID uint64
	Operation string
	Err       error
}

// Error implements the error interface for CupcakeError
func (e *CupcakeError) Error() string {
	if e.CupcakeID == 0 {
		return fmt.Sprintf("%s cupcake: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s cupcake %d: %v", e.Operation, e.CupcakeID, e.Err)
}

// Unwrap returns the underlying error
func (e *CupcakeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CupcakeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "cupcake_error",
		"cupcake_id": e.CupcakeID,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewCupcakeError creates a detailed cupcake operation error
func NewCupcakeError(operation string, cupcakeID uint64, err error) error {
	return &CupcakeError{
		CupcakeID: cupcakeID,
		Operation: operation,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// LogFields returns the structured log fields of err. Errors carrying their own
// context contribute it, any other error is reduced to its message and API code.
func LogFields(err error) map[string]any {
	var detailed interface{ LogFields() map[string]any }
	if errors.As(err, &detailed) {
		return detailed.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsValidationError checks if the error was caused by invalid client input
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr) || errors.Is(err, ErrInvalidRequest)
}
