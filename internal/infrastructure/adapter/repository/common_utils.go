package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorType is the coarse category a failed statement falls into
type ErrorType string

const (
	ConnectionError ErrorType = "connection"
	ConstraintError ErrorType = "constraint"
	TimeoutError    ErrorType = "timeout"
)

// ErrorClassifier sorts driver errors into ErrorTypes.
// Postgres SQLSTATE codes are used when present, message text otherwise.
type ErrorClassifier struct{}

func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns "" for nil and for errors it does not recognise
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsTimeoutError(err):
		return TimeoutError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	default:
		return ""
	}
}

func (c *ErrorClassifier) IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		return code == "57014" // query_canceled, raised by statement_timeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return containsAny(err, "timeout", "deadline exceeded", "canceling statement")
}

func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		return strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57P")
	}
	return containsAny(err,
		"connection refused", "connection reset", "no connection",
		"dial", "server closed", "broken pipe", "eof")
}

func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		return strings.HasPrefix(code, "23")
	}
	return containsAny(err, "violates", "constraint", "not-null", "duplicate key")
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

func containsAny(err error, needles ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}
