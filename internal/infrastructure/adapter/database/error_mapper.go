package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	domainErr "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes and classes the service reacts to
const (
	sqlStateClassIntegrity  = "23"
	sqlStateClassConnection = "08"
	sqlStateClassResources  = "53"

	sqlStateQueryCanceled    = "57014"
	sqlStateAdminShutdown    = "57P01"
	sqlStateCrashShutdown    = "57P02"
	sqlStateCannotConnectNow = "57P03"
)

// ErrorMapper maps database errors that escape the repositories to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error.
// Postgres errors are classified by SQLSTATE, anything else by its message.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrCupcakeNotFound
	}

	switch {
	case isConstraintError(err):
		return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, operation)
	case isTimeoutError(err):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
	case isConnectionError(err):
		return fmt.Errorf("%w: %s", domainErr.ErrDatabaseConnection, operation)
	default:
		return fmt.Errorf("%w: %s", domainErr.ErrInternalServer, operation)
	}
}

// sqlState returns the SQLSTATE of a Postgres error, or "" for any other error
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isConstraintError(err error) bool {
	if code := sqlState(err); code != "" {
		return strings.HasPrefix(code, sqlStateClassIntegrity)
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "not-null constraint")
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || sqlState(err) == sqlStateQueryCanceled {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded")
}

func isConnectionError(err error) bool {
	switch code := sqlState(err); {
	case strings.HasPrefix(code, sqlStateClassConnection),
		code == sqlStateAdminShutdown,
		code == sqlStateCrashShutdown,
		code == sqlStateCannotConnectNow:
		return true
	case code != "":
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no connection") ||
		strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "bad connection") ||
		strings.Contains(msg, "broken pipe")
}
