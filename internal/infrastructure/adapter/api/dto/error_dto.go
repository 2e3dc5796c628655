package dto

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse maps err to its HTTP status and response body.
// Server side failures never leak their cause to the client.
func NewErrorResponse(err error) (int, ErrorResponse) {
	status := domainerr.HTTPStatus(err)
	return status, ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: publicMessage(err, status),
	}
}

func publicMessage(err error, status int) string {
	var vErr *domainerr.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case domainerr.IsNotFoundError(err), errors.Is(err, domainerr.ErrInvalidCupcakeID):
		return "Cupcake not found"
	case errors.Is(err, domainerr.ErrTooManyRequests):
		return "Too many requests"
	case status == http.StatusServiceUnavailable:
		return "Database unavailable"
	case status >= http.StatusInternalServerError:
		return "Internal server error"
	default:
		return err.Error()
	}
}
