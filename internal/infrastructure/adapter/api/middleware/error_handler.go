package middleware

import (
	"runtime/debug"

	domainerr "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics in later handlers and answers 500 with the standard error body
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				handlePanic(c, logger, recovered)
			}
		}()

		c.Next()
	}
}

func handlePanic(c *gin.Context, logger coreport.Logger, recovered any) {
	logger.Error("Panic recovered in API request", map[string]any{
		"error":      recovered,
		"path":       c.Request.URL.Path,
		"route":      routeOf(c),
		"method":     c.Request.Method,
		"client_ip":  c.ClientIP(),
		"request_id": coreport.RequestIDFromContext(c.Request.Context()),
		"stack":      string(debug.Stack()),
	})

	// Headers already sent, the status can no longer change
	if c.Writer.Written() {
		c.Abort()
		return
	}

	status, body := dto.NewErrorResponse(domainerr.ErrInternalServer)
	c.AbortWithStatusJSON(status, body)
}
