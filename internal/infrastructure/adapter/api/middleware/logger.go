package middleware

import (
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger writes one access log entry per request.
// 5xx responses log at error level and 4xx at warn.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// Handlers may rewrite the URL, capture it first
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":       c.Request.Method,
			"path":         path,
			"route":        routeOf(c),
			"status":       status,
			"status_class": statusClass(status),
			"latency_ms":   time.Since(start).Milliseconds(),
			"bytes":        c.Writer.Size(),
			"ip":           c.ClientIP(),
			"request_id":   coreport.RequestIDFromContext(c.Request.Context()),
			"user_agent":   c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		logAt(logger, status)(messageFor(status), fields)
	}
}

func logAt(logger coreport.Logger, status int) func(string, map[string]any) {
	switch {
	case status >= 500:
		return logger.Error
	case status >= 400:
		return logger.Warn
	default:
		return logger.Info
	}
}

func messageFor(status int) string {
	switch {
	case status >= 500:
		return "Request failed"
	case status >= 400:
		return "Request rejected"
	default:
		return "Request processed"
	}
}

// routeOf returns the matched route template, or "unmatched" for 404s
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

// statusClass folds a status code into 1xx..5xx
func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
