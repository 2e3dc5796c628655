package middleware

import (
	"context"
	"time"

	domainerr "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RateCounter counts hits for a key inside a fixed window
type RateCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter rejects clients that exceed limit requests per window.
// Requests pass through when the counter is unavailable.
func RateLimiter(counter RateCounter, limit int64, window time.Duration, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate_limit:" + c.ClientIP()

		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			logger.Warn("Rate limit counter unavailable", map[string]any{
				"error":      err.Error(),
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			})
			c.Next()
			return
		}

		if count > limit {
			status, body := dto.NewErrorResponse(domainerr.ErrTooManyRequests)
			c.AbortWithStatusJSON(status, body)
			return
		}

		c.Next()
	}
}
