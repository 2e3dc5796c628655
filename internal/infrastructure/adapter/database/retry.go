package database

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   5 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryConfigFromConfig derives the startup retry policy from the database config
func RetryConfigFromConfig(c *Config) RetryConfig {
	rc := DefaultRetryConfig()
	rc.MaxRetries = c.RetryAttempts
	if c.RetryDelay > 0 {
		rc.RetryInterval = c.RetryDelay
	}
	return rc
}

// RetryOnTransientError runs operation up to config.MaxRetries times.
// Only transient errors are retried, with exponential backoff between attempts.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	logger coreport.Logger,
	operation func(ctx context.Context) error,
) error {
	attempts := max(config.MaxRetries, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = operation(ctx)
		switch {
		case lastErr == nil:
			return nil
		case !isTransientError(lastErr):
			return lastErr
		case attempt == attempts:
			logger.Error("All retry attempts failed", map[string]any{
				"attempts": attempts,
				"error":    lastErr.Error(),
			})
			return lastErr
		}

		backoff := calculateBackoffWithJitter(attempt-1, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt,
			"max_retries": attempts,
			"error":       lastErr.Error(),
			"retry_after": backoff.String(),
		})

		if err := waitFor(ctx, backoff); err != nil {
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt,
				"error":    err.Error(),
			})
			return errors.Join(err, lastErr)
		}
	}

	return lastErr
}

// waitFor blocks for d or until ctx is done
func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// calculateBackoffWithJitter computes an exponential backoff capped at MaxInterval
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval << uint(attempt)

	if backoff > config.MaxInterval || backoff <= 0 {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}

	return backoff
}

// isTransientError reports whether a failed connection attempt is worth repeating
func isTransientError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	if code := sqlState(err); code != "" {
		return strings.HasPrefix(code, sqlStateClassResources) ||
			strings.HasPrefix(code, sqlStateClassConnection) ||
			code == sqlStateCannotConnectNow ||
			code == sqlStateAdminShutdown
	}

	if isTimeoutError(err) || isConnectionError(err) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "too many connections") ||
		strings.Contains(msg, "the database system is starting up") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "eof")
}
