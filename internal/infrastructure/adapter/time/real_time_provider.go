package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
)

// SystemClock reads the host clock
type SystemClock struct{}

// NewRealTimeProvider returns the host clock as a core.TimeProvider
func NewRealTimeProvider() core.TimeProvider {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func (SystemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// WithTimeout skips the deadline entirely for a non-positive timeout
func (SystemClock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
