package core

import (
	"context"
	"time"
)

// TimeProvider is the clock used by use cases and the database manager.
// Now is always reported in UTC.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
