package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/cupcakes/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestRetryOnTransientError(t *testing.T) {
	ctx := context.Background()

	t.Run("Succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetryConfig(5), quietLogger(t), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connect: connection refused")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Does not retry permanent errors", func(t *testing.T) {
		calls := 0
		permanent := errors.New("password authentication failed")
		err := RetryOnTransientError(ctx, fastRetryConfig(5), quietLogger(t), func(context.Context) error {
			calls++
			return permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetryConfig(3), quietLogger(t), func(context.Context) error {
			calls++
			return errors.New("i/o timeout")
		})

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		cfg := fastRetryConfig(5)
		cfg.RetryInterval = time.Second
		cfg.MaxInterval = time.Second

		err := RetryOnTransientError(canceled, cfg, quietLogger(t), func(context.Context) error {
			return errors.New("connection reset by peer")
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, isTransientError(pgError("53300")))
	assert.True(t, isTransientError(pgError("57P03")))
	assert.True(t, isTransientError(errors.New("unexpected EOF")))
	assert.False(t, isTransientError(pgError("28P01")))
	assert.False(t, isTransientError(context.Canceled))
	assert.False(t, isTransientError(nil))
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))

	cfg.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(1, cfg)
	assert.GreaterOrEqual(t, backoff, 200*time.Millisecond)
	assert.LessOrEqual(t, backoff, 300*time.Millisecond)
}

func TestRetryConfigFromConfig(t *testing.T) {
	rc := RetryConfigFromConfig(&Config{RetryAttempts: 7, RetryDelay: 250 * time.Millisecond})

	assert.Equal(t, 7, rc.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, rc.RetryInterval)
}
