package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the redis connection settings
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// NewRedisClient creates a client and checks that the server answers
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// RedisRateCounter counts requests per key in fixed windows
type RedisRateCounter struct {
	client redis.Cmdable
}

// NewRedisRateCounter creates a counter backed by client
func NewRedisRateCounter(client redis.Cmdable) *RedisRateCounter {
	return &RedisRateCounter{client: client}
}

// Incr increments key and starts its window if the key has no expiry yet.
// A failed expiry is retried on the next hit instead of leaving the key without a TTL.
func (r *RedisRateCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}

	if err := r.client.ExpireNX(ctx, key, window).Err(); err != nil {
		return count, fmt.Errorf("failed to set expiry on %s: %w", key, err)
	}

	return count, nil
}
