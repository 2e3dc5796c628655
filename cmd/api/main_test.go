package main

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server: config.ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver:        "postgres",
			URL:           "postgres://localhost:5432/cupcakes?sslmode=disable",
			MaxOpenConns:  10,
			MaxIdleConns:  5,
			QueryTimeout:  5 * time.Second,
			LogLevel:      "warn",
			RetryAttempts: 3,
		},
		Logger:  config.LoggerConfig{Level: "info"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestValidateConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CC_DB_HOST", "")

	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, validateConfig(validConfig()))
	})

	t.Run("Missing values are listed", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Port = 0
		cfg.Logger.Level = ""

		err := validateConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "logger.level")
	})

	t.Run("Unknown environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "staging"

		err := validateConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid environment value: staging")
	})

	t.Run("Rate limit needs redis", func(t *testing.T) {
		cfg := validConfig()
		cfg.RateLimit = config.RateLimitConfig{Enabled: true}

		err := validateConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis.addr")
		assert.Contains(t, err.Error(), "rateLimit.requests")
		assert.Contains(t, err.Error(), "rateLimit.window")
	})

	t.Run("No database target", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.URL = ""

		err := validateConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid database configuration")
	})
}
