package database

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config represents database configuration
type Config struct {
	Driver          string        `mapstructure:"db_driver"`
	URL             string        `mapstructure:"db_url"`
	Host            string        `mapstructure:"db_host"`
	Port            int           `mapstructure:"db_port"`
	Username        string        `mapstructure:"db_username"`
	Password        string        `mapstructure:"db_password"`
	Database        string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"db_ssl_mode"`
	MaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"db_conn_max_idle_time"`
	QueryTimeout    time.Duration `mapstructure:"db_query_timeout"`
	SlowThreshold   time.Duration `mapstructure:"db_slow_threshold"`
	LogLevel        string        `mapstructure:"db_log_level"`
	RetryAttempts   int           `mapstructure:"db_retry_attempts"`
	RetryDelay      time.Duration `mapstructure:"db_retry_delay"`
	MonitorInterval time.Duration `mapstructure:"db_monitor_interval"`
}

// DefaultConfig returns a Config with default values.
// Credentials are never hardcoded, they come from DATABASE_URL or the CC_DB_* variables.
func DefaultConfig() *Config {
	return &Config{
		Driver:          configEnvOrDefault("CC_DB_DRIVER", "postgres"),
		URL:             configEnv("DATABASE_URL"),
		Host:            configEnv("CC_DB_HOST"),
		Port:            configEnvAsInt("CC_DB_PORT", 5432),
		Username:        configEnv("CC_DB_USERNAME"),
		Password:        configEnv("CC_DB_PASSWORD"),
		Database:        configEnv("CC_DB_NAME"),
		SSLMode:         configEnvOrDefault("CC_DB_SSL_MODE", "disable"),
		MaxOpenConns:    configEnvAsInt("CC_DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    configEnvAsInt("CC_DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(configEnvAsInt("CC_DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		ConnMaxIdleTime: time.Duration(configEnvAsInt("CC_DB_CONN_MAX_IDLE_TIME_MINUTES", 5)) * time.Minute,
		QueryTimeout:    time.Duration(configEnvAsInt("CC_DB_QUERY_TIMEOUT_SECONDS", 5)) * time.Second,
		SlowThreshold:   200 * time.Millisecond,
		LogLevel:        configEnvOrDefault("CC_DB_LOG_LEVEL", "warn"),
		RetryAttempts:   configEnvAsInt("CC_DB_RETRY_ATTEMPTS", 5),
		RetryDelay:      time.Duration(configEnvAsInt("CC_DB_RETRY_DELAY_MS", 500)) * time.Millisecond,
		MonitorInterval: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.URL != "" {
		if _, err := url.Parse(c.URL); err != nil {
			return fmt.Errorf("invalid database URL: %w", err)
		}
	} else {
		if c.Host == "" {
			return errors.New("database host is required when no database URL is set")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Username == "" {
			return errors.New("database username is required")
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}

		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"error":  true,
		"warn":   true,
		"info":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid database log level: %s", c.LogLevel)
	}

	return nil
}

// DSN returns the database connection string.
// A configured URL takes precedence over the individual fields.
func (c *Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// Target describes the database being connected to without exposing credentials
func (c *Config) Target() string {
	if c.URL != "" {
		parsed, err := url.Parse(c.URL)
		if err != nil {
			return "invalid-url"
		}
		return parsed.Redacted()
	}
	return fmt.Sprintf("%s:%d/%s", c.Host, c.Port, c.Database)
}

// WithMaxOpenConnections returns a copy of the config with updated max open connections
func (c *Config) WithMaxOpenConnections(max int) *Config {
	newConfig := *c
	newConfig.MaxOpenConns = max
	return &newConfig
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}

// Helper functions for environment variables

func configEnv(key string) string {
	return os.Getenv(key)
}

func configEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func configEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
