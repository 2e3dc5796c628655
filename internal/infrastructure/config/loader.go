package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names, each matching a file in configs/
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "CC"

// ConfigPaths are searched in order for <environment>.yaml
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths are tried in order, the first readable file is loaded
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

var defaults = map[string]any{
	"app.name":        "cupcakes",
	"app.secretKey":   "",
	"app.seedOnStart": false,

	"server.host":              "0.0.0.0",
	"server.port":              8080,
	"server.readTimeout":       15,
	"server.writeTimeout":      15,
	"server.idleTimeout":       60,
	"server.readHeaderTimeout": 10,
	"server.shutdownTimeout":   10,
	"server.allowedOrigins":    []string{"*"},

	"database.driver":          "postgres",
	"database.url":             "",
	"database.host":            "",
	"database.port":            "5432",
	"database.username":        "",
	"database.password":        "",
	"database.database":        "",
	"database.sslMode":         "disable",
	"database.maxOpenConns":    10,
	"database.maxIdleConns":    5,
	"database.connMaxLifetime": 30,
	"database.connMaxIdleTime": 15,
	"database.queryTimeout":    5,
	"database.slowThreshold":   200,
	"database.logLevel":        "warn",
	"database.retryAttempts":   5,
	"database.retryDelay":      500,

	"logger.level":      "info",
	"logger.format":     "json",
	"logger.output":     "stdout",
	"logger.callerInfo": true,

	"metrics.enabled":   true,
	"metrics.path":      "/metrics",
	"metrics.namespace": "cupcakes",

	"redis.addr":     "",
	"redis.password": "",
	"redis.db":       0,

	"rateLimit.enabled":  false,
	"rateLimit.requests": 100,
	"rateLimit.window":   60,
}

// envAliases maps config keys to variables outside the CC_ naming.
// DATABASE_URL, SECRET_KEY and PORT follow hosting platform conventions,
// the CC_DB_* names are kept for existing deployments.
var envAliases = map[string][]string{
	"database.url":      {"DATABASE_URL"},
	"database.host":     {"CC_DB_HOST"},
	"database.port":     {"CC_DB_PORT"},
	"database.username": {"CC_DB_USERNAME"},
	"database.password": {"CC_DB_PASSWORD"},
	"database.database": {"CC_DB_NAME"},
	"app.secretKey":     {"SECRET_KEY"},
	"redis.addr":        {"REDIS_ADDR"},
	"server.port":       {"PORT"},
}

// LoadConfig loads configuration for the environment named by CC_ENV.
// Precedence, lowest first: defaults, configs/<env>.yaml, .env, environment.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom loads the named environment's config file from the given paths.
// A missing config file is not an error, defaults and the environment still apply.
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	applyDurationUnits(&config)

	return &config, nil
}

func loadDotEnvFile() error {
	var lastErr error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if lastErr = godotenv.Load(path); lastErr == nil {
			return nil
		}
	}

	if lastErr != nil {
		return fmt.Errorf("could not load any .env file: %w", lastErr)
	}
	return errors.New("no .env file found in search paths")
}

// getEnvironment reads CC_ENV and falls back to development
func getEnvironment() string {
	if env := os.Getenv(EnvPrefix + "_ENV"); env != "" {
		return strings.ToLower(env)
	}
	return Development
}

// applyDurationUnits scales the plain integers read from files and the environment
func applyDurationUnits(config *Config) {
	units := []struct {
		field *time.Duration
		unit  time.Duration
	}{
		{&config.Server.ReadTimeout, time.Second},
		{&config.Server.WriteTimeout, time.Second},
		{&config.Server.IdleTimeout, time.Second},
		{&config.Server.ReadHeaderTimeout, time.Second},
		{&config.Server.ShutdownTimeout, time.Second},
		{&config.Database.ConnMaxLifetime, time.Minute},
		{&config.Database.ConnMaxIdleTime, time.Minute},
		{&config.Database.QueryTimeout, time.Second},
		{&config.Database.SlowThreshold, time.Millisecond},
		{&config.Database.RetryDelay, time.Millisecond},
		{&config.RateLimit.Window, time.Second},
	}

	for _, u := range units {
		*u.field *= u.unit
	}
}
