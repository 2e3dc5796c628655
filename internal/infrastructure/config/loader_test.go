package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfigFromDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Database.RetryDelay)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.App.SeedOnStart)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeConfig(t, Development, `
app:
  seedOnStart: true
server:
  port: 9090
  shutdownTimeout: 3
database:
  host: db.internal
  username: cupcakes
  database: cupcakes
  queryTimeout: 2
logger:
  level: debug
  format: console
rateLimit:
  enabled: true
  requests: 5
  window: 10
`)

	cfg, err := LoadConfigFrom(Development, dir)
	require.NoError(t, err)

	assert.True(t, cfg.App.SeedOnStart)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cupcakes", cfg.Database.Username)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Production, `
server:
  port: 9090
database:
  url: postgres://file/cupcakes
`)

	t.Setenv("DATABASE_URL", "postgres://env/cupcakes?sslmode=disable")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("CC_SERVER_PORT", "7070")
	t.Setenv("CC_LOGGER_LEVEL", "warn")
	t.Setenv("CC_DB_HOST", "override-host")

	cfg, err := LoadConfigFrom(Production, dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/cupcakes?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "s3cret", cfg.App.SecretKey)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "override-host", cfg.Database.Host)
}

func TestLoadConfigFromInvalidFile(t *testing.T) {
	dir := writeConfig(t, Test, "server: [port")

	_, err := LoadConfigFrom(Test, dir)
	assert.Error(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CC_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("CC_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}

func TestLoadConfigPlatformAliases(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CC_DB_NAME", "bakery")

	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "bakery", cfg.Database.Database)
}
