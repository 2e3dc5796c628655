package database

import (
	"context"
	"os"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/time"
)

// TestDBManager wraps a Manager pointed at the integration test database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	TimeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// testConfig reads TEST_DATABASE_URL, falling back to the TEST_DB_* variables
func testConfig() *Config {
	base := &Config{
		Driver:   "postgres",
		URL:      os.Getenv("TEST_DATABASE_URL"),
		Host:     configEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     configEnvAsInt("TEST_DB_PORT", 5432),
		Username: configEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password: configEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database: configEnvOrDefault("TEST_DB_DATABASE", "cupcakes_test"),
		SSLMode:  configEnvOrDefault("TEST_DB_SSL_MODE", "disable"),

		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		SlowThreshold:   time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      100 * time.Millisecond,
		MonitorInterval: time.Minute,
	}
	return base.WithMaxOpenConnections(5).WithQueryTimeout(5 * time.Second)
}

// NewTestDBManager builds an unconnected manager; call ConnectOrSkip before use
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	cfg := testConfig()
	clock := timeprovider.NewRealTimeProvider()

	return &TestDBManager{
		Manager:      NewManager(cfg, logger, clock),
		Config:       cfg,
		TimeProvider: clock,
		logger:       logger,
	}
}

// WithQueryTimeout returns an unconnected manager for the same database with another query timeout
func (m *TestDBManager) WithQueryTimeout(timeout time.Duration) *TestDBManager {
	cfg := m.Config.WithQueryTimeout(timeout)
	return &TestDBManager{
		Manager:      NewManager(cfg, m.logger, m.TimeProvider),
		Config:       cfg,
		TimeProvider: m.TimeProvider,
		logger:       m.logger,
	}
}

// ConnectOrSkip skips the calling test when no database answers.
// The connection is closed when the test finishes.
func (m *TestDBManager) ConnectOrSkip(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Skipf("test database not reachable (%s): %v", m.Config.Target(), err)
	}

	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("closing test database: %v", err)
		}
	})
}

// SetupTestDB drops and recreates the schema
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	migrator := m.Manager.MigrationManager()

	if err := migrator.DropSchema(ctx); err != nil {
		t.Fatalf("drop schema: %v", err)
	}
	if err := migrator.CreateSchema(ctx); err != nil {
		t.Fatalf("create schema: %v", err)
	}
}

// TruncateAllTables empties cupcakes and restarts the id sequence at 1
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`TRUNCATE TABLE cupcakes RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("truncate cupcakes: %v", err)
	}
}
