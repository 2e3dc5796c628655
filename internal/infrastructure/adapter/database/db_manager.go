package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domainErr "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultMonitorInterval = 30 * time.Second

// ManagerOption configures optional collaborators of the Manager
type ManagerOption func(*Manager)

// WithPoolStatsRecorder publishes connection pool snapshots to recorder
func WithPoolStatsRecorder(recorder PoolStatsRecorder) ManagerOption {
	return func(m *Manager) {
		m.poolRecorder = recorder
	}
}

// WithQueryObserver reports every SQL statement to observer
func WithQueryObserver(observer QueryObserver) ManagerOption {
	return func(m *Manager) {
		m.queryObserver = observer
	}
}

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
	poolRecorder      PoolStatsRecorder
	queryObserver     QueryObserver
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...ManagerOption) *Manager {
	m := &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect opens the connection pool, retrying transient failures with backoff
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"target": m.config.Target(),
	})

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(
			m.logger,
			m.timeProvider,
			m.config.LogLevel,
			m.config.SlowThreshold,
			m.queryObserver,
		),
		NowFunc: func() time.Time {
			return m.timeProvider.Now().UTC()
		},
		PrepareStmt: true,
	}

	var gormDB *gorm.DB
	// gorm.Open pings the server, so a successful open means a usable pool
	err := RetryOnTransientError(ctx, RetryConfigFromConfig(m.config), m.logger, func(context.Context) error {
		var openErr error
		gormDB, openErr = gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w",
			m.config.RetryAttempts, m.errorMapper.MapError(err, "connect"))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"target":         m.config.Target(),
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	m.connectionMonitor = NewConnectionPoolMonitor(m.poolStats, m.poolRecorder, m.logger)

	interval := m.config.MonitorInterval
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	if err := m.connectionMonitor.Start(interval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("%w: not connected", domainErr.ErrDatabaseConnection)
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return m.errorMapper.MapError(err, "ping")
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return m.errorMapper.MapError(err, "ping")
	}
	return nil
}

// Close stops the pool monitor and closes the connection pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context bounded by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a UnitOfWork whose transactions are bounded by the query timeout
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.errorMapper, m.WithTimeout)
}

// MigrationManager returns the migration manager, available after Connect
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}

// PoolMetrics returns the last connection pool snapshot
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

func (m *Manager) poolStats() (sql.DBStats, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return sql.DBStats{}, fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Stats(), nil
}
