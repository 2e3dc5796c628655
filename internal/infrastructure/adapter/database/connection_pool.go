package database

import (
	"database/sql"
	"sync"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
)

// exhaustionRatio is the share of MaxOpenConnections in use that triggers a warning
const exhaustionRatio = 0.8

// ConnectionPoolMetrics is a snapshot of the database connection pool
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

func newConnectionPoolMetrics(stats sql.DBStats) *ConnectionPoolMetrics {
	return &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

// nearlyExhausted reports whether the pool is close to refusing new work
func (m ConnectionPoolMetrics) nearlyExhausted() bool {
	return m.MaxOpenConnections > 0 && float64(m.InUse) > float64(m.MaxOpenConnections)*exhaustionRatio
}

// StatsSource returns the current pool statistics
type StatsSource func() (sql.DBStats, error)

// ConnectionPoolMonitor samples the pool on an interval, keeps the latest
// snapshot and forwards every sample to the recorder.
type ConnectionPoolMonitor struct {
	source   StatsSource
	recorder PoolStatsRecorder
	logger   coreport.Logger

	latest atomic.Pointer[ConnectionPoolMetrics]

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewConnectionPoolMonitor creates a new connection pool monitor.
// recorder may be nil.
func NewConnectionPoolMonitor(source StatsSource, recorder PoolStatsRecorder, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		source:   source,
		recorder: recorder,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start samples the pool once, failing if that sample fails, then keeps
// sampling in the background until Stop.
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	m.wg.Add(1)
	go m.loop(interval)
	return nil
}

func (m *ConnectionPoolMonitor) loop(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			if err := m.collectMetrics(); err != nil {
				m.logger.Error("Failed to collect connection pool metrics", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// Stop ends sampling and waits for the background loop to exit.
// It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
	m.wg.Wait()
}

// GetMetrics returns the last collected snapshot
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	if snapshot := m.latest.Load(); snapshot != nil {
		return *snapshot
	}
	return ConnectionPoolMetrics{}
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	stats, err := m.source()
	if err != nil {
		return err
	}

	if m.recorder != nil {
		m.recorder.SetDBPoolStats(stats)
	}

	snapshot := newConnectionPoolMetrics(stats)
	m.latest.Store(snapshot)

	if snapshot.nearlyExhausted() {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     snapshot.InUse,
			"max_open":   snapshot.MaxOpenConnections,
			"idle":       snapshot.IdleConnections,
			"wait_count": snapshot.WaitCount,
			"wait_time":  snapshot.WaitDuration.String(),
		})
	}

	return nil
}
