package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
)

const (
	defaultHealthCheckPeriod = 30 * time.Second
	healthCheckPingTimeout   = 5 * time.Second
	poolSaturationThreshold  = 0.8
)

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

// HealthChecker pings the database periodically and keeps the latest pool snapshot
type HealthChecker struct {
	sqlDB       *sql.DB
	logger      coreport.Logger
	checkPeriod time.Duration

	mutex    sync.RWMutex
	snapshot ConnectionPoolMetrics

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(sqlDB *sql.DB, checkPeriod time.Duration, logger coreport.Logger) *HealthChecker {
	if checkPeriod <= 0 {
		checkPeriod = defaultHealthCheckPeriod
	}
	return &HealthChecker{
		sqlDB:       sqlDB,
		logger:      logger,
		checkPeriod: checkPeriod,
		stopChan:    make(chan struct{}),
	}
}

// StartMonitoring starts the health monitoring goroutine
func (h *HealthChecker) StartMonitoring() {
	go h.monitorHealth()
}

// StopMonitoring stops the health monitoring goroutine
func (h *HealthChecker) StopMonitoring() {
	h.stopOnce.Do(func() {
		close(h.stopChan)
	})
}

func (h *HealthChecker) monitorHealth() {
	ticker := time.NewTicker(h.checkPeriod)
	defer ticker.Stop()

	h.logger.Info("Database health monitoring started", map[string]any{
		"period": h.checkPeriod.String(),
	})

	for {
		select {
		case <-h.stopChan:
			h.logger.Info("Database health monitoring stopped", nil)
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), healthCheckPingTimeout)
			_ = h.Check(ctx)
			cancel()
		}
	}
}

// Check pings the database and refreshes the pool snapshot.
// A pool running above 80% of its capacity is logged as nearly exhausted.
func (h *HealthChecker) Check(ctx context.Context) error {
	pingErr := h.sqlDB.PingContext(ctx)
	if pingErr != nil {
		h.logger.Error("Database ping failed", map[string]any{
			"error": pingErr.Error(),
		})
		pingErr = fmt.Errorf("database ping failed: %w", pingErr)
	}

	stats := h.sqlDB.Stats()
	snapshot := ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}

	h.mutex.Lock()
	h.snapshot = snapshot
	h.mutex.Unlock()

	if stats.MaxOpenConnections > 0 &&
		float64(stats.InUse) > float64(stats.MaxOpenConnections)*poolSaturationThreshold {
		h.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	} else {
		h.logger.Debug("Database connection pool stats", map[string]any{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
			"wait_count":       stats.WaitCount,
		})
	}

	return pingErr
}

// GetMetrics returns the snapshot taken by the latest check
func (h *HealthChecker) GetMetrics() ConnectionPoolMetrics {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.snapshot
}

// NewPoolStatsCollector exposes the sql.DBStats of sqlDB as prometheus metrics
func NewPoolStatsCollector(sqlDB *sql.DB, dbName string) prometheus.Collector {
	return collectors.NewDBStatsCollector(sqlDB, dbName)
}
