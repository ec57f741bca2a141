package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/persistence"
)

// ConnectionPool checks dedicated connections out of the database/sql pool.
// Every connection it hands out is held by its caller until Release.
type ConnectionPool struct {
	db             *gorm.DB
	sqlDB          *sql.DB
	acquireTimeout time.Duration
	classifier     *ErrorClassifier
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewConnectionPool creates a connection pool on top of an open gorm handle
func NewConnectionPool(
	db *gorm.DB,
	acquireTimeout time.Duration,
	classifier *ErrorClassifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (*ConnectionPool, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	if classifier == nil {
		classifier = NewErrorClassifier()
	}

	return &ConnectionPool{
		db:             db,
		sqlDB:          sqlDB,
		acquireTimeout: acquireTimeout,
		classifier:     classifier,
		timeProvider:   timeProvider,
		logger:         logger,
	}, nil
}

// Acquire checks out a connection in autocommit mode. When no connection frees up within
// the acquire timeout it returns a PoolExhaustedError.
func (p *ConnectionPool) Acquire(ctx context.Context) (persistence.Connection, error) {
	acquireCtx := ctx
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}

	start := p.timeProvider.Now()
	conn, err := p.sqlDB.Conn(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			waited := p.timeProvider.Since(start).Std().Round(time.Millisecond)
			stats := p.sqlDB.Stats()
			p.logger.Warn("Connection pool exhausted", map[string]any{
				"waited":   waited.String(),
				"in_use":   stats.InUse,
				"max_open": stats.MaxOpenConnections,
			})
			return nil, errs.NewPoolExhaustedError(waited.String(), err)
		}
		return nil, p.classifier.Translate("acquire", err)
	}

	pooled := newPooledConnection(uuid.NewString(), conn, p.db, p.classifier, p.logger)
	p.logger.Debug("Connection acquired", map[string]any{
		"connection": pooled.ID(),
	})
	return pooled, nil
}

// Release returns conn to the pool, rolling back any transaction still open on it
func (p *ConnectionPool) Release(conn persistence.Connection) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		p.logger.Warn("Failed to release connection cleanly", map[string]any{
			"connection": conn.ID(),
			"error":      err.Error(),
		})
		return
	}
	p.logger.Debug("Connection released", map[string]any{
		"connection": conn.ID(),
	})
}

// Stats returns the statistics of the underlying pool
func (p *ConnectionPool) Stats() sql.DBStats {
	return p.sqlDB.Stats()
}
