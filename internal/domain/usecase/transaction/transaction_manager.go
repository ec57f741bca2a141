package transaction

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/persistence"
)

// TransactionManager opens and closes units of work. Each unit of work owns one pooled
// connection with autocommit disabled, published through the ConnectionRegistry so that
// repositories called with the unit of work's context run on it.
type TransactionManager struct {
	pool         persistence.ConnectionPool
	registry     *ConnectionRegistry
	timeProvider coreport.TimeProvider
	metrics      coreport.TransactionMetrics
	logger       coreport.Logger
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(
	pool persistence.ConnectionPool,
	registry *ConnectionRegistry,
	timeProvider coreport.TimeProvider,
	metrics coreport.TransactionMetrics,
	logger coreport.Logger,
) *TransactionManager {
	if pool == nil || registry == nil {
		panic("connection pool and registry cannot be nil")
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &TransactionManager{
		pool:         pool,
		registry:     registry,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Registry returns the registry the manager binds connections into
func (m *TransactionManager) Registry() *ConnectionRegistry {
	return m.registry
}

// Begin starts a unit of work. When ctx already belongs to a live unit of work the
// returned handle joins it: it shares the connection and its end calls do not touch it.
func (m *TransactionManager) Begin(ctx context.Context) (*UnitOfWork, error) {
	if conn, err := m.registry.Current(ctx); err == nil {
		id := UnitOfWorkID(ctx)
		m.logger.Debug("Joining active unit of work", map[string]any{
			"unit_of_work": id,
			"connection":   conn.ID(),
		})
		return &UnitOfWork{
			id:        id,
			ctx:       ctx,
			conn:      conn,
			state:     StateActive,
			startedAt: m.timeProvider.Now(),
		}, nil
	}

	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		m.logger.Warn("Failed to acquire connection for unit of work", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	u := &UnitOfWork{
		ctx:             ctx,
		conn:            conn,
		newTransaction:  true,
		priorAutoCommit: conn.AutoCommit(),
		state:           StateCreated,
		startedAt:       m.timeProvider.Now(),
	}

	if err := conn.SetAutoCommit(ctx, false); err != nil {
		m.logger.Error("Failed to disable autocommit", map[string]any{
			"connection": conn.ID(),
			"error":      err.Error(),
		})
		m.pool.Release(conn)
		return nil, err
	}

	boundCtx, err := m.registry.Bind(ctx, conn)
	if err != nil {
		if rbErr := conn.Rollback(ctx); rbErr != nil {
			m.logger.Warn("Rollback after failed bind failed", map[string]any{
				"connection": conn.ID(),
				"error":      rbErr.Error(),
			})
		}
		m.restoreAutoCommit(u)
		m.pool.Release(conn)
		return nil, err
	}

	u.ctx = boundCtx
	u.id = UnitOfWorkID(boundCtx)
	u.state = StateActive
	m.metrics.UnitOfWorkBegan()

	m.logger.Debug("Unit of work started", map[string]any{
		"unit_of_work": u.id,
		"connection":   conn.ID(),
	})
	return u, nil
}

// CommitAndEnd commits the unit of work and releases its connection.
// A commit failure rolls back and returns the commit error. Ending a handle twice,
// or one that was never begun, returns an InvalidTransactionStateError.
func (m *TransactionManager) CommitAndEnd(u *UnitOfWork) error {
	if u == nil {
		return errs.NewInvalidTransactionStateError("", "NONE", "commit", nil)
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireActive("commit"); err != nil {
		return err
	}

	if !u.newTransaction {
		u.state = StateReleased
		return nil
	}

	if m.registry.IsRollbackOnly(u.ctx) {
		m.logger.Warn("Unit of work marked rollback-only, rolling back instead of committing", map[string]any{
			"unit_of_work": u.id,
		})
		m.rollbackQuietly(u)
		u.state = StateRolledBack
		m.end(u, coreport.OutcomeRolledBack)
		return errs.NewInvalidTransactionStateError(u.id, StateActive.String(), "commit", errs.ErrRollbackOnly)
	}

	if err := u.conn.Commit(u.ctx); err != nil {
		m.logger.Error("Commit failed, rolling back unit of work", map[string]any{
			"unit_of_work": u.id,
			"error":        err.Error(),
		})
		m.rollbackQuietly(u)
		u.state = StateRolledBack
		m.end(u, coreport.OutcomeFailed)
		return err
	}

	u.state = StateCommitted
	m.end(u, coreport.OutcomeCommitted)
	return nil
}

// RollbackAndEnd rolls back the unit of work and releases its connection.
// A participating handle only marks the outer unit of work rollback-only.
func (m *TransactionManager) RollbackAndEnd(u *UnitOfWork) error {
	if u == nil {
		return errs.NewInvalidTransactionStateError("", "NONE", "rollback", nil)
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.requireActive("rollback"); err != nil {
		return err
	}

	if !u.newTransaction {
		m.registry.MarkRollbackOnly(u.ctx)
		u.state = StateReleased
		return nil
	}

	err := u.conn.Rollback(u.ctx)
	u.state = StateRolledBack
	m.end(u, coreport.OutcomeRolledBack)
	if err != nil {
		m.logger.Error("Rollback failed", map[string]any{
			"unit_of_work": u.id,
			"error":        err.Error(),
		})
		return err
	}
	return nil
}

// end restores autocommit, releases the connection and clears the binding.
// Cleanup failures are logged only; the handle always ends up RELEASED.
func (m *TransactionManager) end(u *UnitOfWork, outcome coreport.Outcome) {
	defer func() {
		m.pool.Release(u.conn)
		m.registry.Unbind(u.ctx)
		u.state = StateReleased
		elapsed := m.timeProvider.Since(u.startedAt)
		m.metrics.UnitOfWorkEnded(outcome, elapsed)

		m.logger.Debug("Unit of work ended", map[string]any{
			"unit_of_work": u.id,
			"outcome":      string(outcome),
			"duration_ms":  time.Duration(elapsed).Milliseconds(),
		})
	}()

	m.restoreAutoCommit(u)
}

func (m *TransactionManager) restoreAutoCommit(u *UnitOfWork) {
	if err := u.conn.SetAutoCommit(u.ctx, u.priorAutoCommit); err != nil {
		m.logger.Warn("Failed to restore autocommit before release", map[string]any{
			"unit_of_work": u.id,
			"connection":   u.conn.ID(),
			"error":        err.Error(),
		})
	}
}

func (m *TransactionManager) rollbackQuietly(u *UnitOfWork) {
	if err := u.conn.Rollback(u.ctx); err != nil {
		m.logger.Warn("Rollback failed", map[string]any{
			"unit_of_work": u.id,
			"error":        err.Error(),
		})
	}
}

type noopMetrics struct{}

func (noopMetrics) UnitOfWorkBegan() {}

func (noopMetrics) UnitOfWorkEnded(coreport.Outcome, coreport.Duration) {}

func (noopMetrics) TransferFinished(coreport.Outcome, int) {}
