package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
)

// PooledConnection implements persistence.Connection on a *sql.Conn checked out of the pool.
// With autocommit disabled it holds one *sql.Tx at a time; statements issued through
// Session run inside it.
type PooledConnection struct {
	mu sync.Mutex

	id         string
	conn       *sql.Conn
	db         *gorm.DB
	tx         *sql.Tx
	autoCommit bool
	closed     bool
	classifier *ErrorClassifier
	logger     coreport.Logger
}

func newPooledConnection(id string, conn *sql.Conn, db *gorm.DB, classifier *ErrorClassifier, logger coreport.Logger) *PooledConnection {
	return &PooledConnection{
		id:         id,
		conn:       conn,
		db:         db,
		autoCommit: true,
		classifier: classifier,
		logger:     logger,
	}
}

// ID returns the connection identifier used in logs
func (c *PooledConnection) ID() string {
	return c.id
}

// AutoCommit reports whether every statement commits on its own
func (c *PooledConnection) AutoCommit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoCommit
}

// SetAutoCommit switches autocommit mode. Disabling it begins a transaction;
// enabling it commits the pending one, if any.
func (c *PooledConnection) SetAutoCommit(ctx context.Context, autoCommit bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errs.ErrConnectionClosed
	}
	if autoCommit == c.autoCommit {
		return nil
	}

	if autoCommit {
		if c.tx != nil {
			if err := c.endLocked(true); err != nil {
				return err
			}
		}
		c.autoCommit = true
		return nil
	}

	if err := c.beginLocked(ctx); err != nil {
		return err
	}
	c.autoCommit = false
	return nil
}

// Commit commits the pending transaction. Statements issued afterwards start a new one.
func (c *PooledConnection) Commit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireManualLocked("commit"); err != nil {
		return err
	}
	if c.tx == nil {
		return nil
	}
	return c.endLocked(true)
}

// Rollback undoes the pending transaction. Statements issued afterwards start a new one.
func (c *PooledConnection) Rollback(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireManualLocked("rollback"); err != nil {
		return err
	}
	if c.tx == nil {
		return nil
	}
	return c.endLocked(false)
}

// Session returns a gorm handle whose statements run on this connection, inside the
// pending transaction when autocommit is disabled.
func (c *PooledConnection) Session(ctx context.Context) (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errs.ErrConnectionClosed
	}
	if !c.autoCommit && c.tx == nil {
		if err := c.beginLocked(ctx); err != nil {
			return nil, err
		}
	}

	session := c.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	if c.tx != nil {
		session.Statement.ConnPool = c.tx
	} else {
		session.Statement.ConnPool = c.conn
	}
	return session, nil
}

// Close rolls back a pending transaction and returns the connection to the pool
func (c *PooledConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var rollbackErr error
	if c.tx != nil {
		c.logger.Warn("Closing connection with an open transaction, rolling back", map[string]any{
			"connection": c.id,
		})
		rollbackErr = c.endLocked(false)
	}

	if err := c.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return errs.NewDataAccessError("close", c.classifier.Kind(err), err)
	}
	return rollbackErr
}

func (c *PooledConnection) requireManualLocked(op string) error {
	if c.closed {
		return errs.ErrConnectionClosed
	}
	if c.autoCommit {
		return errs.NewDataAccessError(op, errs.KindUnknown, errors.New("connection is in autocommit mode"))
	}
	return nil
}

// beginLocked opens a transaction that only Commit or Rollback end;
// cancelling the caller's context does not roll it back behind the manager's back.
func (c *PooledConnection) beginLocked(ctx context.Context) error {
	tx, err := c.conn.BeginTx(context.WithoutCancel(ctx), nil)
	if err != nil {
		return errs.NewDataAccessError("begin", c.classifier.Kind(err), err)
	}
	c.tx = tx
	return nil
}

func (c *PooledConnection) endLocked(commit bool) error {
	tx := c.tx
	c.tx = nil

	if commit {
		if err := tx.Commit(); err != nil {
			return errs.NewDataAccessError("commit", c.classifier.Kind(err), err)
		}
		return nil
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return errs.NewDataAccessError("rollback", c.classifier.Kind(err), err)
	}
	return nil
}
