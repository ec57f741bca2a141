package persistence

import (
	"context"
)

// Connection is a single physical database connection checked out of a pool.
// It is not safe for use by concurrent units of work.
type Connection interface {
	// ID returns an identifier for logging
	ID() string

	// AutoCommit reports whether every statement commits on its own
	AutoCommit() bool

	// SetAutoCommit switches autocommit mode.
	// Disabling it opens a transaction that lasts until Commit or Rollback.
	// Enabling it while a transaction is pending commits that transaction.
	SetAutoCommit(ctx context.Context, autoCommit bool) error

	// Commit makes all statements since the transaction started durable.
	// Possible errors:
	// - errs.DataAccessError: if the commit fails or autocommit is enabled
	// - errs.ErrConnectionClosed: if the connection was already released
	Commit(ctx context.Context) error

	// Rollback undoes all statements since the transaction started.
	// Possible errors:
	// - errs.DataAccessError: if the rollback fails or autocommit is enabled
	// - errs.ErrConnectionClosed: if the connection was already released
	Rollback(ctx context.Context) error

	// Close returns the physical connection to its pool. A pending transaction is rolled back.
	Close() error
}

// ConnectionPool supplies and reclaims physical connections
type ConnectionPool interface {
	// Acquire checks out a connection, blocking until one is available or the
	// configured acquire timeout elapses.
	// Possible errors:
	// - errs.PoolExhaustedError: if no connection became available in time
	// - errs.DataAccessError: if the pool could not open a connection
	Acquire(ctx context.Context) (Connection, error)

	// Release returns a connection to the pool. Failures are logged, not returned.
	// A connection whose autocommit flag is still disabled is rolled back first.
	Release(conn Connection)
}
