package transaction

import (
	"context"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/persistence"
)

// State is the lifecycle position of a unit of work handle
type State int

const (
	StateCreated State = iota
	StateActive
	StateCommitted
	StateRolledBack
	StateReleased
)

// String returns the state name used in logs and errors
func (s State) String() string {
	switch s {
	case StateCreated:
		return "CREATED"
	case StateActive:
		return "ACTIVE"
	case StateCommitted:
		return "COMMITTED"
	case StateRolledBack:
		return "ROLLED_BACK"
	case StateReleased:
		return "RELEASED"
	default:
		return "UNKNOWN"
	}
}

// UnitOfWork is the handle returned by TransactionManager.Begin.
// It must be ended exactly once with CommitAndEnd or RollbackAndEnd.
type UnitOfWork struct {
	mu sync.Mutex

	id              string
	ctx             context.Context
	conn            persistence.Connection
	newTransaction  bool
	priorAutoCommit bool
	state           State
	startedAt       time.Time
}

// ID returns the unit of work ID
func (u *UnitOfWork) ID() string {
	return u.id
}

// Context returns the context that carries the binding; pass it to every repository call
func (u *UnitOfWork) Context() context.Context {
	return u.ctx
}

// State returns the current lifecycle state
func (u *UnitOfWork) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// IsNewTransaction reports whether this handle owns the connection (false when it joined an outer unit of work)
func (u *UnitOfWork) IsNewTransaction() bool {
	return u.newTransaction
}

// requireActive must be called with u.mu held
func (u *UnitOfWork) requireActive(operation string) error {
	if u.state != StateActive {
		return errs.NewInvalidTransactionStateError(u.id, u.state.String(), operation, nil)
	}
	return nil
}
