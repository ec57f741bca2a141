package transaction

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/persistence"
)

type contextKey string

const unitOfWorkKey contextKey = "unit_of_work"

// binding is the registry entry of one live unit of work
type binding struct {
	conn         persistence.Connection
	rollbackOnly atomic.Bool
}

// ConnectionRegistry implements persistence.TransactionContext.
// Bindings are keyed by a unit of work ID that travels in context.Context, so
// concurrent units of work only ever see their own connection.
type ConnectionRegistry struct {
	bindings sync.Map // map[string]*binding
	active   atomic.Int64
}

// NewConnectionRegistry creates an empty registry
func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{}
}

// UnitOfWorkID returns the unit of work ID carried by ctx, or an empty string
func UnitOfWorkID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(unitOfWorkKey).(string)
	return id
}

// Bind associates conn with a new unit of work and returns the context carrying its ID
func (r *ConnectionRegistry) Bind(ctx context.Context, conn persistence.Connection) (context.Context, error) {
	if conn == nil {
		return ctx, errs.NewInvalidTransactionStateError("", "CREATED", "bind", errs.ErrConnectionClosed)
	}
	if _, ok := r.lookup(ctx); ok {
		return ctx, errs.ErrAlreadyBound
	}

	id := uuid.NewString()
	r.bindings.Store(id, &binding{conn: conn})
	r.active.Add(1)
	return context.WithValue(ctx, unitOfWorkKey, id), nil
}

// Current returns the connection bound to the unit of work carried by ctx
func (r *ConnectionRegistry) Current(ctx context.Context) (persistence.Connection, error) {
	b, ok := r.lookup(ctx)
	if !ok {
		return nil, errs.ErrUnbound
	}
	return b.conn, nil
}

// Unbind removes the binding of the unit of work carried by ctx
func (r *ConnectionRegistry) Unbind(ctx context.Context) {
	id := UnitOfWorkID(ctx)
	if id == "" {
		return
	}
	if _, loaded := r.bindings.LoadAndDelete(id); loaded {
		r.active.Add(-1)
	}
}

// MarkRollbackOnly flags the unit of work so that its final commit turns into a rollback.
// It reports whether a live unit of work was found.
func (r *ConnectionRegistry) MarkRollbackOnly(ctx context.Context) bool {
	b, ok := r.lookup(ctx)
	if !ok {
		return false
	}
	b.rollbackOnly.Store(true)
	return true
}

// IsRollbackOnly reports whether a participant asked for the unit of work to be rolled back
func (r *ConnectionRegistry) IsRollbackOnly(ctx context.Context) bool {
	b, ok := r.lookup(ctx)
	return ok && b.rollbackOnly.Load()
}

// Active returns the number of live bindings
func (r *ConnectionRegistry) Active() int {
	return int(r.active.Load())
}

// Detach returns a context that belongs to no unit of work.
// Goroutines started from inside a unit of work use it to run independent work.
func Detach(ctx context.Context) context.Context {
	return context.WithValue(ctx, unitOfWorkKey, "")
}

func (r *ConnectionRegistry) lookup(ctx context.Context) (*binding, bool) {
	id := UnitOfWorkID(ctx)
	if id == "" {
		return nil, false
	}
	v, ok := r.bindings.Load(id)
	if !ok {
		return nil, false
	}
	b, ok := v.(*binding)
	return b, ok
}
