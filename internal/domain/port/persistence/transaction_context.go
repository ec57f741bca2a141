package persistence

import (
	"context"
)

// TransactionContext makes the connection of the active unit of work available
// to nested calls through the context.Context they already receive.
type TransactionContext interface {
	// Bind associates conn with a new unit of work and returns the context carrying it.
	// Possible errors:
	// - errs.ErrAlreadyBound: if ctx already belongs to a live unit of work
	Bind(ctx context.Context, conn Connection) (context.Context, error)

	// Current returns the connection bound to the unit of work carried by ctx.
	// Possible errors:
	// - errs.ErrUnbound: if ctx belongs to no live unit of work
	Current(ctx context.Context) (Connection, error)

	// Unbind removes the binding of the unit of work carried by ctx, if any
	Unbind(ctx context.Context)
}
