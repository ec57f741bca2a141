package transaction

import (
	"context"
	"fmt"
)

// Operation is business logic that runs inside a unit of work. It receives the
// context carrying the binding and must pass it to every repository call.
type Operation func(ctx context.Context) error

// Transactional wraps op so that every call runs in its own unit of work:
// commit when op returns nil, rollback when it returns an error or panics.
// The error returned by op is returned unchanged.
func Transactional(m *TransactionManager, op Operation) Operation {
	wrapped := TransactionalResult(m, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return func(ctx context.Context) error {
		_, err := wrapped(ctx)
		return err
	}
}

// TransactionalResult is Transactional for operations that produce a value.
// On failure the zero value of T is returned.
func TransactionalResult[T any](m *TransactionManager, op func(ctx context.Context) (T, error)) func(ctx context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var zero T

		u, err := m.Begin(ctx)
		if err != nil {
			return zero, err
		}

		defer func() {
			if p := recover(); p != nil {
				if rbErr := m.RollbackAndEnd(u); rbErr != nil {
					m.logger.Error("Rollback after panic failed", map[string]any{
						"unit_of_work": u.ID(),
						"error":        rbErr.Error(),
					})
				}
				m.logger.Error("Unit of work rolled back after panic", map[string]any{
					"unit_of_work": u.ID(),
					"panic":        fmt.Sprint(p),
				})
				panic(p)
			}
		}()

		result, err := op(u.Context())
		if err != nil {
			if rbErr := m.RollbackAndEnd(u); rbErr != nil {
				m.logger.Error("Rollback failed, returning original error", map[string]any{
					"unit_of_work":   u.ID(),
					"error":          err.Error(),
					"rollback_error": rbErr.Error(),
				})
			}
			return zero, err
		}

		if err := m.CommitAndEnd(u); err != nil {
			return zero, err
		}
		return result, nil
	}
}

// Execute runs op in a unit of work
func (m *TransactionManager) Execute(ctx context.Context, op Operation) error {
	return Transactional(m, op)(ctx)
}
