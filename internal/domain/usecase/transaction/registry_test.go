package transaction

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/persistence"
	mockpersistence "github.com/amirhossein-jamali/transfer-processor/mocks/port/persistence"
)

func TestConnectionRegistry_BindCurrentUnbind(t *testing.T) {
	registry := NewConnectionRegistry()
	conn := mockpersistence.NewMockConnection(t)

	t.Run("Unbound context", func(t *testing.T) {
		current, err := registry.Current(context.Background())
		assert.ErrorIs(t, err, errs.ErrUnbound)
		assert.Nil(t, current)
	})

	t.Run("Bind publishes the connection", func(t *testing.T) {
		ctx, err := registry.Bind(context.Background(), conn)
		require.NoError(t, err)
		assert.NotEmpty(t, UnitOfWorkID(ctx))
		assert.Equal(t, 1, registry.Active())

		current, err := registry.Current(ctx)
		require.NoError(t, err)
		assert.Same(t, conn, current)

		registry.Unbind(ctx)
		assert.Equal(t, 0, registry.Active())

		_, err = registry.Current(ctx)
		assert.ErrorIs(t, err, errs.ErrUnbound)
	})

	t.Run("Bind twice fails without overwriting", func(t *testing.T) {
		other := mockpersistence.NewMockConnection(t)

		ctx, err := registry.Bind(context.Background(), conn)
		require.NoError(t, err)
		defer registry.Unbind(ctx)

		_, err = registry.Bind(ctx, other)
		assert.ErrorIs(t, err, errs.ErrAlreadyBound)

		current, err := registry.Current(ctx)
		require.NoError(t, err)
		assert.Same(t, conn, current)
	})

	t.Run("Stale context can be bound again", func(t *testing.T) {
		ctx, err := registry.Bind(context.Background(), conn)
		require.NoError(t, err)
		registry.Unbind(ctx)

		again, err := registry.Bind(ctx, conn)
		require.NoError(t, err)
		assert.NotEqual(t, UnitOfWorkID(ctx), UnitOfWorkID(again))
		registry.Unbind(again)
	})

	t.Run("Unbind is unconditional", func(t *testing.T) {
		assert.NotPanics(t, func() {
			registry.Unbind(context.Background())
			registry.Unbind(Detach(context.Background()))
		})
		assert.Equal(t, 0, registry.Active())
	})

	t.Run("Nil connection is rejected", func(t *testing.T) {
		_, err := registry.Bind(context.Background(), nil)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionState)
	})
}

func TestConnectionRegistry_Detach(t *testing.T) {
	registry := NewConnectionRegistry()
	conn := mockpersistence.NewMockConnection(t)

	ctx, err := registry.Bind(context.Background(), conn)
	require.NoError(t, err)
	defer registry.Unbind(ctx)

	detached := Detach(ctx)
	_, err = registry.Current(detached)
	assert.ErrorIs(t, err, errs.ErrUnbound)

	current, err := registry.Current(ctx)
	require.NoError(t, err)
	assert.Same(t, conn, current)
}

func TestConnectionRegistry_RollbackOnly(t *testing.T) {
	registry := NewConnectionRegistry()
	conn := mockpersistence.NewMockConnection(t)

	assert.False(t, registry.MarkRollbackOnly(context.Background()))

	ctx, err := registry.Bind(context.Background(), conn)
	require.NoError(t, err)
	defer registry.Unbind(ctx)

	assert.False(t, registry.IsRollbackOnly(ctx))
	assert.True(t, registry.MarkRollbackOnly(ctx))
	assert.True(t, registry.IsRollbackOnly(ctx))
}

func TestConnectionRegistry_ConcurrentUnitsOfWorkAreIsolated(t *testing.T) {
	registry := NewConnectionRegistry()

	const workers = 64
	conns := make([]persistence.Connection, workers)
	for i := range conns {
		conns[i] = mockpersistence.NewMockConnection(t)
	}

	var wg sync.WaitGroup
	mismatches := make(chan int, workers)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start

			ctx, err := registry.Bind(context.Background(), conns[i])
			if err != nil {
				mismatches <- i
				return
			}
			defer registry.Unbind(ctx)

			for j := 0; j < 100; j++ {
				current, err := registry.Current(ctx)
				if err != nil || current != conns[i] {
					mismatches <- i
					return
				}
			}
		}(i)
	}

	close(start)
	wg.Wait()
	close(mismatches)

	for i := range mismatches {
		t.Errorf("unit of work %d observed a foreign or missing connection", i)
	}
	assert.Equal(t, 0, registry.Active())
}
