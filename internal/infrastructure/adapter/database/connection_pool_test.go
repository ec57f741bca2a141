package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/time"
)

func newMockPool(t *testing.T, maxOpen int, acquireTimeout time.Duration) (*ConnectionPool, func() error) {
	t.Helper()

	gormDB, mock := newMockGorm(t)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(maxOpen)

	pool, err := NewConnectionPool(gormDB, acquireTimeout, NewErrorClassifier(), timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
	require.NoError(t, err)
	return pool, mock.ExpectationsWereMet
}

func TestConnectionPool_AcquireRelease(t *testing.T) {
	pool, _ := newMockPool(t, 2, time.Second)
	ctx := context.Background()

	first, err := pool.Acquire(ctx)
	require.NoError(t, err)
	second, err := pool.Acquire(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.True(t, first.AutoCommit())
	assert.Equal(t, 2, pool.Stats().InUse)

	pool.Release(first)
	pool.Release(second)
	pool.Release(nil)
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestConnectionPool_Exhausted(t *testing.T) {
	pool, _ := newMockPool(t, 1, 50*time.Millisecond)
	ctx := context.Background()

	held, err := pool.Acquire(ctx)
	require.NoError(t, err)
	defer pool.Release(held)

	conn, err := pool.Acquire(ctx)
	assert.Nil(t, conn)
	assert.True(t, errs.IsPoolExhaustedError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 5030, errs.ErrorCode(err))
}

func TestConnectionPool_CallerCancellationIsNotExhaustion(t *testing.T) {
	pool, _ := newMockPool(t, 1, time.Second)

	held, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	defer pool.Release(held)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = pool.Acquire(ctx)
	require.Error(t, err)
	assert.False(t, errs.IsPoolExhaustedError(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnectionPool_ReleaseRollsBackOpenTransaction(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	pool, err := NewConnectionPool(gormDB, time.Second, nil, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectRollback()

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	require.NoError(t, conn.SetAutoCommit(ctx, false))

	pool.Release(conn)

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, pool.Stats().InUse)
}
