package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/transfer-processor/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/transfer-processor/mocks/port/persistence"
)

func TestNewTransactionManager(t *testing.T) {
	pool := mockpersistence.NewMockConnectionPool(t)
	timeProvider := mockcore.NewMockTimeProvider(t)
	logger := newQuietLogger(t)

	t.Run("Valid initialization", func(t *testing.T) {
		registry := NewConnectionRegistry()
		tm := NewTransactionManager(pool, registry, timeProvider, nil, logger)

		assert.NotNil(t, tm)
		assert.Same(t, registry, tm.Registry())
		assert.NotNil(t, tm.metrics)
	})

	t.Run("Nil pool should panic", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTransactionManager(nil, NewConnectionRegistry(), timeProvider, nil, logger)
		})
	})

	t.Run("Nil registry should panic", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTransactionManager(pool, nil, timeProvider, nil, logger)
		})
	})
}

func TestTransactionManager_BeginAndCommit(t *testing.T) {
	f := newManagerFixture(t)
	f.expectBegin()

	// Act
	u, err := f.manager.Begin(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StateActive, u.State())
	assert.True(t, u.IsNewTransaction())
	assert.NotEmpty(t, u.ID())
	assert.Equal(t, 1, f.registry.Active())

	current, err := f.registry.Current(u.Context())
	require.NoError(t, err)
	assert.Same(t, f.conn, current)

	// Commit, then restore autocommit, then release
	mock.InOrder(
		f.conn.EXPECT().Commit(mock.Anything).Return(nil).Once(),
		f.conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(nil).Once(),
		f.pool.EXPECT().Release(f.conn).Return().Once(),
	)
	f.metrics.EXPECT().UnitOfWorkEnded(coreport.OutcomeCommitted, mock.Anything).Return().Once()

	require.NoError(t, f.manager.CommitAndEnd(u))
	assert.Equal(t, StateReleased, u.State())
	assert.Equal(t, 0, f.registry.Active())

	_, err = f.registry.Current(u.Context())
	assert.ErrorIs(t, err, errs.ErrUnbound)
}

func TestTransactionManager_BeginAndRollback(t *testing.T) {
	f := newManagerFixture(t)
	f.expectBegin()

	u, err := f.manager.Begin(context.Background())
	require.NoError(t, err)

	mock.InOrder(
		f.conn.EXPECT().Rollback(mock.Anything).Return(nil).Once(),
		f.conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(nil).Once(),
		f.pool.EXPECT().Release(f.conn).Return().Once(),
	)
	f.metrics.EXPECT().UnitOfWorkEnded(coreport.OutcomeRolledBack, mock.Anything).Return().Once()

	require.NoError(t, f.manager.RollbackAndEnd(u))
	assert.Equal(t, StateReleased, u.State())
	assert.Equal(t, 0, f.registry.Active())
}

func TestTransactionManager_EndTwice(t *testing.T) {
	t.Run("Commit twice", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectBegin()
		f.conn.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.expectEnd(coreport.OutcomeCommitted)

		u, err := f.manager.Begin(context.Background())
		require.NoError(t, err)
		require.NoError(t, f.manager.CommitAndEnd(u))

		err = f.manager.CommitAndEnd(u)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidTransactionStateError(err))
		var stateErr *errs.InvalidTransactionStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "RELEASED", stateErr.State)
		assert.Equal(t, "commit", stateErr.Operation)
	})

	t.Run("Rollback after commit", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectBegin()
		f.conn.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.expectEnd(coreport.OutcomeCommitted)

		u, err := f.manager.Begin(context.Background())
		require.NoError(t, err)
		require.NoError(t, f.manager.CommitAndEnd(u))

		err = f.manager.RollbackAndEnd(u)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionState)
	})

	t.Run("Commit after rollback", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectBegin()
		f.conn.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		f.expectEnd(coreport.OutcomeRolledBack)

		u, err := f.manager.Begin(context.Background())
		require.NoError(t, err)
		require.NoError(t, f.manager.RollbackAndEnd(u))

		err = f.manager.CommitAndEnd(u)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionState)
	})
}

func TestTransactionManager_HandleNeverBegun(t *testing.T) {
	f := newManagerFixture(t)

	err := f.manager.CommitAndEnd(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidTransactionState)

	err = f.manager.RollbackAndEnd(&UnitOfWork{})
	require.ErrorIs(t, err, errs.ErrInvalidTransactionState)
	var stateErr *errs.InvalidTransactionStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "CREATED", stateErr.State)
}

func TestTransactionManager_BeginFailures(t *testing.T) {
	t.Run("Pool exhausted", func(t *testing.T) {
		f := newManagerFixture(t)
		poolErr := errs.NewPoolExhaustedError("100ms", context.DeadlineExceeded)
		f.pool.EXPECT().Acquire(mock.Anything).Return(nil, poolErr).Once()

		u, err := f.manager.Begin(context.Background())

		assert.Nil(t, u)
		assert.Same(t, poolErr, err)
		assert.Equal(t, 0, f.registry.Active())
	})

	t.Run("Disabling autocommit fails", func(t *testing.T) {
		f := newManagerFixture(t)
		dbErr := errs.NewDataAccessError("begin", errs.KindConnection, errors.New("bad connection"))
		f.pool.EXPECT().Acquire(mock.Anything).Return(f.conn, nil).Once()
		f.conn.EXPECT().AutoCommit().Return(true).Once()
		f.conn.EXPECT().SetAutoCommit(mock.Anything, false).Return(dbErr).Once()
		f.pool.EXPECT().Release(f.conn).Return().Once()

		u, err := f.manager.Begin(context.Background())

		assert.Nil(t, u)
		assert.ErrorIs(t, err, errs.ErrDataAccess)
		assert.Equal(t, 0, f.registry.Active())
	})
}

func TestTransactionManager_CommitFailure(t *testing.T) {
	f := newManagerFixture(t)
	f.expectBegin()
	commitErr := errs.NewDataAccessError("commit", errs.KindConnection, errors.New("connection lost"))
	f.conn.EXPECT().Commit(mock.Anything).Return(commitErr).Once()
	f.conn.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	f.expectEnd(coreport.OutcomeFailed)

	u, err := f.manager.Begin(context.Background())
	require.NoError(t, err)

	err = f.manager.CommitAndEnd(u)

	assert.Same(t, commitErr, err)
	assert.Equal(t, StateReleased, u.State())
	assert.Equal(t, 0, f.registry.Active())
}

func TestTransactionManager_CleanupFailuresAreNotReturned(t *testing.T) {
	f := newManagerFixture(t)
	f.expectBegin()
	f.conn.EXPECT().Commit(mock.Anything).Return(nil).Once()
	f.conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(errors.New("connection gone")).Once()
	f.pool.EXPECT().Release(f.conn).Return().Once()
	f.metrics.EXPECT().UnitOfWorkEnded(coreport.OutcomeCommitted, mock.Anything).Return().Once()

	u, err := f.manager.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, f.manager.CommitAndEnd(u))
	assert.Equal(t, StateReleased, u.State())
	assert.Equal(t, 0, f.registry.Active())
}

func TestTransactionManager_RollbackFailureStillReleases(t *testing.T) {
	f := newManagerFixture(t)
	f.expectBegin()
	rollbackErr := errs.NewDataAccessError("rollback", errs.KindConnection, errors.New("broken pipe"))
	f.conn.EXPECT().Rollback(mock.Anything).Return(rollbackErr).Once()
	f.expectEnd(coreport.OutcomeRolledBack)

	u, err := f.manager.Begin(context.Background())
	require.NoError(t, err)

	err = f.manager.RollbackAndEnd(u)

	assert.Same(t, rollbackErr, err)
	assert.Equal(t, StateReleased, u.State())
	assert.Equal(t, 0, f.registry.Active())
}

func TestTransactionManager_RestoresPriorAutoCommit(t *testing.T) {
	f := newManagerFixture(t)
	f.pool.EXPECT().Acquire(mock.Anything).Return(f.conn, nil).Once()
	f.conn.EXPECT().AutoCommit().Return(false).Once()
	// Disabling at begin and restoring at end both ask for autocommit off
	f.conn.EXPECT().SetAutoCommit(mock.Anything, false).Return(nil).Twice()
	f.conn.EXPECT().Commit(mock.Anything).Return(nil).Once()
	f.pool.EXPECT().Release(f.conn).Return().Once()
	f.metrics.EXPECT().UnitOfWorkBegan().Return().Once()
	f.metrics.EXPECT().UnitOfWorkEnded(coreport.OutcomeCommitted, mock.Anything).Return().Once()

	u, err := f.manager.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.manager.CommitAndEnd(u))

	f.conn.AssertNotCalled(t, "SetAutoCommit", mock.Anything, true)
}

func TestTransactionManager_JoiningUnitOfWork(t *testing.T) {
	t.Run("Participant commit leaves the connection alone", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectBegin()
		f.conn.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.expectEnd(coreport.OutcomeCommitted)

		outer, err := f.manager.Begin(context.Background())
		require.NoError(t, err)

		inner, err := f.manager.Begin(outer.Context())
		require.NoError(t, err)
		assert.False(t, inner.IsNewTransaction())
		assert.Equal(t, outer.ID(), inner.ID())

		require.NoError(t, f.manager.CommitAndEnd(inner))
		assert.Equal(t, StateReleased, inner.State())
		assert.Equal(t, 1, f.registry.Active(), "outer unit of work must still be bound")

		require.NoError(t, f.manager.CommitAndEnd(outer))
	})

	t.Run("Participant rollback makes the outer commit roll back", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectBegin()
		f.conn.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		f.expectEnd(coreport.OutcomeRolledBack)

		outer, err := f.manager.Begin(context.Background())
		require.NoError(t, err)
		inner, err := f.manager.Begin(outer.Context())
		require.NoError(t, err)

		require.NoError(t, f.manager.RollbackAndEnd(inner))

		err = f.manager.CommitAndEnd(outer)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionState)
		assert.ErrorIs(t, err, errs.ErrRollbackOnly)
		f.conn.AssertNotCalled(t, "Commit", mock.Anything)
		assert.Equal(t, 0, f.registry.Active())
	})
}
