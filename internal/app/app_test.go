package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/config"
)

func newTestApp(t *testing.T, demarcation string, seeds ...usecase.SeedAccount) *App {
	t.Helper()

	cfg := &config.Config{
		Environment: config.Test,
		Server:      config.ServerConfig{Port: 8080},
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			Database:       filepath.Join(t.TempDir(), "transfers.db"),
			MaxOpenConns:   4,
			MaxIdleConns:   4,
			AcquireTimeout: 5 * time.Second,
			BusyTimeout:    5 * time.Second,
			RetryAttempts:  1,
			LogLevel:       "silent",
			EnsureSchema:   true,
		},
		Transfer: config.TransferConfig{
			Demarcation:  demarcation,
			SeedAccounts: seeds,
		},
	}

	a, err := New(context.Background(), cfg, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func defaultSeeds() []usecase.SeedAccount {
	return []usecase.SeedAccount{
		{ID: "memberA", Balance: 10000},
		{ID: "memberB", Balance: 10000},
		{ID: "ex", Balance: 10000},
	}
}

func balance(t *testing.T, a *App, id string) int64 {
	t.Helper()
	account, err := a.AccountUseCase.GetAccount(context.Background(), id)
	require.NoError(t, err)
	return account.Balance()
}

func assertNoLeaks(t *testing.T, a *App) {
	t.Helper()
	assert.Equal(t, 0, a.Registry.Active())
	assert.Equal(t, 0, a.Pool.Stats().InUse)
}

func TestTransfer_Commits(t *testing.T) {
	for _, mode := range []string{"programmatic", "declarative"} {
		t.Run(mode, func(t *testing.T) {
			a := newTestApp(t, mode, defaultSeeds()...)

			require.NoError(t, a.TransferUseCase.Transfer(context.Background(), "memberA", "memberB", 2000))

			assert.Equal(t, int64(8000), balance(t, a, "memberA"))
			assert.Equal(t, int64(12000), balance(t, a, "memberB"))
			assertNoLeaks(t, a)
		})
	}
}

func TestTransfer_BlockedTargetRollsBack(t *testing.T) {
	for _, mode := range []string{"programmatic", "declarative"} {
		t.Run(mode, func(t *testing.T) {
			a := newTestApp(t, mode, defaultSeeds()...)

			for i := 0; i < 3; i++ {
				err := a.TransferUseCase.Transfer(context.Background(), "memberA", "ex", 2000)
				require.Error(t, err)
				assert.True(t, errs.IsBusinessInvariantError(err))

				assert.Equal(t, int64(10000), balance(t, a, "memberA"))
				assert.Equal(t, int64(10000), balance(t, a, "ex"))
				assertNoLeaks(t, a)
			}
		})
	}
}

func TestTransfer_WithoutUnitOfWorkLeavesPartialUpdate(t *testing.T) {
	a := newTestApp(t, "none", defaultSeeds()...)

	err := a.TransferUseCase.Transfer(context.Background(), "memberA", "ex", 2000)
	assert.True(t, errs.IsBusinessInvariantError(err))

	assert.Equal(t, int64(8000), balance(t, a, "memberA"))
	assert.Equal(t, int64(10000), balance(t, a, "ex"))
	assertNoLeaks(t, a)
}

func TestTransfer_UnknownAccount(t *testing.T) {
	a := newTestApp(t, "programmatic", defaultSeeds()...)

	err := a.TransferUseCase.Transfer(context.Background(), "memberA", "ghost", 10)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	assert.Equal(t, int64(10000), balance(t, a, "memberA"))
	assertNoLeaks(t, a)
}

func TestTransfer_JoinsEnclosingUnitOfWork(t *testing.T) {
	a := newTestApp(t, "programmatic", defaultSeeds()...)

	err := a.Manager.Execute(context.Background(), func(ctx context.Context) error {
		if err := a.TransferUseCase.Transfer(ctx, "memberA", "memberB", 1000); err != nil {
			return err
		}
		return a.TransferUseCase.Transfer(ctx, "memberB", "ex", 500)
	})

	assert.True(t, errs.IsBusinessInvariantError(err))
	assert.Equal(t, int64(10000), balance(t, a, "memberA"))
	assert.Equal(t, int64(10000), balance(t, a, "memberB"))
	assertNoLeaks(t, a)
}

func TestTransfer_ConcurrentDisjointTransfers(t *testing.T) {
	const pairs = 8

	seeds := make([]usecase.SeedAccount, 0, 2*pairs)
	for i := 0; i < pairs; i++ {
		seeds = append(seeds,
			usecase.SeedAccount{ID: fmt.Sprintf("from-%d", i), Balance: 1000},
			usecase.SeedAccount{ID: fmt.Sprintf("to-%d", i), Balance: 1000},
		)
	}
	a := newTestApp(t, "programmatic", seeds...)

	var wg sync.WaitGroup
	errCh := make(chan error, pairs)
	for i := 0; i < pairs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errCh <- a.TransferUseCase.Transfer(context.Background(), fmt.Sprintf("from-%d", i), fmt.Sprintf("to-%d", i), int64(10*(i+1)))
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		assert.NoError(t, err)
	}
	for i := 0; i < pairs; i++ {
		assert.Equal(t, int64(1000-10*(i+1)), balance(t, a, fmt.Sprintf("from-%d", i)))
		assert.Equal(t, int64(1000+10*(i+1)), balance(t, a, fmt.Sprintf("to-%d", i)))
	}
	assertNoLeaks(t, a)
}

type transferStep struct {
	From   string
	To     string
	Amount int64
}

func TestTransfer_PropertyBalancesConserved(t *testing.T) {
	a := newTestApp(t, "programmatic", defaultSeeds()...)
	ids := []string{"memberA", "memberB", "ex"}
	ctx := context.Background()

	snapshot := func() map[string]int64 {
		accounts, err := a.AccountUseCase.ListAccounts(ctx)
		require.NoError(t, err)
		balances := make(map[string]int64, len(accounts))
		for _, account := range accounts {
			balances[account.ID] = account.Balance()
		}
		return balances
	}
	total := func(balances map[string]int64) int64 {
		var sum int64
		for _, b := range balances {
			sum += b
		}
		return sum
	}

	stepGen := gopter.CombineGens(
		gen.IntRange(0, len(ids)-1),
		gen.IntRange(0, len(ids)-1),
		gen.Int64Range(-100, 5000),
	).Map(func(values []interface{}) transferStep {
		return transferStep{
			From:   ids[values[0].(int)],
			To:     ids[values[1].(int)],
			Amount: values[2].(int64),
		}
	})

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("a transfer either applies exactly or changes nothing", prop.ForAll(
		func(steps []transferStep) bool {
			for _, id := range ids {
				if err := a.Accounts.UpdateBalance(ctx, id, 10000); err != nil {
					return false
				}
			}
			initialTotal := total(snapshot())

			for _, step := range steps {
				before := snapshot()
				err := a.TransferUseCase.Transfer(ctx, step.From, step.To, step.Amount)
				after := snapshot()

				if err != nil {
					for id, b := range before {
						if after[id] != b {
							return false
						}
					}
					continue
				}
				if after[step.From] != before[step.From]-step.Amount || after[step.To] != before[step.To]+step.Amount {
					return false
				}
			}

			return total(snapshot()) == initialTotal && a.Registry.Active() == 0
		},
		gen.SliceOfN(6, stepGen),
	))

	properties.TestingRun(t)
}
