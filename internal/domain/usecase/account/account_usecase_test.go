package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/transfer-processor/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/transfer-processor/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T) (*AccountUseCase, *persistencemocks.MockAccountRepository) {
	mockRepo := persistencemocks.NewMockAccountRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()

	return NewAccountUseCase(mockRepo, mockTime, mockLogger), mockRepo
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful account creation", func(t *testing.T) {
		useCase, mockRepo := newUseCase(t)

		mockRepo.EXPECT().FindByID(mock.Anything, "memberA").Return(nil, errs.NewNotFoundError("memberA")).Once()
		mockRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.ID == "memberA" && a.Balance() == 10000
		})).RunAndReturn(func(_ context.Context, a *entity.Account) (*entity.Account, error) {
			return a, nil
		}).Once()

		account, err := useCase.CreateAccount(ctx, "memberA", 10000)

		require.NoError(t, err)
		assert.Equal(t, "memberA", account.ID)
		assert.Equal(t, int64(10000), account.Balance())
		assert.Equal(t, fixedTime, account.CreatedAt)
	})

	t.Run("Empty account ID", func(t *testing.T) {
		useCase, mockRepo := newUseCase(t)

		account, err := useCase.CreateAccount(ctx, "", 10000)

		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
		assert.Nil(t, account)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Account already exists", func(t *testing.T) {
		useCase, mockRepo := newUseCase(t)
		existing := entity.RestoreAccount("memberA", 500, fixedTime, fixedTime)
		mockRepo.EXPECT().FindByID(mock.Anything, "memberA").Return(existing, nil).Once()

		account, err := useCase.CreateAccount(ctx, "memberA", 10000)

		assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
		assert.Nil(t, account)
	})

	t.Run("Repository failure", func(t *testing.T) {
		useCase, mockRepo := newUseCase(t)
		dbErr := errs.NewDataAccessError("find_by_id", errs.KindConnection, errors.New("refused"))
		mockRepo.EXPECT().FindByID(mock.Anything, "memberA").Return(nil, dbErr).Once()

		account, err := useCase.CreateAccount(ctx, "memberA", 10000)

		assert.Same(t, dbErr, err)
		assert.Nil(t, account)
	})
}

func TestGetAndDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Get existing account", func(t *testing.T) {
		useCase, mockRepo := newUseCase(t)
		existing := entity.RestoreAccount("memberB", 12000, fixedTime, fixedTime)
		mockRepo.EXPECT().FindByID(mock.Anything, "memberB").Return(existing, nil).Once()

		account, err := useCase.GetAccount(ctx, "memberB")

		require.NoError(t, err)
		assert.Equal(t, int64(12000), account.Balance())
	})

	t.Run("Get with empty ID", func(t *testing.T) {
		useCase, _ := newUseCase(t)

		_, err := useCase.GetAccount(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
	})

	t.Run("Delete", func(t *testing.T) {
		useCase, mockRepo := newUseCase(t)
		mockRepo.EXPECT().Delete(mock.Anything, "memberB").Return(nil).Once()

		assert.NoError(t, useCase.DeleteAccount(ctx, "memberB"))
	})

	t.Run("List", func(t *testing.T) {
		useCase, mockRepo := newUseCase(t)
		accounts := []*entity.Account{
			entity.RestoreAccount("memberA", 1, fixedTime, fixedTime),
			entity.RestoreAccount("memberB", 2, fixedTime, fixedTime),
		}
		mockRepo.EXPECT().List(mock.Anything).Return(accounts, nil).Once()

		result, err := useCase.ListAccounts(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func TestSeedAccounts(t *testing.T) {
	ctx := context.Background()
	useCase, mockRepo := newUseCase(t)

	seeds := []usecase.SeedAccount{
		{ID: "memberA", Balance: 10000},
		{ID: "memberB", Balance: 10000},
		{ID: "ex", Balance: 10000},
	}

	existing := entity.RestoreAccount("memberA", 3000, fixedTime, fixedTime)
	mockRepo.EXPECT().FindByID(mock.Anything, "memberA").Return(existing, nil).Once()
	mockRepo.EXPECT().FindByID(mock.Anything, "memberB").Return(nil, errs.NewNotFoundError("memberB")).Twice()
	mockRepo.EXPECT().FindByID(mock.Anything, "ex").Return(nil, errs.NewNotFoundError("ex")).Twice()
	mockRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
		return a.ID == "memberB"
	})).RunAndReturn(func(_ context.Context, a *entity.Account) (*entity.Account, error) {
		return a, nil
	}).Once()
	// A concurrent seeder won the race for "ex"
	mockRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
		return a.ID == "ex"
	})).Return(nil, errs.NewDataAccessError("save", errs.KindDuplicateKey, errors.New("duplicate key"))).Once()

	created, err := useCase.SeedAccounts(ctx, seeds)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
}
