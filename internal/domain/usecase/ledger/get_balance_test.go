package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coremocks "github.com/printa-studio/credits-ledger/mocks/port/core"
	persistencemocks "github.com/printa-studio/credits-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Existing account returns balance and totals", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account := accountWithBalance(t, mockTime, "user-1", 75)
		account.TotalPurchased = 100
		account.TotalSpent = 25
		mockAccounts.EXPECT().GetByOwner(ctx, "user-1").Return(account, nil).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.GetBalance(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "user-1", result.Owner)
		assert.Equal(t, int64(75), result.Balance)
		assert.Equal(t, int64(100), result.TotalPurchased)
		assert.Equal(t, int64(25), result.TotalSpent)
	})

	t.Run("Missing account reads as zeros and creates nothing", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAccounts.EXPECT().GetByOwner(ctx, "ghost").Return(nil, errs.ErrAccountNotFound).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.GetBalance(ctx, "ghost")

		require.NoError(t, err)
		assert.Equal(t, "ghost", result.Owner)
		assert.Equal(t, int64(0), result.Balance)
		assert.Equal(t, int64(0), result.TotalPurchased)
	})

	t.Run("Storage failure propagates", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		storageErr := fmt.Errorf("%w: read failed", errs.ErrStorageUnavailable)
		mockAccounts.EXPECT().GetByOwner(ctx, "user-1").Return(nil, storageErr).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.GetBalance(ctx, "user-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})

	t.Run("Empty owner is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.GetBalance(ctx, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidOwner)
	})
}

func TestCanSpend(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Covered amount is allowed", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account := accountWithBalance(t, mockTime, "user-1", 50)
		mockAccounts.EXPECT().GetByOwner(ctx, "user-1").Return(account, nil).Twice()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		ok, err := service.CanSpend(ctx, "user-1", 50)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = service.CanSpend(ctx, "user-1", 51)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Missing account cannot spend anything", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAccounts.EXPECT().GetByOwner(ctx, "ghost").Return(nil, errs.ErrAccountNotFound).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		ok, err := service.CanSpend(ctx, "ghost", 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Invalid amount is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		ok, err := service.CanSpend(ctx, "user-1", 0)
		assert.False(t, ok)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Entries pass through newest-first", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		newest, err := entity.NewTransaction("user-1", entity.KindSpend, 10, "", mockTime)
		require.NoError(t, err)
		oldest, err := entity.NewTransaction("user-1", entity.KindPurchase, 100, "", mockTime)
		require.NoError(t, err)

		mockTxns.EXPECT().ListByOwner(ctx, "user-1", 20).
			Return([]*entity.Transaction{newest, oldest}, nil).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		entries, err := service.ListTransactions(ctx, "user-1", 20)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, entity.KindSpend, entries[0].Kind)
		assert.Equal(t, entity.KindPurchase, entries[1].Kind)
	})

	t.Run("Empty owner is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		entries, err := service.ListTransactions(ctx, " ", 20)

		assert.Nil(t, entries)
		assert.ErrorIs(t, err, errs.ErrInvalidOwner)
	})
}
