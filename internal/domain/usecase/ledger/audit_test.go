package ledger

import (
	"context"
	"testing"
	"time"

	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
	coremocks "github.com/printa-studio/credits-ledger/mocks/port/core"
	persistencemocks "github.com/printa-studio/credits-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAudit(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Consistent ledger passes", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account := accountWithBalance(t, mockTime, "user-1", 60)
		mockAccounts.EXPECT().GetByOwner(ctx, "user-1").Return(account, nil).Once()
		mockTxns.EXPECT().SumByOwner(ctx, "user-1").Return(int64(60), nil).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.Audit(ctx, "user-1")

		require.NoError(t, err)
		assert.True(t, result.Consistent)
		assert.Equal(t, int64(60), result.StoredBalance)
		assert.Equal(t, int64(60), result.LogSum)
	})

	t.Run("Missing account audits against a zero balance", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAccounts.EXPECT().GetByOwner(ctx, "ghost").Return(nil, errs.ErrAccountNotFound).Once()
		mockTxns.EXPECT().SumByOwner(ctx, "ghost").Return(int64(0), nil).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.Audit(ctx, "ghost")

		require.NoError(t, err)
		assert.True(t, result.Consistent)
	})

	t.Run("Divergence quarantines the owner and blocks mutations", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account := accountWithBalance(t, mockTime, "user-1", 120)
		mockAccounts.EXPECT().GetByOwner(ctx, "user-1").Return(account, nil).Once()
		mockTxns.EXPECT().SumByOwner(ctx, "user-1").Return(int64(100), nil).Once()

		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.Audit(ctx, "user-1")

		require.Error(t, err)
		assert.True(t, errs.IsLedgerDivergenceError(err))
		require.NotNil(t, result)
		assert.False(t, result.Consistent)
		assert.Equal(t, int64(120), result.StoredBalance)
		assert.Equal(t, int64(100), result.LogSum)

		// A quarantined owner must not mutate until an operator steps in
		spendResult, err := service.Spend(ctx, usecase.SpendRequest{Owner: "user-1", Amount: 1})
		assert.Nil(t, spendResult)
		assert.ErrorIs(t, err, errs.ErrLedgerDivergence)

		addResult, err := service.AddCredits(ctx, usecase.AddCreditsRequest{Owner: "user-1", Amount: 1})
		assert.Nil(t, addResult)
		assert.ErrorIs(t, err, errs.ErrLedgerDivergence)
	})

	t.Run("Divergence for one owner does not affect others", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		diverged := accountWithBalance(t, mockTime, "bad-owner", 10)
		mockAccounts.EXPECT().GetByOwner(ctx, "bad-owner").Return(diverged, nil).Once()
		mockTxns.EXPECT().SumByOwner(ctx, "bad-owner").Return(int64(5), nil).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		healthy := accountWithBalance(t, mockTime, "good-owner", 30)
		mockAccounts.EXPECT().GetByOwner(ctx, "good-owner").Return(healthy, nil).Once()
		mockTxns.EXPECT().SumByOwner(ctx, "good-owner").Return(int64(30), nil).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		_, err := service.Audit(ctx, "bad-owner")
		require.Error(t, err)

		result, err := service.Audit(ctx, "good-owner")
		require.NoError(t, err)
		assert.True(t, result.Consistent)
	})
}
