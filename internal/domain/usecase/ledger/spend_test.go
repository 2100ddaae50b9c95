package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
	coremocks "github.com/printa-studio/credits-ledger/mocks/port/core"
	persistencemocks "github.com/printa-studio/credits-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKeyType string

const testTxKey txKeyType = "test_tx"

// newTxContext mimics a unit of work handing back a transactional context
func newTxContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, testTxKey, struct{}{})
}

func accountWithBalance(t *testing.T, tp coreport.TimeProvider, owner string, balance int64) *entity.Account {
	t.Helper()
	account, err := entity.NewAccount(owner, tp)
	require.NoError(t, err)
	if balance > 0 {
		account.SetBalance(balance, tp)
	}
	return account
}

func TestSpend(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful spend debits and appends one entry", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := newTxContext(ctx)
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetAccountRepository(txCtx).Return(mockAccounts).Once()
		mockUow.EXPECT().GetTransactionRepository(txCtx).Return(mockTxns).Once()
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		remaining := accountWithBalance(t, mockTime, "user-1", 60)
		mockAccounts.EXPECT().Debit(txCtx, "user-1", int64(40)).Return(remaining, nil).Once()

		mockTxns.EXPECT().Create(txCtx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Owner == "user-1" &&
				txn.Kind == entity.KindSpend &&
				txn.Amount == 40 &&
				txn.RelatedOrder != nil && *txn.RelatedOrder == 99
		})).Return(nil).Once()

		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		orderID := uint64(99)
		result, err := service.Spend(ctx, usecase.SpendRequest{
			Owner:        "user-1",
			Amount:       40,
			Description:  "print order",
			RelatedOrder: &orderID,
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(60), result.NewBalance)
	})

	t.Run("Insufficient credits rolls back and surfaces the typed error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		txCtx := newTxContext(ctx)
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetAccountRepository(txCtx).Return(mockAccounts).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		mockAccounts.EXPECT().Debit(txCtx, "user-1", int64(100)).
			Return(nil, errs.NewInsufficientCreditsError("user-1", 100, 30)).Once()

		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.Spend(ctx, usecase.SpendRequest{Owner: "user-1", Amount: 100})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errs.IsInsufficientCreditsError(err))

		var typed *errs.InsufficientCreditsError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, int64(30), typed.Available)
	})

	t.Run("Log append failure rolls back the debit", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := newTxContext(ctx)
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetAccountRepository(txCtx).Return(mockAccounts).Once()
		mockUow.EXPECT().GetTransactionRepository(txCtx).Return(mockTxns).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		remaining := accountWithBalance(t, mockTime, "user-1", 60)
		mockAccounts.EXPECT().Debit(txCtx, "user-1", int64(40)).Return(remaining, nil).Once()

		storageErr := fmt.Errorf("%w: write failed", errs.ErrStorageUnavailable)
		mockTxns.EXPECT().Create(txCtx, mock.Anything).Return(storageErr).Once()

		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.Spend(ctx, usecase.SpendRequest{Owner: "user-1", Amount: 40})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStorageUnavailable))

		var ledgerErr *errs.LedgerError
		require.ErrorAs(t, err, &ledgerErr)
		assert.Equal(t, "spend", ledgerErr.Operation)
	})

	t.Run("Invalid amount never opens a transaction", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.Spend(ctx, usecase.SpendRequest{Owner: "user-1", Amount: 0})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Empty owner never opens a transaction", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)

		result, err := service.Spend(ctx, usecase.SpendRequest{Owner: "  ", Amount: 10})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidOwner)
	})

	t.Run("Quarantined owner is refused", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := persistencemocks.NewMockAccountRepository(t)
		mockTxns := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockUow, mockAccounts, mockTxns, mockTime, mockLogger)
		service.(*Service).quarantine("user-1")

		result, err := service.Spend(ctx, usecase.SpendRequest{Owner: "user-1", Amount: 10})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrLedgerDivergence)
	})
}
