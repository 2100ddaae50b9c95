package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coremocks "github.com/printa-studio/credits-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful account creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		account, err := NewAccount("user-42", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-42", account.Owner)
		assert.Equal(t, int64(0), account.Balance())
		assert.Equal(t, int64(0), account.TotalPurchased)
		assert.Equal(t, int64(0), account.TotalSpent)
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Empty owner is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		account, err := NewAccount("", mockTime)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrInvalidOwner)
	})

	t.Run("Whitespace-only owner is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		account, err := NewAccount("   ", mockTime)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrInvalidOwner)
	})
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(1))
	assert.NoError(t, ValidateAmount(math.MaxInt64))
	assert.ErrorIs(t, ValidateAmount(0), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(-5), errs.ErrInvalidAmount)
}

func TestAccountApplyCredit(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Credit increases balance and lifetime purchases", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount("user-1", mockTime)
		require.NoError(t, err)

		require.NoError(t, account.ApplyCredit(100, mockTime))
		require.NoError(t, account.ApplyCredit(50, mockTime))

		assert.Equal(t, int64(150), account.Balance())
		assert.Equal(t, int64(150), account.TotalPurchased)
		assert.Equal(t, int64(0), account.TotalSpent)
	})

	t.Run("Non-positive credit is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount("user-1", mockTime)
		require.NoError(t, err)

		assert.ErrorIs(t, account.ApplyCredit(0, mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, account.ApplyCredit(-10, mockTime), errs.ErrInvalidAmount)
		assert.Equal(t, int64(0), account.Balance())
	})

	t.Run("Credit that would wrap the balance is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount("user-1", mockTime)
		require.NoError(t, err)
		require.NoError(t, account.ApplyCredit(math.MaxInt64-1, mockTime))

		assert.ErrorIs(t, account.ApplyCredit(2, mockTime), errs.ErrAmountOverflow)
		assert.Equal(t, int64(math.MaxInt64-1), account.Balance())
	})
}

func TestAccountApplySpend(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newFundedAccount := func(t *testing.T, balance int64) (*Account, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account, err := NewAccount("user-1", mockTime)
		require.NoError(t, err)
		require.NoError(t, account.ApplyCredit(balance, mockTime))
		return account, mockTime
	}

	t.Run("Spend decreases balance and tracks lifetime spend", func(t *testing.T) {
		account, mockTime := newFundedAccount(t, 100)

		require.NoError(t, account.ApplySpend(30, mockTime))

		assert.Equal(t, int64(70), account.Balance())
		assert.Equal(t, int64(30), account.TotalSpent)
		assert.Equal(t, int64(100), account.TotalPurchased)
	})

	t.Run("Spending the exact balance leaves zero", func(t *testing.T) {
		account, mockTime := newFundedAccount(t, 100)

		require.NoError(t, account.ApplySpend(100, mockTime))

		assert.Equal(t, int64(0), account.Balance())
	})

	t.Run("Overdraw is rejected and balance unchanged", func(t *testing.T) {
		account, mockTime := newFundedAccount(t, 100)

		err := account.ApplySpend(101, mockTime)

		require.Error(t, err)
		assert.True(t, errs.IsInsufficientCreditsError(err))
		assert.Equal(t, int64(100), account.Balance())
		assert.Equal(t, int64(0), account.TotalSpent)

		var insufficientErr *errs.InsufficientCreditsError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, int64(101), insufficientErr.Requested)
		assert.Equal(t, int64(100), insufficientErr.Available)
	})
}

func TestAccountCanSpend(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	account, err := NewAccount("user-1", mockTime)
	require.NoError(t, err)
	require.NoError(t, account.ApplyCredit(50, mockTime))

	ok, err := account.CanSpend(50)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = account.CanSpend(51)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = account.CanSpend(0)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestAccountAbsorb(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Balances and totals are summed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		target, err := NewAccount("user-1", mockTime)
		require.NoError(t, err)
		require.NoError(t, target.ApplyCredit(100, mockTime))
		require.NoError(t, target.ApplySpend(40, mockTime))

		source, err := NewAccount("anon-9", mockTime)
		require.NoError(t, err)
		require.NoError(t, source.ApplyCredit(30, mockTime))

		require.NoError(t, target.Absorb(source, mockTime))

		assert.Equal(t, int64(90), target.Balance())
		assert.Equal(t, int64(130), target.TotalPurchased)
		assert.Equal(t, int64(40), target.TotalSpent)
	})

	t.Run("Absorbing nil is a no-op", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		target, err := NewAccount("user-1", mockTime)
		require.NoError(t, err)
		require.NoError(t, target.ApplyCredit(10, mockTime))

		require.NoError(t, target.Absorb(nil, mockTime))
		assert.Equal(t, int64(10), target.Balance())
	})

	t.Run("Overflowing merge is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		target, err := NewAccount("user-1", mockTime)
		require.NoError(t, err)
		require.NoError(t, target.ApplyCredit(math.MaxInt64-1, mockTime))

		source, err := NewAccount("anon-9", mockTime)
		require.NoError(t, err)
		require.NoError(t, source.ApplyCredit(5, mockTime))

		assert.ErrorIs(t, target.Absorb(source, mockTime), errs.ErrAmountOverflow)
	})
}
