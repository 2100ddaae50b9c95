package entity

import (
	"testing"
	"time"

	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coremocks "github.com/printa-studio/credits-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction("user-1", KindPurchase, 100, "starter pack", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-1", txn.Owner)
		assert.Equal(t, KindPurchase, txn.Kind)
		assert.Equal(t, int64(100), txn.Amount)
		assert.Equal(t, "starter pack", txn.Description)
		assert.Nil(t, txn.RelatedOrder)
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("Invalid owner", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction("", KindPurchase, 100, "", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidOwner)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction("user-1", KindSpend, 0, "", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction("user-1", TransactionKind("bonus"), 100, "", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestTransactionSignedAmount(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	purchase, err := NewTransaction("user-1", KindPurchase, 100, "", mockTime)
	require.NoError(t, err)
	spend, err := NewTransaction("user-1", KindSpend, 40, "", mockTime)
	require.NoError(t, err)
	refund, err := NewTransaction("user-1", KindRefund, 15, "", mockTime)
	require.NoError(t, err)

	assert.Equal(t, int64(100), purchase.SignedAmount())
	assert.Equal(t, int64(-40), spend.SignedAmount())
	assert.Equal(t, int64(15), refund.SignedAmount())

	assert.True(t, purchase.IsCredit())
	assert.False(t, spend.IsCredit())
	assert.True(t, refund.IsCredit())
}

func TestTransactionWithRelatedOrder(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	txn, err := NewTransaction("user-1", KindSpend, 40, "print order", mockTime)
	require.NoError(t, err)

	txn.WithRelatedOrder(777)

	require.NotNil(t, txn.RelatedOrder)
	assert.Equal(t, uint64(777), *txn.RelatedOrder)
}
