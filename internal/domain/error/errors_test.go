package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Insufficient credits", ErrInsufficientCredits, CodeInsufficientCredits},
		{"Invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"Invalid owner", ErrInvalidOwner, CodeInvalidOwner},
		{"Amount overflow", ErrAmountOverflow, CodeAmountOverflow},
		{"Account not found", ErrAccountNotFound, CodeAccountNotFound},
		{"Migration conflict", ErrMigrationConflict, CodeMigrationConflict},
		{"Ledger divergence", ErrLedgerDivergence, CodeLedgerDivergence},
		{"Storage unavailable", ErrStorageUnavailable, CodeStorageFailure},
		{"Unknown error", errors.New("something else"), CodeInternalServer},
		{"Wrapped sentinel", fmt.Errorf("context: %w", ErrInvalidAmount), CodeInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError("user-1", 100, 40)

	assert.True(t, errors.Is(err, ErrInsufficientCredits))
	assert.True(t, IsInsufficientCreditsError(err))
	assert.Contains(t, err.Error(), "user-1")
	assert.Contains(t, err.Error(), "requested 100")
	assert.Contains(t, err.Error(), "available 40")

	var typed *InsufficientCreditsError
	require.ErrorAs(t, err, &typed)
	fields := typed.LogFields()
	assert.Equal(t, "insufficient_credits", fields["error_type"])
	assert.Equal(t, int64(100), fields["requested"])
	assert.Equal(t, int64(40), fields["available"])
}

func TestLedgerError(t *testing.T) {
	cause := fmt.Errorf("%w: connection refused", ErrStorageUnavailable)
	err := NewLedgerError("user-1", 25, "spend", cause)

	assert.True(t, errors.Is(err, ErrStorageUnavailable))
	assert.Contains(t, err.Error(), "spend")
	assert.Contains(t, err.Error(), "user-1")

	var typed *LedgerError
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, cause, typed.Unwrap())
	assert.Equal(t, CodeStorageFailure, typed.LogFields()["error_code"])
}

func TestMigrationError(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := NewMigrationError("user-1", "anon-9", "transactions", cause)

	assert.Contains(t, err.Error(), "anon-9")
	assert.Contains(t, err.Error(), "user-1")
	assert.Contains(t, err.Error(), "transactions")

	var typed *MigrationError
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "transactions", typed.Stage)
	assert.Equal(t, cause, typed.Unwrap())
}

func TestLedgerDivergenceError(t *testing.T) {
	err := NewLedgerDivergenceError("user-1", 120, 100)

	assert.True(t, errors.Is(err, ErrLedgerDivergence))
	assert.True(t, IsLedgerDivergenceError(err))
	assert.Contains(t, err.Error(), "stored balance 120")
	assert.Contains(t, err.Error(), "sum 100")

	var typed *LedgerDivergenceError
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, int64(120), typed.StoredBalance)
	assert.Equal(t, int64(100), typed.LogSum)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrAccountNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidAmount))
}
