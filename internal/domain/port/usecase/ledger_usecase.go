package usecase

import (
	"context"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
)

// BalanceResult is the read model for an owner's ledger state
type BalanceResult struct {
	Owner          string
	Balance        int64
	TotalPurchased int64
	TotalSpent     int64
}

// SpendRequest carries the statically shaped input for a spend
type SpendRequest struct {
	Owner        string
	Amount       int64
	Description  string
	RelatedOrder *uint64
}

// AddCreditsRequest carries the statically shaped input for a purchase or refund
type AddCreditsRequest struct {
	Owner       string
	Amount      int64
	Description string
	Refund      bool
}

// MutationResult reports the outcome of a balance-changing operation
type MutationResult struct {
	Success    bool
	NewBalance int64
}

// AuditResult reports a ledger invariant check for one owner
type AuditResult struct {
	Owner         string
	StoredBalance int64
	LogSum        int64
	Consistent    bool
}

// LedgerUseCase is the sole authority for balance reads and mutations
type LedgerUseCase interface {
	// GetBalance returns the owner's balance and lifetime totals; a missing
	// account reads as zeros and creates nothing
	GetBalance(ctx context.Context, owner string) (*BalanceResult, error)

	// CanSpend reports whether the owner's balance covers the amount
	CanSpend(ctx context.Context, owner string, amount int64) (bool, error)

	// Spend atomically debits the balance and appends a spend entry
	Spend(ctx context.Context, req SpendRequest) (*MutationResult, error)

	// AddCredits atomically credits the balance and appends a purchase or
	// refund entry, creating the account on first use
	AddCredits(ctx context.Context, req AddCreditsRequest) (*MutationResult, error)

	// ListTransactions returns the owner's ledger entries newest-first
	ListTransactions(ctx context.Context, owner string, limit int) ([]*entity.Transaction, error)

	// Audit verifies balance == signed transaction-log sum for the owner.
	// A detected divergence quarantines the owner from further mutations.
	Audit(ctx context.Context, owner string) (*AuditResult, error)
}
