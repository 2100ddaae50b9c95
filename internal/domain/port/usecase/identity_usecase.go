package usecase

import (
	"context"

	"github.com/printa-studio/credits-ledger/internal/domain/port/persistence"
)

// MigrationResult summarizes what a reconciliation run moved
type MigrationResult struct {
	NewOwner       string
	AnonOwner      string
	AccountMerged  bool
	Transactions   int64
	UsageCounters  int64
	Content        persistence.ContentCounts
}

// IdentityUseCase merges an anonymous visitor's records into a newly
// authenticated account
type IdentityUseCase interface {
	// Migrate re-owns everything keyed by anonOwner to newOwner in one
	// atomic step. Safe to invoke more than once for the same pair: after
	// the first successful run there is nothing left to move.
	Migrate(ctx context.Context, newOwner, anonOwner string) (*MigrationResult, error)
}
