package persistence

import (
	"context"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
)

// TransactionRepository defines methods to interact with the append-only
// transaction log. No update or delete is ever issued against an existing
// entry; ownership reassignment during migration is the single exception to
// immutability.
type TransactionRepository interface {
	// Create appends a new ledger entry
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the database cannot complete the write
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByOwner returns the owner's entries newest-first, capped at limit
	// (unlimited when limit <= 0)
	ListByOwner(ctx context.Context, owner string, limit int) ([]*entity.Transaction, error)

	// SumByOwner returns the signed sum of the owner's log: purchases and
	// refunds count positive, spends negative. Used for invariant audits.
	SumByOwner(ctx context.Context, owner string) (int64, error)

	// ReassignOwner re-parents every entry of fromOwner to toOwner and
	// returns the number of entries moved
	ReassignOwner(ctx context.Context, fromOwner, toOwner string) (int64, error)
}
