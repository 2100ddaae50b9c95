package persistence

import (
	"context"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
)

// AccountRepository defines essential methods to interact with account data
type AccountRepository interface {
	// GetByOwner retrieves an account by its owner identifier
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the owner
	// - ErrStorageUnavailable: If the database cannot complete the read
	GetByOwner(ctx context.Context, owner string) (*entity.Account, error)

	// Credit adds the amount to the owner's balance and lifetime purchases,
	// creating the account on first use. Implemented as a single conditional
	// write (insert-on-conflict-update) so there is no check-then-write race.
	// Returns the account after the credit has been applied.
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the database cannot complete the write
	Credit(ctx context.Context, owner string, amount int64) (*entity.Account, error)

	// Debit subtracts the amount from the owner's balance and adds it to
	// lifetime spend. The row is locked for the remainder of the surrounding
	// database transaction, so the re-read/check/write sequence is serialized
	// per owner. A missing account is treated as a zero balance.
	//
	// Possible errors:
	// - ErrInsufficientCredits: If the balance does not cover the amount
	// - ErrStorageUnavailable: If the database cannot complete the write
	Debit(ctx context.Context, owner string, amount int64) (*entity.Account, error)

	// MergeOwner folds the from-owner's account into the to-owner's account:
	// balances and lifetime totals are summed and the consumed source row is
	// removed. Returns false with no error when the from-owner has no account.
	//
	// Possible errors:
	// - ErrAmountOverflow: If summed balances would wrap
	// - ErrStorageUnavailable: If the database cannot complete the write
	MergeOwner(ctx context.Context, fromOwner, toOwner string) (bool, error)
}
