package persistence

import (
	"context"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
)

// UsageRepository defines methods for per-owner, per-day free-tier counters
type UsageRepository interface {
	// GetDaily returns the owner's counter for the given day key. A missing
	// row is returned as a zero-count counter, not an error.
	GetDaily(ctx context.Context, owner, day string) (*entity.UsageCounter, error)

	// Increment bumps the owner's counter for the given day key by one,
	// creating it at 1 when absent. Single conditional write; concurrent
	// calls never double-count or lose an increment. Returns the new count.
	Increment(ctx context.Context, owner, day string) (int, error)

	// MergeOwner re-owns every counter of fromOwner to toOwner, summing
	// counts where both sides already have a row for the same day.
	// Returns the number of source rows consumed.
	MergeOwner(ctx context.Context, fromOwner, toOwner string) (int64, error)
}
