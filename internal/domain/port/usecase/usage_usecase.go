package usecase

import (
	"context"
)

// UsageResult is the read model for an owner's free-tier usage today
type UsageResult struct {
	Owner   string
	Date    string
	Count   int
	Limit   int
	Allowed bool // whether another free-tier action may proceed
}

// UsageUseCase tracks free-tier daily usage alongside the paid ledger
type UsageUseCase interface {
	// GetUsage returns the owner's counter for the current server-local day
	GetUsage(ctx context.Context, owner string) (*UsageResult, error)

	// IncrementUsage consumes one free-tier action for today and returns the
	// updated counter
	IncrementUsage(ctx context.Context, owner string) (*UsageResult, error)
}
