package persistence

import (
	"context"
)

// ContentCounts reports how many rows of each content table were re-owned
// during a migration
type ContentCounts struct {
	Designs        int64
	Likes          int64
	Orders         int64
	PortfolioItems int64
}

// Total returns the number of content rows moved across all tables
func (c ContentCounts) Total() int64 {
	return c.Designs + c.Likes + c.Orders + c.PortfolioItems
}

// ContentRepository re-owns the domain tables that sit outside the ledger
// but must migrate with it: designs, likes, orders and portfolio items.
type ContentRepository interface {
	// ReassignOwner updates the owner column of every content row keyed by
	// fromOwner to toOwner and reports per-table counts
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the database cannot complete the writes
	ReassignOwner(ctx context.Context, fromOwner, toOwner string) (ContentCounts, error)
}
