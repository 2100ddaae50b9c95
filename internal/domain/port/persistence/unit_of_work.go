package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across multiple repositories so they commit
// together or not at all. Every ledger mutation and the whole identity
// migration run inside one unit.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetTransactionRepository returns a transaction log repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetUsageRepository returns a usage counter repository bound to the current transaction
	GetUsageRepository(ctx context.Context) UsageRepository

	// GetContentRepository returns a content repository bound to the current transaction
	GetContentRepository(ctx context.Context) ContentRepository
}
