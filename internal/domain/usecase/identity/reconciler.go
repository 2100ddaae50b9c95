package identity

import (
	"context"
	"fmt"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/persistence"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
)

// Reconciler performs the one-shot migration that runs when an anonymous
// visitor registers: every record keyed by the anonymous identifier is
// re-owned to the new user identifier inside one database transaction. A
// partial migration would silently strand purchased credits under a stale
// cookie identifier, so all of it commits together or none does.
type Reconciler struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewReconciler creates a new identity reconciler
func NewReconciler(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.IdentityUseCase {
	return &Reconciler{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Migrate re-owns designs, likes, orders, portfolio items, ledger account,
// transaction log entries and usage counters from anonOwner to newOwner.
//
// When newOwner already has an account the two are merged additively:
// balances and lifetime totals are summed and transactions are re-parented,
// never deleted, so no value is destroyed on either side. When anonOwner has
// no account the ledger step is a no-op and the other tables still migrate.
//
// Idempotent: after a successful run anonOwner owns nothing, so a repeat
// invocation moves zero records.
func (r *Reconciler) Migrate(ctx context.Context, newOwner, anonOwner string) (*usecase.MigrationResult, error) {
	if err := entity.ValidateOwner(newOwner); err != nil {
		return nil, err
	}
	if err := entity.ValidateOwner(anonOwner); err != nil {
		return nil, err
	}
	if newOwner == anonOwner {
		return nil, fmt.Errorf("%w: cannot migrate owner %s onto itself", errs.ErrMigrationConflict, newOwner)
	}

	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := r.migrateAll(txCtx, newOwner, anonOwner)
	if err != nil {
		_ = r.uow.Rollback(txCtx)
		return nil, err
	}

	if err := r.uow.Commit(txCtx); err != nil {
		_ = r.uow.Rollback(txCtx)
		return nil, errs.NewMigrationError(newOwner, anonOwner, "commit", err)
	}

	r.logger.Info("Anonymous identity migrated", map[string]any{
		"new_owner":      newOwner,
		"anon_owner":     anonOwner,
		"account_merged": result.AccountMerged,
		"transactions":   result.Transactions,
		"usage_counters": result.UsageCounters,
		"content_rows":   result.Content.Total(),
	})

	return result, nil
}

// migrateAll runs every re-ownership step inside the transactional context
func (r *Reconciler) migrateAll(txCtx context.Context, newOwner, anonOwner string) (*usecase.MigrationResult, error) {
	result := &usecase.MigrationResult{
		NewOwner:  newOwner,
		AnonOwner: anonOwner,
	}

	content, err := r.uow.GetContentRepository(txCtx).ReassignOwner(txCtx, anonOwner, newOwner)
	if err != nil {
		return nil, errs.NewMigrationError(newOwner, anonOwner, "content", err)
	}
	result.Content = content

	merged, err := r.uow.GetAccountRepository(txCtx).MergeOwner(txCtx, anonOwner, newOwner)
	if err != nil {
		return nil, errs.NewMigrationError(newOwner, anonOwner, "account", err)
	}
	result.AccountMerged = merged

	moved, err := r.uow.GetTransactionRepository(txCtx).ReassignOwner(txCtx, anonOwner, newOwner)
	if err != nil {
		return nil, errs.NewMigrationError(newOwner, anonOwner, "transactions", err)
	}
	result.Transactions = moved

	counters, err := r.uow.GetUsageRepository(txCtx).MergeOwner(txCtx, anonOwner, newOwner)
	if err != nil {
		return nil, errs.NewMigrationError(newOwner, anonOwner, "usage", err)
	}
	result.UsageCounters = counters

	return result, nil
}
