package database

import (
	"context"
	"errors"
	"fmt"

	domainerror "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/persistence"
	"github.com/printa-studio/credits-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

type contextKey string

const txKey contextKey = "db_tx"

// UnitOfWork implements persistence.UnitOfWork on top of a GORM
// transaction. Begin stores the transaction handle in the returned
// context; the Get*Repository accessors hand out repositories bound to
// that transaction, so every operation between Begin and Commit runs on
// the same connection.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin starts a new database transaction and returns a context carrying it
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return ctx, errors.New("transaction already started in this context")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{
			"error": tx.Error.Error(),
		})
		return ctx, fmt.Errorf("%w: failed to begin transaction: %v", domainerror.ErrStorageUnavailable, tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction stored in the context
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, err := u.transactionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: failed to commit transaction: %v", domainerror.ErrStorageUnavailable, err)
	}
	return nil
}

// Rollback aborts the transaction stored in the context. Rolling back an
// already-finished transaction is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, err := u.transactionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := tx.Rollback().Error; err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: failed to rollback transaction: %v", domainerror.ErrStorageUnavailable, err)
	}
	return nil
}

// GetAccountRepository returns an account repository bound to the
// transaction in the context, or to the base connection when no
// transaction is active.
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionRepository returns a transaction log repository bound to
// the context's transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.dbFromContext(ctx), u.logger)
}

// GetUsageRepository returns a usage counter repository bound to the
// context's transaction
func (u *UnitOfWork) GetUsageRepository(ctx context.Context) persistence.UsageRepository {
	return repository.NewUsageRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// GetContentRepository returns a content repository bound to the
// context's transaction
func (u *UnitOfWork) GetContentRepository(ctx context.Context) persistence.ContentRepository {
	return repository.NewContentRepository(u.dbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return u.db.WithContext(ctx)
}

func (u *UnitOfWork) transactionFromContext(ctx context.Context) (*gorm.DB, error) {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return nil, errors.New("no transaction found in context")
	}
	return tx, nil
}
