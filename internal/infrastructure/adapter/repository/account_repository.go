package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements the AccountRepository port using GORM.
// Mutating methods are meant to run on a transaction-bound handle supplied
// by the unit of work; row locks taken here hold until that transaction
// commits.
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to a domain entity
func (r *AccountRepository) modelToEntity(m *model.Account) *entity.Account {
	account := &entity.Account{
		Owner:          m.Owner,
		TotalPurchased: m.TotalPurchased,
		TotalSpent:     m.TotalSpent,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	account.SetBalance(m.Balance, r.timeProvider)
	// SetBalance stamps UpdatedAt; restore the stored value
	account.UpdatedAt = m.UpdatedAt
	return account
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, owner string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"owner": owner,
		"error": err.Error(),
	})

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Account is locked by another operation", map[string]any{
			"owner": owner,
		})
	}

	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}

// GetByOwner retrieves an account by owner identifier
func (r *AccountRepository) GetByOwner(ctx context.Context, owner string) (*entity.Account, error) {
	var m model.Account
	result := r.db.WithContext(ctx).First(&m, "owner = ?", owner)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, owner)
	}
	return r.modelToEntity(&m), nil
}

// Credit applies a purchase/refund amount as a single conditional write:
// the account row is inserted on first use, otherwise balance and lifetime
// purchases are incremented in place
func (r *AccountRepository) Credit(ctx context.Context, owner string, amount int64) (*entity.Account, error) {
	now := r.timeProvider.Now()
	row := model.Account{
		Owner:          owner,
		Balance:        amount,
		TotalPurchased: amount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":         gorm.Expr("credit_accounts.balance + ?", amount),
			"total_purchased": gorm.Expr("credit_accounts.total_purchased + ?", amount),
			"updated_at":      now,
		}),
	}).Create(&row)
	if result.Error != nil {
		return nil, r.handleDatabaseError("crediting account", result.Error, owner)
	}

	// Re-read inside the same transaction; the upsert already holds the row lock
	var m model.Account
	if err := r.db.WithContext(ctx).First(&m, "owner = ?", owner).Error; err != nil {
		return nil, r.handleDatabaseError("reading credited account", err, owner)
	}

	r.logger.Debug("Account credited", map[string]any{
		"owner":       owner,
		"amount":      amount,
		"new_balance": m.Balance,
	})

	return r.modelToEntity(&m), nil
}

// Debit locks the account row, re-checks the balance and applies the spend.
// The lock holds until the surrounding transaction commits, which serializes
// concurrent spends per owner. A missing account is a zero balance.
func (r *AccountRepository) Debit(ctx context.Context, owner string, amount int64) (*entity.Account, error) {
	var m model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "owner = ?", owner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewInsufficientCreditsError(owner, amount, 0)
		}
		return nil, r.handleDatabaseError("locking account", result.Error, owner)
	}

	if m.Balance < amount {
		return nil, errs.NewInsufficientCreditsError(owner, amount, m.Balance)
	}

	m.Balance -= amount
	m.TotalSpent += amount
	m.UpdatedAt = r.timeProvider.Now()

	result = r.db.WithContext(ctx).Model(&model.Account{}).
		Where("owner = ?", owner).
		Updates(map[string]interface{}{
			"balance":     m.Balance,
			"total_spent": m.TotalSpent,
			"updated_at":  m.UpdatedAt,
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("debiting account", result.Error, owner)
	}

	r.logger.Debug("Account debited", map[string]any{
		"owner":       owner,
		"amount":      amount,
		"new_balance": m.Balance,
	})

	return r.modelToEntity(&m), nil
}

// MergeOwner folds the from-account into the to-account additively and
// removes the consumed source row. Returns false when fromOwner has no
// account.
func (r *AccountRepository) MergeOwner(ctx context.Context, fromOwner, toOwner string) (bool, error) {
	var src model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&src, "owner = ?", fromOwner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, r.handleDatabaseError("locking source account", result.Error, fromOwner)
	}

	now := r.timeProvider.Now()
	dest := model.Account{
		Owner:          toOwner,
		Balance:        src.Balance,
		TotalPurchased: src.TotalPurchased,
		TotalSpent:     src.TotalSpent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":         gorm.Expr("credit_accounts.balance + ?", src.Balance),
			"total_purchased": gorm.Expr("credit_accounts.total_purchased + ?", src.TotalPurchased),
			"total_spent":     gorm.Expr("credit_accounts.total_spent + ?", src.TotalSpent),
			"updated_at":      now,
		}),
	}).Create(&dest)
	if result.Error != nil {
		return false, r.handleDatabaseError("merging account", result.Error, toOwner)
	}

	result = r.db.WithContext(ctx).Where("owner = ?", fromOwner).Delete(&model.Account{})
	if result.Error != nil {
		return false, r.handleDatabaseError("removing merged account", result.Error, fromOwner)
	}

	r.logger.Info("Account merged", map[string]any{
		"from_owner": fromOwner,
		"to_owner":   toOwner,
		"balance":    src.Balance,
	})

	return true, nil
}
