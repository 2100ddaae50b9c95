package repository

import (
	"context"
	"fmt"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the append-only ledger log using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a domain transaction to its database model
func entityToModel(t *entity.Transaction) *model.CreditTransaction {
	return &model.CreditTransaction{
		Owner:          t.Owner,
		Kind:           string(t.Kind),
		Amount:         t.Amount,
		Description:    t.Description,
		RelatedOrderID: t.RelatedOrder,
		CreatedAt:      t.CreatedAt,
	}
}

// modelToEntity converts a database row to a domain transaction
func modelToEntity(m *model.CreditTransaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		Owner:        m.Owner,
		Kind:         entity.TransactionKind(m.Kind),
		Amount:       m.Amount,
		Description:  m.Description,
		RelatedOrder: m.RelatedOrderID,
		CreatedAt:    m.CreatedAt,
	}
}

// storageError wraps a driver failure; the log must never swallow one
func (r *TransactionRepository) storageError(operation string, err error, owner string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"owner": owner,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}

// Create appends a new ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	row := entityToModel(transaction)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.storageError("appending transaction", err, transaction.Owner)
	}

	transaction.ID = row.ID
	return nil
}

// ListByOwner returns the owner's entries newest-first, capped at limit
func (r *TransactionRepository) ListByOwner(ctx context.Context, owner string, limit int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.CreditTransaction
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.storageError("listing transactions", err, owner)
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, modelToEntity(&rows[i]))
	}
	return transactions, nil
}

// SumByOwner returns the signed sum of the owner's log in one aggregate
// query: spends count negative, purchases and refunds positive
func (r *TransactionRepository) SumByOwner(ctx context.Context, owner string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.CreditTransaction{}).
		Where("owner = ?", owner).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN -amount ELSE amount END), 0)", string(entity.KindSpend)).
		Scan(&sum).Error
	if err != nil {
		return 0, r.storageError("summing transactions", err, owner)
	}
	return sum, nil
}

// ReassignOwner re-parents every entry of fromOwner to toOwner
func (r *TransactionRepository) ReassignOwner(ctx context.Context, fromOwner, toOwner string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.CreditTransaction{}).
		Where("owner = ?", fromOwner).
		Update("owner", toOwner)
	if result.Error != nil {
		return 0, r.storageError("reassigning transactions", result.Error, fromOwner)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Transactions re-owned", map[string]any{
			"from_owner": fromOwner,
			"to_owner":   toOwner,
			"moved":      result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
