package repository

import (
	"context"
	"fmt"

	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/persistence"
	"github.com/printa-studio/credits-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ContentRepository re-owns the non-ledger domain tables during identity
// migration. It must run on a transaction-bound handle: the individual
// UPDATE statements only form an atomic step as part of the surrounding
// unit of work.
type ContentRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewContentRepository creates a new ContentRepository instance
func NewContentRepository(db *gorm.DB, logger coreport.Logger) *ContentRepository {
	return &ContentRepository{
		db:     db,
		logger: logger,
	}
}

// ReassignOwner updates the owner column of every content row keyed by
// fromOwner and reports per-table counts
func (r *ContentRepository) ReassignOwner(ctx context.Context, fromOwner, toOwner string) (persistence.ContentCounts, error) {
	var counts persistence.ContentCounts

	tables := []struct {
		name  string
		dest  interface{}
		count *int64
	}{
		{"designs", &model.Design{}, &counts.Designs},
		{"likes", &model.Like{}, &counts.Likes},
		{"orders", &model.Order{}, &counts.Orders},
		{"portfolio_items", &model.PortfolioItem{}, &counts.PortfolioItems},
	}

	for _, table := range tables {
		result := r.db.WithContext(ctx).Model(table.dest).
			Where("owner = ?", fromOwner).
			Update("owner", toOwner)
		if result.Error != nil {
			r.logger.Error("Database error when re-owning content", map[string]any{
				"table":      table.name,
				"from_owner": fromOwner,
				"error":      result.Error.Error(),
			})
			return persistence.ContentCounts{}, fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, result.Error.Error())
		}
		*table.count = result.RowsAffected
	}

	if counts.Total() > 0 {
		r.logger.Info("Content re-owned", map[string]any{
			"from_owner":      fromOwner,
			"to_owner":        toOwner,
			"designs":         counts.Designs,
			"likes":           counts.Likes,
			"orders":          counts.Orders,
			"portfolio_items": counts.PortfolioItems,
		})
	}

	return counts, nil
}
