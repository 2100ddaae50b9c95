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

// UsageRepository implements per-day free-tier counters using GORM
type UsageRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUsageRepository creates a new UsageRepository instance
func NewUsageRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UsageRepository {
	return &UsageRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *UsageRepository) storageError(operation string, err error, owner string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"owner": owner,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}

// GetDaily returns the owner's counter for the given day key; a missing row
// reads as a zero count
func (r *UsageRepository) GetDaily(ctx context.Context, owner, day string) (*entity.UsageCounter, error) {
	var m model.UsageCounter
	result := r.db.WithContext(ctx).First(&m, "owner = ? AND date = ?", owner, day)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &entity.UsageCounter{Owner: owner, Date: day}, nil
		}
		return nil, r.storageError("reading usage counter", result.Error, owner)
	}

	return &entity.UsageCounter{Owner: m.Owner, Date: m.Date, Count: m.Count}, nil
}

// Increment bumps the owner's counter for the day by one as a single
// conditional write: insert at 1, or increment in place on conflict
func (r *UsageRepository) Increment(ctx context.Context, owner, day string) (int, error) {
	now := r.timeProvider.Now()
	row := model.UsageCounter{
		Owner:     owner,
		Date:      day,
		Count:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("usage_counters.count + 1"),
			"updated_at": now,
		}),
	}).Create(&row)
	if result.Error != nil {
		return 0, r.storageError("incrementing usage counter", result.Error, owner)
	}

	// The upsert does not report the post-increment value; re-read it
	var m model.UsageCounter
	if err := r.db.WithContext(ctx).First(&m, "owner = ? AND date = ?", owner, day).Error; err != nil {
		return 0, r.storageError("reading incremented usage counter", err, owner)
	}

	return m.Count, nil
}

// MergeOwner re-owns every counter of fromOwner to toOwner. A same-day
// collision on the destination is summed rather than overwritten.
func (r *UsageRepository) MergeOwner(ctx context.Context, fromOwner, toOwner string) (int64, error) {
	var rows []model.UsageCounter
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner = ?", fromOwner).
		Find(&rows)
	if result.Error != nil {
		return 0, r.storageError("locking usage counters", result.Error, fromOwner)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	now := r.timeProvider.Now()
	for _, src := range rows {
		dest := model.UsageCounter{
			Owner:     toOwner,
			Date:      src.Date,
			Count:     src.Count,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":      gorm.Expr("usage_counters.count + ?", src.Count),
				"updated_at": now,
			}),
		}).Create(&dest).Error
		if err != nil {
			return 0, r.storageError("merging usage counter", err, toOwner)
		}
	}

	result = r.db.WithContext(ctx).Where("owner = ?", fromOwner).Delete(&model.UsageCounter{})
	if result.Error != nil {
		return 0, r.storageError("removing merged usage counters", result.Error, fromOwner)
	}

	return int64(len(rows)), nil
}
