package usage

import (
	"context"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/persistence"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
)

// UsageUseCase tracks per-owner free-tier actions per server-local calendar
// day. It is consulted by the same authorization path as the ledger but is
// independent of the paid balance.
type UsageUseCase struct {
	usageRepo    persistence.UsageRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	dailyLimit   int
}

// NewUsageUseCase creates a new usage counter use case
func NewUsageUseCase(
	usageRepo persistence.UsageRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	dailyLimit int,
) usecase.UsageUseCase {
	return &UsageUseCase{
		usageRepo:    usageRepo,
		timeProvider: timeProvider,
		logger:       logger,
		dailyLimit:   dailyLimit,
	}
}

// GetUsage returns the owner's counter for the current day
func (u *UsageUseCase) GetUsage(ctx context.Context, owner string) (*usecase.UsageResult, error) {
	if err := entity.ValidateOwner(owner); err != nil {
		return nil, err
	}

	day := entity.DayKey(u.timeProvider.Now())
	counter, err := u.usageRepo.GetDaily(ctx, owner, day)
	if err != nil {
		u.logger.Error("Failed to read usage counter", map[string]any{
			"owner": owner,
			"date":  day,
			"error": err.Error(),
		})
		return nil, err
	}

	return u.toResult(counter), nil
}

// IncrementUsage consumes one free-tier action for today. The repository
// increment is a single conditional write, so concurrent calls for the same
// owner never double-count.
func (u *UsageUseCase) IncrementUsage(ctx context.Context, owner string) (*usecase.UsageResult, error) {
	if err := entity.ValidateOwner(owner); err != nil {
		return nil, err
	}

	day := entity.DayKey(u.timeProvider.Now())
	count, err := u.usageRepo.Increment(ctx, owner, day)
	if err != nil {
		u.logger.Error("Failed to increment usage counter", map[string]any{
			"owner": owner,
			"date":  day,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Debug("Free-tier usage incremented", map[string]any{
		"owner": owner,
		"date":  day,
		"count": count,
	})

	return u.toResult(&entity.UsageCounter{Owner: owner, Date: day, Count: count}), nil
}

func (u *UsageUseCase) toResult(counter *entity.UsageCounter) *usecase.UsageResult {
	return &usecase.UsageResult{
		Owner:   counter.Owner,
		Date:    counter.Date,
		Count:   counter.Count,
		Limit:   u.dailyLimit,
		Allowed: counter.Count < u.dailyLimit,
	}
}
