package ledger

import (
	"context"
	"errors"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
)

// GetBalance returns the owner's balance and lifetime totals. A missing
// account reads as zeros so the common "new visitor" path needs no special
// handling; no record is created.
func (s *Service) GetBalance(ctx context.Context, owner string) (*usecase.BalanceResult, error) {
	if err := entity.ValidateOwner(owner); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return &usecase.BalanceResult{Owner: owner}, nil
		}
		s.logger.Error("Failed to get account", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		return nil, err
	}

	return &usecase.BalanceResult{
		Owner:          account.Owner,
		Balance:        account.Balance(),
		TotalPurchased: account.TotalPurchased,
		TotalSpent:     account.TotalSpent,
	}, nil
}

// CanSpend reports whether the owner's current balance covers the amount.
// Pure read check; the authoritative re-check happens inside Spend.
func (s *Service) CanSpend(ctx context.Context, owner string, amount int64) (bool, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return false, err
	}

	result, err := s.GetBalance(ctx, owner)
	if err != nil {
		return false, err
	}

	return result.Balance >= amount, nil
}

// ListTransactions returns the owner's ledger entries newest-first
func (s *Service) ListTransactions(ctx context.Context, owner string, limit int) ([]*entity.Transaction, error) {
	if err := entity.ValidateOwner(owner); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListByOwner(ctx, owner, limit)
}
