package ledger

import (
	"context"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
)

// AddCredits atomically credits the owner's balance and appends a purchase
// entry, creating the account on first use. When the caller signals a refund
// the entry is recorded with the refund kind instead; the balance effect is
// identical.
func (s *Service) AddCredits(ctx context.Context, req usecase.AddCreditsRequest) (*usecase.MutationResult, error) {
	if err := entity.ValidateOwner(req.Owner); err != nil {
		return nil, err
	}
	if err := entity.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := s.guardMutation(req.Owner); err != nil {
		return nil, err
	}

	kind := entity.KindPurchase
	if req.Refund {
		kind = entity.KindRefund
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.uow.GetAccountRepository(txCtx).Credit(txCtx, req.Owner, req.Amount)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to credit account", map[string]any{
			"owner":  req.Owner,
			"amount": req.Amount,
			"error":  err.Error(),
		})
		return nil, errs.NewLedgerError(req.Owner, req.Amount, string(kind), err)
	}

	txn, err := entity.NewTransaction(req.Owner, kind, req.Amount, req.Description, s.timeProvider)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to append purchase entry", map[string]any{
			"owner":  req.Owner,
			"amount": req.Amount,
			"kind":   string(kind),
			"error":  err.Error(),
		})
		return nil, errs.NewLedgerError(req.Owner, req.Amount, string(kind), err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewLedgerError(req.Owner, req.Amount, string(kind), err)
	}

	s.logger.Info("Credits added", map[string]any{
		"owner":       req.Owner,
		"amount":      req.Amount,
		"kind":        string(kind),
		"new_balance": account.Balance(),
		"description": req.Description,
	})

	return &usecase.MutationResult{
		Success:    true,
		NewBalance: account.Balance(),
	}, nil
}
