package ledger

import (
	"context"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
)

// Spend atomically debits the owner's balance and appends a spend entry to
// the transaction log. The account row stays locked from the re-read until
// commit, so two concurrent spends for the same owner can never both pass
// the balance check against the same credits.
func (s *Service) Spend(ctx context.Context, req usecase.SpendRequest) (*usecase.MutationResult, error) {
	if err := entity.ValidateOwner(req.Owner); err != nil {
		return nil, err
	}
	if err := entity.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := s.guardMutation(req.Owner); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.uow.GetAccountRepository(txCtx).Debit(txCtx, req.Owner, req.Amount)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		if errs.IsInsufficientCreditsError(err) {
			s.logger.Warn("Spend rejected: insufficient credits", map[string]any{
				"owner":  req.Owner,
				"amount": req.Amount,
			})
			return nil, err
		}
		s.logger.Error("Failed to debit account", map[string]any{
			"owner":  req.Owner,
			"amount": req.Amount,
			"error":  err.Error(),
		})
		return nil, errs.NewLedgerError(req.Owner, req.Amount, "spend", err)
	}

	txn, err := entity.NewTransaction(req.Owner, entity.KindSpend, req.Amount, req.Description, s.timeProvider)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if req.RelatedOrder != nil {
		txn.WithRelatedOrder(*req.RelatedOrder)
	}

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to append spend entry", map[string]any{
			"owner":  req.Owner,
			"amount": req.Amount,
			"error":  err.Error(),
		})
		return nil, errs.NewLedgerError(req.Owner, req.Amount, "spend", err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewLedgerError(req.Owner, req.Amount, "spend", err)
	}

	s.logger.Info("Credits spent", map[string]any{
		"owner":       req.Owner,
		"amount":      req.Amount,
		"new_balance": account.Balance(),
		"description": req.Description,
	})

	return &usecase.MutationResult{
		Success:    true,
		NewBalance: account.Balance(),
	}, nil
}
