package ledger

import (
	"context"
	"errors"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
)

// Audit verifies the ledger invariant for one owner: the stored balance must
// equal the signed sum of the owner's transaction log. A mismatch is a
// programming invariant violation, not something to repair silently, so the
// owner is quarantined and every later mutation fails until an operator
// steps in.
func (s *Service) Audit(ctx context.Context, owner string) (*usecase.AuditResult, error) {
	if err := entity.ValidateOwner(owner); err != nil {
		return nil, err
	}

	var stored int64
	account, err := s.accountRepo.GetByOwner(ctx, owner)
	if err != nil {
		if !errors.Is(err, errs.ErrAccountNotFound) {
			return nil, err
		}
		// No account reads as zero; the log must agree.
	} else {
		stored = account.Balance()
	}

	sum, err := s.transactionRepo.SumByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	result := &usecase.AuditResult{
		Owner:         owner,
		StoredBalance: stored,
		LogSum:        sum,
		Consistent:    stored == sum,
	}

	if !result.Consistent {
		s.quarantine(owner)
		divergence := errs.NewLedgerDivergenceError(owner, stored, sum)
		s.logger.Error("Ledger divergence detected, owner quarantined", map[string]any{
			"owner":          owner,
			"stored_balance": stored,
			"log_sum":        sum,
		})
		return result, divergence
	}

	return result, nil
}
