package ledger

import (
	"fmt"
	"sync"

	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/persistence"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
)

// Service implements the ledger engine: the sole authority for balance reads
// and mutations. Every mutation runs inside a unit of work so the balance
// change and the log append commit together or not at all.
type Service struct {
	uow             persistence.UnitOfWork
	accountRepo     persistence.AccountRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger

	// Owners with a detected balance/log divergence. Mutations for a
	// quarantined owner are refused until operator intervention.
	quarantined sync.Map // map[string]struct{}
}

// NewService creates a new ledger engine instance
func NewService(
	uow persistence.UnitOfWork,
	accountRepo persistence.AccountRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.LedgerUseCase {
	return &Service{
		uow:             uow,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// guardMutation rejects mutations for quarantined owners
func (s *Service) guardMutation(owner string) error {
	if _, found := s.quarantined.Load(owner); found {
		return fmt.Errorf("%w: owner %s is quarantined", errs.ErrLedgerDivergence, owner)
	}
	return nil
}

// quarantine marks an owner as diverged
func (s *Service) quarantine(owner string) {
	s.quarantined.Store(owner, struct{}{})
}
