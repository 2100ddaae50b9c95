package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/printa-studio/credits-ledger/internal/domain/entity"
	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	"github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/persistence"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
	coremocks "github.com/printa-studio/credits-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubClock is a minimal time provider for concurrency tests where mock
// call-count bookkeeping would only add noise.
type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time                 { return c.now }
func (c *stubClock) Since(t time.Time) core.Duration { return core.Duration(c.now.Sub(t)) }
func (c *stubClock) Sleep(d core.Duration)          {}
func (c *stubClock) WithTimeout(ctx context.Context, d core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.Std())
}

// memoryStore holds the shared ledger state behind memoryUnitOfWork. A
// single mutex held from Begin to Commit/Rollback stands in for the row
// lock a real database takes on the account during a debit.
type memoryStore struct {
	mu       sync.Mutex
	balances map[string]int64
	log      []*entity.Transaction
}

type memoryUnitOfWork struct {
	store *memoryStore
	clock *stubClock

	snapBalances map[string]int64
	snapLogLen   int
}

func newMemoryUnitOfWork(clock *stubClock) *memoryUnitOfWork {
	return &memoryUnitOfWork{
		store: &memoryStore{balances: make(map[string]int64)},
		clock: clock,
	}
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.store.mu.Lock()
	u.snapBalances = make(map[string]int64, len(u.store.balances))
	for owner, balance := range u.store.balances {
		u.snapBalances[owner] = balance
	}
	u.snapLogLen = len(u.store.log)
	return ctx, nil
}

func (u *memoryUnitOfWork) Commit(ctx context.Context) error {
	u.snapBalances = nil
	u.store.mu.Unlock()
	return nil
}

func (u *memoryUnitOfWork) Rollback(ctx context.Context) error {
	if u.snapBalances != nil {
		u.store.balances = u.snapBalances
		u.store.log = u.store.log[:u.snapLogLen]
		u.snapBalances = nil
	}
	u.store.mu.Unlock()
	return nil
}

func (u *memoryUnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return &memoryAccountRepository{store: u.store, clock: u.clock}
}

func (u *memoryUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return &memoryTransactionRepository{store: u.store}
}

func (u *memoryUnitOfWork) GetUsageRepository(ctx context.Context) persistence.UsageRepository {
	return nil
}

func (u *memoryUnitOfWork) GetContentRepository(ctx context.Context) persistence.ContentRepository {
	return nil
}

type memoryAccountRepository struct {
	store *memoryStore
	clock *stubClock
}

func (r *memoryAccountRepository) GetByOwner(ctx context.Context, owner string) (*entity.Account, error) {
	balance, found := r.store.balances[owner]
	if !found {
		return nil, errs.ErrAccountNotFound
	}
	account, err := entity.NewAccount(owner, r.clock)
	if err != nil {
		return nil, err
	}
	account.SetBalance(balance, r.clock)
	return account, nil
}

func (r *memoryAccountRepository) Credit(ctx context.Context, owner string, amount int64) (*entity.Account, error) {
	r.store.balances[owner] += amount
	return r.GetByOwner(ctx, owner)
}

func (r *memoryAccountRepository) Debit(ctx context.Context, owner string, amount int64) (*entity.Account, error) {
	balance := r.store.balances[owner]
	if balance < amount {
		return nil, errs.NewInsufficientCreditsError(owner, amount, balance)
	}
	r.store.balances[owner] = balance - amount
	return r.GetByOwner(ctx, owner)
}

func (r *memoryAccountRepository) MergeOwner(ctx context.Context, fromOwner, toOwner string) (bool, error) {
	balance, found := r.store.balances[fromOwner]
	if !found {
		return false, nil
	}
	r.store.balances[toOwner] += balance
	delete(r.store.balances, fromOwner)
	return true, nil
}

type memoryTransactionRepository struct {
	store *memoryStore
}

func (r *memoryTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.store.log = append(r.store.log, transaction)
	return nil
}

func (r *memoryTransactionRepository) ListByOwner(ctx context.Context, owner string, limit int) ([]*entity.Transaction, error) {
	var entries []*entity.Transaction
	for i := len(r.store.log) - 1; i >= 0; i-- {
		if r.store.log[i].Owner == owner {
			entries = append(entries, r.store.log[i])
			if limit > 0 && len(entries) == limit {
				break
			}
		}
	}
	return entries, nil
}

func (r *memoryTransactionRepository) SumByOwner(ctx context.Context, owner string) (int64, error) {
	var sum int64
	for _, txn := range r.store.log {
		if txn.Owner == owner {
			sum += txn.SignedAmount()
		}
	}
	return sum, nil
}

func (r *memoryTransactionRepository) ReassignOwner(ctx context.Context, fromOwner, toOwner string) (int64, error) {
	var moved int64
	for _, txn := range r.store.log {
		if txn.Owner == fromOwner {
			txn.Owner = toOwner
			moved++
		}
	}
	return moved, nil
}

func TestConcurrentSpendsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	clock := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	uow := newMemoryUnitOfWork(clock)

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	accountRepo := &memoryAccountRepository{store: uow.store, clock: clock}
	transactionRepo := &memoryTransactionRepository{store: uow.store}
	service := NewService(uow, accountRepo, transactionRepo, clock, mockLogger)

	_, err := service.AddCredits(ctx, usecase.AddCreditsRequest{Owner: "user-1", Amount: 100, Description: "seed"})
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, results[slot] = service.Spend(ctx, usecase.SpendRequest{Owner: "user-1", Amount: 10, Description: "concurrent"})
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errs.IsInsufficientCreditsError(err):
			rejected++
		default:
			t.Fatalf("unexpected spend error: %v", err)
		}
	}

	// 100 credits cover exactly 10 spends of 10; the rest must be rejected
	// without ever driving the balance negative.
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, workers-10, rejected)

	balance, err := service.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance.Balance)

	audit, err := service.Audit(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, audit.Consistent)

	entries, err := service.ListTransactions(ctx, "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 11)
}
