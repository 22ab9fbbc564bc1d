package memory

import (
	"context"
	"sync"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
)

type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[domain.AccountID]domain.Account
}

func NewAccountRepository(accounts ...domain.Account) *AccountRepository {
	repo := &AccountRepository{
		accounts: make(map[domain.AccountID]domain.Account, len(accounts)),
	}
	for _, account := range accounts {
		repo.Store(account)
	}

	return repo
}

// Store inserts or replaces an account.
func (r *AccountRepository) Store(account domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.ID] = account
}

func (r *AccountRepository) FindOne(_ context.Context, spec domain.FindAccountSpecification) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if spec.ID != nil && account.ID != *spec.ID {
			continue
		}
		if spec.Username != nil && account.Username != *spec.Username {
			continue
		}

		return &account, nil
	}

	return nil, domain.ErrAccountNotFound
}
