// Package memory provides an in-memory implementation of the persistence
// interfaces. Accounts live for the lifetime of the process; there is no
// on-disk or network-backed representation.
package memory

import (
	"context"
	"sync"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
)

// accountRepository is a concurrency-safe in-memory account store keyed by
// username. Reads take a shared lock; Create takes an exclusive lock covering
// both uniqueness checks and the insert, which makes check-and-insert atomic.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*entity.Account
}

// NewAccountRepository is the constructor for the in-memory account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[string]*entity.Account),
	}
}

// FindByUsername retrieves an account by exact username match.
func (r *accountRepository) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, errors.WithStack(repository.ErrAccountNotFound)
	}

	return account, nil
}

// FindByEmail scans all accounts comparing email equality. Linear in the
// account count, which is acceptable for an in-memory reference store.
func (r *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}

	return nil, errors.WithStack(repository.ErrAccountNotFound)
}

// Create inserts a new account. Username and email uniqueness are re-checked
// under the write lock, username first, so concurrent registrations for the
// same identity cannot both succeed.
func (r *accountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Username]; ok {
		return errors.WithStack(repository.ErrUsernameTaken)
	}

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return errors.WithStack(repository.ErrEmailTaken)
		}
	}

	r.accounts[account.Username] = account

	return nil
}
