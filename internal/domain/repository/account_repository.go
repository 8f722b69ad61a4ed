// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrUsernameTaken is returned by Create when an account with the same
// username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// ErrEmailTaken is returned by Create when an account with the same email
// already exists.
var ErrEmailTaken = errors.New("email already taken")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByUsername retrieves a single account by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account keyed by its username. The uniqueness of
	// username and email is re-checked and the insert applied in one
	// mutual-exclusion scope, so two concurrent registrations for the same
	// identity cannot both succeed. Username conflicts are reported before
	// email conflicts.
	Create(ctx context.Context, account *entity.Account) error
}
