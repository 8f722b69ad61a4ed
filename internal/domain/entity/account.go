// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a single registered
// identity. The plaintext password is never stored; only the per-account salt
// and the derived hash are kept.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Username     string    // The unique login identifier, also the storage key.
	Email        string    // The account's contact email, unique across all accounts.
	Role         Role      // The role assigned at registration ("user" or "admin").
	Salt         []byte    // Random salt generated at registration, unique per account.
	PasswordHash []byte    // The salted argon2id digest of the original password.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
