// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and
// verification. This abstracts the underlying hashing algorithm (e.g.,
// argon2id), keeping the domain pure.
type PasswordHasher interface {
	// GenerateSalt produces a fresh, unpredictable salt for a new account.
	GenerateSalt() ([]byte, error)

	// Hash derives a digest from a plaintext password and a salt. The result
	// is deterministic for the same password and salt.
	Hash(password string, salt []byte) ([]byte, error)

	// Verify recomputes the digest for the candidate password with the stored
	// salt and compares it against the stored hash in constant time.
	Verify(password string, salt, hash []byte) bool
}
