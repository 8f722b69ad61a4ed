// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

// OWASP-recommended argon2id parameters.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2SaltLen = 16        // salt length in bytes
	argon2KeyLen  = 32        // output length in bytes
)

// ErrEmptySalt is returned when hashing is attempted with a missing salt.
var ErrEmptySalt = errors.New("salt cannot be empty")

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id with an explicit per-account salt.
type argon2Hasher struct{}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{}
}

// GenerateSalt produces a fresh random salt from the system CSPRNG.
func (h *argon2Hasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	return salt, nil
}

// Hash derives an argon2id digest from the password and salt. The same
// password and salt always produce the same digest.
func (h *argon2Hasher) Hash(password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, errors.WithStack(ErrEmptySalt)
	}

	return argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen), nil
}

// Verify recomputes the digest with the stored salt and compares it against
// the stored hash in constant time.
func (h *argon2Hasher) Verify(password string, salt, hash []byte) bool {
	if len(salt) == 0 || len(hash) == 0 {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, uint32(len(hash)))

	return subtle.ConstantTimeCompare(computed, hash) == 1
}
