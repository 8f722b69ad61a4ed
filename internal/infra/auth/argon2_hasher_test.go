package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_GenerateSalt(t *testing.T) {
	hasher := NewArgon2Hasher()

	salt1, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, argon2SaltLen)

	salt2, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt1, salt2)
}

func TestArgon2Hasher_Hash(t *testing.T) {
	hasher := NewArgon2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	t.Run("deterministic for same password and salt", func(t *testing.T) {
		hash1, err := hasher.Hash("Password1!", salt)
		require.NoError(t, err)
		hash2, err := hasher.Hash("Password1!", salt)
		require.NoError(t, err)
		assert.Equal(t, hash1, hash2)
		assert.Len(t, hash1, argon2KeyLen)
	})

	t.Run("different salts produce different hashes", func(t *testing.T) {
		otherSalt, err := hasher.GenerateSalt()
		require.NoError(t, err)

		hash1, err := hasher.Hash("Password1!", salt)
		require.NoError(t, err)
		hash2, err := hasher.Hash("Password1!", otherSalt)
		require.NoError(t, err)
		assert.NotEqual(t, hash1, hash2)
	})

	t.Run("rejects empty salt", func(t *testing.T) {
		_, err := hasher.Hash("Password1!", nil)
		assert.ErrorIs(t, err, ErrEmptySalt)
	})
}

func TestArgon2Hasher_Verify(t *testing.T) {
	hasher := NewArgon2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash, err := hasher.Hash("CorrectPass1!", salt)
	require.NoError(t, err)

	t.Run("correct password verifies", func(t *testing.T) {
		assert.True(t, hasher.Verify("CorrectPass1!", salt, hash))
	})

	t.Run("incorrect password fails", func(t *testing.T) {
		assert.False(t, hasher.Verify("WrongPass1!", salt, hash))
	})

	t.Run("empty password fails", func(t *testing.T) {
		assert.False(t, hasher.Verify("", salt, hash))
	})

	t.Run("missing salt or hash fails", func(t *testing.T) {
		assert.False(t, hasher.Verify("CorrectPass1!", nil, hash))
		assert.False(t, hasher.Verify("CorrectPass1!", salt, nil))
	})
}
