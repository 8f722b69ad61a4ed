package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
)

func newTestAccount(username, email string) *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		Role:         entity.RoleUser,
		Salt:         []byte("salt"),
		PasswordHash: []byte("hash"),
		CreatedAt:    time.Now(),
	}
}

func TestAccountRepository_FindByUsername(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	account := newTestAccount("alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, account.Email, found.Email)
	assert.Equal(t, account.Role, found.Role)

	_, err = repo.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAccount("alice", "alice@example.com")))

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_Create_Conflicts(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAccount("alice", "alice@example.com")))

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, newTestAccount("alice", "other@example.com"))
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, newTestAccount("bob", "alice@example.com"))
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
	})

	t.Run("username conflict reported before email conflict", func(t *testing.T) {
		err := repo.Create(ctx, newTestAccount("alice", "alice@example.com"))
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)
	})
}

func TestAccountRepository_Create_ConcurrentSameUsername(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			account := newTestAccount("alice", fmt.Sprintf("alice+%d@example.com", i))
			errs[i] = repo.Create(ctx, account)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, repository.ErrUsernameTaken)
		}
	}
	assert.Equal(t, 1, succeeded)

	_, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
}
