// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// Register orchestrates the complete account registration process: batch
// validation, uniqueness checks (username before email), hashing, and the
// final atomic insert. No state is mutated before the insert step.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Debug("Starting registration", slog.String("username", input.Username))

	if err := validateRegistration(input); err != nil {
		srv.logger.Warn("Registration validation failed",
			slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	if _, err := srv.accountRepo.FindByUsername(ctx, input.Username); err == nil {
		srv.logger.Warn("Registration rejected, username exists", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrUsernameExists, "username conflict during registration")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check username uniqueness")
	}

	if _, err := srv.accountRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.logger.Warn("Registration rejected, email exists", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrEmailExists, "email conflict during registration")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	// Hashing is CPU-bound and runs outside any store lock.
	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		srv.logger.Error("Failed to generate salt during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to generate salt")
	}

	passwordHash, err := srv.hasher.Hash(input.Password, salt)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	account := &entity.Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		Role:         entity.Role(input.Type),
		Salt:         salt,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	// The store re-checks uniqueness under its write lock, closing the race
	// between the lookups above and this insert.
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, errors.Wrap(domainerrors.ErrUsernameExists, "username conflict during registration")
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, errors.Wrap(domainerrors.ErrEmailExists, "email conflict during registration")
		default:
			return nil, errors.Wrap(err, "failed to create account")
		}
	}

	srv.logger.Info("Account registered", slog.String("username", account.Username), slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login authenticates a username/password pair. An unknown username and a
// wrong password produce the same error, so callers cannot probe which
// usernames are registered.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("username", input.Username))

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.logger.Warn("Login failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	if !srv.hasher.Verify(input.Password, account.Salt, account.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.logger.Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: account}, nil
}
