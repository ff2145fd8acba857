package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/auth"
	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService implements AuthService over the users and sellers collections.
// Passwords are stored as bcrypt hashes; a credential mismatch is never
// distinguishable from an unknown email.
type authService struct {
	users   repository.AccountRepository
	sellers repository.AccountRepository
	tokens  *auth.TokenManager
	logger  zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	users repository.AccountRepository,
	sellers repository.AccountRepository,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		users:   users,
		sellers: sellers,
		tokens:  tokens,
		logger:  logger.With().Str("service", "auth").Logger(),
	}
}

func (s *authService) repoFor(kind string) repository.AccountRepository {
	if kind == auth.PrincipalSeller {
		return s.sellers
	}
	return s.users
}

// Register hashes the password and stores the account. The returned account
// carries no password.
func (s *authService) Register(ctx context.Context, kind string, account *model.Account) (*model.Account, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.Password = string(hashed)

	stored, err := s.repoFor(kind).Insert(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", kind, err)
	}

	s.logger.Info().Str("kind", kind).Str("email", stored.Email).Msg("account registered")

	stored.Password = ""
	return stored, nil
}

// Login checks user credentials and issues a token embedding only the minimal
// identity claims.
func (s *authService) Login(ctx context.Context, creds model.Credentials) (*model.Account, string, error) {
	account, err := s.Check(ctx, auth.PrincipalUser, creds.Email, creds.Password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(account.ID.Hex(), account.Email, auth.PrincipalUser)
	if err != nil {
		s.logger.Error().Err(err).Str("email", account.Email).Msg("failed to issue token")
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("email", account.Email).Msg("user logged in")
	return account, token, nil
}

// Check verifies an email/password pair against the stored hash. Any mismatch
// is model.ErrNotFound.
func (s *authService) Check(ctx context.Context, kind, email, password string) (*model.Account, error) {
	account, err := s.repoFor(kind).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debug().Str("kind", kind).Str("email", email).Msg("unknown account")
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		s.logger.Debug().Str("kind", kind).Str("email", email).Msg("password mismatch")
		return nil, model.ErrNotFound
	}

	account.Password = ""
	return account, nil
}
