package service

import (
	"context"
	"errors"
	"time"

	"github.com/accessd/accessd/internal/core/domain"
	"github.com/accessd/accessd/internal/core/ports"
)

// AuthService implements registration and login on top of the credential
// store and the token service.
type AuthService struct {
	store  ports.CredentialStore
	tokens ports.TokenService
}

func NewAuthService(store ports.CredentialStore, tokens ports.TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Register creates a password-credentialed user at the default user tier.
// Privilege promotion is an operator action on the store, never implicit.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.tokens.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Privilege:    int(domain.PrivilegeUser),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.store.Create(ctx, user)
}

// Login verifies the password and returns a signed bearer token. Unknown
// users and wrong passwords both come back as ErrInvalidCredentials so the
// response cannot be used to probe for usernames. Store outages propagate
// as-is.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if user.PasswordHash == "" || !s.tokens.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}
