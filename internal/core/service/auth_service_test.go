package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/accessd/accessd/internal/core/domain"
)

type stubStore struct {
	users  map[string]*domain.User
	nextID int64
	err    error
}

func newStubStore() *stubStore {
	return &stubStore{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (s *stubStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, exists := s.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	s.nextID++
	copy := cloneUser(user)
	copy.ID = s.nextID
	s.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (s *stubStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubStore) FindByAPIKey(_ context.Context, key string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.APIKey != "" && u.APIKey == key {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubStore) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(t *testing.T) (*AuthService, *stubStore, *TokenService) {
	t.Helper()
	tokens, err := NewTokenService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	store := newStubStore()
	return NewAuthService(store, tokens), store, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "alice", "s3cr3t")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "s3cr3t" {
		t.Fatalf("expected password to be hashed")
	}
	if !tokens.VerifyPassword("s3cr3t", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.PrivilegeLevel() != domain.PrivilegeUser {
		t.Fatalf("new users start at the user tier, got %v", user.PrivilegeLevel())
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "carol", "s3cr3t")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cr3t")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	sub, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if sub != user.ID {
		t.Fatalf("token subject = %d, want %d", sub, user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "dave", "right"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Login(context.Background(), "dave", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), "nobody", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user must report ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_APIKeyUserHasNoPassword(t *testing.T) {
	svc, store, _ := newTestAuthService(t)

	store.users["keyed"] = &domain.User{ID: 9, Username: "keyed", APIKey: "k-123", Privilege: 1}

	if _, err := svc.Login(context.Background(), "keyed", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "keyed", "k-123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("api key is not a password; expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_StoreFailurePropagates(t *testing.T) {
	svc, store, _ := newTestAuthService(t)
	store.err = domain.ErrStoreUnavailable

	if _, err := svc.Login(context.Background(), "anyone", "pass"); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
