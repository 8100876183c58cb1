package ports

import (
	"context"

	"github.com/accessd/accessd/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns a signed bearer token for the user on success.
	Login(ctx context.Context, username, password string) (string, error)
}
