package ports

import (
	"context"

	"github.com/accessd/accessd/internal/core/domain"
)

// CredentialStore is the persistence contract the core consumes. All methods
// must be safe for concurrent use from many in-flight requests; each call is
// independent, no cross-call transaction is required.
//
// A lookup that matched nothing returns domain.ErrUserNotFound. An
// infrastructure failure wraps domain.ErrStoreUnavailable; implementations
// never report it as "not found".
type CredentialStore interface {
	FindByAPIKey(ctx context.Context, key string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create persists a new user and returns it with its assigned id.
	// Returns domain.ErrUserExists on a username collision.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
