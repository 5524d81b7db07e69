package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// UserRepository defines the persistence interface for accounts.
// Implementations must enforce email uniqueness on Create.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID loads an account without its password hash.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
