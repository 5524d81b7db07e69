package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// AccountService implements registration, login, and identity lookup.
type AccountService interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token
	// alongside the account's public fields.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves the full account behind a verified
	// credential's subject id.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
