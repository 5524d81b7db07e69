package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// CatalogService exposes product search.
type CatalogService interface {
	Search(ctx context.Context, query string) ([]domain.Product, error)
}
