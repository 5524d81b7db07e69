package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// ProductRepository defines the read interface for the catalog.
type ProductRepository interface {
	// SearchByName performs a case-insensitive substring match on
	// product names.
	SearchByName(ctx context.Context, query string) ([]domain.Product, error)
}

// SearchCache caches search results keyed by the normalized query.
// Implementations are best-effort: a cache failure must surface as an
// error so the caller can fall back to the repository.
type SearchCache interface {
	Get(ctx context.Context, query string) ([]domain.Product, error)
	Put(ctx context.Context, query string, products []domain.Product) error
}
