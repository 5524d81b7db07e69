package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

const searchTTL = 5 * time.Minute

// SearchCache caches catalog search results in Redis as JSON.
// Key format: search:<normalized query>
type SearchCache struct {
	client *redis.Client
}

// NewSearchCache creates a SearchCache wrapping the given Redis client.
func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client}
}

// Get returns the cached results for a query, or (nil, nil) on a miss.
func (c *SearchCache) Get(ctx context.Context, query string) ([]domain.Product, error) {
	raw, err := c.client.Get(ctx, c.key(query)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("search cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("search cache decode: %w", err)
	}
	return products, nil
}

// Put stores the results for a query (expires after searchTTL).
func (c *SearchCache) Put(ctx context.Context, query string, products []domain.Product) error {
	raw, err := encodeProducts(products)
	if err != nil {
		return fmt.Errorf("search cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(query), raw, searchTTL).Err()
}

// encodeProducts normalizes a nil slice to an empty array. A nil
// slice would marshal to JSON null, decode back to nil, and make Get
// report a miss forever — empty results must cache like any other.
func encodeProducts(products []domain.Product) ([]byte, error) {
	if products == nil {
		products = []domain.Product{}
	}
	return json.Marshal(products)
}

func (c *SearchCache) key(query string) string {
	return fmt.Sprintf("search:%s", query)
}
