package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/metrics"
	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// CatalogService serves product search, read-through cached. Cache
// failures degrade to the store and never fail the request.
type CatalogService struct {
	repo   ports.ProductRepository
	cache  ports.SearchCache
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, cache ports.SearchCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

// Search returns products whose name matches the query,
// case-insensitively. The query is lowercased for the cache key so
// casing variants share an entry.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	key := strings.ToLower(strings.TrimSpace(query))

	if s.cache != nil {
		if products, err := s.cache.Get(ctx, key); err == nil && products != nil {
			metrics.SearchesTotal.WithLabelValues("hit").Inc()
			return products, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Str("query", key).Msg("search cache read failed")
		}
	}

	products, err := s.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	metrics.SearchesTotal.WithLabelValues("miss").Inc()

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, products); err != nil {
			s.logger.Warn().Err(err).Str("query", key).Msg("search cache write failed")
		}
	}
	return products, nil
}
