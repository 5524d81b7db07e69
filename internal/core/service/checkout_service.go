package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/metrics"
	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// Fallbacks applied to incomplete checkout items.
const (
	fallbackItemName   = "Unknown Item"
	fallbackUnitAmount = 1000 // cents
)

// StripeCheckoutService normalizes submitted items and delegates
// session creation to the payment provider.
type StripeCheckoutService struct {
	provider ports.PaymentProvider
	logger   zerolog.Logger
}

func NewStripeCheckoutService(provider ports.PaymentProvider, logger zerolog.Logger) *StripeCheckoutService {
	return &StripeCheckoutService{provider: provider, logger: logger}
}

// CreateSession maps raw items to normalized line items (price in
// cents, defaults for missing fields) and returns the provider's
// redirect URL.
func (s *StripeCheckoutService) CreateSession(ctx context.Context, items []ports.CheckoutItemInput) (string, error) {
	if len(items) == 0 {
		return "", domain.ErrMissingFields
	}

	lineItems := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		li := domain.LineItem{
			Name: item.Name,
			// Round instead of truncate: 19.99 must become 1999
			// cents, not 1998.
			UnitAmount: int64(math.Round(item.Price * 100)),
			Quantity:   item.Quantity,
		}
		if li.Name == "" {
			li.Name = fallbackItemName
		}
		if item.Price <= 0 {
			li.UnitAmount = fallbackUnitAmount
		}
		if li.Quantity <= 0 {
			li.Quantity = 1
		}
		lineItems = append(lineItems, li)
	}

	url, err := s.provider.CreateCheckoutSession(ctx, lineItems)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Int("items", len(lineItems)).Msg("checkout session created")
	return url, nil
}
