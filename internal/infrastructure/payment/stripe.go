// Package payment wraps the Stripe checkout-session API behind the
// PaymentProvider port.
package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

const currency = "usd"

// Config captures the settings for the Stripe client.
type Config struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

// StripeClient creates hosted checkout sessions. A client constructed
// without a secret key reports ErrProviderNotConfigured on use rather
// than failing startup, so the rest of the API stays available.
type StripeClient struct {
	api        *client.API
	successURL string
	cancelURL  string
}

func NewStripeClient(cfg Config) *StripeClient {
	sc := &StripeClient{
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
	if cfg.SecretKey != "" {
		sc.api = &client.API{}
		sc.api.Init(cfg.SecretKey, nil)
	}
	return sc
}

// CreateCheckoutSession creates a card-only payment session for the
// given line items and returns the hosted redirect URL.
func (s *StripeClient) CreateCheckoutSession(ctx context.Context, items []domain.LineItem) (string, error) {
	if s.api == nil {
		return "", domain.ErrProviderNotConfigured
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(s.successURL),
		CancelURL:          stripe.String(s.cancelURL),
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}
