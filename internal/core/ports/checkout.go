package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// CheckoutItemInput is a raw item as submitted by the client; price is
// in whole currency units and may be absent.
type CheckoutItemInput struct {
	Name     string
	Price    float64
	Quantity int64
}

// CheckoutService turns submitted items into a hosted payment session.
type CheckoutService interface {
	// CreateSession returns the redirect URL of the created session.
	CreateSession(ctx context.Context, items []CheckoutItemInput) (string, error)
}

// PaymentProvider is the external payment-session API, consumed
// contract-only.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, items []domain.LineItem) (string, error)
}

// ChatService validates and forwards a chat message.
type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}

// ChatCompleter is the external chat-completion API, consumed
// contract-only.
type ChatCompleter interface {
	Complete(ctx context.Context, message string) (string, error)
}
