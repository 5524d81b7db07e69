package domain

import "time"

// Product is a catalog entry surfaced by the search endpoint.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LineItem is a single purchasable entry in a checkout session,
// already normalized (name, unit amount in cents, quantity).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}
