package handler

import "github.com/shopstack/storefront-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse carries status-only results (register, logout).
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token"`
}

type currentUserResponse struct {
	User *domain.User `json:"user"`
}

// --- Catalog ---

type searchResponse struct {
	Success  bool             `json:"success"`
	Products []domain.Product `json:"products"`
}

// --- Checkout ---

type checkoutItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

type checkoutRequest struct {
	Items []checkoutItemRequest `json:"items" validate:"required,min=1"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

// --- Chat ---

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}
