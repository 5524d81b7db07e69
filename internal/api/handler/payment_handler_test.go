package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/api"
	"github.com/shopstack/storefront-api/internal/api/handler"
	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

type stubCheckout struct {
	url      string
	err      error
	gotItems []ports.CheckoutItemInput
}

func (s *stubCheckout) CreateSession(_ context.Context, items []ports.CheckoutItemInput) (string, error) {
	s.gotItems = items
	return s.url, s.err
}

type stubChat struct {
	reply string
	err   error
}

func (s *stubChat) Reply(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

func newProviderAPI(checkout *stubCheckout, chat *stubChat) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.POST("/api/v1/payment/create-checkout-session", handler.NewPaymentHandler(checkout).CreateCheckoutSession)
	e.POST("/api/v1/chat", handler.NewChatHandler(chat).Chat)
	return e
}

func TestCreateCheckoutSession(t *testing.T) {
	checkout := &stubCheckout{url: "https://checkout.example/s_123"}
	e := newProviderAPI(checkout, &stubChat{})

	rec := doJSON(e, http.MethodPost, "/api/v1/payment/create-checkout-session",
		`{"items":[{"name":"Blue Shirt","price":25.5,"quantity":2}]}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.URL != "https://checkout.example/s_123" {
		t.Fatalf("unexpected url: %q", body.URL)
	}
	if len(checkout.gotItems) != 1 || checkout.gotItems[0].Name != "Blue Shirt" {
		t.Fatalf("items not forwarded: %+v", checkout.gotItems)
	}
}

func TestCreateCheckoutSession_EmptyItems(t *testing.T) {
	e := newProviderAPI(&stubCheckout{}, &stubChat{})

	for _, body := range []string{`{}`, `{"items":[]}`} {
		rec := doJSON(e, http.MethodPost, "/api/v1/payment/create-checkout-session", body, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestCreateCheckoutSession_ProviderNotConfigured(t *testing.T) {
	e := newProviderAPI(&stubCheckout{err: domain.ErrProviderNotConfigured}, &stubChat{})

	rec := doJSON(e, http.MethodPost, "/api/v1/payment/create-checkout-session",
		`{"items":[{"name":"x","price":1,"quantity":1}]}`, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestChat(t *testing.T) {
	e := newProviderAPI(&stubCheckout{}, &stubChat{reply: "hello there"})

	rec := doJSON(e, http.MethodPost, "/api/v1/chat", `{"message":"hi"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Reply != "hello there" {
		t.Fatalf("unexpected reply: %q", body.Reply)
	}
}

func TestChat_MissingMessage(t *testing.T) {
	e := newProviderAPI(&stubCheckout{}, &stubChat{})

	rec := doJSON(e, http.MethodPost, "/api/v1/chat", `{}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
