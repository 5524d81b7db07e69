package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/auth"
	"github.com/shopstack/storefront-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusBadRequest},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{auth.ErrTokenInvalid, http.StatusUnauthorized},
		{auth.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrProviderNotConfigured, http.StatusInternalServerError},
		{errors.New("mongo exploded"), http.StatusInternalServerError},
		{echo.NewHTTPError(http.StatusTeapot, "teapot"), http.StatusTeapot},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
			t.Fatalf("%v: expected JSON envelope", tc.err)
		}
	}
}

func TestHTTPErrorHandler_NoInternalDetailLeak(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("connection to mongodb://secret-host failed"), c)

	if strings.Contains(rec.Body.String(), "secret-host") {
		t.Fatalf("internal error detail leaked: %s", rec.Body.String())
	}
}
