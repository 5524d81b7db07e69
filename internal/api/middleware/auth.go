package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/storefront-api/internal/auth"
)

// TokenCookieName is the cookie carrying the session credential.
const TokenCookieName = "token"

const identityKey = "identity"

// ResolveToken extracts a candidate credential from the request.
// Resolution order is fixed: a non-empty token cookie wins, then an
// Authorization header with a Bearer prefix. The boolean reports
// whether anything was found.
func ResolveToken(c echo.Context) (string, bool) {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
		return parts[1], true
	}

	return "", false
}

// Auth resolves and verifies the session credential, then injects the
// decoded identity into the request context. No account-store lookup
// happens here; identity is trusted from the signature alone.
func Auth(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := ResolveToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized - no token found")
			}

			ident, err := codec.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized - invalid or expired token")
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity attached by Auth. The boolean
// is false when the middleware did not run on this route.
func CurrentIdentity(c echo.Context) (auth.Identity, bool) {
	ident, ok := c.Get(identityKey).(auth.Identity)
	return ident, ok
}
