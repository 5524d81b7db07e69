package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/storefront-api/internal/api/middleware"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// AuthHandler implements the session lifecycle endpoints. It composes
// the account service with the cookie transport: login sets the token
// cookie, logout clears it.
type AuthHandler struct {
	service       ports.AccountService
	cookieTTL     time.Duration
	secureCookies bool
}

func NewAuthHandler(service ports.AccountService, cookieTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, cookieTTL: cookieTTL, secureCookies: secureCookies}
}

// Register creates a new account. No credential is issued.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "user registered successfully",
		User:    user,
	})
}

// Login authenticates a user, sets the session cookie, and returns
// the token so header-based clients can carry it themselves.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, int(h.cookieTTL.Seconds())))

	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		User:    user,
		Token:   token,
	})
}

// Logout clears the session cookie. It never fails: the credential is
// self-contained, so disposal is purely a transport concern.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, messageResponse{Message: "logout successful"})
}

// Me returns the account behind the verified credential. Unlike the
// auth gate, this endpoint re-resolves the full account from the
// store, so a deleted account yields 404 even with a valid token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  currentUserResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	user, err := h.service.CurrentUser(c.Request().Context(), ident.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, currentUserResponse{User: user})
}

// sessionCookie builds the token cookie with the attributes used on
// both issuance and disposal: HttpOnly, SameSite=Strict, Secure in
// production-like environments.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
