package domain

import "errors"

var (
	// ErrMissingFields signals client-fixable input: a required field
	// was absent from the request.
	ErrMissingFields = errors.New("all fields are required")

	// ErrEmailTaken signals a registration with an email that already
	// exists (compared case-insensitively).
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password" on login. The two are intentionally indistinguishable
	// to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a credential verifies but the
	// account it names no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrProviderNotConfigured is returned when an external provider
	// call is attempted without its API key configured.
	ErrProviderNotConfigured = errors.New("server configuration issue")
)
