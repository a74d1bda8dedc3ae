package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates the storefront connection settings are missing.
	// Commands that reach the Storefront API need a store domain and access token.
	ErrNotConfigured = errors.New("storefront not configured")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// Cart Errors.

	// ErrCartNotFound indicates the session cart no longer exists on the platform.
	ErrCartNotFound = errors.New("cart not found")

	// ErrUserError indicates the platform rejected a cart mutation.
	ErrUserError = errors.New("cart mutation rejected")

	// Authentication Errors.

	// ErrNotLoggedIn indicates no customer token is stored.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrAuthExpired indicates the customer token has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")
)
