package driving

import "context"

// AccountService manages customer login.
type AccountService interface {
	// IsLoggedIn reports whether a usable customer token is stored.
	// Errors are logged and reported as logged out.
	IsLoggedIn(ctx context.Context) bool

	// Login runs the browser authorization flow and stores the token.
	Login(ctx context.Context) error

	// Logout clears the stored token.
	Logout(ctx context.Context) error
}
