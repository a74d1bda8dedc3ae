package driven

import "context"

// AuthCodeReceiver obtains an OAuth authorization code through a browser redirect.
type AuthCodeReceiver interface {
	// Receive listens for the redirect, opens the URL returned by authURL for
	// the chosen redirect URI and waits for the code. The state parameter of
	// the redirect must equal state.
	Receive(ctx context.Context, state string, authURL func(redirectURI string) string) (code, redirectURI string, err error)
}
