package oauth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Ensure Receiver implements the interface.
var _ driven.AuthCodeReceiver = (*Receiver)(nil)

// Loopback ports tried for the redirect. The customer account application
// must list http://localhost:<port>/callback for each of them.
const (
	DefaultPortStart = 8765
	DefaultPortEnd   = 8775

	// DefaultTimeout bounds how long the user has to finish signing in.
	DefaultTimeout = 5 * time.Minute
)

// Receiver runs the browser part of the authorization code flow.
type Receiver struct {
	portStart, portEnd int
	timeout            time.Duration
	open               func(url string) error
	out                io.Writer
}

// ReceiverOption configures a Receiver.
type ReceiverOption func(*Receiver)

// WithPortRange sets the loopback ports to try.
func WithPortRange(start, end int) ReceiverOption {
	return func(r *Receiver) {
		r.portStart, r.portEnd = start, end
	}
}

// WithTimeout sets how long to wait for the redirect.
func WithTimeout(d time.Duration) ReceiverOption {
	return func(r *Receiver) {
		r.timeout = d
	}
}

// WithOpener replaces the browser opener.
func WithOpener(open func(url string) error) ReceiverOption {
	return func(r *Receiver) {
		r.open = open
	}
}

// NewReceiver creates a receiver that prints the sign-in URL to out and
// tries to open it in the default browser.
func NewReceiver(out io.Writer, opts ...ReceiverOption) *Receiver {
	r := &Receiver{
		portStart: DefaultPortStart,
		portEnd:   DefaultPortEnd,
		timeout:   DefaultTimeout,
		open:      OpenBrowser,
		out:       out,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Receive starts the callback server, sends the user to the authorization
// URL and waits for the redirect.
func (r *Receiver) Receive(
	ctx context.Context, state string, authURL func(redirectURI string) string,
) (string, string, error) {
	port, err := FindAvailablePort(r.portStart, r.portEnd)
	if err != nil {
		return "", "", err
	}

	server := NewCallbackServer(port, state)
	if err := server.Start(); err != nil {
		return "", "", err
	}
	defer func() {
		if err := server.Stop(); err != nil {
			logger.Warn("stop callback server: %v", err)
		}
	}()

	redirectURI := server.RedirectURI()
	url := authURL(redirectURI)

	fmt.Fprintf(r.out, "Opening your browser to sign in. If it does not open, visit:\n\n  %s\n\n", url)
	if err := r.open(url); err != nil {
		logger.Warn("open browser: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	code, err := server.WaitForCode(ctx)
	if err != nil {
		return "", "", err
	}
	return code, redirectURI, nil
}
