//nolint:noctx // Test file uses http.Get for convenience
package oauth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, state string) *CallbackServer {
	t.Helper()
	server := NewCallbackServer(0, state)
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop() })
	return server
}

func callback(t *testing.T, server *CallbackServer, params url.Values) string {
	t.Helper()
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d%s?%s", server.Port(), CallbackPath, params.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	return string(body)
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestCallbackServer_StartPicksPort(t *testing.T) {
	server := startServer(t, "state")

	assert.NotZero(t, server.Port())
	assert.Equal(t, fmt.Sprintf("http://localhost:%d/callback", server.Port()), server.RedirectURI())
}

func TestCallbackServer_Start_PortInUse(t *testing.T) {
	first := startServer(t, "state-1")

	second := NewCallbackServer(first.Port(), "state-2")
	err := second.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestCallbackServer_Stop_NotStarted(t *testing.T) {
	assert.NoError(t, NewCallbackServer(0, "state").Stop())
}

func TestCallbackServer_Success(t *testing.T) {
	server := startServer(t, "expected")

	body := callback(t, server, url.Values{"code": {"auth-code"}, "state": {"expected"}})
	assert.Contains(t, body, "You&#39;re signed in")
	assert.Contains(t, body, "CoffeeHunt")

	code, err := server.WaitForCode(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "auth-code", code)
}

func TestCallbackServer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		params  url.Values
		wantErr string
	}{
		{"state mismatch", url.Values{"code": {"c"}, "state": {"wrong"}}, "state mismatch"},
		{"missing state", url.Values{"code": {"c"}}, "state mismatch"},
		{"missing code", url.Values{"state": {"expected"}}, "no authorization code"},
		{
			"provider error",
			url.Values{"error": {"access_denied"}, "error_description": {"User <cancelled>"}},
			"access_denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := startServer(t, "expected")

			body := callback(t, server, tt.params)
			assert.Contains(t, body, "Sign in failed")
			assert.NotContains(t, body, "<cancelled>", "messages are escaped")

			_, err := server.WaitForCode(waitCtx(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCallbackServer_RepeatedErrorsDoNotBlock(t *testing.T) {
	server := startServer(t, "expected")

	for i := 0; i < 3; i++ {
		callback(t, server, url.Values{"state": {"wrong"}})
	}

	_, err := server.WaitForCode(waitCtx(t))
	assert.Error(t, err)
}

func TestCallbackServer_WaitForCode_Cancelled(t *testing.T) {
	server := startServer(t, "expected")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := server.WaitForCode(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFindAvailablePort(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	taken := l.Addr().(*net.TCPAddr).Port
	defer l.Close()

	_, err = FindAvailablePort(taken, taken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no available port")

	_, err = FindAvailablePort(10, 5)
	assert.Error(t, err, "empty range")
}

func TestReceiver_Receive(t *testing.T) {
	var out bytes.Buffer
	var opened string

	receiver := NewReceiver(&out,
		WithPortRange(18765, 18865),
		WithOpener(func(authURL string) error {
			opened = authURL
			u, err := url.Parse(authURL)
			if err != nil {
				return err
			}
			redirect := u.Query().Get("redirect_uri")
			// Simulate the browser following the redirect after sign in.
			go func() {
				resp, err := http.Get(strings.Replace(redirect, "localhost", "127.0.0.1", 1) + "?code=abc&state=s1")
				if err == nil {
					resp.Body.Close()
				}
			}()
			return nil
		}),
	)

	code, redirectURI, err := receiver.Receive(context.Background(), "s1", func(redirectURI string) string {
		return "https://shopify.com/authentication/1/oauth/authorize?redirect_uri=" + url.QueryEscape(redirectURI)
	})

	require.NoError(t, err)
	assert.Equal(t, "abc", code)
	assert.True(t, strings.HasPrefix(redirectURI, "http://localhost:"))
	assert.Contains(t, opened, url.QueryEscape(redirectURI))
	assert.Contains(t, out.String(), "https://shopify.com/authentication/1/oauth/authorize")
}

func TestReceiver_Timeout(t *testing.T) {
	receiver := NewReceiver(io.Discard,
		WithPortRange(18765, 18865),
		WithTimeout(20*time.Millisecond),
		WithOpener(func(string) error { return fmt.Errorf("no browser") }),
	)

	_, _, err := receiver.Receive(context.Background(), "s1", func(string) string { return "https://x" })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
