package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Ensure AccountService implements the interface.
var _ driving.AccountService = (*AccountService)(nil)

// customerAccountScopes are requested from the customer account API.
var customerAccountScopes = []string{"openid", "email", "customer-account-api:full"}

// CustomerAccountEndpoint returns the OAuth endpoints for a shop id.
func CustomerAccountEndpoint(shopID string) oauth2.Endpoint {
	base := "https://shopify.com/authentication/" + shopID + "/oauth"
	return oauth2.Endpoint{
		AuthURL:   base + "/authorize",
		TokenURL:  base + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// AccountService manages customer login.
type AccountService struct {
	session  driven.SessionStore
	receiver driven.AuthCodeReceiver
	config   oauth2.Config
	now      func() time.Time
}

// NewAccountService creates a new account service.
// The receiver may be nil when login is not available (e.g. MCP server).
func NewAccountService(
	session driven.SessionStore,
	receiver driven.AuthCodeReceiver,
	settings domain.AccountSettings,
) *AccountService {
	return &AccountService{
		session:  session,
		receiver: receiver,
		config: oauth2.Config{
			ClientID: settings.ClientID,
			Endpoint: CustomerAccountEndpoint(settings.ShopID),
			Scopes:   customerAccountScopes,
		},
		now: time.Now,
	}
}

// SetEndpoint overrides the OAuth endpoints.
func (s *AccountService) SetEndpoint(endpoint oauth2.Endpoint) {
	s.config.Endpoint = endpoint
}

// IsLoggedIn reports whether a usable customer token is stored.
// Expired tokens are refreshed when a refresh token is available.
func (s *AccountService) IsLoggedIn(ctx context.Context) bool {
	token, err := s.session.Token(ctx)
	if err != nil {
		logger.Warn("Read customer token: %v", err)
		return false
	}
	if token == nil || token.AccessToken == "" {
		return false
	}
	if !token.IsExpired(s.now()) {
		return true
	}
	if token.RefreshToken == "" {
		logger.Debug("Customer token expired without refresh token")
		return false
	}

	refreshed, err := s.refresh(ctx, token)
	if err != nil {
		logger.Warn("Refresh customer token: %v", err)
		return false
	}
	if err := s.session.SetToken(ctx, refreshed); err != nil {
		logger.Warn("Store refreshed customer token: %v", err)
	}
	return true
}

// Login runs the authorization code flow with PKCE and stores the token.
func (s *AccountService) Login(ctx context.Context) error {
	if s.receiver == nil {
		return errors.New("login is not available in this mode")
	}
	if s.config.ClientID == "" {
		return fmt.Errorf("%w: account client id is not set", domain.ErrNotConfigured)
	}

	verifier, err := generateCodeVerifier()
	if err != nil {
		return fmt.Errorf("generate code verifier: %w", err)
	}
	state, err := generateState()
	if err != nil {
		return fmt.Errorf("generate state: %w", err)
	}
	nonce, err := generateState()
	if err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	cfg := s.config
	code, redirectURI, err := s.receiver.Receive(ctx, state, func(redirectURI string) string {
		c := cfg
		c.RedirectURL = redirectURI
		return c.AuthCodeURL(state,
			oauth2.SetAuthURLParam("code_challenge", generateCodeChallenge(verifier)),
			oauth2.SetAuthURLParam("code_challenge_method", "S256"),
			oauth2.SetAuthURLParam("nonce", nonce),
		)
	})
	if err != nil {
		return fmt.Errorf("authorize: %w", err)
	}

	cfg.RedirectURL = redirectURI
	token, err := cfg.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}

	if err := s.session.SetToken(ctx, fromOAuth2Token(token)); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	logger.Info("Customer logged in")
	return nil
}

// Logout clears the stored token.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.session.SetToken(ctx, nil); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *AccountService) refresh(ctx context.Context, token *domain.CustomerToken) (*domain.CustomerToken, error) {
	src := s.config.TokenSource(ctx, &oauth2.Token{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	})
	fresh, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthExpired, err)
	}
	out := fromOAuth2Token(fresh)
	if out.RefreshToken == "" {
		out.RefreshToken = token.RefreshToken
	}
	if out.IDToken == "" {
		out.IDToken = token.IDToken
	}
	return out, nil
}

func fromOAuth2Token(t *oauth2.Token) *domain.CustomerToken {
	out := &domain.CustomerToken{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
	}
	if id, ok := t.Extra("id_token").(string); ok {
		out.IDToken = id
	}
	return out
}
