package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Ensure CartService implements the interface.
var _ driving.CartService = (*CartService)(nil)

// CartService manages the session cart.
type CartService struct {
	client  driven.StorefrontClient
	session driven.SessionStore
}

// NewCartService creates a new cart service.
func NewCartService(client driven.StorefrontClient, session driven.SessionStore) *CartService {
	return &CartService{
		client:  client,
		session: session,
	}
}

// Get returns the session cart, or nil when the session has none.
// A stored id for a cart that no longer exists is cleared.
func (s *CartService) Get(ctx context.Context) (*domain.Cart, error) {
	cartID, err := s.session.CartID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cart id: %w", err)
	}
	if cartID == "" {
		return nil, nil
	}

	cart, err := s.client.Cart(ctx, cartID)
	if errors.Is(err, domain.ErrCartNotFound) {
		logger.Warn("Cart %s no longer exists, clearing session", cartID)
		if clearErr := s.session.SetCartID(ctx, ""); clearErr != nil {
			return nil, fmt.Errorf("clear cart id: %w", clearErr)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}

// Apply runs a cart mutation and returns the confirmed cart.
func (s *CartService) Apply(ctx context.Context, mutation domain.CartMutation) (*domain.Cart, error) {
	if err := mutation.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Cart %s (key %s)", mutation.Action, mutation.Key())

	cartID, err := s.session.CartID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cart id: %w", err)
	}

	var cart *domain.Cart
	switch mutation.Action {
	case domain.CartLinesAdd:
		if cartID == "" {
			cart, err = s.client.CartCreate(ctx, mutation.Add)
			if err == nil && cart != nil {
				logger.Info("Created cart %s", cart.ID)
				if err := s.session.SetCartID(ctx, cart.ID); err != nil {
					return nil, fmt.Errorf("store cart id: %w", err)
				}
			}
		} else {
			cart, err = s.client.CartLinesAdd(ctx, cartID, mutation.Add)
		}
	case domain.CartLinesUpdate:
		if cartID == "" {
			return nil, domain.ErrCartNotFound
		}
		cart, err = s.client.CartLinesUpdate(ctx, cartID, mutation.Update)
	case domain.CartLinesRemove:
		if cartID == "" {
			return nil, domain.ErrCartNotFound
		}
		cart, err = s.client.CartLinesRemove(ctx, cartID, mutation.LineIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("cart %s: %w", mutation.Action, err)
	}
	return cart, nil
}

// CheckoutURL returns the platform checkout URL of the session cart.
func (s *CartService) CheckoutURL(ctx context.Context) (string, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	if cart == nil || cart.CheckoutURL == "" {
		return "", domain.ErrCartNotFound
	}
	return cart.CheckoutURL, nil
}
