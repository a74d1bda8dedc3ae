package driving

import (
	"context"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// CartService manages the session cart.
type CartService interface {
	// Get returns the session cart, or nil when the session has none.
	Get(ctx context.Context) (*domain.Cart, error)

	// Apply runs a cart mutation and returns the confirmed cart.
	// Adding to a session without a cart creates one.
	Apply(ctx context.Context, mutation domain.CartMutation) (*domain.Cart, error)

	// CheckoutURL returns the platform checkout URL of the session cart.
	CheckoutURL(ctx context.Context) (string, error)
}
