package driven

import (
	"context"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// SessionStore persists the shopper session between runs.
type SessionStore interface {
	// CartID returns the stored cart id, or "" when none is stored.
	CartID(ctx context.Context) (string, error)

	// SetCartID stores the cart id. An empty id clears it.
	SetCartID(ctx context.Context, cartID string) error

	// Token returns the stored customer token, or nil when logged out.
	Token(ctx context.Context) (*domain.CustomerToken, error)

	// SetToken stores the customer token. A nil token clears it.
	SetToken(ctx context.Context, token *domain.CustomerToken) error
}
