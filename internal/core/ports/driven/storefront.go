package driven

import (
	"context"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// StorefrontClient queries the commerce platform's Storefront API.
// Implementations must be safe for concurrent use.
type StorefrontClient interface {
	// Header loads the shop and the header menu by handle.
	Header(ctx context.Context, menuHandle string) (*domain.Header, error)

	// Footer loads the footer menu by handle.
	Footer(ctx context.Context, menuHandle string) (*domain.Footer, error)

	// FeaturedCollection returns the first collection by update date.
	// Returns nil when the shop has no collections.
	FeaturedCollection(ctx context.Context) (*domain.Collection, error)

	// RecommendedProducts returns the most recently updated products.
	RecommendedProducts(ctx context.Context, first int) ([]domain.Product, error)

	// PredictiveSearch returns search-as-you-type suggestions for a term.
	PredictiveSearch(ctx context.Context, term string, limit int) (*domain.PredictiveSearchResponse, error)

	// SearchProducts runs a regular product search, one page at a time.
	SearchProducts(ctx context.Context, term string, page domain.PageRequest) (*domain.ProductConnection, error)

	// Cart loads a cart by id. Returns domain.ErrCartNotFound when it no longer exists.
	Cart(ctx context.Context, cartID string) (*domain.Cart, error)

	// CartCreate creates a cart holding the given lines.
	CartCreate(ctx context.Context, lines []domain.CartLineInput) (*domain.Cart, error)

	// CartLinesAdd adds lines to an existing cart.
	CartLinesAdd(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)

	// CartLinesUpdate changes line quantities.
	CartLinesUpdate(ctx context.Context, cartID string, lines []domain.CartLineUpdateInput) (*domain.Cart, error)

	// CartLinesRemove removes lines from the cart.
	CartLinesRemove(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
}
