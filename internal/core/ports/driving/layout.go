package driving

import (
	"context"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// LayoutService loads the page chrome shared by every screen.
type LayoutService interface {
	// Header loads the shop and header menu. Failure fails the layout.
	Header(ctx context.Context) (*domain.Header, error)

	// Footer loads the footer menu. Failures are logged and return nil.
	Footer(ctx context.Context) *domain.Footer

	// HeaderLinks resolves the header menu, falling back to the default menu.
	HeaderLinks(header *domain.Header) []domain.NavLink

	// FooterLinks resolves the footer menu. Returns nil without a menu.
	FooterLinks(header *domain.Header, footer *domain.Footer) []domain.NavLink
}

// CatalogService loads product listings.
type CatalogService interface {
	// Home loads the featured collection of the landing page.
	Home(ctx context.Context) (*domain.HomePage, error)
	// RecommendedProducts loads the best sellers. It returns nil when the
	// load fails.
	RecommendedProducts(ctx context.Context) []domain.Product
}
