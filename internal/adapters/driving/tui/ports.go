// Package tui provides an interactive terminal storefront for coffeehunt.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides predictive and paginated product search.
	Search driving.SearchService

	// Cart manages the session cart.
	Cart driving.CartService

	// Layout loads the header and footer.
	Layout driving.LayoutService

	// Catalog loads the home page.
	Catalog driving.CatalogService

	// Account reports the login state shown in the header. Optional.
	Account driving.AccountService

	// Settings provides the UI preferences. Optional; defaults apply without it.
	Settings driving.SettingsService

	// ConfigWatcher reloads UI preferences when the config file changes. Optional.
	ConfigWatcher driven.ConfigWatcher

	// OpenURL opens checkout and storefront links in the browser. Optional.
	OpenURL func(url string) error
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	search driving.SearchService,
	cart driving.CartService,
	layout driving.LayoutService,
	catalog driving.CatalogService,
) *Ports {
	return &Ports{
		Search:  search,
		Cart:    cart,
		Layout:  layout,
		Catalog: catalog,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Cart == nil {
		return ErrMissingCartService
	}
	if p.Layout == nil {
		return ErrMissingLayoutService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
