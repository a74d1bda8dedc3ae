package mcp

import (
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides predictive and regular product search.
	Search driving.SearchService

	// Cart manages the session cart.
	Cart driving.CartService

	// Layout loads the storefront menus.
	Layout driving.LayoutService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Cart and Layout are optional
	return nil
}
