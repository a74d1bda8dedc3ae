package driving

import (
	"context"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// SearchService provides storefront search to external actors.
type SearchService interface {
	// PredictiveSearch returns the raw suggestions for a partially typed term.
	// An empty term returns an empty response without reaching the API.
	PredictiveSearch(ctx context.Context, term string, opts domain.SearchOptions) (*domain.PredictiveSearchResponse, error)

	// Search runs a regular product search, one page at a time.
	Search(ctx context.Context, term string, page domain.PageRequest) (*domain.SearchResultsPage, error)
}
