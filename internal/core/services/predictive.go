package services

import "github.com/custodia-labs/coffeehunt-cli/internal/core/domain"

// predictiveResultType tags projected predictive results.
const predictiveResultType = "predictive"

// Project maps a raw predictive search response onto the drawer's view model.
// A nil response yields the empty result: every category present and empty,
// and a total of zero. Nil query suggestions are dropped.
func Project(raw *domain.PredictiveSearchResponse) domain.PredictiveSearchResult {
	result := domain.PredictiveSearchResult{
		Type: predictiveResultType,
		Items: domain.PredictiveSearchItems{
			Products:    []domain.PredictiveProduct{},
			Queries:     []domain.PredictiveQuery{},
			Collections: []domain.PredictiveCollection{},
			Pages:       []domain.PredictivePage{},
			Articles:    []domain.PredictiveArticle{},
		},
	}
	if raw == nil {
		return result
	}

	result.Term = raw.Term
	result.Items.Products = append(result.Items.Products, raw.Products...)
	for _, q := range raw.Queries {
		if q != nil {
			result.Items.Queries = append(result.Items.Queries, *q)
		}
	}
	result.Items.Collections = append(result.Items.Collections, raw.Collections...)
	result.Items.Pages = append(result.Items.Pages, raw.Pages...)
	result.Items.Articles = append(result.Items.Articles, raw.Articles...)

	result.Total = len(result.Items.Products) +
		len(result.Items.Queries) +
		len(result.Items.Collections) +
		len(result.Items.Pages) +
		len(result.Items.Articles)
	return result
}

// DrawerStatus is what the search drawer renders.
type DrawerStatus string

// Search drawer statuses.
const (
	// DrawerLoading shows the placeholder skeleton.
	DrawerLoading DrawerStatus = "loading"

	// DrawerEmptyIdle invites the shopper to start typing.
	DrawerEmptyIdle DrawerStatus = "empty-idle"

	// DrawerEmptyNotFound reports that the query matched nothing.
	DrawerEmptyNotFound DrawerStatus = "empty-not-found"

	// DrawerResults lists the suggestions.
	DrawerResults DrawerStatus = "results"

	// DrawerResultsRefreshing lists the previous suggestions dimmed while a newer request runs.
	DrawerResultsRefreshing DrawerStatus = "results-refreshing"
)

// DrawerStatusFor selects the drawer rendering from the current query,
// the search fetcher state and the projected result.
func DrawerStatusFor(query string, state domain.FetchState, result domain.PredictiveSearchResult) DrawerStatus {
	noProducts := len(result.Items.Products) == 0
	if state == domain.FetchLoading && noProducts {
		return DrawerLoading
	}
	if result.Total == 0 {
		if EmptyStateFor(query) == domain.EmptyNotFound {
			return DrawerEmptyNotFound
		}
		return DrawerEmptyIdle
	}
	if state == domain.FetchLoading {
		return DrawerResultsRefreshing
	}
	return DrawerResults
}

// EmptyStateFor picks the empty placeholder for a query with no results.
func EmptyStateFor(query string) domain.EmptyState {
	if trimTerm(query) == "" {
		return domain.EmptyIdle
	}
	return domain.EmptyNotFound
}
