package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs storefront searches.
type SearchService struct {
	client   driven.StorefrontClient
	pageSize int
}

// NewSearchService creates a new search service.
// A pageSize of zero uses domain.DefaultPageSize.
func NewSearchService(client driven.StorefrontClient, pageSize int) *SearchService {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &SearchService{
		client:   client,
		pageSize: pageSize,
	}
}

// PredictiveSearch returns the raw suggestions for a partially typed term.
func (s *SearchService) PredictiveSearch(
	ctx context.Context, term string, opts domain.SearchOptions,
) (*domain.PredictiveSearchResponse, error) {
	logger.Section("Predictive Search")
	logger.Debug("Params: %v", opts.SearchParams(term))

	term = trimTerm(term)
	if term == "" {
		logger.Debug("Empty term, returning no results")
		return &domain.PredictiveSearchResponse{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.PredictiveSearchLimit
	}

	raw, err := s.client.PredictiveSearch(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("predictive search %q: %w", term, err)
	}
	if raw != nil && raw.Term == "" {
		raw.Term = term
	}
	logger.Debug("Predictive search %q returned %d products", term, productCount(raw))
	return raw, nil
}

// Search runs a regular product search, one page at a time.
func (s *SearchService) Search(
	ctx context.Context, term string, page domain.PageRequest,
) (*domain.SearchResultsPage, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", term)

	term = trimTerm(term)
	result := &domain.SearchResultsPage{Term: term}
	if term == "" {
		logger.Debug("Empty query, returning no results")
		result.Products.Nodes = []domain.Product{}
		return result, nil
	}
	if page.After != "" && page.Before != "" {
		return nil, fmt.Errorf("%w: only one of after and before may be set", domain.ErrInvalidInput)
	}
	if page.First <= 0 {
		page.First = s.pageSize
	}

	conn, err := s.client.SearchProducts(ctx, term, page)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	result.Products = *conn
	logger.Debug("Search %q returned %d products (next page: %v)", term, len(conn.Nodes), conn.PageInfo.HasNextPage)
	return result, nil
}

func trimTerm(term string) string {
	return strings.TrimSpace(term)
}

func productCount(raw *domain.PredictiveSearchResponse) int {
	if raw == nil {
		return 0
	}
	return len(raw.Products)
}
