package mcp

import (
	"context"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	predictive *domain.PredictiveSearchResponse
	page       *domain.SearchResultsPage
	err        error

	gotTerm string
	gotOpts domain.SearchOptions
	gotPage domain.PageRequest
}

func (m *mockSearchService) PredictiveSearch(
	_ context.Context, term string, opts domain.SearchOptions,
) (*domain.PredictiveSearchResponse, error) {
	m.gotTerm, m.gotOpts = term, opts
	return m.predictive, m.err
}

func (m *mockSearchService) Search(
	_ context.Context, term string, page domain.PageRequest,
) (*domain.SearchResultsPage, error) {
	m.gotTerm, m.gotPage = term, page
	if m.page == nil && m.err == nil {
		return &domain.SearchResultsPage{Term: term}, nil
	}
	return m.page, m.err
}

// mockCartService is a mock implementation of driving.CartService.
type mockCartService struct {
	cart *domain.Cart
	err  error

	applied []domain.CartMutation
}

func (m *mockCartService) Get(_ context.Context) (*domain.Cart, error) {
	return m.cart, m.err
}

func (m *mockCartService) Apply(_ context.Context, mutation domain.CartMutation) (*domain.Cart, error) {
	m.applied = append(m.applied, mutation)
	return m.cart, m.err
}

func (m *mockCartService) CheckoutURL(_ context.Context) (string, error) {
	if m.cart == nil {
		return "", m.err
	}
	return m.cart.CheckoutURL, m.err
}

// mockLayoutService is a mock implementation of driving.LayoutService.
type mockLayoutService struct {
	header    *domain.Header
	headerErr error
	footer    *domain.Footer
}

func (m *mockLayoutService) Header(_ context.Context) (*domain.Header, error) {
	return m.header, m.headerErr
}

func (m *mockLayoutService) Footer(_ context.Context) *domain.Footer {
	return m.footer
}

func (m *mockLayoutService) HeaderLinks(header *domain.Header) []domain.NavLink {
	if header == nil || header.Menu == nil {
		return services.NavLinks(domain.FallbackHeaderMenu(), "", "")
	}
	return services.NavLinks(header.Menu, header.Shop.PrimaryDomainURL, "")
}

func (m *mockLayoutService) FooterLinks(header *domain.Header, footer *domain.Footer) []domain.NavLink {
	if header == nil || footer == nil {
		return nil
	}
	return services.NavLinks(footer.Menu, header.Shop.PrimaryDomainURL, "")
}
