package services

import (
	"context"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
)

// mockStorefront implements driven.StorefrontClient for testing.
// Unset funcs return zero values.
type mockStorefront struct {
	HeaderFunc              func(ctx context.Context, menuHandle string) (*domain.Header, error)
	FooterFunc              func(ctx context.Context, menuHandle string) (*domain.Footer, error)
	FeaturedCollectionFunc  func(ctx context.Context) (*domain.Collection, error)
	RecommendedProductsFunc func(ctx context.Context, first int) ([]domain.Product, error)
	PredictiveSearchFunc    func(ctx context.Context, term string, limit int) (*domain.PredictiveSearchResponse, error)
	SearchProductsFunc      func(ctx context.Context, term string, page domain.PageRequest) (*domain.ProductConnection, error)
	CartFunc                func(ctx context.Context, cartID string) (*domain.Cart, error)
	CartCreateFunc          func(ctx context.Context, lines []domain.CartLineInput) (*domain.Cart, error)
	CartLinesAddFunc        func(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)
	CartLinesUpdateFunc     func(ctx context.Context, cartID string, lines []domain.CartLineUpdateInput) (*domain.Cart, error)
	CartLinesRemoveFunc     func(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
}

var _ driven.StorefrontClient = (*mockStorefront)(nil)

func (m *mockStorefront) Header(ctx context.Context, menuHandle string) (*domain.Header, error) {
	if m.HeaderFunc != nil {
		return m.HeaderFunc(ctx, menuHandle)
	}
	return &domain.Header{}, nil
}

func (m *mockStorefront) Footer(ctx context.Context, menuHandle string) (*domain.Footer, error) {
	if m.FooterFunc != nil {
		return m.FooterFunc(ctx, menuHandle)
	}
	return &domain.Footer{}, nil
}

func (m *mockStorefront) FeaturedCollection(ctx context.Context) (*domain.Collection, error) {
	if m.FeaturedCollectionFunc != nil {
		return m.FeaturedCollectionFunc(ctx)
	}
	return nil, nil
}

func (m *mockStorefront) RecommendedProducts(ctx context.Context, first int) ([]domain.Product, error) {
	if m.RecommendedProductsFunc != nil {
		return m.RecommendedProductsFunc(ctx, first)
	}
	return nil, nil
}

func (m *mockStorefront) PredictiveSearch(
	ctx context.Context, term string, limit int,
) (*domain.PredictiveSearchResponse, error) {
	if m.PredictiveSearchFunc != nil {
		return m.PredictiveSearchFunc(ctx, term, limit)
	}
	return &domain.PredictiveSearchResponse{}, nil
}

func (m *mockStorefront) SearchProducts(
	ctx context.Context, term string, page domain.PageRequest,
) (*domain.ProductConnection, error) {
	if m.SearchProductsFunc != nil {
		return m.SearchProductsFunc(ctx, term, page)
	}
	return &domain.ProductConnection{}, nil
}

func (m *mockStorefront) Cart(ctx context.Context, cartID string) (*domain.Cart, error) {
	if m.CartFunc != nil {
		return m.CartFunc(ctx, cartID)
	}
	return nil, domain.ErrCartNotFound
}

func (m *mockStorefront) CartCreate(ctx context.Context, lines []domain.CartLineInput) (*domain.Cart, error) {
	if m.CartCreateFunc != nil {
		return m.CartCreateFunc(ctx, lines)
	}
	return &domain.Cart{ID: "new-cart"}, nil
}

func (m *mockStorefront) CartLinesAdd(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (*domain.Cart, error) {
	if m.CartLinesAddFunc != nil {
		return m.CartLinesAddFunc(ctx, cartID, lines)
	}
	return &domain.Cart{ID: cartID}, nil
}

func (m *mockStorefront) CartLinesUpdate(
	ctx context.Context, cartID string, lines []domain.CartLineUpdateInput,
) (*domain.Cart, error) {
	if m.CartLinesUpdateFunc != nil {
		return m.CartLinesUpdateFunc(ctx, cartID, lines)
	}
	return &domain.Cart{ID: cartID}, nil
}

func (m *mockStorefront) CartLinesRemove(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	if m.CartLinesRemoveFunc != nil {
		return m.CartLinesRemoveFunc(ctx, cartID, lineIDs)
	}
	return &domain.Cart{ID: cartID}, nil
}

// failingSession implements driven.SessionStore and fails every call.
type failingSession struct {
	err error
}

func (f failingSession) CartID(context.Context) (string, error)  { return "", f.err }
func (f failingSession) SetCartID(context.Context, string) error { return f.err }
func (f failingSession) Token(context.Context) (*domain.CustomerToken, error) {
	return nil, f.err
}
func (f failingSession) SetToken(context.Context, *domain.CustomerToken) error { return f.err }
