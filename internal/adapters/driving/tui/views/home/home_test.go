package home

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// MockCatalogService implements driving.CatalogService for testing.
type MockCatalogService struct {
	HomeFunc                func(ctx context.Context) (*domain.HomePage, error)
	RecommendedProductsFunc func(ctx context.Context) []domain.Product
}

func (m *MockCatalogService) Home(ctx context.Context) (*domain.HomePage, error) {
	if m.HomeFunc != nil {
		return m.HomeFunc(ctx)
	}
	return &domain.HomePage{}, nil
}

func (m *MockCatalogService) RecommendedProducts(ctx context.Context) []domain.Product {
	if m.RecommendedProductsFunc != nil {
		return m.RecommendedProductsFunc(ctx)
	}
	return nil
}

func testHome() *domain.HomePage {
	variant := domain.ProductVariant{
		ID:               "gid://shopify/ProductVariant/11",
		Title:            "250g",
		AvailableForSale: true,
		Price:            domain.Money{Amount: "18.0", CurrencyCode: "USD"},
	}
	return &domain.HomePage{
		FeaturedCollection: &domain.Collection{
			ID:     "gid://shopify/Collection/1",
			Title:  "Single Origins",
			Handle: "single-origins",
			Image:  &domain.Image{URL: "https://cdn.example.com/hero.jpg"},
		},
		RecommendedProducts: []domain.Product{
			{
				ID: "gid://shopify/Product/1", Title: "Colombia Huila", Handle: "colombia-huila",
				AvailableForSale: true,
				PriceRange:       domain.PriceRange{MinVariantPrice: variant.Price},
				SelectedVariant:  &variant,
			},
			{
				ID: "gid://shopify/Product/2", Title: "Geisha Reserve", Handle: "geisha-reserve",
				PriceRange: domain.PriceRange{MinVariantPrice: domain.Money{Amount: "60.0", CurrencyCode: "USD"}},
			},
		},
	}
}

func loadedView(t *testing.T) *View {
	t.Helper()
	v := NewView(nil, nil, &MockCatalogService{
		HomeFunc: func(context.Context) (*domain.HomePage, error) {
			home := testHome()
			home.RecommendedProducts = nil
			return home, nil
		},
		RecommendedProductsFunc: func(context.Context) []domain.Product {
			return testHome().RecommendedProducts
		},
	})
	v.SetDimensions(120, 60)
	for _, msg := range collect(v.Init()) {
		v, _ = v.Update(msg)
	}
	return v
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.Nil(t, v.Home())
	assert.False(t, v.Loading())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_Init_Loading(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})
	v.SetDimensions(120, 60)

	cmd := v.Init()

	require.NotNil(t, cmd)
	assert.True(t, v.Loading())
	assert.True(t, v.LoadingProducts())
	assert.Contains(t, v.View(), LoadingMessage)
	assert.Contains(t, v.View(), BestSellers)
	assert.Contains(t, v.View(), LoadingBest)
}

func TestView_Load_NoService(t *testing.T) {
	v := NewView(nil, nil, nil)

	msgs := collect(v.Load())

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs, messages.HomeLoaded{Err: ErrNoCatalogService})
	assert.Contains(t, msgs, messages.RecommendedLoaded{})
}

func TestView_HeroRendersBeforeBestSellers(t *testing.T) {
	release := make(chan struct{})
	v := NewView(nil, nil, &MockCatalogService{
		HomeFunc: func(context.Context) (*domain.HomePage, error) {
			return &domain.HomePage{FeaturedCollection: testHome().FeaturedCollection}, nil
		},
		RecommendedProductsFunc: func(context.Context) []domain.Product {
			<-release
			return testHome().RecommendedProducts
		},
	})
	v.SetDimensions(120, 60)

	batch, ok := v.Init()().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)

	v, _ = v.Update(batch[0]())

	out := v.View()
	assert.Contains(t, out, HeroTitle)
	assert.Contains(t, out, BestSellers)
	assert.Contains(t, out, LoadingBest)
	assert.NotContains(t, out, "Colombia Huila")
	assert.True(t, v.LoadingProducts())

	close(release)
	v, _ = v.Update(batch[1]())

	assert.False(t, v.LoadingProducts())
	assert.Equal(t, 2, v.Products().Count())
	assert.NotContains(t, v.View(), LoadingBest)
	assert.Contains(t, v.View(), "Colombia Huila")
}

func TestView_RecommendedLoaded_Unavailable(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})
	v.SetDimensions(120, 60)
	v.Load()

	v, _ = v.Update(messages.HomeLoaded{Home: testHome()})
	v, cmd := v.Update(messages.RecommendedLoaded{})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, v.Products().Count())
	assert.Contains(t, v.View(), HeroTitle)
	assert.NotContains(t, v.View(), LoadingBest)
}

func TestView_HomeLoaded(t *testing.T) {
	v := loadedView(t)

	assert.False(t, v.Loading())
	require.NotNil(t, v.Home())
	assert.Equal(t, 2, v.Products().Count())

	out := v.View()
	assert.Contains(t, out, HeroTitle)
	assert.Contains(t, out, "Discover our carefully curated")
	assert.Contains(t, out, ShopNow)
	assert.Contains(t, out, SubscribeSave)
	assert.Contains(t, out, "SINGLE ORIGINS")
	assert.Contains(t, out, "Colombia Huila")
	assert.Contains(t, out, "$18.00")
	assert.NotContains(t, out, LoadingMessage)
}

func TestView_HeroHiddenWithoutImage(t *testing.T) {
	home := testHome()
	home.FeaturedCollection.Image = nil
	v := NewView(nil, nil, &MockCatalogService{})
	v.SetDimensions(120, 60)

	v, _ = v.Update(messages.HomeLoaded{Home: home})

	assert.NotContains(t, v.View(), HeroTitle)
	assert.Contains(t, v.View(), BestSellers)
}

func TestView_HomeLoaded_Error(t *testing.T) {
	v := NewView(nil, nil, &MockCatalogService{})
	v.SetDimensions(120, 60)
	loadErr := errors.New("storefront unavailable")

	v, cmd := v.Update(messages.HomeLoaded{Err: loadErr})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ErrorOccurred{Err: loadErr}, cmd())
	assert.Contains(t, v.View(), "storefront unavailable")
}

func TestView_Navigate(t *testing.T) {
	v := loadedView(t)

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, v.Products().Selected())

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Products().Selected())
}

func TestView_Select_OpensProduct(t *testing.T) {
	v := loadedView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.LinkSelected)
	require.True(t, ok)
	assert.Equal(t, "/products/colombia-huila", msg.Link.URL)
	assert.Equal(t, "Colombia Huila", msg.Link.Title)
}

func TestView_AddToCart(t *testing.T) {
	v := loadedView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.AddToCart)
	require.True(t, ok)
	assert.Equal(t, "gid://shopify/ProductVariant/11", msg.Variant.ID)
}

func TestView_AddToCart_SoldOut(t *testing.T) {
	v := loadedView(t)
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.StatusMessage{Text: "Geisha Reserve is sold out"}, cmd())
}
