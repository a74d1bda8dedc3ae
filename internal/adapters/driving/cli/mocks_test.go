package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

// MockSearchService implements driving.SearchService for CLI tests.
type MockSearchService struct {
	PredictiveSearchFunc func(
		ctx context.Context, term string, opts domain.SearchOptions,
	) (*domain.PredictiveSearchResponse, error)
	SearchFunc func(ctx context.Context, term string, page domain.PageRequest) (*domain.SearchResultsPage, error)
}

func (m *MockSearchService) PredictiveSearch(
	ctx context.Context, term string, opts domain.SearchOptions,
) (*domain.PredictiveSearchResponse, error) {
	if m.PredictiveSearchFunc != nil {
		return m.PredictiveSearchFunc(ctx, term, opts)
	}
	return &domain.PredictiveSearchResponse{Term: term}, nil
}

func (m *MockSearchService) Search(
	ctx context.Context, term string, page domain.PageRequest,
) (*domain.SearchResultsPage, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, page)
	}
	return &domain.SearchResultsPage{
		Term: term,
		Products: domain.ProductConnection{Nodes: []domain.Product{{
			ID:               "gid://shopify/Product/1",
			Title:            "Kenya AA",
			Handle:           "kenya-aa",
			AvailableForSale: true,
			PriceRange: domain.PriceRange{
				MinVariantPrice: domain.Money{Amount: "21.5", CurrencyCode: "USD"},
			},
		}}},
	}, nil
}

// MockCartService implements driving.CartService for CLI tests.
type MockCartService struct {
	GetFunc         func(ctx context.Context) (*domain.Cart, error)
	ApplyFunc       func(ctx context.Context, mutation domain.CartMutation) (*domain.Cart, error)
	CheckoutURLFunc func(ctx context.Context) (string, error)
}

func (m *MockCartService) Get(ctx context.Context) (*domain.Cart, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *MockCartService) Apply(ctx context.Context, mutation domain.CartMutation) (*domain.Cart, error) {
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, mutation)
	}
	return nil, nil
}

func (m *MockCartService) CheckoutURL(ctx context.Context) (string, error) {
	if m.CheckoutURLFunc != nil {
		return m.CheckoutURLFunc(ctx)
	}
	return "", domain.ErrCartNotFound
}

// MockLayoutService implements driving.LayoutService for CLI tests.
type MockLayoutService struct {
	HeaderFunc func(ctx context.Context) (*domain.Header, error)
	FooterFunc func(ctx context.Context) *domain.Footer
}

func (m *MockLayoutService) Header(ctx context.Context) (*domain.Header, error) {
	if m.HeaderFunc != nil {
		return m.HeaderFunc(ctx)
	}
	return &domain.Header{}, nil
}

func (m *MockLayoutService) Footer(ctx context.Context) *domain.Footer {
	if m.FooterFunc != nil {
		return m.FooterFunc(ctx)
	}
	return nil
}

func (m *MockLayoutService) HeaderLinks(header *domain.Header) []domain.NavLink {
	if header == nil || header.Menu == nil {
		return services.NavLinks(domain.FallbackHeaderMenu(), "", "")
	}
	return services.NavLinks(header.Menu, header.Shop.PrimaryDomainURL, "")
}

func (m *MockLayoutService) FooterLinks(header *domain.Header, footer *domain.Footer) []domain.NavLink {
	if header == nil || footer == nil {
		return nil
	}
	return services.NavLinks(footer.Menu, header.Shop.PrimaryDomainURL, "")
}

// MockCatalogService implements driving.CatalogService for CLI tests.
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

// MockAccountService implements driving.AccountService for CLI tests.
type MockAccountService struct {
	LoggedIn   bool
	LoginFunc  func(ctx context.Context) error
	LogoutFunc func(ctx context.Context) error
}

func (m *MockAccountService) IsLoggedIn(_ context.Context) bool { return m.LoggedIn }

func (m *MockAccountService) Login(ctx context.Context) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx)
	}
	m.LoggedIn = true
	return nil
}

func (m *MockAccountService) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	m.LoggedIn = false
	return nil
}

// MockSettingsService implements driving.SettingsService for CLI tests.
type MockSettingsService struct {
	GetFunc               func() (*domain.AppSettings, error)
	SetFunc               func(key, value string) error
	RequireStorefrontFunc func() error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	s := domain.DefaultAppSettings()
	return &s, nil
}

func (m *MockSettingsService) Save(_ *domain.AppSettings) error { return nil }

func (m *MockSettingsService) Set(key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	return nil
}

func (m *MockSettingsService) Keys() []string {
	return []string{"storefront.domain", "storefront.token", "ui.theme"}
}

func (m *MockSettingsService) RequireStorefront() error {
	if m.RequireStorefrontFunc != nil {
		return m.RequireStorefrontFunc()
	}
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	Search   *MockSearchService
	Cart     *MockCartService
	Layout   *MockLayoutService
	Catalog  *MockCatalogService
	Account  *MockAccountService
	Settings *MockSettingsService
	Opened   []string
}

// setupTestServices installs mock services and returns a cleanup function.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		Search:   &MockSearchService{},
		Cart:     &MockCartService{},
		Layout:   &MockLayoutService{},
		Catalog:  &MockCatalogService{},
		Account:  &MockAccountService{},
		Settings: &MockSettingsService{},
	}
	SetServices(&Services{
		Search:   ts.Search,
		Cart:     ts.Cart,
		Layout:   ts.Layout,
		Catalog:  ts.Catalog,
		Account:  ts.Account,
		Settings: ts.Settings,
		OpenURL: func(url string) error {
			ts.Opened = append(ts.Opened, url)
			return nil
		},
	})
	return ts, func() { SetServices(nil) }
}

// executeCommand runs the root command with args and returns its output.
// Flag variables are reset first since cobra keeps them between runs.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	verbose, configDir, dataDir, ephemeral = false, "", "", false
	searchLimit, searchJSON, searchPredictive, searchAfter = 0, false, false, ""
	cartJSON, cartQuantity = false, 1
	menuJSON, productsJSON = false, false
	mcpHTTPAddr = ""
}
