package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// Setting defaults.
const (
	DefaultAPIVersion     = "2025-01"
	DefaultHeaderMenu     = "main-menu"
	DefaultFooterMenu     = "footer"
	DefaultSearchDebounce = 350 * time.Millisecond
	DefaultPageSize       = 8
	DefaultCacheTTL       = 5 * time.Minute
)

// ThemeName selects a colour palette for the terminal UI.
type ThemeName string

// Available themes.
const (
	// ThemeCoffee is the brown and light blue storefront palette.
	ThemeCoffee ThemeName = "coffee"

	// ThemeMono uses the terminal's default colours only.
	ThemeMono ThemeName = "mono"
)

// IsValid returns true if the theme is recognised.
func (t ThemeName) IsValid() bool {
	switch t {
	case ThemeCoffee, ThemeMono:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ThemeName) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t ThemeName) Description() string {
	switch t {
	case ThemeCoffee:
		return "Coffee (brown and light blue)"
	case ThemeMono:
		return "Mono (terminal colours)"
	default:
		return unknownDescription
	}
}

// StorefrontSettings configures the connection to the Storefront API.
type StorefrontSettings struct {
	// StoreDomain is the public store domain, e.g. "coffeehunt.myshopify.com".
	StoreDomain string

	// AccessToken is the public Storefront API access token.
	AccessToken string

	// APIVersion is the dated API version, e.g. "2025-01".
	APIVersion string

	// HeaderMenu and FooterMenu are the menu handles to load.
	HeaderMenu string
	FooterMenu string

	// CacheTTL bounds how long layout queries are served from cache.
	CacheTTL time.Duration
}

// Endpoint returns the GraphQL endpoint URL for the configured store.
func (s StorefrontSettings) Endpoint() string {
	domain := strings.TrimSuffix(s.StoreDomain, "/")
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	return fmt.Sprintf("%s/api/%s/graphql.json", domain, s.APIVersion)
}

// IsConfigured returns true if the store can be reached.
func (s StorefrontSettings) IsConfigured() bool {
	return s.StoreDomain != "" && s.AccessToken != ""
}

// AccountSettings configures customer account login.
type AccountSettings struct {
	// ShopID is the numeric shop id used in customer account URLs.
	ShopID string

	// ClientID is the public client id of the customer account application.
	ClientID string
}

// IsConfigured returns true if login is possible.
func (s AccountSettings) IsConfigured() bool {
	return s.ShopID != "" && s.ClientID != ""
}

// UISettings holds terminal presentation preferences.
type UISettings struct {
	Theme ThemeName

	// SearchDebounce delays predictive search after the last keystroke.
	// Zero submits on every keystroke.
	SearchDebounce time.Duration

	// PageSize is the number of products per search results page.
	PageSize int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Storefront StorefrontSettings
	Account    AccountSettings
	UI         UISettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storefront: StorefrontSettings{
			APIVersion: DefaultAPIVersion,
			HeaderMenu: DefaultHeaderMenu,
			FooterMenu: DefaultFooterMenu,
			CacheTTL:   DefaultCacheTTL,
		},
		UI: UISettings{
			Theme:          ThemeCoffee,
			SearchDebounce: DefaultSearchDebounce,
			PageSize:       DefaultPageSize,
		},
	}
}

// Validate checks the settings are usable.
func (s AppSettings) Validate() error {
	if !s.UI.Theme.IsValid() {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, s.UI.Theme)
	}
	if s.UI.SearchDebounce < 0 {
		return fmt.Errorf("%w: search debounce must not be negative", ErrInvalidInput)
	}
	if s.UI.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidInput)
	}
	if s.Storefront.APIVersion == "" {
		return fmt.Errorf("%w: api version is required", ErrInvalidInput)
	}
	return nil
}
