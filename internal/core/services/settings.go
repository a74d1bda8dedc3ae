package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyStoreDomain    = "storefront.domain"
	keyStoreToken     = "storefront.token"
	keyAPIVersion     = "storefront.api_version"
	keyHeaderMenu     = "storefront.header_menu"
	keyFooterMenu     = "storefront.footer_menu"
	keyCacheTTL       = "storefront.cache_ttl_seconds"
	keyAccountShopID  = "account.shop_id"
	keyAccountClient  = "account.client_id"
	keyTheme          = "ui.theme"
	keySearchDebounce = "ui.search_debounce_ms"
	keyPageSize       = "ui.page_size"
)

// Environment overrides for the storefront connection.
//
//nolint:gosec // G101: These are environment variable names.
const (
	EnvStoreDomain     = "COFFEEHUNT_STORE_DOMAIN"
	EnvStorefrontToken = "COFFEEHUNT_STOREFRONT_TOKEN"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storefront: domain.StorefrontSettings{
			StoreDomain: s.getEnvOr(EnvStoreDomain, s.configStore.GetString(keyStoreDomain)),
			AccessToken: s.getEnvOr(EnvStorefrontToken, s.configStore.GetString(keyStoreToken)),
			APIVersion:  s.getString(keyAPIVersion, defaults.Storefront.APIVersion),
			HeaderMenu:  s.getString(keyHeaderMenu, defaults.Storefront.HeaderMenu),
			FooterMenu:  s.getString(keyFooterMenu, defaults.Storefront.FooterMenu),
			CacheTTL:    time.Duration(s.getInt(keyCacheTTL, int(defaults.Storefront.CacheTTL/time.Second))) * time.Second,
		},
		Account: domain.AccountSettings{
			ShopID:   s.configStore.GetString(keyAccountShopID),
			ClientID: s.configStore.GetString(keyAccountClient),
		},
		UI: domain.UISettings{
			Theme:          domain.ThemeName(s.getString(keyTheme, defaults.UI.Theme.String())),
			SearchDebounce: s.getDebounce(defaults.UI.SearchDebounce),
			PageSize:       s.getInt(keyPageSize, defaults.UI.PageSize),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyStoreDomain, settings.Storefront.StoreDomain},
		{keyAPIVersion, settings.Storefront.APIVersion},
		{keyHeaderMenu, settings.Storefront.HeaderMenu},
		{keyFooterMenu, settings.Storefront.FooterMenu},
		{keyCacheTTL, int(settings.Storefront.CacheTTL / time.Second)},
		{keyAccountShopID, settings.Account.ShopID},
		{keyAccountClient, settings.Account.ClientID},
		{keyTheme, settings.UI.Theme.String()},
		{keySearchDebounce, int(settings.UI.SearchDebounce / time.Millisecond)},
		{keyPageSize, settings.UI.PageSize},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	if settings.Storefront.AccessToken != "" {
		if err := s.configStore.Set(keyStoreToken, settings.Storefront.AccessToken); err != nil {
			return fmt.Errorf("save %s: %w", keyStoreToken, err)
		}
	}

	return nil
}

// Set updates a single setting by its config key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyStoreDomain:
		settings.Storefront.StoreDomain = value
	case keyStoreToken:
		settings.Storefront.AccessToken = value
	case keyAPIVersion:
		settings.Storefront.APIVersion = value
	case keyHeaderMenu:
		settings.Storefront.HeaderMenu = value
	case keyFooterMenu:
		settings.Storefront.FooterMenu = value
	case keyCacheTTL:
		n, err := parseNonNegative(key, value)
		if err != nil {
			return err
		}
		settings.Storefront.CacheTTL = time.Duration(n) * time.Second
	case keyAccountShopID:
		settings.Account.ShopID = value
	case keyAccountClient:
		settings.Account.ClientID = value
	case keyTheme:
		settings.UI.Theme = domain.ThemeName(value)
	case keySearchDebounce:
		n, err := parseNonNegative(key, value)
		if err != nil {
			return err
		}
		settings.UI.SearchDebounce = time.Duration(n) * time.Millisecond
	case keyPageSize:
		n, err := parseNonNegative(key, value)
		if err != nil {
			return err
		}
		settings.UI.PageSize = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys lists the settable config keys.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyStoreDomain, keyStoreToken, keyAPIVersion, keyHeaderMenu, keyFooterMenu, keyCacheTTL,
		keyAccountShopID, keyAccountClient, keyTheme, keySearchDebounce, keyPageSize,
	}
	sort.Strings(keys)
	return keys
}

// RequireStorefront returns domain.ErrNotConfigured unless the store can be reached.
func (s *SettingsService) RequireStorefront() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if !settings.Storefront.IsConfigured() {
		return fmt.Errorf("%w: set %s and %s (or %s and %s)", domain.ErrNotConfigured,
			keyStoreDomain, keyStoreToken, EnvStoreDomain, EnvStorefrontToken)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getEnvOr(env, fallback string) string {
	if v, ok := s.lookupEnv(env); ok && v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

// getDebounce distinguishes an explicit zero (disabled) from an unset key.
func (s *SettingsService) getDebounce(defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(keySearchDebounce); !exists {
		return defaultVal
	}
	return time.Duration(s.configStore.GetInt(keySearchDebounce)) * time.Millisecond
}

func parseNonNegative(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}
