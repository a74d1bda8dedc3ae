// Package cli provides the cobra command tree for coffeehunt.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	dataDir   string
	ephemeral bool
)

// Services used by the commands. Storefront-backed services stay nil until
// the store is configured.
var (
	searchService   driving.SearchService
	cartService     driving.CartService
	layoutService   driving.LayoutService
	catalogService  driving.CatalogService
	accountService  driving.AccountService
	settingsService driving.SettingsService
	configWatcher   driven.ConfigWatcher
	openURL         func(url string) error
	metricsGatherer prometheus.Gatherer
	closeServices   func() error
)

// Options carries the global flags to the Builder.
type Options struct {
	Verbose   bool
	ConfigDir string
	DataDir   string
	Ephemeral bool
}

// Services holds the dependencies built for a command run.
type Services struct {
	Search        driving.SearchService
	Cart          driving.CartService
	Layout        driving.LayoutService
	Catalog       driving.CatalogService
	Account       driving.AccountService
	Settings      driving.SettingsService
	ConfigWatcher driven.ConfigWatcher
	OpenURL       func(url string) error
	Gatherer      prometheus.Gatherer

	// Close releases resources such as the session database.
	Close func() error
}

// Builder wires Services from the global flags.
type Builder func(opts Options) (*Services, error)

var builder Builder

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "coffeehunt",
	Short: "CoffeeHunt - a terminal coffee storefront",
	Long: `CoffeeHunt browses a coffee shop's storefront from the terminal.

Search the catalogue as you type, manage your cart and open checkout in the
browser. Run "coffeehunt tui" for the interactive interface.

The store is configured in ~/.coffeehunt/config.toml:
  coffeehunt settings set storefront.domain coffeehunt.myshopify.com
  coffeehunt settings set storefront.token <storefront access token>`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		defer logger.Sync() //nolint:errcheck // stderr sync fails on terminals
		if closeServices == nil {
			return nil
		}
		err := closeServices()
		closeServices = nil
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.coffeehunt)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "session data directory (default ~/.coffeehunt/data)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the session in memory only")
}

// setup configures logging and builds the services for the command.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if builder == nil || cmd == versionCmd {
		return nil
	}

	services, err := builder(Options{
		Verbose:   verbose,
		ConfigDir: configDir,
		DataDir:   dataDir,
		Ephemeral: ephemeral,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

// SetBuilder sets the function that wires services before a command runs.
func SetBuilder(b Builder) {
	builder = b
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	searchService = s.Search
	cartService = s.Cart
	layoutService = s.Layout
	catalogService = s.Catalog
	accountService = s.Account
	settingsService = s.Settings
	configWatcher = s.ConfigWatcher
	openURL = s.OpenURL
	metricsGatherer = s.Gatherer
	closeServices = s.Close
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// notConfigured explains why a storefront service is missing.
func notConfigured(name string) error {
	if settingsService != nil {
		if err := settingsService.RequireStorefront(); err != nil {
			return err
		}
	}
	return fmt.Errorf("%s service not configured", name)
}

// DefaultDataDir returns ~/.coffeehunt/data, or the data-dir flag when set.
func DefaultDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "coffeehunt")
	}
	return filepath.Join(home, ".coffeehunt", "data")
}
