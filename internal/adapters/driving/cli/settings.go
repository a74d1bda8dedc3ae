package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// secretKeys are masked by settings show and read without echo by settings set.
var secretKeys = map[string]bool{
	"storefront.token": true,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the storefront connection, customer account and display settings.

Settings live in the TOML config file. A running TUI picks up theme and
debounce changes without a restart.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting by its config key, e.g.

  coffeehunt settings set storefront.domain coffeehunt.myshopify.com
  coffeehunt settings set ui.theme mono
  coffeehunt settings set ui.search_debounce_ms 200

When the value of storefront.token is omitted it is read from the terminal
without echo.`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Storefront")
	cmd.Printf("  Domain:      %s\n", orNotSet(settings.Storefront.StoreDomain))
	if settings.Storefront.AccessToken != "" {
		cmd.Printf("  Token:       %s\n", maskToken(settings.Storefront.AccessToken))
	} else {
		cmd.Printf("  Token:       (not set)\n")
	}
	cmd.Printf("  API version: %s\n", settings.Storefront.APIVersion)
	cmd.Printf("  Menus:       %s / %s\n", settings.Storefront.HeaderMenu, settings.Storefront.FooterMenu)
	cmd.Printf("  Cache TTL:   %s\n", settings.Storefront.CacheTTL)
	status := "configured"
	if !settings.Storefront.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status:      %s\n", status)
	cmd.Println()

	cmd.Println("Account")
	cmd.Printf("  Shop ID:     %s\n", orNotSet(settings.Account.ShopID))
	cmd.Printf("  Client ID:   %s\n", orNotSet(settings.Account.ClientID))
	cmd.Println()

	cmd.Println("Display")
	cmd.Printf("  Theme:       %s (%s)\n", settings.UI.Theme, settings.UI.Theme.Description())
	cmd.Printf("  Debounce:    %s\n", settings.UI.SearchDebounce)
	cmd.Printf("  Page size:   %d\n", settings.UI.PageSize)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case secretKeys[key]:
		cmd.Printf("%s: ", key)
		value = readSecret(cmd.InOrStdin())
		cmd.Println()
	default:
		return fmt.Errorf("%w: missing value for %s", domain.ErrInvalidInput, key)
	}

	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) && !isKnownKey(key) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	shown := value
	if secretKeys[key] {
		shown = maskToken(value)
	}
	cmd.Printf("%s = %s\n", key, shown)
	return nil
}

func completeSettingKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || settingsService == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return settingsService.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func isKnownKey(key string) bool {
	for _, k := range settingsService.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(in io.Reader) string {
	// Try to read without echo
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(secret)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
