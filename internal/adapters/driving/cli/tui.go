package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// tuiLogFile receives logs while the TUI owns the terminal.
const tuiLogFile = "coffeehunt.log"

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive storefront in the terminal.

Controls:
  /        - Search as you type
  c        - Cart
  m        - Menu
  t        - Typography
  ↑/k, ↓/j - Navigate
  Enter    - Select
  a        - Add to cart
  +/-/x    - Change cart quantity / remove
  o        - Checkout
  Esc      - Back / Close
  q        - Quit

With --verbose, logs are written to coffeehunt.log in the data directory.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports, err := tuiPorts()
	if err != nil {
		return err
	}

	closeLog, err := redirectLogs()
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// tuiPorts builds the TUI ports from the configured services.
func tuiPorts() (*tui.Ports, error) {
	if searchService == nil || cartService == nil || layoutService == nil || catalogService == nil {
		return nil, notConfigured("storefront")
	}

	ports := tui.NewPorts(searchService, cartService, layoutService, catalogService)
	ports.Account = accountService
	ports.Settings = settingsService
	ports.ConfigWatcher = configWatcher
	ports.OpenURL = openURL
	return ports, nil
}

// redirectLogs keeps log lines off the TUI: discarded normally, written to
// a file when verbose.
func redirectLogs() (func(), error) {
	if !logger.IsVerbose() {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	dir := DefaultDataDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, tuiLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close() //nolint:errcheck
	}, nil
}
