package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

var menuJSON bool

var menuCmd = &cobra.Command{
	Use:       "menu [header|footer]",
	Short:     "Show the storefront navigation",
	Long:      `Shows the header menu (the default) or the footer menu. External links are marked with ↗.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"header", "footer"},
	RunE:      runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&menuJSON, "json", false, "output links as JSON")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	if layoutService == nil {
		return notConfigured("layout")
	}

	which := "header"
	if len(args) == 1 {
		which = args[0]
	}

	header, err := layoutService.Header(cmd.Context())
	if which == "footer" {
		if err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
		links := layoutService.FooterLinks(header, layoutService.Footer(cmd.Context()))
		if menuJSON {
			return outputJSON(cmd, links)
		}
		printLinks(cmd, links)
		return nil
	}

	if err != nil {
		logger.Warn("Header unavailable, showing the default menu: %v", err)
		header = nil
	}
	links := layoutService.HeaderLinks(header)
	if menuJSON {
		return outputJSON(cmd, links)
	}
	if header != nil && header.Shop.Name != "" {
		cmd.Println(header.Shop.Name)
	}
	printLinks(cmd, links)
	return nil
}
