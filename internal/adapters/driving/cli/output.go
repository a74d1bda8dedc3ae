package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// outputWidth returns the terminal width of the command's output.
func outputWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// printLine prints s cut to the output width.
func printLine(cmd *cobra.Command, s string) {
	cmd.Println(lipgloss.NewStyle().MaxWidth(outputWidth(cmd)).Render(s))
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printProduct prints a numbered product card.
func printProduct(cmd *cobra.Command, i int, p *domain.Product) {
	price := p.PriceRange.MinVariantPrice.Format()
	status := ""
	if !p.AvailableForSale {
		status = "  (sold out)"
	}
	printLine(cmd, fmt.Sprintf("  [%d] %s  %s%s", i, p.Title, price, status))

	url := services.ProductURL(p.Handle)
	if p.SelectedVariant != nil {
		url = services.VariantURL(p.Handle, p.SelectedVariant.SelectedOptions)
	}
	printLine(cmd, "      "+url)

	var details []string
	if p.Category != "" {
		details = append(details, strings.ToUpper(p.Category))
	}
	details = append(details, p.Tags...)
	if len(details) > 0 {
		printLine(cmd, "      "+strings.Join(details, " · "))
	}
	if p.SelectedVariant != nil {
		printLine(cmd, "      variant: "+p.SelectedVariant.ID)
	}
	cmd.Println()
}

// printLinks prints navigation links, marking external ones.
func printLinks(cmd *cobra.Command, links []domain.NavLink) {
	if len(links) == 0 {
		cmd.Println("No links.")
		return
	}
	for _, link := range links {
		marker := ""
		if link.External {
			marker = " ↗"
		}
		printLine(cmd, fmt.Sprintf("  %-20s %s%s", link.Title, link.URL, marker))
	}
}
