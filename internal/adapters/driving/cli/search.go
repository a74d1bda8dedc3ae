package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

var (
	searchLimit      int
	searchJSON       bool
	searchPredictive bool
	searchAfter      string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the storefront",
	Long: `Searches the storefront's products.

With --predictive, shows the search-as-you-type suggestions instead: matching
queries, products, collections, pages and articles.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default: 5 predictive, ui.page_size otherwise)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVarP(&searchPredictive, "predictive", "p", false, "show predictive suggestions")
	searchCmd.Flags().StringVar(&searchAfter, "after", "", "cursor of the previous page's last product")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return notConfigured("search")
	}

	if searchPredictive {
		return runPredictiveSearch(cmd, query)
	}

	page, err := searchService.Search(cmd.Context(), query, domain.PageRequest{
		First: searchLimit,
		After: searchAfter,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, page)
	}
	return outputSearchPage(cmd, page)
}

func outputSearchPage(cmd *cobra.Command, page *domain.SearchResultsPage) error {
	if len(page.Products.Nodes) == 0 {
		cmd.Println("No results, try a different search.")
		return nil
	}

	cmd.Printf("Results for %q:\n", page.Term)
	cmd.Println()
	for i := range page.Products.Nodes {
		printProduct(cmd, i+1, &page.Products.Nodes[i])
	}

	if page.Products.PageInfo.HasNextPage {
		cmd.Printf("More results: coffeehunt search %q --after %s\n", page.Term, page.Products.PageInfo.EndCursor)
	}
	return nil
}

func runPredictiveSearch(cmd *cobra.Command, query string) error {
	raw, err := searchService.PredictiveSearch(cmd.Context(), query, domain.SearchOptions{
		Limit:      searchLimit,
		Predictive: true,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	result := services.Project(raw)
	if searchJSON {
		return outputJSON(cmd, result)
	}
	return outputPredictive(cmd, query, result)
}

func outputPredictive(cmd *cobra.Command, query string, result domain.PredictiveSearchResult) error {
	if result.Total == 0 {
		if strings.TrimSpace(query) == "" {
			cmd.Println("Start typing to search.")
			return nil
		}
		cmd.Printf("No results found for %q\n", query)
		return nil
	}

	term := result.Term
	if len(result.Items.Queries) > 0 {
		cmd.Println("Suggestions:")
		for _, q := range result.Items.Queries {
			printLine(cmd, "  "+q.Text+"  "+services.SearchURL(q.Text))
		}
		cmd.Println()
	}
	if len(result.Items.Products) > 0 {
		cmd.Println("Products:")
		for _, p := range result.Items.Products {
			price := ""
			if p.Price != nil {
				price = "  " + p.Price.Format()
			}
			printLine(cmd, "  "+p.Title+price)
			printLine(cmd, "      "+services.URLWithTrackingParams(services.ProductURL(p.Handle), p.TrackingParams, term))
		}
		cmd.Println()
	}
	if len(result.Items.Collections) > 0 {
		cmd.Println("Collections:")
		for _, c := range result.Items.Collections {
			printLine(cmd, "  "+c.Title+"  "+services.URLWithTrackingParams("/collections/"+c.Handle, c.TrackingParams, term))
		}
		cmd.Println()
	}
	if len(result.Items.Pages) > 0 {
		cmd.Println("Pages:")
		for _, p := range result.Items.Pages {
			printLine(cmd, "  "+p.Title+"  "+services.URLWithTrackingParams("/pages/"+p.Handle, p.TrackingParams, term))
		}
		cmd.Println()
	}
	if len(result.Items.Articles) > 0 {
		cmd.Println("Articles:")
		for _, a := range result.Items.Articles {
			url := "/blogs/" + a.BlogHandle + "/" + a.Handle
			printLine(cmd, "  "+a.Title+"  "+services.URLWithTrackingParams(url, a.TrackingParams, term))
		}
		cmd.Println()
	}

	cmd.Printf("View all results: %s\n", services.SearchURL(query))
	return nil
}
