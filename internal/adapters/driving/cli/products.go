package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

var productsJSON bool

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Show the featured collection and best sellers",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

func init() {
	productsCmd.Flags().BoolVar(&productsJSON, "json", false, "output the home page as JSON")
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return notConfigured("catalog")
	}

	var (
		home        *domain.HomePage
		recommended []domain.Product
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		home, err = catalogService.Home(ctx)
		return err
	})
	g.Go(func() error {
		recommended = catalogService.RecommendedProducts(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	home.RecommendedProducts = recommended

	if productsJSON {
		return outputJSON(cmd, home)
	}

	if c := home.FeaturedCollection; c != nil {
		cmd.Printf("Featured: %s  /collections/%s\n", c.Title, c.Handle)
		cmd.Println()
	}

	cmd.Println("Best sellers")
	cmd.Println()
	if len(home.RecommendedProducts) == 0 {
		cmd.Println("No products to show.")
		return nil
	}
	for i := range home.RecommendedProducts {
		printProduct(cmd, i+1, &home.RecommendedProducts[i])
	}
	return nil
}
