package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

var (
	cartJSON     bool
	cartQuantity int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
	Long: `Show and change the session cart.

The cart id is kept in the session store, so the cart survives between runs.`,
	RunE: runCartShow,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart",
	Args:  cobra.NoArgs,
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [variant-id]",
	Short: "Add a product variant to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update [line-id] [quantity]",
	Short: "Change the quantity of a cart line",
	Long:  `Change the quantity of a cart line. A quantity of 0 removes the line.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCartUpdate,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [line-id...]",
	Short: "Remove lines from the cart",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCartRemove,
}

var cartCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Open checkout in the browser",
	Args:  cobra.NoArgs,
	RunE:  runCartCheckout,
}

func init() {
	cartCmd.PersistentFlags().BoolVar(&cartJSON, "json", false, "output the cart as JSON")
	cartAddCmd.Flags().IntVarP(&cartQuantity, "quantity", "q", 1, "number of units")
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartCheckoutCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartShow(cmd *cobra.Command, _ []string) error {
	if cartService == nil {
		return notConfigured("cart")
	}
	cart, err := cartService.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	return outputCart(cmd, cart)
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	return applyCart(cmd, domain.CartMutation{
		Action: domain.CartLinesAdd,
		Add:    []domain.CartLineInput{{MerchandiseID: args[0], Quantity: cartQuantity}},
	})
}

func runCartUpdate(cmd *cobra.Command, args []string) error {
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: quantity %q is not a number", domain.ErrInvalidInput, args[1])
	}
	return applyCart(cmd, domain.CartMutation{
		Action: domain.CartLinesUpdate,
		Update: []domain.CartLineUpdateInput{{ID: args[0], Quantity: quantity}},
	})
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	return applyCart(cmd, domain.CartMutation{
		Action:  domain.CartLinesRemove,
		LineIDs: args,
	})
}

func applyCart(cmd *cobra.Command, mutation domain.CartMutation) error {
	if cartService == nil {
		return notConfigured("cart")
	}
	if err := mutation.Validate(); err != nil {
		return err
	}
	cart, err := cartService.Apply(cmd.Context(), mutation)
	if err != nil {
		return err
	}
	return outputCart(cmd, cart)
}

func runCartCheckout(cmd *cobra.Command, _ []string) error {
	if cartService == nil {
		return notConfigured("cart")
	}
	url, err := cartService.CheckoutURL(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get checkout: %w", err)
	}

	cmd.Printf("Checkout: %s\n", url)
	if openURL == nil {
		return nil
	}
	if err := openURL(url); err != nil {
		cmd.PrintErrf("Could not open browser: %v\n", err)
	}
	return nil
}

func outputCart(cmd *cobra.Command, cart *domain.Cart) error {
	if cartJSON {
		return outputJSON(cmd, cart)
	}

	cmd.Println("Shopping Cart")
	cmd.Println(cart.ItemCountLabel())
	if !cart.HasItems() {
		return nil
	}
	cmd.Println()

	for i, line := range cart.Lines {
		title := line.Merchandise.Product.Title
		if title == "" {
			title = line.Merchandise.Title
		}
		printLine(cmd, fmt.Sprintf("  [%d] %s  x%d  %s", i+1, title, line.Quantity, line.Cost.TotalAmount.Format()))
		for _, opt := range line.Merchandise.SelectedOptions {
			printLine(cmd, fmt.Sprintf("      %s: %s", opt.Name, opt.Value))
		}
		printLine(cmd, "      line: "+line.ID)
	}

	cmd.Println()
	cmd.Printf("Subtotal: %s\n", cart.Cost.SubtotalAmount.Format())
	if cart.CheckoutURL != "" {
		printLine(cmd, "Checkout: "+cart.CheckoutURL)
	}
	return nil
}
