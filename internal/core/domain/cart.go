package domain

import (
	"fmt"
	"strings"
)

// Cart is the shopper's cart as returned by the platform.
type Cart struct {
	ID            string     `json:"id"`
	CheckoutURL   string     `json:"checkoutUrl"`
	TotalQuantity int        `json:"totalQuantity"`
	Cost          CartCost   `json:"cost"`
	Lines         []CartLine `json:"lines"`
	Note          string     `json:"note,omitempty"`
}

// CartCost holds the cart totals.
type CartCost struct {
	SubtotalAmount Money  `json:"subtotalAmount"`
	TotalAmount    Money  `json:"totalAmount"`
	TotalTaxAmount *Money `json:"totalTaxAmount,omitempty"`
}

// CartLine is a merchandise line in the cart.
// IsOptimistic marks lines whose state reflects a mutation not yet confirmed.
type CartLine struct {
	ID           string         `json:"id"`
	Quantity     int            `json:"quantity"`
	Merchandise  ProductVariant `json:"merchandise"`
	Cost         CartLineCost   `json:"cost"`
	IsOptimistic bool           `json:"isOptimistic,omitempty"`
}

// CartLineCost holds the cost of a single line.
type CartLineCost struct {
	TotalAmount       Money  `json:"totalAmount"`
	AmountPerQuantity Money  `json:"amountPerQuantity"`
	CompareAtAmount   *Money `json:"compareAtAmountPerQuantity,omitempty"`
}

// CartLineInput adds merchandise to a cart.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`

	// Merchandise is the variant being added, when known.
	// It lets the optimistic cart render the line before the platform confirms it.
	Merchandise *ProductVariant `json:"-"`
}

// CartLineUpdateInput changes the quantity of an existing line.
type CartLineUpdateInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CartAction identifies a cart mutation.
type CartAction string

// Cart actions.
const (
	CartLinesAdd    CartAction = "LinesAdd"
	CartLinesUpdate CartAction = "LinesUpdate"
	CartLinesRemove CartAction = "LinesRemove"
)

// CartMutation is a pending cart change.
type CartMutation struct {
	Action  CartAction
	Add     []CartLineInput
	Update  []CartLineUpdateInput
	LineIDs []string
}

// Key returns the fetcher key the mutation is submitted under.
// Updates for the same lines share a key so the newest one wins.
func (m CartMutation) Key() string {
	switch m.Action {
	case CartLinesUpdate:
		ids := make([]string, 0, len(m.Update))
		for _, u := range m.Update {
			ids = append(ids, u.ID)
		}
		return CartUpdateKey(ids)
	case CartLinesRemove:
		return CartUpdateKey(m.LineIDs)
	default:
		ids := make([]string, 0, len(m.Add))
		for _, in := range m.Add {
			ids = append(ids, in.MerchandiseID)
		}
		return strings.Join(append([]string{string(CartLinesAdd)}, ids...), "-")
	}
}

// Validate checks the mutation carries input for its action.
func (m CartMutation) Validate() error {
	switch m.Action {
	case CartLinesAdd:
		if len(m.Add) == 0 {
			return fmt.Errorf("%w: no lines to add", ErrInvalidInput)
		}
		for _, in := range m.Add {
			if in.MerchandiseID == "" || in.Quantity <= 0 {
				return fmt.Errorf("%w: line needs merchandise and a positive quantity", ErrInvalidInput)
			}
		}
	case CartLinesUpdate:
		if len(m.Update) == 0 {
			return fmt.Errorf("%w: no lines to update", ErrInvalidInput)
		}
		for _, u := range m.Update {
			if u.ID == "" || u.Quantity < 0 {
				return fmt.Errorf("%w: line update needs an id and a non-negative quantity", ErrInvalidInput)
			}
		}
	case CartLinesRemove:
		if len(m.LineIDs) == 0 {
			return fmt.Errorf("%w: no lines to remove", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown cart action %q", ErrInvalidInput, m.Action)
	}
	return nil
}

// CartUpdateKey builds the per-line fetcher key for quantity changes,
// e.g. "LinesUpdate-gid1-gid2".
func CartUpdateKey(lineIDs []string) string {
	return strings.Join(append([]string{string(CartLinesUpdate)}, lineIDs...), "-")
}

// CartUserError is a validation message returned by a cart mutation.
type CartUserError struct {
	Code    string   `json:"code,omitempty"`
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}

// CartUserErrors joins platform validation messages into one error wrapping ErrUserError.
func CartUserErrors(errs []CartUserError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("%w: %s", ErrUserError, strings.Join(msgs, "; "))
}

// LineQuantityControls describes the quantity buttons of a cart line.
type LineQuantityControls struct {
	DecreaseTo      int
	IncreaseTo      int
	DecreaseEnabled bool
	RemoveEnabled   bool
}

// QuantityControls returns the targets and enabled state of the line's controls.
// Decreasing stops at one; pending lines cannot be changed.
func (l CartLine) QuantityControls() LineQuantityControls {
	prev := l.Quantity - 1
	if prev < 0 {
		prev = 0
	}
	return LineQuantityControls{
		DecreaseTo:      prev,
		IncreaseTo:      l.Quantity + 1,
		DecreaseEnabled: l.Quantity > 1 && !l.IsOptimistic,
		RemoveEnabled:   !l.IsOptimistic,
	}
}

// HasItems returns true if the cart holds at least one unit.
func (c *Cart) HasItems() bool {
	return c != nil && c.TotalQuantity > 0
}

// ItemCountLabel renders the drawer description.
func (c *Cart) ItemCountLabel() string {
	if !c.HasItems() {
		return "Your cart is empty."
	}
	return fmt.Sprintf("You have %d items in your cart.", c.TotalQuantity)
}
