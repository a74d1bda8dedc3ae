package services

import (
	"strings"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// optimisticLinePrefix prefixes ids of lines that exist only locally.
const optimisticLinePrefix = "__optimistic__"

// OptimisticCart projects pending mutations onto the last confirmed cart.
// The input cart is never modified. Affected lines are flagged IsOptimistic,
// lines updated to zero or pending removal are dropped, and the total
// quantity is recomputed. Returns nil only when cart is nil and nothing is pending.
func OptimisticCart(cart *domain.Cart, pending []domain.CartMutation) *domain.Cart {
	if cart == nil && len(pending) == 0 {
		return nil
	}

	out := &domain.Cart{}
	if cart != nil {
		*out = *cart
		out.Lines = make([]domain.CartLine, len(cart.Lines))
		copy(out.Lines, cart.Lines)
	}
	if len(pending) == 0 {
		return out
	}

	for _, m := range pending {
		switch m.Action {
		case domain.CartLinesUpdate:
			for _, u := range m.Update {
				for i := range out.Lines {
					if out.Lines[i].ID == u.ID {
						out.Lines[i] = withQuantity(out.Lines[i], u.Quantity)
					}
				}
			}
		case domain.CartLinesRemove:
			for _, id := range m.LineIDs {
				for i := range out.Lines {
					if out.Lines[i].ID == id {
						out.Lines[i] = withQuantity(out.Lines[i], 0)
					}
				}
			}
		case domain.CartLinesAdd:
			for _, in := range m.Add {
				out.Lines = addOptimisticLine(out.Lines, in)
			}
		}
	}

	lines := out.Lines[:0]
	total := 0
	for _, l := range out.Lines {
		if l.Quantity <= 0 {
			continue
		}
		lines = append(lines, l)
		total += l.Quantity
	}
	out.Lines = lines
	out.TotalQuantity = total
	return out
}

// IsLocalLine reports whether a line exists only in the optimistic cart.
func IsLocalLine(line domain.CartLine) bool {
	return strings.HasPrefix(line.ID, optimisticLinePrefix)
}

// PendingCartMutations extracts cart mutations from in-flight submissions.
func PendingCartMutations(subs []Submission) []domain.CartMutation {
	var out []domain.CartMutation
	for _, sub := range subs {
		if m, ok := sub.Input.(domain.CartMutation); ok {
			out = append(out, m)
		}
	}
	return out
}

func withQuantity(line domain.CartLine, quantity int) domain.CartLine {
	line.Quantity = quantity
	line.IsOptimistic = true
	if !line.Cost.AmountPerQuantity.IsZero() {
		line.Cost.TotalAmount = line.Cost.AmountPerQuantity.Multiply(quantity)
	}
	return line
}

func addOptimisticLine(lines []domain.CartLine, in domain.CartLineInput) []domain.CartLine {
	for i := range lines {
		if lines[i].Merchandise.ID == in.MerchandiseID {
			lines[i] = withQuantity(lines[i], lines[i].Quantity+in.Quantity)
			return lines
		}
	}
	line := domain.CartLine{
		ID:           optimisticLinePrefix + in.MerchandiseID,
		Quantity:     in.Quantity,
		IsOptimistic: true,
	}
	if in.Merchandise != nil {
		line.Merchandise = *in.Merchandise
		line.Cost.AmountPerQuantity = in.Merchandise.Price
		line.Cost.TotalAmount = in.Merchandise.Price.Multiply(in.Quantity)
	} else {
		line.Merchandise.ID = in.MerchandiseID
	}
	return append(lines, line)
}
