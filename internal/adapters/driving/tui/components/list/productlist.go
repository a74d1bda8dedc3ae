// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// linesPerCard is the height of a rendered card including its border.
const linesPerCard = 6

// ProductList displays product cards in a navigable list.
type ProductList struct {
	products []domain.Product
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewProductList creates a new product list component.
func NewProductList(s *styles.Styles) *ProductList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ProductList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the product list.
func (r *ProductList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ProductList) Update(msg tea.Msg) (*ProductList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible cards around the selection.
func (r *ProductList) View() string {
	if len(r.products) == 0 {
		return r.styles.Muted.Render("No products")
	}

	visibleCount := r.height / linesPerCard
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.products) {
		end = len(r.products)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, Card(r.styles, r.products[i], i == r.selected, r.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Card renders a product card: title, category caption, tag chips and
// the minimum price.
func Card(s *styles.Styles, p domain.Product, selected bool, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	title := s.Render(styles.Text{Variant: styles.Title}, Truncate(p.Title, inner))
	if selected {
		title = s.Selected.Render("> " + Truncate(p.Title, inner-2))
	}

	caption := s.Render(styles.Text{Variant: styles.Caption}, p.Category)

	chips := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		chips = append(chips, s.Chip.Render(tag))
	}

	price := s.Price.Render(p.PriceRange.MinVariantPrice.Format())
	if !p.AvailableForSale {
		price += " " + s.Muted.Render("Sold out")
	}

	body := []string{title, caption, strings.Join(chips, " "), price}
	card := s.Card.Width(inner)
	if selected {
		card = card.BorderForeground(s.Theme().Primary)
	}
	return card.Render(strings.Join(body, "\n"))
}

// Truncate shortens text to max runes, ending with an ellipsis.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if max < 1 || len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// SetProducts replaces the listed products and resets the selection.
func (r *ProductList) SetProducts(products []domain.Product) {
	r.products = products
	r.selected = 0
}

// Prepend adds products before the listed ones, keeping the selected product.
func (r *ProductList) Prepend(products []domain.Product) {
	r.products = append(append([]domain.Product{}, products...), r.products...)
	if len(r.products) > len(products) {
		r.selected += len(products)
	}
}

// Append adds products after the listed ones.
func (r *ProductList) Append(products []domain.Product) {
	r.products = append(r.products, products...)
}

// Products returns the listed products.
func (r *ProductList) Products() []domain.Product {
	return r.products
}

// Selected returns the index of the selected product.
func (r *ProductList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ProductList) SetSelected(index int) {
	if index >= 0 && index < len(r.products) {
		r.selected = index
	}
}

// SelectedProduct returns the currently selected product, or nil if none.
func (r *ProductList) SelectedProduct() *domain.Product {
	if len(r.products) == 0 || r.selected < 0 || r.selected >= len(r.products) {
		return nil
	}
	return &r.products[r.selected]
}

// MoveUp moves selection up.
func (r *ProductList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ProductList) MoveDown() {
	if r.selected < len(r.products)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ProductList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of products.
func (r *ProductList) Count() int {
	return len(r.products)
}

// IsEmpty returns whether the list is empty.
func (r *ProductList) IsEmpty() bool {
	return len(r.products) == 0
}
