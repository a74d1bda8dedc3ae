// Package cart provides the cart drawer for the TUI.
package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Drawer texts.
const (
	Title            = "Shopping Cart"
	EmptyFirst       = "Looks like you haven't added anything yet"
	EmptySecond      = "Let's get you started!"
	Subtotal         = "Subtotal"
	ContinueShopping = "Continue Shopping"
	GoToCheckout     = "Go to Checkout"
)

// View is the cart aside. It renders the confirmed cart with every
// in-flight mutation applied optimistically.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	cartService driving.CartService
	mutations   *services.Registry[*domain.Cart]
	ctx         context.Context

	confirmed *domain.Cart
	loading   bool
	err       error
	selected  int

	width  int
	height int
	ready  bool
}

// NewView creates a new cart drawer.
func NewView(s *styles.Styles, km *keymap.KeyMap, cartService driving.CartService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		cartService: cartService,
		mutations:   services.NewRegistry[*domain.Cart](),
		ctx:         context.Background(),
		width:       50,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the session cart.
func (v *View) Init() tea.Cmd {
	return v.Load()
}

// Load fetches the session cart.
func (v *View) Load() tea.Cmd {
	v.loading = true
	cartService := v.cartService
	ctx := v.ctx
	return func() tea.Msg {
		if cartService == nil {
			return messages.CartLoaded{Err: ErrNoCartService}
		}
		c, err := cartService.Get(ctx)
		return messages.CartLoaded{Cart: c, Err: err}
	}
}

// Cart returns the cart as displayed: the confirmed cart with pending
// mutations applied. Nil when there is no cart and nothing pending.
func (v *View) Cart() *domain.Cart {
	return services.OptimisticCart(v.confirmed, services.PendingCartMutations(v.mutations.Pending()))
}

// Confirmed returns the last cart returned by the platform.
func (v *View) Confirmed() *domain.Cart {
	return v.confirmed
}

// Loading returns whether the session cart is still loading.
func (v *View) Loading() bool {
	return v.loading
}

// Apply submits a cart mutation under its key. A newer mutation for the
// same lines supersedes the pending one.
func (v *View) Apply(m domain.CartMutation) tea.Cmd {
	if err := m.Validate(); err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}

	sub := v.mutations.Get(m.Key()).Submit(v.ctx, m)
	cartService := v.cartService
	apply := func() tea.Msg {
		if cartService == nil {
			return messages.CartMutationResolved{Sub: sub, Err: ErrNoCartService}
		}
		c, err := cartService.Apply(sub.Ctx, m)
		return messages.CartMutationResolved{Sub: sub, Cart: c, Err: err}
	}
	return tea.Batch(apply, v.changed())
}

// changed reports the displayed cart so the header badge follows it.
func (v *View) changed() tea.Cmd {
	c := v.Cart()
	return func() tea.Msg { return messages.CartChanged{Cart: c} }
}

// Update handles messages for the cart drawer.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CartLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err != nil {
			logger.Warn("Cart unavailable: %v", msg.Err)
			return v, nil
		}
		v.confirmed = msg.Cart
		v.clampSelection()
		return v, v.changed()

	case messages.AddToCart:
		variant := msg.Variant
		m := domain.CartMutation{
			Action: domain.CartLinesAdd,
			Add:    []domain.CartLineInput{{MerchandiseID: variant.ID, Quantity: 1, Merchandise: &variant}},
		}
		// Adds are relative; repeats wait for the one in flight.
		if _, pending := v.mutations.Get(m.Key()).Pending(); pending {
			return v, nil
		}
		return v, v.Apply(m)

	case messages.CartMutationResolved:
		return v, v.handleResolved(msg)

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleResolved confirms a mutation unless a newer one on its key is pending.
func (v *View) handleResolved(msg messages.CartMutationResolved) tea.Cmd {
	if !v.mutations.Get(msg.Sub.Key).Resolve(msg.Sub, msg.Cart, msg.Err) {
		return nil
	}

	var cmds []tea.Cmd
	if msg.Err != nil {
		logger.Warn("Cart update failed: %v", msg.Err)
		err := msg.Err
		cmds = append(cmds, func() tea.Msg { return messages.ErrorOccurred{Err: err} })
	} else if msg.Cart != nil {
		v.confirmed = msg.Cart
	}
	v.clampSelection()
	cmds = append(cmds, v.changed())
	return tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	displayed := v.Cart()

	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg { return messages.AsideClosed{} }

	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case key.Matches(msg, v.keymap.Down):
		if displayed != nil && v.selected < len(displayed.Lines)-1 {
			v.selected++
		}
		return v, nil

	case key.Matches(msg, v.keymap.Checkout):
		if !displayed.HasItems() || displayed.CheckoutURL == "" {
			return v, nil
		}
		url := displayed.CheckoutURL
		return v, tea.Batch(
			func() tea.Msg { return messages.OpenURL{URL: url} },
			func() tea.Msg { return messages.AsideClosed{} },
		)
	}

	line := v.selectedLine(displayed)
	if line == nil {
		return v, nil
	}
	controls := line.QuantityControls()

	switch {
	case key.Matches(msg, v.keymap.Increase):
		if services.IsLocalLine(*line) {
			return v, nil
		}
		return v, v.Apply(updateLine(line.ID, controls.IncreaseTo))

	case key.Matches(msg, v.keymap.Decrease):
		if !controls.DecreaseEnabled {
			return v, nil
		}
		return v, v.Apply(updateLine(line.ID, controls.DecreaseTo))

	case key.Matches(msg, v.keymap.Remove):
		if !controls.RemoveEnabled {
			return v, nil
		}
		return v, v.Apply(domain.CartMutation{Action: domain.CartLinesRemove, LineIDs: []string{line.ID}})

	case key.Matches(msg, v.keymap.Select):
		variant := line.Merchandise
		link := domain.NavLink{
			ID:    variant.ID,
			Title: variant.Product.Title,
			URL:   services.VariantURL(variant.Product.Handle, variant.SelectedOptions),
		}
		return v, tea.Batch(
			func() tea.Msg { return messages.LinkSelected{Link: link} },
			func() tea.Msg { return messages.AsideClosed{} },
		)
	}
	return v, nil
}

func updateLine(id string, quantity int) domain.CartMutation {
	return domain.CartMutation{
		Action: domain.CartLinesUpdate,
		Update: []domain.CartLineUpdateInput{{ID: id, Quantity: quantity}},
	}
}

func (v *View) selectedLine(c *domain.Cart) *domain.CartLine {
	if c == nil || v.selected < 0 || v.selected >= len(c.Lines) {
		return nil
	}
	return &c.Lines[v.selected]
}

func (v *View) clampSelection() {
	c := v.Cart()
	if c == nil || len(c.Lines) == 0 {
		v.selected = 0
		return
	}
	if v.selected >= len(c.Lines) {
		v.selected = len(c.Lines) - 1
	}
}

// View renders the cart drawer.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	c := v.Cart()
	sections := []string{
		v.styles.Heading(5, Title),
		v.styles.Render(styles.Text{Variant: styles.Small, Muted: true}, c.ItemCountLabel()),
		"",
	}

	switch {
	case v.loading && c == nil:
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	case !c.HasItems():
		text := styles.Text{Variant: styles.Small, Muted: true}
		sections = append(sections,
			v.styles.Subtitle.Render("☕"),
			v.styles.Render(text, EmptyFirst),
			v.styles.Render(text, EmptySecond),
		)
	default:
		for i, line := range c.Lines {
			sections = append(sections, v.renderLine(line, i == v.selected))
		}
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "", v.renderFooter(c))
	return strings.Join(sections, "\n")
}

// renderLine renders a cart line with its quantity controls.
func (v *View) renderLine(line domain.CartLine, selected bool) string {
	width := v.width - 4
	if width < 20 {
		width = 20
	}

	title := line.Merchandise.Product.Title
	if title == "" {
		title = line.Merchandise.Title
	}
	title = list.Truncate(title, width-6)
	if selected {
		title = v.styles.Selected.Render("> " + title)
	} else {
		title = v.styles.Render(styles.Text{Variant: styles.Small, Weight: styles.WeightMedium}, title)
	}

	rows := []string{title}
	for _, opt := range line.Merchandise.SelectedOptions {
		rows = append(rows, v.styles.Render(styles.Text{Variant: styles.Small, Muted: true},
			fmt.Sprintf("%s: %s", opt.Name, opt.Value)))
	}

	controls := line.QuantityControls()
	minus := "[-]"
	if !controls.DecreaseEnabled {
		minus = v.styles.Dimmed.Render(minus)
	}
	remove := "[x]"
	if !controls.RemoveEnabled {
		remove = v.styles.Dimmed.Render(remove)
	}
	quantity := fmt.Sprintf("%s %d [+]  %s", minus, line.Quantity, remove)
	if line.IsOptimistic {
		quantity += " " + v.styles.Muted.Render("updating")
	}
	rows = append(rows, quantity+"  "+v.styles.Price.Render(line.Cost.TotalAmount.Format()))

	card := v.styles.Card.Width(width)
	if selected {
		card = card.BorderForeground(v.styles.Theme().Primary)
	}
	return card.Render(strings.Join(rows, "\n"))
}

// renderFooter renders the subtotal and the drawer buttons.
func (v *View) renderFooter(c *domain.Cart) string {
	if !c.HasItems() {
		return v.styles.Button.Render(ContinueShopping)
	}

	subtotal := "-"
	if !c.Cost.SubtotalAmount.IsZero() {
		subtotal = c.Cost.SubtotalAmount.Format()
	}
	large := styles.Text{Variant: styles.Large}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Render(large, Subtotal)+"  "+v.styles.Render(large, subtotal),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			v.styles.OutlineButton.Render(ContinueShopping),
			" ",
			v.styles.Button.Render(GoToCheckout),
		),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the selected line index.
func (v *View) Selected() int {
	return v.selected
}
