// Package home provides the landing page view for the TUI.
package home

import (
	"context"
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
)

// Landing page texts.
const (
	HeroTitle = "Premium Coffee, Delivered Fresh"
	HeroText  = "Discover our carefully curated selection of single-origin and specialty blend " +
		"coffees, roasted to perfection and delivered straight to your door."
	ShopNow        = "Shop Now"
	SubscribeSave  = "Subscribe & Save"
	BestSellers    = "Best sellers"
	LoadingMessage = "Loading collections"
	LoadingBest    = "Loading..."
)

// View is the landing page: the featured collection hero and the best sellers.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	products *list.ProductList
	catalog  driving.CatalogService
	ctx      context.Context

	home            *domain.HomePage
	loading         bool
	loadingProducts bool
	err             error

	width  int
	height int
	ready  bool
}

// NewView creates a new home view.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:   s,
		keymap:   km,
		products: list.NewProductList(s),
		catalog:  catalog,
		ctx:      context.Background(),
		width:    80,
		height:   24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the landing page.
func (v *View) Init() tea.Cmd {
	return v.Load()
}

// Load fetches the featured collection and, separately, the best sellers.
func (v *View) Load() tea.Cmd {
	v.loading = true
	v.loadingProducts = true
	catalog := v.catalog
	ctx := v.ctx
	featured := func() tea.Msg {
		if catalog == nil {
			return messages.HomeLoaded{Err: ErrNoCatalogService}
		}
		home, err := catalog.Home(ctx)
		return messages.HomeLoaded{Home: home, Err: err}
	}
	recommended := func() tea.Msg {
		if catalog == nil {
			return messages.RecommendedLoaded{}
		}
		return messages.RecommendedLoaded{Products: catalog.RecommendedProducts(ctx)}
	}
	return tea.Batch(featured, recommended)
}

// Update handles messages for the home view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HomeLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err != nil {
			return v, func() tea.Msg { return messages.ErrorOccurred{Err: msg.Err} }
		}
		v.home = msg.Home
		return v, nil

	case messages.RecommendedLoaded:
		v.loadingProducts = false
		v.products.SetProducts(msg.Products)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up), key.Matches(msg, v.keymap.Down):
		v.products, _ = v.products.Update(msg)
		return v, nil

	case key.Matches(msg, v.keymap.Select):
		p := v.products.SelectedProduct()
		if p == nil {
			return v, nil
		}
		link := domain.NavLink{ID: p.ID, Title: p.Title, URL: services.ProductURL(p.Handle)}
		return v, func() tea.Msg { return messages.LinkSelected{Link: link} }

	case key.Matches(msg, v.keymap.AddToCart):
		return v, messages.AddProductToCart(v.products.SelectedProduct())
	}
	return v, nil
}

// View renders the landing page.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var sections []string
	if hero := v.renderHero(); hero != "" {
		sections = append(sections, hero, "")
	}

	switch {
	case v.loading:
		sections = append(sections, v.styles.Muted.Render(LoadingMessage), "")
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.styles.Heading(4, BestSellers), "")
	switch {
	case v.loadingProducts:
		sections = append(sections, v.styles.Muted.Render(LoadingBest))
	case v.products.Count() > 0:
		sections = append(sections, v.products.View())
	}

	return strings.Join(sections, "\n")
}

// renderHero renders the featured collection. Nothing is shown without an image.
func (v *View) renderHero() string {
	if v.home == nil || v.home.FeaturedCollection == nil || v.home.FeaturedCollection.Image == nil {
		return ""
	}

	width := v.width - 4
	if width < 20 {
		width = 20
	}
	text := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		v.styles.OutlineButton.Render(ShopNow),
		"  ",
		v.styles.Button.Render(SubscribeSave),
	)

	return v.styles.Border.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center,
		text.Render(v.styles.Heading(2, HeroTitle)),
		"",
		text.Render(v.styles.Render(styles.Text{Variant: styles.Large}, HeroText)),
		"",
		text.Render(buttons),
		text.Render(v.styles.Render(styles.Text{Variant: styles.Caption, Muted: true},
			v.home.FeaturedCollection.Title)),
	))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.products.SetDimensions(width, height-4)
}

// Home returns the loaded landing page.
func (v *View) Home() *domain.HomePage {
	return v.home
}

// Loading returns whether the featured collection is loading.
func (v *View) Loading() bool {
	return v.loading
}

// LoadingProducts returns whether the best sellers are loading.
func (v *View) LoadingProducts() bool {
	return v.loadingProducts
}

// Products returns the best sellers list.
func (v *View) Products() *list.ProductList {
	return v.products
}
