// Package results provides the paginated product search page for the TUI.
package results

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// FetcherKey identifies the search page fetcher.
const FetcherKey = "search-page"

// Pagination labels.
const (
	LoadPreviousLabel = "↑ Load previous"
	LoadMoreLabel     = "Load more ↓"
	LoadingLabel      = "Loading..."
)

// View is the search results page. Pages are loaded through a keyed
// fetcher and accumulate in both directions.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	products *list.ProductList

	searchService driving.SearchService
	fetcher       *services.Fetcher[*domain.SearchResultsPage]
	ctx           context.Context

	term      string
	pageInfo  domain.PageInfo
	direction messages.PageDirection

	width  int
	height int
	ready  bool
}

// NewView creates a new search results view.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		products:      list.NewProductList(s),
		searchService: searchService,
		fetcher:       services.NewFetcher[*domain.SearchResultsPage](FetcherKey),
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetTerm starts a new search for term, discarding loaded pages.
func (v *View) SetTerm(term string) tea.Cmd {
	v.term = strings.TrimSpace(term)
	v.pageInfo = domain.PageInfo{}
	v.products.SetProducts(nil)
	return v.load(messages.PageReplace, domain.PageRequest{})
}

// LoadMore loads the page after the loaded products.
func (v *View) LoadMore() tea.Cmd {
	if !v.pageInfo.HasNextPage || v.Loading() {
		return nil
	}
	return v.load(messages.PageNext, domain.PageRequest{After: v.pageInfo.EndCursor})
}

// LoadPrevious loads the page before the loaded products.
func (v *View) LoadPrevious() tea.Cmd {
	if !v.pageInfo.HasPreviousPage || v.Loading() {
		return nil
	}
	return v.load(messages.PagePrevious, domain.PageRequest{Before: v.pageInfo.StartCursor})
}

func (v *View) load(direction messages.PageDirection, page domain.PageRequest) tea.Cmd {
	sub := v.fetcher.Submit(v.ctx, page)
	v.direction = direction
	term := v.term
	searchService := v.searchService

	return func() tea.Msg {
		if searchService == nil {
			return messages.SearchPageLoaded{Sub: sub, Direction: direction, Err: ErrNoSearchService}
		}
		result, err := searchService.Search(sub.Ctx, term, page)
		return messages.SearchPageLoaded{Sub: sub, Direction: direction, Page: result, Err: err}
	}
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SearchPageLoaded:
		return v, v.handleLoaded(msg)

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleLoaded merges a resolved page into the listing.
func (v *View) handleLoaded(msg messages.SearchPageLoaded) tea.Cmd {
	if msg.Sub.Key != FetcherKey || !v.fetcher.Resolve(msg.Sub, msg.Page, msg.Err) {
		return nil
	}
	if msg.Err != nil {
		logger.Warn("Search page failed: %v", msg.Err)
		return func() tea.Msg { return messages.ErrorOccurred{Err: msg.Err} }
	}
	if msg.Page == nil {
		return nil
	}

	info := msg.Page.Products.PageInfo
	switch msg.Direction {
	case messages.PageReplace:
		v.products.SetProducts(msg.Page.Products.Nodes)
		v.pageInfo = info
	case messages.PageNext:
		v.products.Append(msg.Page.Products.Nodes)
		v.pageInfo.HasNextPage = info.HasNextPage
		v.pageInfo.EndCursor = info.EndCursor
	case messages.PagePrevious:
		v.products.Prepend(msg.Page.Products.Nodes)
		v.pageInfo.HasPreviousPage = info.HasPreviousPage
		v.pageInfo.StartCursor = info.StartCursor
	}
	return nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up), key.Matches(msg, v.keymap.Down):
		v.products, _ = v.products.Update(msg)
		return v, nil

	case key.Matches(msg, v.keymap.LoadMore):
		return v, v.LoadMore()

	case key.Matches(msg, v.keymap.LoadPrevious):
		return v, v.LoadPrevious()

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

// View renders the results page.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Heading(1, "Search"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Results for \"" + v.term + "\""))
	b.WriteString("\n\n")

	if v.fetcher.State() == domain.FetchError {
		b.WriteString(v.styles.Error.Render("Error: " + v.fetcher.Snapshot().Err.Error()))
		return b.String()
	}
	if v.Loading() && v.direction == messages.PageReplace {
		b.WriteString(v.styles.Muted.Render(LoadingLabel))
		return b.String()
	}
	if v.products.IsEmpty() {
		b.WriteString(v.styles.Muted.Render("No results, try a different search."))
		return b.String()
	}

	if v.pageInfo.HasPreviousPage {
		b.WriteString(v.paginationLink(LoadPreviousLabel, messages.PagePrevious))
		b.WriteString("\n")
	}
	b.WriteString(v.products.View())
	if v.pageInfo.HasNextPage {
		b.WriteString("\n")
		b.WriteString(v.paginationLink(LoadMoreLabel, messages.PageNext))
	}
	return b.String()
}

func (v *View) paginationLink(label string, direction messages.PageDirection) string {
	if v.Loading() && v.direction == direction {
		return v.styles.Muted.Render(LoadingLabel)
	}
	return v.styles.Render(styles.Text{Variant: styles.Nav, Link: true}, label)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.products.SetDimensions(width, height-6)
}

// Term returns the searched term.
func (v *View) Term() string {
	return v.term
}

// Loading returns whether a page is being loaded.
func (v *View) Loading() bool {
	return v.fetcher.State() == domain.FetchLoading
}

// PageInfo returns the cursors of the loaded range.
func (v *View) PageInfo() domain.PageInfo {
	return v.pageInfo
}

// Products returns the product list.
func (v *View) Products() *list.ProductList {
	return v.products
}
