// Package search provides the predictive search drawer for the TUI.
package search

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/components/input"
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
	Title       = "Start your coffee journey here"
	Description = "Use this form to search our store"
)

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// item is a selectable row of the drawer.
type item struct {
	query   *domain.PredictiveQuery
	product *domain.PredictiveProduct
}

// View is the search aside: an input driving a keyed predictive search fetcher.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	input   *input.SearchInput
	spinner spinner.Model

	searchService driving.SearchService
	fetcher       *services.Fetcher[*domain.PredictiveSearchResponse]
	debounce      time.Duration
	ctx           context.Context

	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new search drawer.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	debounce time.Duration,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s, input.WithDebounce(debounce)),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		searchService: searchService,
		fetcher: services.NewFetcher[*domain.PredictiveSearchResponse](
			domain.SearchFetcherKey, services.SoftFail(),
		),
		debounce: debounce,
		ctx:      context.Background(),
		selected: -1,
		width:    50,
		height:   24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Open focuses the input when the drawer opens.
func (v *View) Open() tea.Cmd {
	return tea.Batch(v.input.Focus(), v.input.Init())
}

// Close aborts the in-flight search, keeping the last results.
func (v *View) Close() {
	v.fetcher.Abort()
	v.input.Blur()
}

// Update handles messages for the search drawer.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PredictiveSearchResolved:
		v.handleResolved(msg)
		return v, nil

	case spinner.TickMsg:
		if v.fetcher.State() != domain.FetchLoading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		if v.input.Clear() {
			v.fetcher.Reset()
			v.selected = -1
			return v, nil
		}
		return v, func() tea.Msg { return messages.AsideClosed{} }
	case tea.KeyUp:
		if v.selected > -1 {
			v.selected--
		}
		return v, nil
	case tea.KeyDown:
		if v.selected < len(v.items())-1 {
			v.selected++
		}
		return v, nil
	case tea.KeyEnter:
		return v, v.submit()
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	if v.input.Value() == before {
		return v, cmd
	}

	v.selected = -1
	return v, tea.Batch(cmd, v.search(v.input.Value()), v.spinner.Tick)
}

// submit leaves the drawer for the selected suggestion or the typed term.
func (v *View) submit() tea.Cmd {
	term := v.input.Value()
	items := v.items()
	if v.selected >= 0 && v.selected < len(items) {
		it := items[v.selected]
		if it.product != nil {
			url := services.URLWithTrackingParams(
				services.ProductURL(it.product.Handle), it.product.TrackingParams, term,
			)
			link := domain.NavLink{ID: it.product.ID, Title: it.product.Title, URL: url}
			return tea.Batch(
				func() tea.Msg { return messages.LinkSelected{Link: link} },
				func() tea.Msg { return messages.AsideClosed{} },
			)
		}
		term = it.query.Text
	}

	if strings.TrimSpace(term) == "" {
		return nil
	}
	return tea.Batch(
		func() tea.Msg { return messages.ViewChanged{View: messages.ViewSearchResults, Term: term} },
		func() tea.Msg { return messages.AsideClosed{} },
	)
}

// search submits term to the fetcher. The request waits out the debounce
// inside the submission, so a newer keystroke cancels it before it is sent.
func (v *View) search(term string) tea.Cmd {
	sub := v.fetcher.Submit(v.ctx, term)
	debounce := v.debounce
	searchService := v.searchService

	return func() tea.Msg {
		if searchService == nil {
			return messages.PredictiveSearchResolved{Sub: sub, Err: ErrNoSearchService}
		}
		if err := services.Delay(sub.Ctx, debounce); err != nil {
			return messages.PredictiveSearchResolved{Sub: sub, Err: err}
		}
		raw, err := searchService.PredictiveSearch(sub.Ctx, term, domain.SearchOptions{
			Limit:      domain.PredictiveSearchLimit,
			Predictive: true,
		})
		return messages.PredictiveSearchResolved{Sub: sub, Response: raw, Err: err}
	}
}

// handleResolved applies a search result unless it has been superseded.
func (v *View) handleResolved(msg messages.PredictiveSearchResolved) {
	if msg.Sub.Key != domain.SearchFetcherKey {
		return
	}
	if !v.fetcher.Resolve(msg.Sub, msg.Response, msg.Err) {
		return
	}
	if msg.Err != nil && !services.IsSuperseded(msg.Err) {
		logger.Warn("Predictive search failed: %v", msg.Err)
	}
	if v.selected >= len(v.items()) {
		v.selected = len(v.items()) - 1
	}
}

// Result returns the projected view model of the latest resolved search.
func (v *View) Result() domain.PredictiveSearchResult {
	result := services.Project(v.fetcher.Data())
	if result.Term == "" {
		result.Term = v.input.Value()
	}
	return result
}

// Status returns what the drawer currently renders.
func (v *View) Status() services.DrawerStatus {
	return services.DrawerStatusFor(v.input.Value(), v.fetcher.State(), v.Result())
}

// items lists the selectable rows: suggestions first, then products.
func (v *View) items() []item {
	result := v.Result()
	items := make([]item, 0, len(result.Items.Queries)+len(result.Items.Products))
	for i := range result.Items.Queries {
		items = append(items, item{query: &result.Items.Queries[i]})
	}
	for i := range result.Items.Products {
		items = append(items, item{product: &result.Items.Products[i]})
	}
	return items
}

// View renders the search drawer.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := []string{
		v.styles.Render(styles.Text{Variant: styles.Title}, Title),
		v.styles.Render(styles.Text{Variant: styles.Small, Muted: true}, Description),
		"",
		v.input.View(),
		"",
	}

	var body string
	switch v.Status() {
	case services.DrawerLoading:
		body = v.renderLoading()
	case services.DrawerEmptyIdle:
		body = v.renderEmpty("⌕",
			"Looks like you haven't searched for anything yet",
			"Let's get you started!")
	case services.DrawerEmptyNotFound:
		body = v.renderEmpty("☕",
			"We couldn't find any results for your search",
			"Please try a different search term")
	case services.DrawerResults:
		body = v.renderResults()
	case services.DrawerResultsRefreshing:
		body = v.styles.Dimmed.Render(v.renderResults())
	}

	footer := v.styles.OutlineButton.Render("Continue Shopping") + " " +
		v.styles.Help.Render("esc")

	header = append(header, body, "", footer)
	return lipgloss.JoinVertical(lipgloss.Left, header...)
}

// renderLoading renders the placeholder skeleton.
func (v *View) renderLoading() string {
	width := v.width - 4
	if width < 10 {
		width = 10
	}
	lines := []string{
		v.spinner.View() + " " + v.styles.Muted.Render(strings.Repeat("░", 14)),
	}
	for i := 0; i < 4; i++ {
		lines = append(lines, v.styles.Muted.Render(strings.Repeat("░", width)))
	}
	return strings.Join(lines, "\n")
}

// renderEmpty renders an empty state.
func (v *View) renderEmpty(icon, first, second string) string {
	text := styles.Text{Variant: styles.Small, Muted: true}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Subtitle.Render(icon),
		v.styles.Render(text, first),
		v.styles.Render(text, second),
	)
}

// renderResults renders suggestions and products.
func (v *View) renderResults() string {
	result := v.Result()
	var sections []string
	index := 0

	if len(result.Items.Queries) > 0 {
		chips := make([]string, 0, len(result.Items.Queries))
		for _, q := range result.Items.Queries {
			text := htmlTag.ReplaceAllString(q.StyledText, "")
			if text == "" {
				text = q.Text
			}
			if index == v.selected {
				chips = append(chips, v.styles.Selected.Render("["+text+"]"))
			} else {
				chips = append(chips, v.styles.Chip.Render(text))
			}
			index++
		}
		sections = append(sections,
			v.styles.Render(styles.Text{Variant: styles.Caption}, "Suggestions"),
			strings.Join(chips, " "),
			"",
		)
	}

	if len(result.Items.Products) > 0 {
		sections = append(sections, v.styles.Render(styles.Text{Variant: styles.Caption}, "Products"))
		for _, p := range result.Items.Products {
			sections = append(sections, v.renderProduct(p, result.Term, index == v.selected))
			index++
		}
	}
	return strings.Join(sections, "\n")
}

// renderProduct renders a product suggestion with its tracking link.
func (v *View) renderProduct(p domain.PredictiveProduct, term string, selected bool) string {
	width := v.width - 4
	title := list.Truncate(p.Title, width-12)
	line := "  " + v.styles.Normal.Render(title)
	if selected {
		line = v.styles.Selected.Render("> " + title)
	}
	if p.Price != nil {
		line += "  " + v.styles.Price.Render(p.Price.Format())
	}
	url := services.URLWithTrackingParams(services.ProductURL(p.Handle), p.TrackingParams, term)
	return line + "\n    " + v.styles.Muted.Render(list.Truncate(url, width-4))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// SetDebounce changes the delay before a typed term is searched.
func (v *View) SetDebounce(d time.Duration) {
	v.debounce = d
}

// Debounce returns the search delay.
func (v *View) Debounce() time.Duration {
	return v.debounce
}

// Query returns the current search term.
func (v *View) Query() string {
	return v.input.Value()
}

// State returns the search fetcher state.
func (v *View) State() domain.FetchState {
	return v.fetcher.State()
}

// Selected returns the selected row, or -1 when the input is active.
func (v *View) Selected() int {
	return v.selected
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
