package tui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/views/cart"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/views/home"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/views/results"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/views/typography"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Header texts.
const (
	Brand      = "CoffeeHunt"
	SearchHint = "Start your coffee search"
)

// Layout constants.
const (
	// drawerWidth is the width of an open aside.
	drawerWidth = 50

	// sideBySideWidth is the narrowest terminal showing an aside next to the page.
	sideBySideWidth = 100

	// chromeHeight is the number of lines used by the header, footer and status bar.
	chromeHeight = 6
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles. Views share the pointer so theme
	// changes apply everywhere.
	styles *styles.Styles

	keymap    *keymap.KeyMap
	statusBar *status.Bar

	// Pages.
	homeView       *home.View
	resultsView    *results.View
	typographyView *typography.View

	// Asides.
	searchView *search.View
	cartView   *cart.View
	menuView   *menu.View

	// currentView tracks which page is shown.
	currentView messages.ViewType

	// aside tracks the open drawer. Only one is open at a time.
	aside domain.AsideType

	header      *domain.Header
	footer      *domain.Footer
	headerLinks []domain.NavLink
	footerLinks []domain.NavLink

	// loggedIn is nil until the login state has loaded.
	loggedIn *bool

	// cartCount is nil until the cart has loaded.
	cartCount *int

	settings   *domain.AppSettings
	settingsCh chan messages.SettingsReloaded

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := loadSettings(ports)
	s := styles.NewStyles(styles.ThemeFor(settings.UI.Theme))
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		statusBar:      status.NewBar(s, km),
		homeView:       home.NewView(s, km, ports.Catalog),
		resultsView:    results.NewView(s, km, ports.Search),
		typographyView: typography.NewView(s),
		searchView:     search.NewView(s, km, ports.Search, settings.UI.SearchDebounce),
		cartView:       cart.NewView(s, km, ports.Cart),
		menuView:       menu.NewView(s),
		currentView:    messages.ViewHome,
		aside:          domain.AsideClosed,
		settings:       settings,
		settingsCh:     make(chan messages.SettingsReloaded, 1),
	}
	a.headerLinks = ports.Layout.HeaderLinks(nil)
	a.menuView.SetLinks(a.headerLinks)
	a.syncHints()
	return a, nil
}

// loadSettings reads the UI preferences, falling back to defaults.
func loadSettings(ports *Ports) *domain.AppSettings {
	if ports.Settings != nil {
		settings, err := ports.Settings.Get()
		if err == nil && settings != nil {
			return settings
		}
		if err != nil {
			logger.Warn("Using default settings: %v", err)
		}
	}
	defaults := domain.DefaultAppSettings()
	return &defaults
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.homeView.WithContext(ctx)
	a.resultsView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.cartView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It loads the layout, the landing page, the cart and the login state.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(Brand),
		a.loadHeader(),
		a.loadFooter(),
		a.loadLoginState(),
		a.homeView.Init(),
		a.cartView.Init(),
		a.searchView.Init(),
		a.watchSettings(),
	)
}

func (a *App) loadHeader() tea.Cmd {
	layout := a.ports.Layout
	ctx := a.ctx
	return func() tea.Msg {
		header, err := layout.Header(ctx)
		return messages.LayoutLoaded{Header: header, Err: err}
	}
}

func (a *App) loadFooter() tea.Cmd {
	layout := a.ports.Layout
	ctx := a.ctx
	return func() tea.Msg {
		return messages.FooterLoaded{Footer: layout.Footer(ctx)}
	}
}

func (a *App) loadLoginState() tea.Cmd {
	account := a.ports.Account
	if account == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		return messages.LoginStateLoaded{LoggedIn: account.IsLoggedIn(ctx)}
	}
}

// watchSettings starts the config watcher and waits for the first change.
func (a *App) watchSettings() tea.Cmd {
	watcher := a.ports.ConfigWatcher
	settings := a.ports.Settings
	if watcher == nil || settings == nil {
		return nil
	}

	ch := a.settingsCh
	ctx := a.ctx
	go func() {
		err := watcher.Watch(ctx, func() {
			s, err := settings.Get()
			select {
			case ch <- messages.SettingsReloaded{Settings: s, Err: err}:
			default:
				logger.Debug("Settings reload already pending")
			}
		})
		if err != nil && ctx.Err() == nil {
			logger.Warn("Config watcher stopped: %v", err)
		}
	}()
	return a.waitForSettings()
}

// waitForSettings delivers the next settings reload.
func (a *App) waitForSettings() tea.Cmd {
	ch := a.settingsCh
	ctx := a.ctx
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.LayoutLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetError(msg.Err)
			logger.Warn("Header unavailable: %v", msg.Err)
			return a, nil
		}
		a.header = msg.Header
		a.headerLinks = a.ports.Layout.HeaderLinks(msg.Header)
		a.footerLinks = a.ports.Layout.FooterLinks(a.header, a.footer)
		a.menuView.SetLinks(a.headerLinks)
		return a, nil

	case messages.FooterLoaded:
		a.footer = msg.Footer
		a.footerLinks = a.ports.Layout.FooterLinks(a.header, a.footer)
		return a, nil

	case messages.LoginStateLoaded:
		loggedIn := msg.LoggedIn
		a.loggedIn = &loggedIn
		return a, nil

	case messages.HomeLoaded, messages.RecommendedLoaded:
		a.homeView, cmd = a.homeView.Update(msg)
		return a, cmd

	case messages.SearchPageLoaded:
		a.resultsView, cmd = a.resultsView.Update(msg)
		return a, cmd

	case messages.PredictiveSearchResolved, spinner.TickMsg:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.CartLoaded, messages.CartMutationResolved:
		a.cartView, cmd = a.cartView.Update(msg)
		return a, cmd

	case messages.AddToCart:
		a.cartView, cmd = a.cartView.Update(msg)
		return a, tea.Batch(cmd, a.openAside(domain.AsideCart))

	case messages.CartChanged:
		count := 0
		if msg.Cart != nil {
			count = msg.Cart.TotalQuantity
		}
		a.cartCount = &count
		return a, nil

	case messages.ViewChanged:
		return a, a.showView(msg)

	case messages.AsideOpened:
		return a, a.openAside(msg.Aside)

	case messages.AsideClosed:
		a.closeAside()
		return a, nil

	case messages.LinkSelected:
		return a, a.followLink(msg.Link)

	case messages.OpenURL:
		return a, a.openURL(msg.URL)

	case messages.SettingsReloaded:
		a.applySettings(msg)
		return a, a.waitForSettings()

	case messages.StatusMessage:
		a.statusBar.SetInfo(msg.Text)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the focused component.
	switch a.aside {
	case domain.AsideSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case domain.AsideCart, domain.AsideMobile, domain.AsideClosed:
	}
	return a, cmd
}

// handleKeyMsg routes keys to the open aside, then to the global
// bindings, then to the current page.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// The search input takes every key.
	if a.aside == domain.AsideSearch {
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Search):
		return a, a.openAside(domain.AsideSearch)
	case key.Matches(msg, a.keymap.Cart) && a.aside != domain.AsideCart:
		return a, a.openAside(domain.AsideCart)
	case key.Matches(msg, a.keymap.Menu):
		return a, a.openAside(domain.AsideMobile)
	}

	switch a.aside {
	case domain.AsideCart:
		a.cartView, cmd = a.cartView.Update(msg)
		return a, cmd
	case domain.AsideMobile:
		a.menuView, cmd = a.menuView.Update(msg)
		return a, cmd
	case domain.AsideSearch, domain.AsideClosed:
	}

	switch {
	case key.Matches(msg, a.keymap.Home):
		return a, a.showView(messages.ViewChanged{View: messages.ViewHome})
	case key.Matches(msg, a.keymap.Typography):
		return a, a.showView(messages.ViewChanged{View: messages.ViewTypography})
	case key.Matches(msg, a.keymap.Back):
		if a.currentView != messages.ViewHome {
			return a, a.showView(messages.ViewChanged{View: messages.ViewHome})
		}
		return a, nil
	}

	switch a.currentView {
	case messages.ViewHome:
		a.homeView, cmd = a.homeView.Update(msg)
	case messages.ViewSearchResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case messages.ViewTypography:
		a.typographyView, cmd = a.typographyView.Update(msg)
	}
	return a, cmd
}

// showView switches the page.
func (a *App) showView(msg messages.ViewChanged) tea.Cmd {
	a.currentView = msg.View
	a.syncHints()

	switch msg.View {
	case messages.ViewSearchResults:
		return a.resultsView.SetTerm(msg.Term)
	case messages.ViewTypography:
		a.typographyView.Refresh()
	case messages.ViewHome:
	}
	return nil
}

// openAside opens a drawer, closing the open one.
func (a *App) openAside(aside domain.AsideType) tea.Cmd {
	if aside == domain.AsideClosed {
		a.closeAside()
		return nil
	}
	if a.aside == domain.AsideSearch && aside != domain.AsideSearch {
		a.searchView.Close()
	}
	a.aside = aside
	a.syncHints()
	a.resize()

	if aside == domain.AsideSearch {
		return a.searchView.Open()
	}
	return nil
}

// closeAside closes the open drawer.
func (a *App) closeAside() {
	if a.aside == domain.AsideSearch {
		a.searchView.Close()
	}
	a.aside = domain.AsideClosed
	a.syncHints()
	a.resize()
}

// resize re-applies the dimensions after the layout changed.
func (a *App) resize() {
	if a.ready {
		a.SetDimensions(a.width, a.height)
	}
}

// followLink navigates to an internal page or opens the link in the browser.
func (a *App) followLink(link domain.NavLink) tea.Cmd {
	if link.URL == "/" {
		return a.showView(messages.ViewChanged{View: messages.ViewHome})
	}
	if term, ok := searchTerm(link.URL); ok {
		return a.showView(messages.ViewChanged{View: messages.ViewSearchResults, Term: term})
	}
	return a.openURL(a.absoluteURL(link.URL))
}

// searchTerm extracts the term of a search page link.
func searchTerm(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil || u.IsAbs() || u.Path != domain.SearchEndpoint {
		return "", false
	}
	return u.Query().Get("q"), true
}

// absoluteURL resolves a storefront path against the shop's primary domain.
func (a *App) absoluteURL(link string) string {
	if !strings.HasPrefix(link, "/") || a.header == nil || a.header.Shop.PrimaryDomainURL == "" {
		return link
	}
	return strings.TrimSuffix(a.header.Shop.PrimaryDomainURL, "/") + link
}

// openURL opens target in the browser.
func (a *App) openURL(target string) tea.Cmd {
	open := a.ports.OpenURL
	return func() tea.Msg {
		if open == nil {
			return messages.ErrorOccurred{Err: fmt.Errorf("%w: %s", ErrNoBrowser, target)}
		}
		if err := open(target); err != nil {
			return messages.ErrorOccurred{Err: fmt.Errorf("open %s: %w", target, err)}
		}
		return messages.StatusMessage{Text: "Opened " + target}
	}
}

// applySettings applies reloaded UI preferences.
func (a *App) applySettings(msg messages.SettingsReloaded) {
	if msg.Err != nil || msg.Settings == nil {
		logger.Warn("Settings reload failed: %v", msg.Err)
		return
	}
	a.settings = msg.Settings
	a.styles.Apply(styles.ThemeFor(msg.Settings.UI.Theme))
	a.searchView.SetDebounce(msg.Settings.UI.SearchDebounce)
	a.typographyView.Refresh()
	a.statusBar.SetInfo("Settings reloaded")
	logger.Debug("Settings reloaded: theme=%s debounce=%s", msg.Settings.UI.Theme, msg.Settings.UI.SearchDebounce)
}

// syncHints shows the bindings of the focused component.
func (a *App) syncHints() {
	switch a.aside {
	case domain.AsideSearch:
		a.statusBar.SetHints(a.keymap.SearchHelp())
		return
	case domain.AsideCart:
		a.statusBar.SetHints(a.keymap.CartHelp())
		return
	case domain.AsideMobile:
		a.statusBar.SetHints(a.keymap.MenuHelp())
		return
	case domain.AsideClosed:
	}

	switch a.currentView {
	case messages.ViewHome:
		a.statusBar.SetHints(a.keymap.ProductsHelp())
	case messages.ViewSearchResults:
		a.statusBar.SetHints(a.keymap.ResultsHelp())
	case messages.ViewTypography:
		a.statusBar.SetHints(nil)
	}
}

// View implements tea.Model.
// It renders the header, the page with the open aside, the footer and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	body := a.viewPage()
	if drawer := a.viewAside(); drawer != "" {
		if a.width >= sideBySideWidth {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", drawer)
		} else {
			body = drawer
		}
	}

	sections := []string{a.viewHeader(), body}
	if footer := a.viewFooter(); footer != "" {
		sections = append(sections, footer)
	}
	sections = append(sections, a.statusBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) viewPage() string {
	switch a.currentView {
	case messages.ViewSearchResults:
		return a.resultsView.View()
	case messages.ViewTypography:
		return a.typographyView.View()
	default:
		return a.homeView.View()
	}
}

func (a *App) viewAside() string {
	var content string
	switch a.aside {
	case domain.AsideSearch:
		content = a.searchView.View()
	case domain.AsideCart:
		content = a.cartView.View()
	case domain.AsideMobile:
		content = a.menuView.View()
	default:
		return ""
	}
	return a.styles.Drawer.Render(content)
}

// viewHeader renders the brand, the navigation and the toggles.
func (a *App) viewHeader() string {
	parts := []string{a.styles.Render(styles.Text{Variant: styles.Title}, "☕ "+Brand)}

	if a.width >= sideBySideWidth {
		nav := make([]string, 0, len(a.headerLinks))
		for _, link := range a.headerLinks {
			nav = append(nav, a.styles.Render(styles.Text{Variant: styles.Nav}, link.Title))
		}
		parts = append(parts, strings.Join(nav, "  "))
	} else {
		parts = append(parts, a.styles.Muted.Render("☰ m"))
	}

	parts = append(parts,
		a.styles.Render(styles.Text{Variant: styles.XSmall, Muted: true}, "⌕ "+SearchHint+" /"),
		a.accountLabel(),
		a.cartLabel(),
	)
	return a.styles.Header.Render(strings.Join(parts, "   "))
}

// accountLabel is blank until the login state is known.
func (a *App) accountLabel() string {
	if a.loggedIn == nil {
		return ""
	}
	if *a.loggedIn {
		return a.styles.Normal.Render("Account")
	}
	return a.styles.Normal.Render("Sign in")
}

// cartLabel shows the count badge once the cart is known and not empty.
func (a *App) cartLabel() string {
	label := a.styles.Normal.Render("Cart")
	if a.cartCount != nil && *a.cartCount > 0 {
		label += " " + a.styles.Badge.Render(fmt.Sprintf("%d", *a.cartCount))
	}
	return label
}

// viewFooter renders the footer menu. External links are marked.
func (a *App) viewFooter() string {
	if len(a.footerLinks) == 0 {
		return ""
	}
	links := make([]string, 0, len(a.footerLinks))
	for _, link := range a.footerLinks {
		title := link.Title
		if link.External {
			title += " ↗"
		}
		links = append(links, a.styles.Render(styles.Text{Variant: styles.Small, Muted: true}, title))
	}
	return a.styles.Footer.Render(strings.Join(links, "  "))
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current page.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Aside returns the open drawer.
func (a *App) Aside() domain.AsideType {
	return a.aside
}

// CartCount returns the badge count, or -1 while the cart is loading.
func (a *App) CartCount() int {
	if a.cartCount == nil {
		return -1
	}
	return *a.cartCount
}

// Settings returns the applied settings.
func (a *App) Settings() *domain.AppSettings {
	return a.settings
}

// Styles returns the shared styles.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and sizes every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	pageWidth := width
	if width >= sideBySideWidth && a.aside != domain.AsideClosed {
		pageWidth = width - drawerWidth - 1
	}
	pageHeight := height - chromeHeight
	if pageHeight < 4 {
		pageHeight = 4
	}

	a.homeView.SetDimensions(pageWidth, pageHeight)
	a.resultsView.SetDimensions(pageWidth, pageHeight)
	a.typographyView.SetDimensions(pageWidth, pageHeight)

	asideWidth := drawerWidth - 4
	if width < sideBySideWidth {
		asideWidth = width - 4
	}
	a.searchView.SetDimensions(asideWidth, pageHeight)
	a.cartView.SetDimensions(asideWidth, pageHeight)
	a.menuView.SetDimensions(asideWidth, pageHeight)
	a.statusBar.SetWidth(width)
}
