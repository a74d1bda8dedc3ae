// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

// ViewType identifies which page is currently shown.
type ViewType int

const (
	// ViewHome is the landing page.
	ViewHome ViewType = iota
	// ViewSearchResults is the paginated product search page.
	ViewSearchResults
	// ViewTypography is the typography showcase.
	ViewTypography
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewSearchResults:
		return "search"
	case ViewTypography:
		return "typography"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between pages.
// Term is the search term for ViewSearchResults.
type ViewChanged struct {
	View ViewType
	Term string
}

// AsideOpened opens a side drawer, closing any other one.
type AsideOpened struct {
	Aside domain.AsideType
}

// AsideClosed closes the open side drawer.
type AsideClosed struct{}

// LayoutLoaded carries the critical layout data.
type LayoutLoaded struct {
	Header *domain.Header
	Err    error
}

// FooterLoaded carries the deferred footer. Footer is nil on soft-fail.
type FooterLoaded struct {
	Footer *domain.Footer
}

// LoginStateLoaded carries the deferred login state.
type LoginStateLoaded struct {
	LoggedIn bool
}

// HomeLoaded carries the landing page data.
type HomeLoaded struct {
	Home *domain.HomePage
	Err  error
}

// RecommendedLoaded carries the best sellers. Products is nil when the load failed.
type RecommendedLoaded struct {
	Products []domain.Product
}

// PredictiveSearchResolved carries the result of a predictive search submission.
type PredictiveSearchResolved struct {
	Sub      services.Submission
	Response *domain.PredictiveSearchResponse
	Err      error
}

// PageDirection says where a loaded page goes relative to the loaded ones.
type PageDirection int

const (
	// PageReplace starts a new listing.
	PageReplace PageDirection = iota
	// PageNext appends after the loaded products.
	PageNext
	// PagePrevious prepends before the loaded products.
	PagePrevious
)

// SearchPageLoaded carries one page of a product search.
type SearchPageLoaded struct {
	Sub       services.Submission
	Direction PageDirection
	Page      *domain.SearchResultsPage
	Err       error
}

// CartLoaded carries the deferred session cart. Cart is nil when there is none.
type CartLoaded struct {
	Cart *domain.Cart
	Err  error
}

// AddToCart asks the cart to add one unit of a variant.
type AddToCart struct {
	Variant domain.ProductVariant
}

// AddProductToCart returns the command adding p's selected variant to the cart.
// Products without an available variant report that they are sold out.
func AddProductToCart(p *domain.Product) tea.Cmd {
	if p == nil {
		return nil
	}
	if p.SelectedVariant == nil || !p.SelectedVariant.AvailableForSale {
		text := fmt.Sprintf("%s is sold out", p.Title)
		return func() tea.Msg { return StatusMessage{Text: text} }
	}
	variant := *p.SelectedVariant
	return func() tea.Msg { return AddToCart{Variant: variant} }
}

// CartMutationResolved carries the result of a cart mutation submission.
type CartMutationResolved struct {
	Sub  services.Submission
	Cart *domain.Cart
	Err  error
}

// CartChanged reports the cart as currently displayed, pending changes included.
type CartChanged struct {
	Cart *domain.Cart
}

// LinkSelected is sent when a navigation link is chosen.
type LinkSelected struct {
	Link domain.NavLink
}

// OpenURL asks the app to open a URL in the browser.
type OpenURL struct {
	URL string
}

// SettingsReloaded carries settings re-read after the config file changed.
type SettingsReloaded struct {
	Settings *domain.AppSettings
	Err      error
}

// StatusMessage shows a transient line in the status bar.
type StatusMessage struct {
	Text string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
