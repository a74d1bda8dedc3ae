package domain

// Shop is the storefront's shop metadata.
type Shop struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	PrimaryDomainURL string `json:"primaryDomainUrl"`
}

// MenuItemType classifies what a menu item links to.
type MenuItemType string

// Menu item types used by the fallback menu.
const (
	MenuItemHTTP MenuItemType = "HTTP"
	MenuItemPage MenuItemType = "PAGE"
)

// Menu is a navigation menu configured in the platform admin.
type Menu struct {
	ID    string     `json:"id"`
	Items []MenuItem `json:"items"`
}

// MenuItem is one entry of a menu. URLs may be absolute platform URLs.
type MenuItem struct {
	ID         string       `json:"id"`
	ResourceID string       `json:"resourceId,omitempty"`
	Tags       []string     `json:"tags"`
	Title      string       `json:"title"`
	Type       MenuItemType `json:"type"`
	URL        string       `json:"url"`
	Items      []MenuItem   `json:"items,omitempty"`
}

// Header is the critical layout data: the shop and its header menu.
// Menu is nil when the configured menu handle does not exist.
type Header struct {
	Shop Shop  `json:"shop"`
	Menu *Menu `json:"menu"`
}

// Footer is the deferred layout data.
type Footer struct {
	Menu *Menu `json:"menu"`
}

// NavLink is a menu item resolved for rendering.
// External links point outside the storefront.
type NavLink struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	External bool   `json:"external"`
}

// FallbackHeaderMenu is rendered when the header menu cannot be loaded.
func FallbackHeaderMenu() *Menu {
	return &Menu{
		ID: "gid://shopify/Menu/199655587896",
		Items: []MenuItem{
			{
				ID:    "gid://shopify/MenuItem/461609500728",
				Tags:  []string{},
				Title: "Collections",
				Type:  MenuItemHTTP,
				URL:   "/collections",
			},
			{
				ID:    "gid://shopify/MenuItem/461609533496",
				Tags:  []string{},
				Title: "Blog",
				Type:  MenuItemHTTP,
				URL:   "/blogs/journal",
			},
			{
				ID:    "gid://shopify/MenuItem/461609566264",
				Tags:  []string{},
				Title: "Policies",
				Type:  MenuItemHTTP,
				URL:   "/policies",
			},
			{
				ID:         "gid://shopify/MenuItem/461609599032",
				ResourceID: "gid://shopify/Page/92591030328",
				Tags:       []string{},
				Title:      "About",
				Type:       MenuItemPage,
				URL:        "/pages/about",
			},
		},
	}
}

// AsideType identifies which side drawer is open. Only one is open at a time.
type AsideType string

// Aside types.
const (
	AsideClosed AsideType = "closed"
	AsideSearch AsideType = "search"
	AsideCart   AsideType = "cart"
	AsideMobile AsideType = "mobile"
)
