// Package menu provides the mobile navigation aside for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

// Aside texts.
const (
	Heading   = "MENU"
	AriaLabel = "Main navigation menu"
)

// View represents the mobile menu aside.
type View struct {
	styles   *styles.Styles
	items    []domain.NavLink
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view holding only the home link.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		items:    services.MobileLinks(nil),
		selected: 0,
		width:    40,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetLinks replaces the header links. Home is always first.
func (v *View) SetLinks(links []domain.NavLink) {
	v.items = services.MobileLinks(links)
	if v.selected >= len(v.items) {
		v.selected = len(v.items) - 1
	}
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			link := v.items[v.selected]
			return v, tea.Batch(
				func() tea.Msg { return messages.LinkSelected{Link: link} },
				func() tea.Msg { return messages.AsideClosed{} },
			)

		case "esc":
			return v, func() tea.Msg { return messages.AsideClosed{} }
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(Heading))
	b.WriteString("\n")
	b.WriteString(v.styles.Render(styles.Text{Variant: styles.XSmall, Muted: true}, AriaLabel))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		label := v.styles.Render(styles.Text{Variant: styles.Nav}, item.Title)
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Render(item.Title)
		}
		if item.External {
			label += v.styles.Muted.Render(" ↗")
		}
		b.WriteString(cursor + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Open  [Esc] Close"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Links returns the rendered links, home first.
func (v *View) Links() []domain.NavLink {
	return v.items
}
