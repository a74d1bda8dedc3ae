// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// Storefront palette.
const (
	DarkBrown   = lipgloss.Color("#6C3428")
	MediumBrown = lipgloss.Color("#BA704F")
	GoldenTan   = lipgloss.Color("#DFA878")
	LightBlue   = lipgloss.Color("#CEE6F3")
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	Name domain.ThemeName

	// Primary is the main accent colour.
	Primary lipgloss.TerminalColor

	// Secondary is the secondary accent colour.
	Secondary lipgloss.TerminalColor

	// Accent highlights badges and prices.
	Accent lipgloss.TerminalColor

	// Highlight is the light surface colour used for chips and code.
	Highlight lipgloss.TerminalColor

	// Foreground is the default text colour.
	Foreground lipgloss.TerminalColor

	// Muted is for less important text.
	Muted lipgloss.TerminalColor

	// Destructive indicates problems and removals.
	Destructive lipgloss.TerminalColor

	// Border is the border colour.
	Border lipgloss.TerminalColor
}

// CoffeeTheme returns the brown and light blue storefront theme.
func CoffeeTheme() *Theme {
	return &Theme{
		Name:        domain.ThemeCoffee,
		Primary:     DarkBrown,
		Secondary:   MediumBrown,
		Accent:      GoldenTan,
		Highlight:   LightBlue,
		Foreground:  lipgloss.AdaptiveColor{Light: "#2B1A14", Dark: "#F5EDE6"},
		Muted:       lipgloss.Color("#8A7A70"),
		Destructive: lipgloss.Color("#D14343"),
		Border:      MediumBrown,
	}
}

// MonoTheme returns a theme that leaves colours to the terminal.
func MonoTheme() *Theme {
	return &Theme{
		Name:        domain.ThemeMono,
		Primary:     lipgloss.NoColor{},
		Secondary:   lipgloss.NoColor{},
		Accent:      lipgloss.NoColor{},
		Highlight:   lipgloss.NoColor{},
		Foreground:  lipgloss.NoColor{},
		Muted:       lipgloss.NoColor{},
		Destructive: lipgloss.NoColor{},
		Border:      lipgloss.NoColor{},
	}
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return CoffeeTheme()
}

// ThemeFor returns the theme with the given name, falling back to the default.
func ThemeFor(name domain.ThemeName) *Theme {
	if name == domain.ThemeMono {
		return MonoTheme()
	}
	return DefaultTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Dimmed style for stale content shown while refreshing.
	Dimmed lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Price style for amounts.
	Price lipgloss.Style

	// Badge style for the cart count.
	Badge lipgloss.Style

	// Chip style for product tags.
	Chip lipgloss.Style

	// Button style for calls to action.
	Button lipgloss.Style

	// OutlineButton style for secondary calls to action.
	OutlineButton lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// Header style for the top bar.
	Header lipgloss.Style

	// Footer style for the bottom links.
	Footer lipgloss.Style

	// Drawer style for the side asides.
	Drawer lipgloss.Style

	// Card style for product cards.
	Card lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Reverse(theme.Name == domain.ThemeMono),

		Dimmed: lipgloss.NewStyle().
			Faint(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Destructive),

		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(theme.Primary).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.Highlight).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(theme.Primary).
			Padding(0, 2),

		OutlineButton: lipgloss.NewStyle().
			Foreground(theme.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Drawer: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Apply replaces s with styles built from theme. Views sharing s pick up
// the change on their next render.
func (s *Styles) Apply(theme *Theme) {
	*s = *NewStyles(theme)
}
