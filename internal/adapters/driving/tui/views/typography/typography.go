// Package typography provides the typography showcase view for the TUI.
package typography

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
)

var headingSamples = []string{
	"Heading 1 - Main Page Title",
	"Heading 2 - Section Title",
	"Heading 3 - Subsection Title",
	"Heading 4 - Component Title",
	"Heading 5 - Small Section",
	"Heading 6 - Minor Heading",
}

var contentSamples = []struct {
	variant styles.Variant
	muted   bool
	text    string
}{
	{styles.Lead, false, "This is a lead paragraph that introduces important content with emphasis and larger text."},
	{styles.Large, false, "This is large body text for important content that needs more prominence than regular paragraphs."},
	{styles.Base, false, "This is the standard body text used throughout the application. It provides the baseline " +
		"reading experience with optimal legibility and comfortable line spacing."},
	{styles.Small, true, "This is small text often used for captions, metadata, or secondary information."},
	{styles.XSmall, true, "This is extra small text for disclaimers, fine print, or tertiary information."},
}

var colourSamples = map[styles.Colour]string{
	styles.ColourDefault:     "Default color text",
	styles.ColourPrimary:     "Primary color text",
	styles.ColourSecondary:   "Secondary color text",
	styles.ColourAccent:      "Accent color text",
	styles.ColourMuted:       "Muted color text",
	styles.ColourDestructive: "Destructive color text",
	styles.ColourDarkBrown:   "Dark Brown theme color",
	styles.ColourMediumBrown: "Medium Brown theme color",
	styles.ColourGoldenTan:   "Golden Tan theme color",
	styles.ColourLightBlue:   "Light Blue theme color",
}

// View is the typography showcase page.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewView creates a new typography view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles scrolling.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// Content renders the full showcase.
func (v *View) Content() string {
	s := v.styles
	h2 := func(text string) string { return s.Heading(2, text) + "\n" }

	var b strings.Builder

	b.WriteString(h2("Typography Hierarchy"))
	for i, text := range headingSamples {
		b.WriteString(s.Heading(i+1, text) + "\n")
	}

	b.WriteString("\n" + h2("Content Variants"))
	for _, sample := range contentSamples {
		b.WriteString(s.Render(styles.Text{Variant: sample.variant, Muted: sample.muted}, sample.text) + "\n")
	}

	b.WriteString("\n" + h2("Theme Colors"))
	for _, colour := range styles.Colours() {
		b.WriteString(s.Render(styles.Text{Colour: colour}, colourSamples[colour]) + "\n")
	}

	b.WriteString("\n" + h2("Font Weights"))
	for _, weight := range styles.Weights() {
		label := strings.ToUpper(string(weight[:1])) + string(weight[1:])
		b.WriteString(s.Render(styles.Text{Weight: weight}, label+" weight text") + "\n")
	}

	b.WriteString("\n" + h2("Specialized Variants"))
	b.WriteString(s.Render(styles.Text{Variant: styles.Caption}, "Caption Text") + "\n")
	b.WriteString(s.Render(styles.Text{}, "Regular content with a caption above") + "\n")
	b.WriteString(s.Render(styles.Text{Variant: styles.Code}, `const greeting = "Hello, World!";`) + "\n")
	b.WriteString(s.Render(styles.Text{Variant: styles.Blockquote},
		"\"The best way to predict the future is to create it.\" - This is a blockquote "+
			"example showcasing the italic styling and left border.") + "\n")

	b.WriteString("\n" + h2("Link Examples"))
	b.WriteString(fmt.Sprintf("This paragraph contains a %s and a %s.\n",
		s.Render(styles.Text{Link: true, Colour: styles.ColourPrimary}, "primary colored link"),
		s.Render(styles.Text{Link: true, Colour: styles.ColourMediumBrown}, "medium brown themed link"),
	))
	b.WriteString(s.Render(styles.Text{Muted: true}, "This muted paragraph has a ") +
		s.Render(styles.Text{Link: true, Muted: true}, "muted link") + "\n")

	b.WriteString("\n" + h2("Navigation"))
	b.WriteString(s.Render(styles.Text{Variant: styles.Nav}, "Collections  Blog  Policies  About") + "\n")

	return b.String()
}

// View renders the visible part of the showcase.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	footer := v.styles.Help.Render(fmt.Sprintf(
		"[↑/↓/PgUp/PgDn] scroll  %3.0f%%  [esc] back", v.viewport.ScrollPercent()*100))
	return v.viewport.View() + "\n" + footer
}

// SetDimensions sets the view dimensions and re-renders the content.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.viewport.Width = width
	v.viewport.Height = height - 1
	if v.viewport.Height < 1 {
		v.viewport.Height = 1
	}
	v.viewport.SetContent(v.Content())
}

// Refresh re-renders the content after a theme change.
func (v *View) Refresh() {
	v.viewport.SetContent(v.Content())
}

// AtTop returns whether the view is scrolled to the top.
func (v *View) AtTop() bool {
	return v.viewport.AtTop()
}
