// Package input provides the search field of the search drawer.
package input

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
)

// Field texts.
const (
	Placeholder = "Find your coffee"
	HintIdle    = "type to search · esc to close"
	HintTyped   = "enter to search · esc to clear"
)

const (
	charLimit = 256
	minWidth  = 10
	// chrome is the space taken by the icon, border and padding.
	chrome = 8
)

// SearchInput is the drawer's search field. Esc clears typed text before it
// closes anything, and a hint line shows the keys and the debounce.
type SearchInput struct {
	field    textinput.Model
	styles   *styles.Styles
	width    int
	debounce time.Duration
}

// Option configures a SearchInput.
type Option func(*SearchInput)

// WithDebounce shows the search debounce in the hint line.
func WithDebounce(d time.Duration) Option {
	return func(s *SearchInput) {
		s.debounce = d
	}
}

// NewSearchInput creates a focused search field.
func NewSearchInput(s *styles.Styles, opts ...Option) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = Placeholder
	field.CharLimit = charLimit
	field.Prompt = ""
	field.Focus()

	in := &SearchInput{field: field, styles: s}
	for _, opt := range opts {
		opt(in)
	}
	in.SetWidth(40)
	return in
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards a message to the field. Esc with text typed clears it.
// handled reports whether Esc was consumed that way.
func (s *SearchInput) Update(msg tea.Msg) (in *SearchInput, cmd tea.Cmd, handled bool) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return s, nil, s.Clear()
	}
	s.field, cmd = s.field.Update(msg)
	return s, cmd, false
}

// Clear empties the field and reports whether there was anything to clear.
func (s *SearchInput) Clear() bool {
	if s.field.Value() == "" {
		return false
	}
	s.field.Reset()
	return true
}

// Hint returns the key hint for the current field state.
func (s *SearchInput) Hint() string {
	if s.field.Value() == "" {
		return HintIdle
	}
	if s.debounce > 0 {
		return fmt.Sprintf("results after %s · %s", s.debounce, HintTyped)
	}
	return HintTyped
}

// View renders the icon, the field and the hint line.
func (s *SearchInput) View() string {
	icon := s.styles.Title.Render("⌕ ")
	if !s.field.Focused() {
		icon = s.styles.Dimmed.Render("⌕ ")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, icon, s.styles.InputField.Render(s.field.View()))
	return lipgloss.JoinVertical(lipgloss.Left, row, s.styles.Dimmed.Render(s.Hint()))
}

// Value returns the typed text.
func (s *SearchInput) Value() string {
	return s.field.Value()
}

// SetValue replaces the typed text.
func (s *SearchInput) SetValue(value string) {
	s.field.SetValue(value)
}

// Focus focuses the field.
func (s *SearchInput) Focus() tea.Cmd {
	return s.field.Focus()
}

// Blur unfocuses the field.
func (s *SearchInput) Blur() {
	s.field.Blur()
}

// Focused reports whether the field has focus.
func (s *SearchInput) Focused() bool {
	return s.field.Focused()
}

// SetWidth sets the outer width. The field never shrinks below minWidth.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.field.Width = max(width-chrome, minWidth)
}

// Width returns the outer width.
func (s *SearchInput) Width() int {
	return s.width
}
