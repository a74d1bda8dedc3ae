package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

func headerLinks() []domain.NavLink {
	return []domain.NavLink{
		{ID: "1", Title: "Collections", URL: "/collections"},
		{ID: "2", Title: "Blog", URL: "/blogs/journal"},
		{ID: "3", Title: "Roasters", URL: "https://roasters.example.com", External: true},
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	require.Len(t, view.Links(), 1)
	assert.Equal(t, "Home", view.Links()[0].Title)
	assert.Equal(t, "/", view.Links()[0].URL)
	assert.Equal(t, 0, view.Selected())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Nil(t, view.Init())
}

func TestView_SetLinks_HomeFirst(t *testing.T) {
	view := NewView(nil)

	view.SetLinks(headerLinks())

	links := view.Links()
	require.Len(t, links, 4)
	assert.Equal(t, "Home", links[0].Title)
	assert.Equal(t, "Collections", links[1].Title)
}

func TestView_SetLinks_ClampsSelection(t *testing.T) {
	view := NewView(nil)
	view.SetLinks(headerLinks())
	view.selected = 3

	view.SetLinks(nil)

	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil)
	view.SetLinks(headerLinks())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(j)
	view.Update(j)
	view.Update(j)
	assert.Equal(t, 3, view.Selected(), "stops at the last link")

	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(k)
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected(), "stops at the first link")
}

func TestView_Update_EnterSelectsLink(t *testing.T) {
	view := NewView(nil)
	view.SetLinks(headerLinks())
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msgs := collect(cmd)
	require.Len(t, msgs, 2)
	assert.Equal(t, messages.LinkSelected{Link: headerLinks()[0]}, msgs[0])
	assert.Equal(t, messages.AsideClosed{}, msgs[1])
}

func TestView_Update_EscCloses(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.AsideClosed{}, cmd())
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil)

	assert.Equal(t, "Initialising...", view.View())
}

func TestView_View(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(40, 20)
	view.SetLinks(headerLinks())

	out := view.View()

	assert.Contains(t, out, Heading)
	assert.Contains(t, out, AriaLabel)
	assert.Contains(t, out, "> Home")
	assert.Contains(t, out, "Collections")
	assert.Contains(t, out, "Roasters ↗")
}
