package status

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Nil(t, bar.Init())
}

func TestStatusBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View_States(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *Bar)
		want    string
		notWant string
	}{
		{"ready", func(b *Bar) {}, "Ready", "Error"},
		{"loading", func(b *Bar) { b.SetState(StateLoading) }, "Loading...", "Ready"},
		{"loading message", func(b *Bar) {
			b.SetState(StateLoading)
			b.SetMessage("Adding to cart")
		}, "Adding to cart", "Ready"},
		{"error", func(b *Bar) { b.SetError(errors.New("out of stock")) }, "Error: out of stock", "Ready"},
		{"bare error", func(b *Bar) { b.SetState(StateError) }, "Error", "Ready"},
		{"info", func(b *Bar) { b.SetInfo("Opened checkout") }, "Opened checkout", "Ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			tt.setup(bar)

			view := bar.View()
			assert.Contains(t, view, tt.want)
			assert.NotContains(t, view, tt.notWant)
		})
	}
}

func TestStatusBar_Hints(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(160)

	assert.Contains(t, bar.View(), "/: search")

	bar.SetHints(km.CartHelp())
	assert.Contains(t, bar.View(), "o: checkout")
	assert.NotContains(t, bar.View(), "/: search")

	bar.SetHints(nil)
	assert.Contains(t, bar.View(), "/: search")
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetError(errors.New("boom"))

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
}
