// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back closes the open aside or returns to the home page.
	Back key.Binding

	// Search opens the search aside.
	Search key.Binding

	// Cart opens the cart aside.
	Cart key.Binding

	// Menu opens the mobile menu aside.
	Menu key.Binding

	// Home shows the home page.
	Home key.Binding

	// Typography shows the typography showcase.
	Typography key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// AddToCart adds the selected product to the cart.
	AddToCart key.Binding

	// LoadMore loads the next page of results.
	LoadMore key.Binding

	// LoadPrevious loads the previous page of results.
	LoadPrevious key.Binding

	// Increase adds one to the selected cart line.
	Increase key.Binding

	// Decrease removes one from the selected cart line.
	Decrease key.Binding

	// Remove deletes the selected cart line.
	Remove key.Binding

	// Checkout opens the checkout page.
	Checkout key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Cart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		Typography: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "typography"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to cart"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "load more"),
		),
		LoadPrevious: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "load previous"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "decrease"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "checkout"),
		),
	}
}

// ShortHelp returns the global keybindings.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Cart, k.Menu, k.Quit}
}

// ProductsHelp returns keybindings for pages listing products.
func (k *KeyMap) ProductsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.AddToCart, k.Search, k.Cart, k.Quit}
}

// ResultsHelp returns keybindings for the search results page.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.AddToCart, k.LoadMore, k.LoadPrevious, k.Home}
}

// SearchHelp returns keybindings for the search aside.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		k.Select,
		k.Back,
	}
}

// CartHelp returns keybindings for the cart aside.
func (k *KeyMap) CartHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Increase, k.Decrease, k.Remove, k.Checkout, k.Back}
}

// MenuHelp returns keybindings for the mobile menu aside.
func (k *KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Search, k.Cart, k.Menu, k.Back},
		{k.Home, k.Typography, k.Quit},
		{k.AddToCart, k.LoadMore, k.LoadPrevious},
		{k.Increase, k.Decrease, k.Remove, k.Checkout},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
