package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "weathergrip/internal/ui/input/types"
)

// KeyMap lists the bindings shown in the footer. The input handler does the
// actual dispatch.
type KeyMap struct {
	mode inputtypes.Mode

	Submit   key.Binding
	Navigate key.Binding
	Dismiss  key.Binding
	Search   key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

// DefaultKeyMap returns the footer bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		mode:     inputtypes.ModeSearch,
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Navigate: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "suggestions")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Search:   key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "search")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns the bindings for the current mode
func (k KeyMap) ShortHelp() []key.Binding {
	if k.mode == inputtypes.ModeSearch {
		return []key.Binding{k.Submit, k.Navigate, k.Dismiss, k.ForceQ}
	}
	return []key.Binding{k.Search, k.Refresh, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Navigate, k.Dismiss},
		{k.Search, k.Refresh, k.Help, k.Quit, k.ForceQ},
	}
}

// ForMode returns a copy describing mode
func (k KeyMap) ForMode(mode inputtypes.Mode) KeyMap {
	k.mode = mode
	return k
}
