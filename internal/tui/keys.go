package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mmcdole/pomo/internal/tui/components"
)

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Clock
	Toggle   key.Binding
	Reset    key.Binding
	Settings key.Binding

	// Focus
	NextWidget key.Binding
	PrevWidget key.Binding

	// Actions
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		NextWidget: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next timer"),
		),
		PrevWidget: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "prev timer"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Settings},
		{k.NextWidget, k.PrevWidget},
		{k.Help, k.Quit},
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

// settingsHelp is shown in the footer while the settings panel is open
var settingsHelp = components.DefaultSettingsKeyMap()
