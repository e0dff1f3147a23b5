package components

import "github.com/charmbracelet/bubbles/key"

// SettingsKeyMap defines key bindings inside the settings panel
type SettingsKeyMap struct {
	Apply     key.Binding
	Close     key.Binding
	NextField key.Binding
	PrevField key.Binding
}

// DefaultSettingsKeyMap returns the default settings panel key bindings
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.NextField, k.Close}
}

// FullHelp implements help.KeyMap
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Apply, k.Close}, {k.NextField, k.PrevField}}
}

var settingsKeys = DefaultSettingsKeyMap()
