package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds all keyboard bindings for dash
type Keys struct {
	// Dialog activation
	OpenDash key.Binding // Dash hotkey
	DashKey  key.Binding // Single-key shortcut, configurable

	// Dialog
	HistoryPrev key.Binding // Older history entry
	HistoryNext key.Binding // Newer history entry
	Up          key.Binding // Move palette selection up
	Down        key.Binding // Move palette selection down
	Complete    key.Binding // Complete input with selection
	Confirm     key.Binding // Run selected label
	Dismiss     key.Binding // Close dialog

	// Global
	Quit key.Binding
}

// DefaultDashKey opens the dialog when no other component consumes it.
const DefaultDashKey = "{"

// Default returns the default keyboard configuration
func Default() *Keys {
	return WithDashKey(DefaultDashKey)
}

// WithDashKey returns the default configuration with the dash key replaced.
// An empty dashKey keeps the default.
func WithDashKey(dashKey string) *Keys {
	if dashKey == "" {
		dashKey = DefaultDashKey
	}
	return &Keys{
		OpenDash: key.NewBinding(
			key.WithKeys("alt+x"),
			key.WithHelp("alt+x", "dash"),
		),
		DashKey: key.NewBinding(
			key.WithKeys(dashKey),
			key.WithHelp(dashKey, "dash"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "previous"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
