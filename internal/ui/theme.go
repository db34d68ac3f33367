package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (shortcuts)
	Subtle     lipgloss.AdaptiveColor // Subtle UI elements
	Background lipgloss.AdaptiveColor // Background for overlays

	// Status message colors
	MessageSuccess lipgloss.AdaptiveColor
	MessageError   lipgloss.AdaptiveColor
	MessageInfo    lipgloss.AdaptiveColor

	// Component styles
	Palette   PaletteStyles
	AppTitle  lipgloss.Style // App title with background
	Header    lipgloss.Style
	StatusBar lipgloss.Style
}

// PaletteStyles defines styles for the dash dialog suggestion list
type PaletteStyles struct {
	Item     lipgloss.Style
	Selected lipgloss.Style
	Match    lipgloss.Style // Query highlight inside an item
	Invalid  lipgloss.Style // Input text that is not a known label
}

// finish derives the component styles shared by every theme from its colors.
func (t *Theme) finish(selectedFg, selectedBg, titleBg lipgloss.Color) *Theme {
	t.MessageSuccess = t.Success
	t.MessageError = t.Error
	t.MessageInfo = t.Secondary

	t.Palette.Item = lipgloss.NewStyle().
		Foreground(t.Foreground).
		PaddingLeft(1)

	t.Palette.Selected = lipgloss.NewStyle().
		Foreground(selectedFg).
		Background(selectedBg).
		PaddingLeft(1)

	t.Palette.Match = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Palette.Invalid = lipgloss.NewStyle().
		Foreground(t.Error)

	// AppTitle style with background
	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(titleBg).
		Bold(true)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	t := &Theme{Name: "charm"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Error = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	t.Success = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"}

	t.Border = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "241", Dark: "241"}
	t.Background = lipgloss.AdaptiveColor{Light: "254", Dark: "235"}

	return t.finish("229", "57", "235")
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	t := &Theme{Name: "dracula"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Error = lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"}
	t.Success = lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"}

	t.Border = lipgloss.AdaptiveColor{Light: "61", Dark: "61"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#44475a"}
	t.Background = lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"}

	return t.finish("#282a36", "#bd93f9", "#44475a")
}

// ThemeCatppuccin returns a Catppuccin-inspired theme (Mocha variant)
func ThemeCatppuccin() *Theme {
	t := &Theme{Name: "catppuccin"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#cba6f7"}   // Mauve
	t.Secondary = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#89dceb"} // Sky
	t.Accent = lipgloss.AdaptiveColor{Light: "#ea76cb", Dark: "#f5c2e7"}    // Pink
	t.Foreground = lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#7f849c"}
	t.Error = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}
	t.Success = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}

	t.Border = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#45475a"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#7f849c"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#7c7f93", Dark: "#585b70"}
	t.Background = lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"}

	return t.finish("#1e1e2e", "#cba6f7", "#313244")
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	t := &Theme{Name: "nord"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Error = lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"}
	t.Success = lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#434c5e"}
	t.Background = lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"}

	return t.finish("#2e3440", "#88c0d0", "#3b4252")
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	switch name {
	case "dracula":
		return ThemeDracula()
	case "catppuccin":
		return ThemeCatppuccin()
	case "nord":
		return ThemeNord()
	default:
		return ThemeCharm()
	}
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "catppuccin", "nord"}
}
