package dashbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/dash/internal/ui"
)

// Input manages the input buffer and keystroke handling.
type Input struct {
	buffer []rune
	theme  *ui.Theme
	width  int
}

// NewInput creates a new input manager.
func NewInput(theme *ui.Theme, width int) *Input {
	return &Input{
		theme: theme,
		width: width,
	}
}

// SetWidth updates the input width.
func (i *Input) SetWidth(width int) {
	i.width = width
}

// Get returns the current input buffer.
func (i *Input) Get() string {
	return string(i.buffer)
}

// Set replaces the input buffer.
func (i *Input) Set(text string) {
	i.buffer = []rune(text)
}

// Clear clears the input buffer.
func (i *Input) Clear() {
	i.buffer = nil
}

// IsEmpty returns true if input buffer is empty.
func (i *Input) IsEmpty() bool {
	return len(i.buffer) == 0
}

// AddText appends typed or pasted text.
func (i *Input) AddText(text string) {
	i.buffer = append(i.buffer, []rune(text)...)
}

// Backspace removes the last character from input buffer.
// Returns true if buffer is now empty.
func (i *Input) Backspace() bool {
	if len(i.buffer) > 0 {
		i.buffer = i.buffer[:len(i.buffer)-1]
	}
	return len(i.buffer) == 0
}

// InputAction is what a keystroke does to the buffer.
type InputAction int

const (
	InputActionNone InputAction = iota
	InputActionChar
	InputActionBackspace
	InputActionPaste
)

// KeyMsgResult represents the result of handling a key message.
type KeyMsgResult struct {
	Action InputAction
	Text   string
}

// HandleKeyMsg processes a keyboard message and returns the action.
func (i *Input) HandleKeyMsg(msg tea.KeyMsg) KeyMsgResult {
	if msg.Paste {
		return KeyMsgResult{
			Action: InputActionPaste,
			Text:   string(msg.Runes),
		}
	}

	switch msg.Type {
	case tea.KeyBackspace:
		return KeyMsgResult{Action: InputActionBackspace}
	case tea.KeySpace:
		return KeyMsgResult{Action: InputActionChar, Text: " "}
	case tea.KeyRunes:
		if !msg.Alt {
			return KeyMsgResult{Action: InputActionChar, Text: string(msg.Runes)}
		}
	}

	return KeyMsgResult{Action: InputActionNone}
}

// View renders the input with cursor. Text that is not a known label is
// rendered in the invalid style.
func (i *Input) View(valid bool) string {
	barStyle := lipgloss.NewStyle().
		Foreground(i.theme.Foreground).
		Width(i.width).
		Padding(0, 1)

	prompt := i.theme.Header.Render("❯ ")

	if i.IsEmpty() {
		placeholder := lipgloss.NewStyle().
			Foreground(i.theme.Dimmed).
			Italic(true).
			Render(Placeholder)
		return barStyle.Render(prompt + "█" + placeholder)
	}

	text := i.Get()
	if !valid {
		text = i.theme.Palette.Invalid.Render(text)
	}
	return barStyle.Render(prompt + text + "█")
}
