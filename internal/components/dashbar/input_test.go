package dashbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/dash/internal/ui"
)

func TestInput_Editing(t *testing.T) {
	input := NewInput(ui.GetTheme("charm"), 80)
	assert.True(t, input.IsEmpty())

	input.AddText("Sav")
	input.AddText("e…")
	assert.Equal(t, "Save…", input.Get())

	assert.False(t, input.Backspace())
	assert.Equal(t, "Save", input.Get(), "removes a whole rune")

	input.Set("a")
	assert.True(t, input.Backspace())
	assert.True(t, input.Backspace(), "backspace on empty buffer")

	input.Set("File")
	input.Clear()
	assert.Equal(t, "", input.Get())
}

func TestInput_HandleKeyMsg(t *testing.T) {
	input := NewInput(ui.GetTheme("charm"), 80)

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction InputAction
		wantText   string
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, InputActionChar, "a"},
		{"unicode rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, InputActionChar, "é"},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, InputActionChar, " "},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, InputActionBackspace, ""},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("File > Save"), Paste: true}, InputActionPaste, "File > Save"},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, InputActionNone, ""},
		{"ctrl key", tea.KeyMsg{Type: tea.KeyCtrlA}, InputActionNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := input.HandleKeyMsg(tt.msg)
			assert.Equal(t, tt.wantAction, result.Action)
			assert.Equal(t, tt.wantText, result.Text)
		})
	}
}

func TestInput_View(t *testing.T) {
	input := NewInput(ui.GetTheme("charm"), 80)
	assert.Contains(t, input.View(true), Placeholder)

	input.Set("File > Sa")
	view := input.View(false)
	assert.Contains(t, view, "File > Sa")
	assert.NotContains(t, view, Placeholder)
}
