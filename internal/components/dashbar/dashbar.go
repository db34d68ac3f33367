package dashbar

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/dash/internal/dash"
	"github.com/renato0307/dash/internal/keyboard"
	"github.com/renato0307/dash/internal/logging"
	"github.com/renato0307/dash/internal/messages"
	"github.com/renato0307/dash/internal/types"
	"github.com/renato0307/dash/internal/ui"
)

// DashBar is the search dialog. It owns one dash.Session while open.
type DashBar struct {
	// State
	state DashBarState
	width int
	theme *ui.Theme
	keys  *keyboard.Keys

	// Session state, reset on every Open
	session  *dash.Session
	browsing bool // History key pressed since the last edit

	// Components
	palette *Palette
	input   *Input
}

// New creates a hidden dash dialog.
func New(theme *ui.Theme, keys *keyboard.Keys) *DashBar {
	return &DashBar{
		state:   StateHidden,
		width:   80,
		theme:   theme,
		keys:    keys,
		palette: NewPalette(theme, 80),
		input:   NewInput(theme, 80),
	}
}

// SetWidth updates component widths.
func (d *DashBar) SetWidth(width int) {
	d.width = width
	d.palette.SetWidth(width)
	d.input.SetWidth(width)
}

// Open shows the dialog for session with an empty input.
func (d *DashBar) Open(session *dash.Session) {
	d.session = session
	d.state = StateOpen
	d.browsing = false
	d.input.Clear()
	d.refilter()
}

// GetState returns the current state.
func (d *DashBar) GetState() DashBarState {
	return d.state
}

// IsActive returns true if the dialog is accepting input.
func (d *DashBar) IsActive() bool {
	return d.state == StateOpen
}

// GetInput returns the current input string.
func (d *DashBar) GetInput() string {
	return d.input.Get()
}

// Valid reports whether Enter would run something.
func (d *DashBar) Valid() bool {
	_, ok := d.target()
	return ok
}

// GetHeight returns the current height (separators, input, palette, hints).
func (d *DashBar) GetHeight() int {
	if d.state == StateHidden {
		return 0
	}
	return 4 + d.palette.GetHeight()
}

// Update handles messages for the dialog.
func (d *DashBar) Update(msg tea.Msg) (*DashBar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if d.state == StateOpen {
			return d.handleOpenState(msg)
		}
	}
	return d, nil
}

// handleOpenState handles input while the dialog is visible.
func (d *DashBar) handleOpenState(msg tea.KeyMsg) (*DashBar, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Dismiss):
		return d.close("")
	case key.Matches(msg, d.keys.Confirm):
		return d.handleConfirm()
	case key.Matches(msg, d.keys.Complete):
		if label, ok := d.palette.GetSelected(); ok {
			d.setText(label)
		}
		return d, nil
	case key.Matches(msg, d.keys.Up):
		d.palette.NavigateUp()
		return d, nil
	case key.Matches(msg, d.keys.Down):
		d.palette.NavigateDown()
		return d, nil
	case key.Matches(msg, d.keys.HistoryPrev):
		d.browseHistory(d.session.History().Previous)
		return d, nil
	case key.Matches(msg, d.keys.HistoryNext):
		d.browseHistory(d.session.History().Next)
		return d, nil
	}

	result := d.input.HandleKeyMsg(msg)
	switch result.Action {
	case InputActionChar, InputActionPaste:
		d.input.AddText(result.Text)
	case InputActionBackspace:
		d.input.Backspace()
	default:
		return d, nil
	}
	d.browsing = false
	d.refilter()
	return d, nil
}

// browseHistory puts a history entry in the input. The first press shows
// the current entry; later presses rotate with step.
func (d *DashBar) browseHistory(step func() (string, bool)) {
	var (
		label string
		ok    bool
	)
	if d.browsing {
		label, ok = step()
	} else {
		label, ok = d.session.History().Current()
	}
	if !ok {
		return
	}
	d.browsing = true
	d.setText(label)
}

// handleConfirm runs the target label, if any. Invalid input keeps the
// dialog open and changes nothing.
func (d *DashBar) handleConfirm() (*DashBar, tea.Cmd) {
	label, ok := d.target()
	if !ok {
		return d, nil
	}

	action, ok := d.session.Confirm(context.Background(), label)
	if !ok {
		return d, nil
	}

	logging.Debug("dash confirmed", "label", label)
	_, closed := d.close(label)
	return d, tea.Batch(closed, messages.ActionCmd(label, action))
}

// target returns the label Enter would run: the input when it is a known
// label, otherwise a palette entry the user moved to.
func (d *DashBar) target() (string, bool) {
	if d.session == nil {
		return "", false
	}
	if text := d.input.Get(); d.session.Valid(text) {
		return text, true
	}
	if d.palette.Moved() {
		return d.palette.GetSelected()
	}
	return "", false
}

func (d *DashBar) close(label string) (*DashBar, tea.Cmd) {
	d.state = StateHidden
	d.session = nil
	d.browsing = false
	d.input.Clear()
	d.palette.Reset()
	return d, func() tea.Msg {
		return types.DashClosedMsg{Label: label}
	}
}

func (d *DashBar) setText(text string) {
	d.input.Set(text)
	d.refilter()
}

func (d *DashBar) refilter() {
	query := d.input.Get()
	d.palette.SetItems(d.session.Match(query), query)
}

// View renders the dialog.
func (d *DashBar) View() string {
	if d.state == StateHidden {
		return ""
	}

	separator := lipgloss.NewStyle().
		Foreground(d.theme.Border).
		Width(d.width).
		Render(strings.Repeat("─", d.width))

	sections := []string{separator, d.input.View(d.input.IsEmpty() || d.Valid())}
	if palette := d.palette.View(); palette != "" {
		sections = append(sections, palette)
	}
	sections = append(sections, separator, d.viewHints())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewHints renders the key hints. The run hint is dimmed while Enter
// would do nothing.
func (d *DashBar) viewHints() string {
	hintStyle := lipgloss.NewStyle().
		Foreground(d.theme.Subtle)
	disabledStyle := lipgloss.NewStyle().
		Foreground(d.theme.Dimmed).
		Faint(true)

	render := func(b key.Binding) string {
		return b.Help().Key + " " + b.Help().Desc
	}

	run := hintStyle.Render(render(d.keys.Confirm))
	if !d.Valid() {
		run = disabledStyle.Render(render(d.keys.Confirm))
	}

	others := []string{
		render(d.keys.Complete),
		render(d.keys.HistoryPrev),
		render(d.keys.HistoryNext),
		render(d.keys.Dismiss),
	}

	return lipgloss.NewStyle().
		Width(d.width).
		Padding(0, 1).
		Render(run + hintStyle.Render("  "+strings.Join(others, "  ")))
}
