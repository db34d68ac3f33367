package messages

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dash/internal/commands"
	"github.com/renato0307/dash/internal/menu"
	"github.com/renato0307/dash/internal/types"
)

// Command layer helpers - return tea.Cmd with appropriate StatusMsg

// ErrorCmd returns a tea.Cmd that produces an error status message.
//
// Example:
//
//	if err != nil {
//	    return messages.ErrorCmd("Failed to load menu: %v", err)
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.ErrorStatusMsg(msg)
	}
}

// SuccessCmd returns a tea.Cmd that produces a success status message.
func SuccessCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.SuccessMsg(msg)
	}
}

// InfoCmd returns a tea.Cmd that produces an info status message.
func InfoCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.InfoMsg(msg)
	}
}

// Action helpers - run menu actions off the UI goroutine

// ActionCmd runs action in a tea.Cmd and reports the outcome as an
// ActionDoneMsg for label.
func ActionCmd(label string, action menu.Action) tea.Cmd {
	return func() tea.Msg {
		return types.ActionDoneMsg{Label: label, Err: action()}
	}
}

// ActionResult turns an ActionDoneMsg into the command the host should run:
// tea.Quit for a quit request, otherwise a status message.
func ActionResult(msg types.ActionDoneMsg) tea.Cmd {
	switch {
	case errors.Is(msg.Err, commands.ErrQuit):
		return tea.Quit
	case msg.Err != nil:
		return ErrorCmd("%s failed: %v", msg.Label, msg.Err)
	default:
		return SuccessCmd("Ran %s", msg.Label)
	}
}
