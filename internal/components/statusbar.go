package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/dash/internal/types"
	"github.com/renato0307/dash/internal/ui"
)

// StatusBar displays status messages (success, errors, info)
type StatusBar struct {
	message     string
	messageType types.MessageType
	messageID   int
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage sets the status message with type and returns its ID. Pass
// the ID to ClearMessage so a stale timer does not clear a newer message.
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) int {
	sb.message = msg
	sb.messageType = msgType
	sb.messageID++
	return sb.messageID
}

// ClearMessage clears the status message if id is still the current one.
func (sb *StatusBar) ClearMessage(id int) {
	if id != sb.messageID {
		return
	}
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// Message returns the current message text.
func (sb *StatusBar) Message() string {
	return sb.message
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (sb *StatusBar) GetHeight() int {
	return 1
}

// View renders the status bar
func (sb *StatusBar) View() string {
	baseStyle := lipgloss.NewStyle().
		Width(sb.width).
		Padding(0, 1)

	if sb.message == "" {
		// Render empty line to reserve space
		return baseStyle.Render("")
	}

	// Use colored background with theme foreground for high visibility
	var messageStyle lipgloss.Style

	switch sb.messageType {
	case types.MessageTypeSuccess:
		messageStyle = baseStyle.
			Background(sb.theme.Success).
			Foreground(sb.theme.Background).
			Bold(true)
	case types.MessageTypeError:
		messageStyle = baseStyle.
			Background(sb.theme.Error).
			Foreground(sb.theme.Background).
			Bold(true)
	case types.MessageTypeInfo:
		messageStyle = baseStyle.
			Background(sb.theme.Primary).
			Foreground(sb.theme.Background).
			Bold(true)
	default:
		messageStyle = baseStyle.
			Background(sb.theme.Primary).
			Foreground(sb.theme.Background).
			Bold(true)
	}

	return messageStyle.Render(StatusPrefix(sb.messageType) + sb.message)
}

// StatusPrefix returns the marker shown before a status message.
func StatusPrefix(msgType types.MessageType) string {
	switch msgType {
	case types.MessageTypeSuccess:
		return "✓ "
	case types.MessageTypeError:
		return "✗ "
	default:
		return "ℹ "
	}
}
