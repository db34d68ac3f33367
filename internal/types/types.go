package types

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

// StatusMsg is shown in the status bar until cleared.
type StatusMsg struct {
	Message string
	Type    MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// Helper functions for creating status messages

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// Dash dialog messages

// OpenDashMsg asks the host to crawl its menu and open the dash dialog.
type OpenDashMsg struct{}

// DashClosedMsg is sent when the dialog hides. Label is the confirmed
// breadcrumb, or empty when the dialog was dismissed.
type DashClosedMsg struct {
	Label string
}

// ActionDoneMsg reports the outcome of a confirmed menu action.
type ActionDoneMsg struct {
	Label string
	Err   error
}
