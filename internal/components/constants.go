package components

import "time"

// UI component constants
const (
	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) are displayed before automatically clearing.
	StatusBarDisplayDuration = 5 * time.Second

	// MenuIndent is the indentation per menu tree level.
	MenuIndent = "  "
)
