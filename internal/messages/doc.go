// Package messages defines message handling patterns and conventions for the
// dash application. This includes error, success, and info messages.
//
// # Message Handling Patterns by Layer
//
// ## Library Layer (internal/menu, internal/history, internal/dash)
//
// Return standard Go errors, or log and continue where the operation must
// not fail (the crawl and every history operation). These packages do not
// depend on UI concerns.
//
// Pattern:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return nil, fmt.Errorf("failed to read menu file: %w", err)
//	}
//
// Use fmt.Errorf with %w to wrap errors and preserve the error chain. Always
// provide context about what operation failed.
//
// History persistence failures are logged with logging.Warn and swallowed:
// the in-memory history stays authoritative for the session.
//
// ## Action Layer (internal/commands)
//
// Menu actions are plain func() error. The UI runs them with ActionCmd and
// turns the outcome into a status message (or tea.Quit) with ActionResult.
//
// ## UI Layer (internal/app, internal/components)
//
// Display results via the status bar. UI components should not format
// error messages; they receive a StatusMsg.
//
// Pattern:
//
//	case types.StatusMsg:
//	    m.statusBar.SetMessage(msg.Message, msg.Type)
//	    return m, tea.Tick(components.StatusBarDisplayDuration, func(t time.Time) tea.Msg {
//	        return types.ClearStatusMsg{}
//	    })
//
// The status bar clears after StatusBarDisplayDuration (5s).
//
// # Error Message Guidelines
//
// 1. Be specific: "Tools > Build failed: exit status 2" not "Operation failed"
// 2. Include context: what failed, on which label or file
// 3. Consistent format: start with what failed
package messages
