package commands

import "errors"

// ErrQuit is returned by an action that asks the host to exit.
var ErrQuit = errors.New("quit requested")

// ExecuteFunc runs a built-in command.
type ExecuteFunc func() error

// Command is a built-in host command that menu items can reference by name.
type Command struct {
	Name        string      // Short name used in menu files (e.g., "quit")
	Description string      // Human-readable description
	Execute     ExecuteFunc // Execution function
}
