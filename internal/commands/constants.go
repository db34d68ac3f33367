package commands

import "time"

const (
	// DefaultExecTimeout bounds how long an exec action may run before it
	// is killed.
	DefaultExecTimeout = 30 * time.Second

	// Action types accepted in menu files.
	TypeExec    = "exec"
	TypeCopy    = "copy"
	TypeBuiltin = "builtin"
)
