package commands

import (
	"fmt"

	"github.com/renato0307/dash/internal/logging"
	"github.com/renato0307/dash/internal/menu"
)

// Binder turns menu-file command specs into actions.
type Binder struct {
	registry *Registry
	executor *ProcessExecutor
}

// NewBinder creates a binder resolving builtins through registry.
func NewBinder(registry *Registry, executor *ProcessExecutor) *Binder {
	return &Binder{
		registry: registry,
		executor: executor,
	}
}

// Bind implements menu.BindFunc.
func (b *Binder) Bind(path string, spec menu.CommandSpec) (menu.Action, error) {
	switch spec.Type {
	case TypeExec:
		if err := LookPath(spec.Argv); err != nil {
			return nil, err
		}
		argv := append([]string(nil), spec.Argv...)
		return func() error {
			out, err := b.executor.Execute(argv)
			if err != nil {
				return err
			}
			logging.Debug("exec action finished", "path", path, "output", out)
			return nil
		}, nil

	case TypeCopy:
		text := spec.Text
		return func() error {
			return CopyToClipboard(text)
		}, nil

	case TypeBuiltin:
		cmd := b.registry.Get(spec.Name)
		if cmd == nil {
			return nil, fmt.Errorf("unknown builtin %q", spec.Name)
		}
		return menu.Action(cmd.Execute), nil

	default:
		return nil, fmt.Errorf("unknown action type %q", spec.Type)
	}
}
