package commands

import (
	"sort"
	"strings"
)

// Registry holds the built-in commands available to menu files.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a registry with the default built-ins.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]Command)}
	r.Register(Command{
		Name:        "quit",
		Description: "Exit the application",
		Execute: func() error {
			return ErrQuit
		},
	})
	return r
}

// Register adds or replaces a command. Names are case-insensitive.
func (r *Registry) Register(cmd Command) {
	r.commands[strings.ToLower(cmd.Name)] = cmd
}

// Get returns a command by name, or nil if not found.
func (r *Registry) Get(name string) *Command {
	cmd, ok := r.commands[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return &cmd
}

// All returns every command sorted by name.
func (r *Registry) All() []Command {
	result := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
