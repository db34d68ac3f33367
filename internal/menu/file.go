package menu

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/dash/internal/logging"
)

// CommandSpec describes what a leaf item does when invoked. The host decides
// how each Type is turned into an Action (see Bind).
type CommandSpec struct {
	Type string   `json:"type"`
	Argv []string `json:"argv,omitempty"`
	Text string   `json:"text,omitempty"`
	Name string   `json:"name,omitempty"`
}

// Item is a menu node loaded from a menu file.
type Item struct {
	Name    string       `json:"label"`
	Items   []*Item      `json:"items,omitempty"`
	Command *CommandSpec `json:"action,omitempty"`

	action Action
}

// Label implements Node.
func (i *Item) Label() string {
	return i.Name
}

// Children implements Node.
func (i *Item) Children() []Node {
	if len(i.Items) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(i.Items))
	for _, child := range i.Items {
		if child != nil {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

// Action implements Node. It is nil until the item is bound.
func (i *Item) Action() Action {
	return i.action
}

// SetAction binds an action to the item.
func (i *Item) SetAction(action Action) {
	i.action = action
}

// File is the on-disk menu document.
type File struct {
	Menus []*Item `json:"menus"`
}

// Nodes returns the top-level menus as crawler nodes.
func Nodes(items []*Item) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		if item != nil {
			nodes = append(nodes, item)
		}
	}
	return nodes
}

// LoadFile reads a menu document from path.
func LoadFile(path string) ([]*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Parse decodes a YAML or JSON menu document.
func Parse(data []byte) ([]*Item, error) {
	var file File
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse menu document: %w", err)
	}
	if len(file.Menus) == 0 {
		return nil, fmt.Errorf("menu document has no menus")
	}
	return file.Menus, nil
}

// BindFunc turns a leaf's command spec into an action. path is the leaf's
// breadcrumb, used for logging and reporting.
type BindFunc func(path string, spec CommandSpec) (Action, error)

// Bind walks items and attaches actions to every leaf carrying a command.
// Leaves that fail to bind stay unbound and are skipped by the crawler.
// It returns the number of bound leaves.
func Bind(items []*Item, bind BindFunc) int {
	bound := 0
	var walk func(item *Item, path string)
	walk = func(item *Item, path string) {
		if len(item.Items) > 0 {
			for _, child := range item.Items {
				if child != nil {
					walk(child, path+DefaultSeparator+CleanLabel(child.Name))
				}
			}
			return
		}
		if item.Command == nil {
			return
		}
		action, err := bind(path, *item.Command)
		if err != nil {
			logging.Warn("menu item left unbound", "path", path, "error", err)
			return
		}
		item.SetAction(action)
		bound++
	}

	for _, item := range items {
		if item != nil {
			walk(item, CleanLabel(item.Name))
		}
	}
	return bound
}
