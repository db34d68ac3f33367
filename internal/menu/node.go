// Package menu flattens a host's nested command menu into breadcrumb labels
// ("File > Save") mapped to invocable actions.
package menu

// Action is a zero-argument command supplied by the host.
type Action func() error

// Node is a read-only view of a host menu node. A node has either children
// or an action, never both.
type Node interface {
	Label() string
	Children() []Node
	Action() Action
}
