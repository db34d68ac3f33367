package menu

import (
	"strings"

	"github.com/renato0307/dash/internal/logging"
)

// DefaultSeparator joins ancestor labels into a breadcrumb.
const DefaultSeparator = " > "

// Crawler walks a menu tree and collects its leaves.
type Crawler struct {
	Separator string
}

// Crawl flattens roots using the default separator.
func Crawl(roots []Node) *Entries {
	return Crawler{Separator: DefaultSeparator}.Crawl(roots)
}

// Crawl walks roots depth-first in host order. Unlabeled nodes are skipped
// together with their subtree, and leaves without an action are ignored.
// It never fails; a malformed tree only yields fewer entries.
func (c Crawler) Crawl(roots []Node) *Entries {
	sep := c.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	entries := NewEntries()
	var walk func(node Node, path string)
	walk = func(node Node, path string) {
		children := node.Children()
		if len(children) == 0 {
			if action := node.Action(); action != nil {
				entries.Set(path, action)
			}
			return
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			label := CleanLabel(child.Label())
			if label == "" {
				continue
			}
			walk(child, path+sep+label)
		}
	}

	logging.Time("crawl menu", func() {
		for _, root := range roots {
			if root == nil {
				continue
			}
			label := CleanLabel(root.Label())
			if label == "" {
				continue
			}
			walk(root, label)
		}
	})

	return entries
}

// CleanLabel strips mnemonic markers ("_File" -> "File") and surrounding
// whitespace.
func CleanLabel(label string) string {
	return strings.TrimSpace(strings.ReplaceAll(label, "_", ""))
}
