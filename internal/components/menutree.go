package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/dash/internal/menu"
	"github.com/renato0307/dash/internal/ui"
)

// MenuTree renders the host menu as an indented outline. Unbound leaves are
// dimmed since the dash dialog cannot reach them.
type MenuTree struct {
	items []*menu.Item
	width int
	theme *ui.Theme
}

func NewMenuTree(items []*menu.Item, theme *ui.Theme) *MenuTree {
	return &MenuTree{
		items: items,
		theme: theme,
	}
}

func (t *MenuTree) SetItems(items []*menu.Item) {
	t.items = items
}

func (t *MenuTree) SetWidth(width int) {
	t.width = width
}

func (t *MenuTree) View() string {
	groupStyle := lipgloss.NewStyle().
		Foreground(t.theme.Primary).
		Bold(true)
	leafStyle := lipgloss.NewStyle().
		Foreground(t.theme.Foreground)
	unboundStyle := lipgloss.NewStyle().
		Foreground(t.theme.Dimmed).
		Italic(true)

	var lines []string
	var walk func(items []*menu.Item, depth int)
	walk = func(items []*menu.Item, depth int) {
		for _, item := range items {
			if item == nil {
				continue
			}
			label := menu.CleanLabel(item.Label())
			if label == "" {
				continue
			}
			indent := strings.Repeat(MenuIndent, depth)
			switch {
			case len(item.Items) > 0:
				lines = append(lines, indent+groupStyle.Render(label))
				walk(item.Items, depth+1)
			case item.Action() == nil:
				lines = append(lines, indent+unboundStyle.Render(label))
			default:
				lines = append(lines, indent+leafStyle.Render(label))
			}
		}
	}
	walk(t.items, 0)

	return lipgloss.NewStyle().
		Width(t.width).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
