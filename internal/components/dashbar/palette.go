package dashbar

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/dash/internal/ui"
)

// Palette manages the matching labels, rendering, and navigation.
type Palette struct {
	items        []string
	query        string
	index        int
	scrollOffset int  // First visible item index
	moved        bool // Selection changed by the user since the last filter
	theme        *ui.Theme
	width        int
}

// NewPalette creates a new palette manager.
func NewPalette(theme *ui.Theme, width int) *Palette {
	return &Palette{
		theme: theme,
		width: width,
	}
}

// SetWidth updates the palette width.
func (p *Palette) SetWidth(width int) {
	p.width = width
}

// SetItems replaces the listed labels and resets the selection.
func (p *Palette) SetItems(items []string, query string) {
	p.items = items
	p.query = query
	p.index = 0
	p.scrollOffset = 0
	p.moved = false
}

// NavigateUp moves selection up in palette.
// Scrolls viewport if cursor moves above visible range.
func (p *Palette) NavigateUp() {
	if p.index > 0 {
		p.index--
		p.moved = true
		if p.index < p.scrollOffset {
			p.scrollOffset = p.index
		}
	}
}

// NavigateDown moves selection down in palette.
// Scrolls viewport if cursor moves below visible range.
func (p *Palette) NavigateDown() {
	if p.index < len(p.items)-1 {
		p.index++
		p.moved = true
		maxVisibleIndex := p.scrollOffset + MaxPaletteItems - 1
		if p.index > maxVisibleIndex {
			p.scrollOffset = p.index - MaxPaletteItems + 1
		}
	}
}

// GetSelected returns the currently selected label.
func (p *Palette) GetSelected() (string, bool) {
	if p.index >= 0 && p.index < len(p.items) {
		return p.items[p.index], true
	}
	return "", false
}

// Moved reports whether the user picked the selection with up/down.
func (p *Palette) Moved() bool {
	return p.moved
}

// IsEmpty returns true if palette has no items.
func (p *Palette) IsEmpty() bool {
	return len(p.items) == 0
}

// Size returns the number of items in palette.
func (p *Palette) Size() int {
	return len(p.items)
}

// Reset clears the palette.
func (p *Palette) Reset() {
	p.SetItems(nil, "")
}

// GetHeight returns the height needed to display the palette.
func (p *Palette) GetHeight() int {
	return min(len(p.items), MaxPaletteItems)
}

// View renders the visible labels with a selection indicator.
func (p *Palette) View() string {
	if p.IsEmpty() {
		return ""
	}

	visibleEnd := min(p.scrollOffset+MaxPaletteItems, len(p.items))
	lines := make([]string, 0, visibleEnd-p.scrollOffset)

	for i := p.scrollOffset; i < visibleEnd; i++ {
		if i == p.index {
			lines = append(lines, p.theme.Palette.Selected.Width(p.width).Render("▶ "+p.items[i]))
			continue
		}
		lines = append(lines, p.theme.Palette.Item.Width(p.width).Render("  "+p.highlight(p.items[i])))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// highlight renders the first case-insensitive occurrence of the query.
func (p *Palette) highlight(label string) string {
	query := strings.TrimSpace(p.query)
	if query == "" {
		return label
	}
	start, end := foldIndex(label, query)
	if start < 0 {
		return label
	}
	return label[:start] + p.theme.Palette.Match.Render(label[start:end]) + label[end:]
}

// foldIndex returns the byte span of the first occurrence of substr in s,
// comparing rune by rune. Lowercased runes may differ in byte length, so the
// span is measured on s itself.
func foldIndex(s, substr string) (int, int) {
	needle := []rune(substr)
	if len(needle) == 0 {
		return -1, -1
	}
	for start := range s {
		matched := 0
		end := len(s)
		for i, r := range s[start:] {
			if matched == len(needle) {
				end = start + i
				break
			}
			if !foldEqual(r, needle[matched]) {
				break
			}
			matched++
		}
		if matched == len(needle) {
			return start, end
		}
	}
	return -1, -1
}

func foldEqual(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b) || strings.EqualFold(string(a), string(b))
}
