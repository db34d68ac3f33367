package components

import (
	"github.com/charmbracelet/lipgloss"
)

type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the available height for the body content
// when the bottom area (dialog or hints) takes bottomHeight lines.
func (l *Layout) CalculateBodyHeight(bottomHeight int) int {
	// Reserve space for: header (1) + empty line (1) + status (1)
	reserved := 3 + bottomHeight
	return max(l.height-reserved, 3)
}

// Render builds the full layout
func (l *Layout) Render(header, body, status, bottom string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}

	bodyHeight := l.CalculateBodyHeight(lipgloss.Height(bottom))
	sections = append(sections, lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body))

	sections = append(sections, status)

	if bottom != "" {
		sections = append(sections, bottom)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
