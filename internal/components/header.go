package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/dash/internal/ui"
)

type Header struct {
	appName    string
	menuSource string
	entryCount int
	width      int
	theme      *ui.Theme
}

func NewHeader(appName string, theme *ui.Theme) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
	}
}

func (h *Header) SetMenuSource(source string) {
	h.menuSource = source
}

func (h *Header) SetEntryCount(count int) {
	h.entryCount = count
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.theme.Primary)

	infoStyle := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1)

	// Left side: "dash • menu.yaml"
	leftParts := []string{h.appName}
	if h.menuSource != "" {
		leftParts = append(leftParts, h.menuSource)
	}
	left := headerStyle.Render(strings.Join(leftParts, " • "))

	// Right side: "12 actions"
	var right string
	if h.entryCount > 0 {
		right = infoStyle.Render(fmt.Sprintf("%d actions", h.entryCount))
	}

	spacing := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	spacer := lipgloss.NewStyle().
		Width(spacing).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
