package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered region of the layout.
type Panel struct {
	ID      string
	Title   string
	Bounds  Rect
	Focused bool
}

// Inner returns the size available to the body inside the border and the
// title row.
func (p Panel) Inner() (w, h int) {
	return max(p.Bounds.W-4, 0), max(p.Bounds.H-3, 0)
}

// Render draws body inside the panel border, clipped to Bounds.
func (p Panel) Render(body string) string {
	if p.Bounds.W < 2 || p.Bounds.H < 2 {
		return ""
	}
	style := Styles.Panel
	if p.Focused {
		style = Styles.PanelFocused
	}
	innerW, innerH := p.Inner()

	var b strings.Builder
	if p.Title != "" {
		b.WriteString(Styles.PanelTitle.Render(p.Title))
	}
	lines := strings.Split(body, "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().MaxWidth(innerW).Render(line))
	}

	return style.
		Width(p.Bounds.W - 2).
		Height(p.Bounds.H - 2).
		MaxHeight(p.Bounds.H).
		Render(b.String())
}
