package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rect is a region of the terminal in cells.
type Rect struct {
	X, Y, W, H int
}

// Layout splits the terminal into the shell's regions, top to bottom: menu
// bar, toolbar, main area and status bar. The main area holds the content
// panel and, when there is room, the right panel.
type Layout struct {
	MenuBar Rect
	Toolbar Rect
	Content Rect
	Right   Rect // zero when hidden
	Status  Rect
}

const (
	chromeRows      = 3 // menu bar, toolbar, status bar
	rightPanelWidth = 30
	minContentWidth = 40
)

// ComputeLayout lays out a width x height terminal. withRight asks for a
// right panel; it is dropped when the content would get narrower than
// minContentWidth.
func ComputeLayout(width, height int, withRight bool) Layout {
	width, height = max(width, 0), max(height, 0)
	mainH := max(height-chromeRows, 0)

	l := Layout{
		MenuBar: Rect{X: 0, Y: 0, W: width, H: min(height, 1)},
		Toolbar: Rect{X: 0, Y: 1, W: width, H: min(max(height-1, 0), 1)},
		Status:  Rect{X: 0, Y: max(height-1, 0), W: width, H: min(height, 1)},
		Content: Rect{X: 0, Y: 2, W: width, H: mainH},
	}
	if withRight && width-rightPanelWidth >= minContentWidth {
		l.Content.W = width - rightPanelWidth
		l.Right = Rect{X: l.Content.W, Y: 2, W: rightPanelWidth, H: mainH}
	}
	return l
}

// HasRight reports whether the right panel is shown.
func (l Layout) HasRight() bool {
	return l.Right.W > 0
}

// placeOver draws top onto base with its top-left corner at column x, row
// y. Cells of base outside top are kept.
func placeOver(base, top string, x, y int) string {
	if top == "" {
		return base
	}
	rows := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		r := y + i
		for r >= len(rows) {
			rows = append(rows, "")
		}
		under := rows[r]
		left := ansi.Truncate(under, x, "")
		if w := lipgloss.Width(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(under, x+lipgloss.Width(line), "")
		rows[r] = left + line + right
	}
	return strings.Join(rows, "\n")
}
