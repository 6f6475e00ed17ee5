// Package textutil measures and fits text to terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width is the number of terminal columns s occupies. Wide runes such as
// emoji count as two.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// StyledWidth is Width for strings that may contain ANSI escapes.
func StyledWidth(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	room := maxWidth - Width(Ellipsis)
	if room <= 0 {
		return Ellipsis
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > room {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + Ellipsis
}

// PadRight fits s into exactly width columns, truncating or padding with
// spaces on the right.
func PadRight(s string, width int) string {
	if Width(s) >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-Width(s))
}

// PadLeft is PadRight with the padding on the left.
func PadLeft(s string, width int) string {
	if Width(s) >= width {
		return Truncate(s, width)
	}
	return strings.Repeat(" ", width-Width(s)) + s
}

// Spread places left and right at the two ends of a width-column line.
// When both do not fit, left is truncated first; right is never shortened
// unless it alone is wider than width.
func Spread(left, right string, width int) string {
	rw := Width(right)
	if rw >= width {
		return Truncate(right, width)
	}
	gap := width - rw
	if Width(left) >= gap {
		left = Truncate(left, max(gap-1, 0))
	}
	return PadRight(left, gap) + right
}
