package ui

import (
	"context"
	"strings"

	"rover/internal/toolbar"
	"rover/internal/ui/textutil"
)

// ToolStrip is the toolbar row: the global tools followed by the tools of
// the current screen.
type ToolStrip struct {
	global toolbar.Toolbar
	screen toolbar.Toolbar
	cursor int
}

// NewToolStrip creates a strip showing global on every screen.
func NewToolStrip(global toolbar.Toolbar) *ToolStrip {
	return &ToolStrip{global: global}
}

// SetScreen replaces the screen-specific tools. The cursor is clamped.
func (s *ToolStrip) SetScreen(tools toolbar.Toolbar) {
	s.screen = tools
	if s.cursor >= s.Tools().Len() {
		s.cursor = max(s.Tools().Len()-1, 0)
	}
}

// Tools is the combined toolbar in display order.
func (s *ToolStrip) Tools() toolbar.Toolbar {
	return s.global.Concat(s.screen)
}

// Cursor is the index of the selected tool.
func (s *ToolStrip) Cursor() int { return s.cursor }

// Move selects the neighbouring tool, wrapping.
func (s *ToolStrip) Move(delta int) {
	n := s.Tools().Len()
	if n == 0 {
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Selected returns the tool under the cursor.
func (s *ToolStrip) Selected() (toolbar.Tool, bool) {
	tools := s.Tools()
	if s.cursor < 0 || s.cursor >= tools.Len() {
		return toolbar.Tool{}, false
	}
	return tools[s.cursor], true
}

// Invoke fires the selected tool.
func (s *ToolStrip) Invoke(ctx context.Context) {
	s.Tools().Invoke(ctx, s.cursor)
}

// View renders the strip. The selected tool is highlighted only while the
// strip has focus; its name is shown after the icons.
func (s *ToolStrip) View(width int, focused bool) string {
	var b strings.Builder
	for i, t := range s.global {
		b.WriteString(s.renderTool(i, t, focused))
	}
	if len(s.global) > 0 && len(s.screen) > 0 {
		b.WriteString(Styles.Muted.Render("│"))
	}
	for i, t := range s.screen {
		b.WriteString(s.renderTool(len(s.global)+i, t, focused))
	}
	row := b.String()
	if t, ok := s.Selected(); ok && focused {
		row += " " + Styles.Hint.Render(t.Name)
	}
	if textutil.StyledWidth(row) > width {
		return Styles.Toolbar.MaxWidth(width).Render(row)
	}
	return row
}

func (s *ToolStrip) renderTool(i int, t toolbar.Tool, focused bool) string {
	if focused && i == s.cursor {
		return Styles.ToolSelected.Render(t.Icon)
	}
	return Styles.Tool.Render(t.Icon)
}
