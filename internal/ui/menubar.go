package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rover/internal/menu"
	"rover/internal/ui/textutil"
)

// MenuSelectedMsg is emitted when a menu leaf is chosen, from the bar or
// from the command palette.
type MenuSelectedMsg struct {
	Entry menu.Entry
}

// menuLevel is one open dropdown: the trigger's items or a submenu.
type menuLevel struct {
	title  string
	items  []menu.Node
	cursor int // -1 when nothing is selectable
}

// MenuBar renders the menu bar and its dropdowns and tracks keyboard
// navigation through them.
type MenuBar struct {
	bar    *menu.Bar
	active int
	levels []menuLevel // empty while closed
}

// NewMenuBar creates a closed menu bar over bar.
func NewMenuBar(bar *menu.Bar) *MenuBar {
	return &MenuBar{bar: bar}
}

// Active is the index of the highlighted trigger.
func (m *MenuBar) Active() int { return m.active }

// IsOpen reports whether a dropdown is showing.
func (m *MenuBar) IsOpen() bool { return len(m.levels) > 0 }

// Depth is the number of open dropdown levels.
func (m *MenuBar) Depth() int { return len(m.levels) }

// Open shows the dropdown of the i-th trigger.
func (m *MenuBar) Open(i int) {
	mn, ok := m.bar.At(i)
	if !ok {
		return
	}
	m.active = i
	m.levels = []menuLevel{newLevel(mn.Trigger, mn.Items)}
}

// Close hides every dropdown. The active trigger is kept.
func (m *MenuBar) Close() {
	m.levels = nil
}

func newLevel(title string, items []menu.Node) menuLevel {
	lvl := menuLevel{title: title, items: items, cursor: -1}
	lvl.cursor = nextSelectable(items, -1, 1)
	return lvl
}

// nextSelectable returns the next non-separator index after from in
// direction dir, wrapping, or -1 if there is none.
func nextSelectable(items []menu.Node, from, dir int) int {
	n := len(items)
	for step := 1; step <= n; step++ {
		i := ((from+dir*step)%n + n) % n
		if _, sep := items[i].(menu.Separator); !sep {
			return i
		}
	}
	return -1
}

// Path returns the titles leading to the innermost open level.
func (m *MenuBar) Path() []string {
	out := make([]string, 0, len(m.levels))
	for _, l := range m.levels {
		out = append(out, l.title)
	}
	return out
}

// Highlighted returns the item under the cursor of the innermost level.
func (m *MenuBar) Highlighted() (menu.Node, bool) {
	if !m.IsOpen() {
		return nil, false
	}
	top := m.levels[len(m.levels)-1]
	if top.cursor < 0 {
		return nil, false
	}
	return top.items[top.cursor], true
}

// SwitchTrigger moves to the neighbouring trigger, wrapping, and opens it
// when a dropdown was already showing.
func (m *MenuBar) SwitchTrigger(delta int) {
	n := m.bar.Len()
	if n == 0 {
		return
	}
	next := ((m.active+delta)%n + n) % n
	if m.IsOpen() {
		m.Open(next)
		return
	}
	m.active = next
}

// MoveCursor moves up or down inside the innermost level, skipping
// separators.
func (m *MenuBar) MoveCursor(delta int) {
	if !m.IsOpen() {
		return
	}
	top := &m.levels[len(m.levels)-1]
	if top.cursor < 0 {
		return
	}
	if next := nextSelectable(top.items, top.cursor, delta); next >= 0 {
		top.cursor = next
	}
}

// Activate acts on the highlighted item. A submenu opens another level;
// an actionable leaf closes the bar and is returned; inert items do
// nothing.
func (m *MenuBar) Activate() (menu.Entry, bool) {
	n, ok := m.Highlighted()
	if !ok {
		return menu.Entry{}, false
	}
	if sub, isSub := n.(menu.Submenu); isSub {
		m.levels = append(m.levels, newLevel(sub.Label, sub.Items))
		return menu.Entry{}, false
	}
	res := menu.Resolve(n)
	if res.Kind == menu.KindNoOp {
		return menu.Entry{}, false
	}
	entry := menu.Entry{Path: m.Path(), Node: n, Resolution: res}
	m.Close()
	return entry, true
}

// Back closes the innermost level. It returns false once the bar is fully
// closed.
func (m *MenuBar) Back() bool {
	if len(m.levels) > 0 {
		m.levels = m.levels[:len(m.levels)-1]
	}
	return m.IsOpen()
}

// HandleKey processes a key while the menu bar has focus. consumed is false
// for keys the bar does not use.
func (m *MenuBar) HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, consumed bool) {
	switch msg.String() {
	case "left", "h":
		if len(m.levels) > 1 {
			m.Back()
		} else {
			m.SwitchTrigger(-1)
		}
	case "right", "l":
		if n, ok := m.Highlighted(); ok {
			if _, isSub := n.(menu.Submenu); isSub {
				m.Activate()
				return nil, true
			}
		}
		m.SwitchTrigger(1)
	case "up", "k":
		m.MoveCursor(-1)
	case "down", "j":
		if !m.IsOpen() {
			m.Open(m.active)
		} else {
			m.MoveCursor(1)
		}
	case "enter":
		if !m.IsOpen() {
			m.Open(m.active)
			return nil, true
		}
		if entry, ok := m.Activate(); ok {
			return func() tea.Msg { return MenuSelectedMsg{Entry: entry} }, true
		}
	default:
		return nil, false
	}
	return nil, true
}

// View renders the bar row at the given width. focused highlights the
// active trigger even when no dropdown is open.
func (m *MenuBar) View(width int, focused bool) string {
	var b strings.Builder
	for i, mn := range m.bar.Menus() {
		style := Styles.MenuTrigger
		if i == m.active && (focused || m.IsOpen()) {
			style = Styles.MenuActive
		}
		b.WriteString(style.Render(mn.Trigger))
	}
	row := b.String()
	hint := Styles.MenuBar.Foreground(lipgloss.Color(ColorMuted)).Render(" F10 menu  ctrl+p palette ")
	gap := width - textutil.StyledWidth(row) - textutil.StyledWidth(hint)
	if gap < 0 {
		return Styles.MenuBar.Width(width).MaxWidth(width).Render(row)
	}
	return row + Styles.MenuBar.Render(strings.Repeat(" ", gap)) + hint
}

// TriggerOffset is the column where the i-th trigger starts.
func (m *MenuBar) TriggerOffset(i int) int {
	x := 0
	for j, mn := range m.bar.Menus() {
		if j == i {
			break
		}
		x += textutil.StyledWidth(Styles.MenuTrigger.Render(mn.Trigger))
	}
	return x
}

// Dropdown renders the open levels side by side, outermost on the left.
// It is empty while the bar is closed.
func (m *MenuBar) Dropdown() string {
	if !m.IsOpen() {
		return ""
	}
	boxes := make([]string, 0, len(m.levels))
	for _, lvl := range m.levels {
		boxes = append(boxes, renderLevel(lvl))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

const minDropdownWidth = 14

func renderLevel(lvl menuLevel) string {
	if len(lvl.items) == 0 {
		return Styles.Dropdown.Render(Styles.Empty.Render("(empty)"))
	}

	labelW, shortW := 0, 0
	for _, n := range lvl.items {
		labelW = max(labelW, textutil.Width(n.Title()))
		shortW = max(shortW, textutil.Width(itemSuffix(n)))
	}
	inner := max(labelW+2+shortW, minDropdownWidth)

	rows := make([]string, 0, len(lvl.items))
	for i, n := range lvl.items {
		if _, sep := n.(menu.Separator); sep {
			rows = append(rows, Styles.MenuSeparator.Render(strings.Repeat("─", inner)))
			continue
		}
		label := textutil.PadRight(n.Title(), inner-shortW)
		suffix := textutil.PadLeft(itemSuffix(n), shortW)

		labelStyle := Styles.MenuItem
		if _, inert := n.(menu.Label); inert {
			labelStyle = Styles.MenuDisabled
		}
		if i == lvl.cursor {
			labelStyle = Styles.MenuSelected
		}
		rows = append(rows, labelStyle.Render(label)+Styles.MenuShortcut.Render(suffix))
	}
	return Styles.Dropdown.Render(strings.Join(rows, "\n"))
}

func itemSuffix(n menu.Node) string {
	if _, ok := n.(menu.Submenu); ok {
		return "▸"
	}
	return menu.ShortcutOf(n)
}
