package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"rover/internal/menu"
	"rover/internal/ui/textutil"
)

const (
	paletteOverlayID = "palette"
	paletteWidth     = 48
	paletteRows      = 8
)

// paletteChoseMsg closes the palette and selects Entry.
type paletteChoseMsg struct {
	Entry menu.Entry
}

// PaletteView is the command palette: a fuzzy finder over every actionable
// menu entry.
type PaletteView struct {
	input    textinput.Model
	entries  []menu.Entry
	filtered []menu.Entry
	cursor   int
}

var _ View = (*PaletteView)(nil)

// NewPaletteView creates a focused palette listing entries.
func NewPaletteView(entries []menu.Entry) *PaletteView {
	ti := textinput.New()
	ti.Placeholder = "Type a command…"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = paletteWidth - 4
	ti.Focus()
	return &PaletteView{
		input:    ti,
		entries:  entries,
		filtered: entries,
	}
}

// filterEntries keeps the entries whose breadcrumb fuzzily matches query,
// best match first. Ties keep menu order.
func filterEntries(entries []menu.Entry, query string) []menu.Entry {
	q := strings.TrimSpace(query)
	if q == "" {
		return entries
	}
	crumbs := make([]string, len(entries))
	for i, e := range entries {
		crumbs[i] = e.Breadcrumb()
	}
	ranks := fuzzy.RankFindNormalizedFold(q, crumbs)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]menu.Entry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}

// Query is the text typed so far.
func (p *PaletteView) Query() string { return p.input.Value() }

// Matches returns the entries currently listed.
func (p *PaletteView) Matches() []menu.Entry { return p.filtered }

// Init implements View.
func (p *PaletteView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (p *PaletteView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "ctrl+p":
			return p, func() tea.Msg { return DismissOverlayMsg{ID: paletteOverlayID} }
		case "up", "ctrl+k":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case "down", "ctrl+j", "tab":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return p, nil
		case "enter":
			if p.cursor < len(p.filtered) {
				entry := p.filtered[p.cursor]
				return p, func() tea.Msg { return paletteChoseMsg{Entry: entry} }
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.filtered = filterEntries(p.entries, p.input.Value())
		p.cursor = 0
	}
	return p, cmd
}

// View implements View.
func (p *PaletteView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Command Palette"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")

	if len(p.filtered) == 0 {
		b.WriteString(Styles.Empty.Render("No matching commands"))
		return Styles.Box.Width(paletteWidth).Render(b.String())
	}

	start := 0
	if p.cursor >= paletteRows {
		start = p.cursor - paletteRows + 1
	}
	end := min(start+paletteRows, len(p.filtered))
	inner := paletteWidth - 2
	for i := start; i < end; i++ {
		e := p.filtered[i]
		short := menu.ShortcutOf(e.Node)
		line := textutil.Spread(e.Breadcrumb(), short, inner)
		if i == p.cursor {
			b.WriteString(Styles.Selected.Render(line))
		} else {
			b.WriteString(Styles.Normal.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return Styles.Box.Width(paletteWidth).Render(b.String())
}
