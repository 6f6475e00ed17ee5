package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the shell.
const (
	ColorAccent    = "86"  // titles, active trigger
	ColorHighlight = "205" // selection, focused borders
	ColorDanger    = "196" // not-found and errors
	ColorMuted     = "241" // hints, shortcuts, separators
	ColorText      = "252"
	ColorBar       = "236" // menu and status bar background
)

// Styles contains the shared style definitions.
var Styles = struct {
	// Menu bar and dropdowns
	MenuBar       lipgloss.Style
	MenuTrigger   lipgloss.Style
	MenuActive    lipgloss.Style // open or focused trigger
	Dropdown      lipgloss.Style
	MenuItem      lipgloss.Style
	MenuSelected  lipgloss.Style
	MenuDisabled  lipgloss.Style // inert labels
	MenuShortcut  lipgloss.Style
	MenuSeparator lipgloss.Style

	// Toolbar
	Toolbar      lipgloss.Style
	Tool         lipgloss.Style
	ToolSelected lipgloss.Style

	// Panels
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style

	Title    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Danger   lipgloss.Style
	Box      lipgloss.Style
	Empty    lipgloss.Style
}{
	MenuBar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)),
	MenuTrigger: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	MenuActive: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1),
	Dropdown: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	MenuItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	MenuSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	MenuDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	MenuShortcut: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	MenuSeparator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),

	Toolbar: lipgloss.NewStyle().
		Padding(0, 1),
	Tool: lipgloss.NewStyle().
		Padding(0, 1),
	ToolSelected: lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(ColorHighlight)),

	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	PanelTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),

	StatusBar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorText)),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Danger: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// NewCompactListDelegate returns a list delegate with zero spacing and the
// shared selection styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected.Bold(false)
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
