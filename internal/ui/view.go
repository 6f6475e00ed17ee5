package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a screen or popup with its own model, update and render.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Resizable views are told their inner size whenever the layout changes.
type Resizable interface {
	SetSize(width, height int)
}
