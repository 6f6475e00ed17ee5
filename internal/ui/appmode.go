package ui

// AppMode is the shell region that currently receives keys.
type AppMode int

const (
	ModeContent AppMode = iota
	ModeMenuBar
	ModeToolbar
)

func (m AppMode) String() string {
	switch m {
	case ModeContent:
		return "Content"
	case ModeMenuBar:
		return "MenuBar"
	case ModeToolbar:
		return "Toolbar"
	default:
		return "Unknown"
	}
}
