package ui

import "rover/internal/action"

// NavigateMsg asks the shell to navigate to Path.
type NavigateMsg struct {
	Path string
}

// InvokeMsg asks the shell to dispatch an action. Name is kept as typed so
// unknown names reach the log verbatim.
type InvokeMsg struct {
	Action action.Action
	Name   string
}

// DismissOverlayMsg closes the overlay with ID, or the top overlay when ID
// is empty.
type DismissOverlayMsg struct {
	ID string
}

// FocusMsg moves keyboard focus to a region.
type FocusMsg struct {
	Mode AppMode
}

// focusStepMsg rotates focus forward (+1) or backward (-1).
type focusStepMsg int
