package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a popup drawn over the content area. The topmost overlay
// receives every key before the rest of the shell.
type Overlay struct {
	ID      string
	View    View
	Dismiss string // key that closes it, usually "esc"
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack is a LIFO of overlays.
type OverlayStack struct {
	Stack []Overlay
}

// Push adds o on top. An overlay with the same non-empty ID is replaced
// so the same popup is never stacked twice.
func (s *OverlayStack) Push(o Overlay) {
	if o.ID != "" {
		s.Remove(o.ID)
	}
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Remove drops every overlay with the given ID.
func (s *OverlayStack) Remove(id string) {
	kept := s.Stack[:0]
	for _, o := range s.Stack {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.Stack = kept
}

// Has reports whether an overlay with id is open.
func (s *OverlayStack) Has(id string) bool {
	for _, o := range s.Stack {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop forwards msg to the top overlay and stores the view it returns.
// The bool is false when the stack is empty.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	next, cmd := top.View.Update(msg)
	top.View = next
	return cmd, true
}
