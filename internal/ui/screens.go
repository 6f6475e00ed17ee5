package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"rover/internal/action"
	"rover/internal/menu"
	"rover/internal/route"
)

// Screen is the view shown in the content panel for one route view.
type Screen interface {
	View
	Resizable
	Title() string
}

// textScreen shows scrollable text produced by render on every refresh.
type textScreen struct {
	title  string
	render func(width int) string
	vp     viewport.Model
}

var _ Screen = (*textScreen)(nil)

func newTextScreen(title string, render func(width int) string) *textScreen {
	return &textScreen{title: title, render: render, vp: viewport.New(0, 0)}
}

func (s *textScreen) Title() string { return s.title }

func (s *textScreen) SetSize(width, height int) {
	s.vp.Width = width
	s.vp.Height = height
	s.refresh()
}

func (s *textScreen) refresh() {
	s.vp.SetContent(s.render(s.vp.Width))
}

func (s *textScreen) Init() tea.Cmd { return nil }

func (s *textScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *textScreen) View() string {
	s.refresh()
	return s.vp.View()
}

// actionItem is one row of the dispatch list.
type actionItem struct {
	act      action.Action
	label    string
	shortcut string
}

func (i actionItem) Title() string { return i.label }

func (i actionItem) Description() string {
	if i.shortcut != "" {
		return fmt.Sprintf("%s · %s", i.act, i.shortcut)
	}
	return i.act.String()
}

func (i actionItem) FilterValue() string { return i.label }

// dispatchScreen lists every action; enter dispatches the selected one.
type dispatchScreen struct {
	list list.Model
}

var _ Screen = (*dispatchScreen)(nil)

// newDispatchScreen labels actions with the menu item that invokes them,
// falling back to the action name.
func newDispatchScreen(bar *menu.Bar) *dispatchScreen {
	labels := make(map[action.Action]actionItem)
	for _, e := range menu.Leaves(bar) {
		if e.Resolution.Kind != menu.KindInvoke {
			continue
		}
		if _, seen := labels[e.Resolution.Action]; !seen {
			labels[e.Resolution.Action] = actionItem{
				act:      e.Resolution.Action,
				label:    e.Node.Title(),
				shortcut: menu.ShortcutOf(e.Node),
			}
		}
	}
	var items []list.Item
	for _, a := range action.All() {
		it, ok := labels[a]
		if !ok {
			it = actionItem{act: a, label: a.String()}
		}
		items = append(items, it)
	}

	l := list.New(items, NewCompactListDelegate(), 0, 0)
	l.Title = "Actions"
	l.Styles.Title = Styles.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &dispatchScreen{list: l}
}

func (s *dispatchScreen) Title() string { return "Dispatch" }

func (s *dispatchScreen) SetSize(width, height int) {
	s.list.SetSize(width, height)
}

func (s *dispatchScreen) Init() tea.Cmd { return nil }

// Selected returns the highlighted action.
func (s *dispatchScreen) Selected() (action.Action, bool) {
	it, ok := s.list.SelectedItem().(actionItem)
	if !ok {
		return action.Unknown, false
	}
	return it.act, true
}

func (s *dispatchScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		if a, ok := s.Selected(); ok {
			return s, func() tea.Msg { return InvokeMsg{Action: a, Name: a.String()} }
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *dispatchScreen) View() string {
	return s.list.View()
}

// screenTitle is the panel title for a view without a screen of its own.
func screenTitle(id route.ViewID) string {
	switch id {
	case route.ViewDashboard:
		return "Dashboard"
	case route.ViewSettings:
		return "Settings"
	case route.ViewReports:
		return "Reports"
	case route.ViewDispatch:
		return "Dispatch"
	case route.ViewNotFound:
		return "Not Found"
	}
	return string(id)
}
