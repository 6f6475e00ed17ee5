package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"rover/internal/action"
	"rover/internal/menu"
	"rover/internal/route"
)

// bindActions installs the shell's handler for every action.
func (a *AppModel) bindActions() {
	a.actions.Bind(action.ZoomIn, func(context.Context) tea.Cmd {
		a.setZoom(a.zoom + ZoomStep)
		return nil
	})
	a.actions.Bind(action.ZoomOut, func(context.Context) tea.Cmd {
		a.setZoom(a.zoom - ZoomStep)
		return nil
	})
	a.actions.Bind(action.ResetZoom, func(context.Context) tea.Cmd {
		a.setZoom(ZoomDefault)
		return nil
	})
	a.actions.Bind(action.Back, func(context.Context) tea.Cmd {
		v, ok := a.nav.Back()
		if !ok {
			a.status.SetStatus("Nothing to go back to")
			return nil
		}
		a.show(v)
		return nil
	})
	a.actions.Bind(action.Palette, func(context.Context) tea.Cmd {
		p := NewPaletteView(menu.Leaves(a.bar))
		a.Overlays.Push(Overlay{ID: paletteOverlayID, View: p, Dismiss: "esc"})
		return p.Init()
	})
	a.actions.Bind(action.Quit, func(context.Context) tea.Cmd {
		return tea.Quit
	})
}

func (a *AppModel) setZoom(z int) {
	a.zoom = clampZoom(z)
	a.status.SetStatus(fmt.Sprintf("Zoom %d%%", a.zoom))
}

func invoke(act action.Action) tea.Cmd {
	return func() tea.Msg { return InvokeMsg{Action: act, Name: act.String()} }
}

func goTo(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

func focus(mode AppMode) tea.Cmd {
	return func() tea.Msg { return FocusMsg{Mode: mode} }
}

func focusStep(delta int) tea.Cmd {
	return func() tea.Msg { return focusStepMsg(delta) }
}

// bindKeys builds the registry: fixed shell keys, SPC leader sequences and
// one direct binding per menu shortcut.
func (a *AppModel) bindKeys() *KeybindRegistry {
	reg := NewKeybindRegistry()
	outsideMenu := []AppMode{ModeContent, ModeToolbar}

	reg.BindWithDescForMode("q", invoke(action.Quit), "Quit", outsideMenu)
	reg.BindWithDesc("f10", focus(ModeMenuBar), "Menu")
	reg.BindWithDesc("alt+m", focus(ModeMenuBar), "Menu")
	reg.BindWithDesc("tab", focusStep(1), "Next region")
	reg.BindWithDesc("shift+tab", focusStep(-1), "Previous region")

	reg.BindWithDesc("SPC q", invoke(action.Quit), "Quit")
	reg.BindWithDesc("SPC p", invoke(action.Palette), "Palette")
	reg.BindWithDesc("SPC b", invoke(action.Back), "Back")
	reg.BindWithDesc("SPC m", focus(ModeMenuBar), "Menu")

	reg.Group("SPC g", "Go to")
	reg.BindWithDesc("SPC g d", goTo(route.Root), "Dashboard")
	reg.BindWithDesc("SPC g s", goTo("/settings"), "Settings")
	reg.BindWithDesc("SPC g r", goTo("/reports"), "Reports")
	reg.BindWithDesc("SPC g x", goTo("/dispatch"), "Dispatch")

	reg.Group("SPC z", "Zoom")
	reg.BindWithDesc("SPC z i", invoke(action.ZoomIn), "Zoom in")
	reg.BindWithDesc("SPC z o", invoke(action.ZoomOut), "Zoom out")
	reg.BindWithDesc("SPC z 0", invoke(action.ResetZoom), "Reset zoom")

	for _, e := range menu.Leaves(a.bar) {
		raw := menu.ShortcutOf(e.Node)
		seq := menu.NormalizeShortcut(raw)
		if seq == "" {
			continue
		}
		if reg.Lookup(seq) != nil {
			a.log.Warn().Str("shortcut", raw).Str("item", e.Breadcrumb()).Msg("shortcut already bound")
			continue
		}
		entry := e
		reg.BindWithDesc(seq, func() tea.Msg { return MenuSelectedMsg{Entry: entry} }, e.Breadcrumb())
	}
	return reg
}

// newScreens builds one content screen per view.
func (a *AppModel) newScreens() map[route.ViewID]Screen {
	return map[route.ViewID]Screen{
		route.ViewDashboard: newTextScreen(screenTitle(route.ViewDashboard), a.renderDashboard),
		route.ViewSettings:  newTextScreen(screenTitle(route.ViewSettings), a.renderSettings),
		route.ViewReports:   newTextScreen(screenTitle(route.ViewReports), a.renderReports),
		route.ViewDispatch:  newDispatchScreen(a.bar),
		route.ViewNotFound:  newTextScreen(screenTitle(route.ViewNotFound), a.renderNotFound),
	}
}

func (a *AppModel) renderDashboard(int) string {
	var b strings.Builder
	b.WriteString(Styles.Normal.Render("Welcome to rover."))
	b.WriteString("\n\n")
	b.WriteString(Styles.Muted.Render("Routes"))
	b.WriteString("\n")
	for _, r := range a.routes.Routes() {
		fmt.Fprintf(&b, "  %-12s %s\n", r.Path, r.Name)
	}
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render("F10 menu · tab switch region · ctrl+p palette · SPC commands"))
	return b.String()
}

func (a *AppModel) renderSettings(int) string {
	var b strings.Builder
	rows := append([]Setting{
		{Key: "Zoom", Value: fmt.Sprintf("%d%%", a.zoom)},
		{Key: "Fallback", Value: a.nav.Fallback().String()},
	}, a.settings...)
	width := 0
	for _, s := range rows {
		width = max(width, len(s.Key))
	}
	for _, s := range rows {
		fmt.Fprintf(&b, "%-*s  %s\n", width, s.Key, s.Value)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *AppModel) renderReports(int) string {
	paths := make([]string, 0, len(a.visits))
	for p := range a.visits {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	b.WriteString(Styles.Muted.Render("Visits this session"))
	b.WriteString("\n")
	for _, p := range paths {
		fmt.Fprintf(&b, "  %-12s %d\n", p, a.visits[p])
	}
	fmt.Fprintf(&b, "\nBack history: %d", a.nav.Depth())
	return b.String()
}

func (a *AppModel) renderNotFound(int) string {
	var b strings.Builder
	b.WriteString(Styles.Danger.Render("No route for " + a.visit.Requested))
	if a.visit.Err != nil {
		b.WriteString("\n")
		b.WriteString(Styles.Muted.Render(a.visit.Err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(Styles.Hint.Render("alt+left goes back · ctrl+d opens the dashboard"))
	return b.String()
}
