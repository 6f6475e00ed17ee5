package ui

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"rover/internal/action"
	"rover/internal/menu"
	"rover/internal/route"
	"rover/internal/status"
)

func newTestApp(t *testing.T, opts Options) (*AppModel, tea.Model) {
	t.Helper()
	a, err := NewAppModel(opts)
	require.NoError(t, err)
	m := a.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return a, m
}

// press sends keys one by one and feeds the shell's own follow-up messages
// back in. It reports whether a quit was requested.
func press(m tea.Model, keys ...string) (quit bool) {
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		if drain(m, cmd) {
			quit = true
		}
	}
	return quit
}

// run executes cmd, giving up on commands that wait on a timer such as
// the cursor blink.
func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// drain runs cmd and delivers the resulting shell messages. Messages for
// bubbles components are dropped.
func drain(m tea.Model, cmd tea.Cmd) (quit bool) {
	for depth := 0; cmd != nil && depth < 8; depth++ {
		switch msg := run(cmd).(type) {
		case tea.QuitMsg:
			return true
		case tea.BatchMsg:
			for _, c := range msg {
				if drain(m, c) {
					quit = true
				}
			}
			return quit
		case MenuSelectedMsg, NavigateMsg, InvokeMsg, DismissOverlayMsg, FocusMsg, focusStepMsg, paletteChoseMsg:
			_, cmd = m.Update(msg)
		default:
			return false
		}
	}
	return false
}

func TestNewAppModel_StartsAtRoot(t *testing.T) {
	a, m := newTestApp(t, Options{})
	assert.Equal(t, "/", a.Visit().Path)
	assert.Equal(t, route.ViewDashboard, a.Visit().View)
	assert.Equal(t, ModeContent, a.Focus.Current)
	assert.Equal(t, status.DefaultMessage, a.Status().Snapshot().Message)

	out := m.View()
	assert.Contains(t, out, "File")
	assert.Contains(t, out, "Administration")
	assert.Contains(t, out, "Ready")
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "📋", "dashboard tools are shown")
	assert.Contains(t, out, "Overview", "dashboard right panel is shown")
}

func TestShortcutNavigates(t *testing.T) {
	a, m := newTestApp(t, Options{})

	press(m, "ctrl+s")
	assert.Equal(t, "/settings", a.Visit().Path)
	assert.Contains(t, m.View(), "🔧")

	press(m, "ctrl+r")
	assert.Equal(t, route.ViewReports, a.Visit().View)

	press(m, "ctrl+d")
	assert.Equal(t, "/", a.Visit().Path)
}

func TestMenuBarSelectsZoom(t *testing.T) {
	a, m := newTestApp(t, Options{})

	press(m, "f10")
	require.Equal(t, ModeMenuBar, a.Focus.Current)
	require.True(t, a.MenuBar.IsOpen())

	press(m, "right", "right", "enter")
	assert.Equal(t, 110, a.Zoom())
	assert.Equal(t, "Zoom 110%", a.Status().Snapshot().Message)
	assert.False(t, a.MenuBar.IsOpen())
	assert.Equal(t, ModeContent, a.Focus.Current)
	assert.Contains(t, m.View(), "110%")
}

func TestZoomIsClamped(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	ctx := context.Background()
	for range 20 {
		a.Actions().Dispatch(ctx, action.ZoomIn)
	}
	assert.Equal(t, ZoomMax, a.Zoom())
	for range 30 {
		a.Actions().Dispatch(ctx, action.ZoomOut)
	}
	assert.Equal(t, ZoomMin, a.Zoom())
	a.Actions().Dispatch(ctx, action.ResetZoom)
	assert.Equal(t, ZoomDefault, a.Zoom())
}

func TestMenuEscClosesThenLeaves(t *testing.T) {
	a, m := newTestApp(t, Options{})
	press(m, "f10")
	press(m, "esc")
	assert.False(t, a.MenuBar.IsOpen())
	assert.Equal(t, ModeMenuBar, a.Focus.Current)
	press(m, "esc")
	assert.Equal(t, ModeContent, a.Focus.Current)
}

func TestUnknownRouteFallsBackToRoot(t *testing.T) {
	a, m := newTestApp(t, Options{})
	press(m, "ctrl+s")

	_, cmd := m.Update(NavigateMsg{Path: "/unregistered-path"})
	drain(m, cmd)

	assert.Equal(t, "/", a.Visit().Path)
	assert.True(t, a.Visit().Redirected)
	assert.True(t, route.IsNotFound(a.Visit().Err))
	assert.Equal(t, "No route for /unregistered-path, showing /", a.Status().Snapshot().Message)
}

func TestUnknownRouteNotFoundView(t *testing.T) {
	a, m := newTestApp(t, Options{Fallback: route.FallbackNotFoundView})
	m.Update(NavigateMsg{Path: "/reportz"})

	assert.Equal(t, route.ViewNotFound, a.Visit().View)
	assert.Equal(t, "No route for /reportz (did you mean /reports?)", a.Status().Snapshot().Message)
	out := m.View()
	assert.Contains(t, out, "Not Found")
	assert.NotContains(t, out, "Overview", "not-found has no right panel")
}

func TestStartPathIsHonoured(t *testing.T) {
	a, _ := newTestApp(t, Options{StartPath: "/dispatch"})
	assert.Equal(t, route.ViewDispatch, a.Visit().View)
}

func TestBackRestoresPreviousScreen(t *testing.T) {
	a, m := newTestApp(t, Options{})
	press(m, "ctrl+s", "ctrl+r")
	press(m, "alt+left")
	assert.Equal(t, "/settings", a.Visit().Path)
	press(m, "alt+left")
	assert.Equal(t, "/", a.Visit().Path)

	press(m, "alt+left")
	assert.Equal(t, "/", a.Visit().Path)
	assert.Equal(t, "Nothing to go back to", a.Status().Snapshot().Message)
}

func TestPaletteChoosesEntry(t *testing.T) {
	a, m := newTestApp(t, Options{})

	press(m, "ctrl+p")
	require.True(t, a.Overlays.Has(paletteOverlayID))
	assert.Contains(t, m.View(), "Command Palette")

	press(m, "q", "u", "i")
	assert.False(t, a.Overlays.Len() == 0, "typed keys go to the palette, not the quit binding")

	press(m, "esc")
	assert.Equal(t, 0, a.Overlays.Len())

	press(m, "ctrl+p", "s", "e", "t")
	press(m, "enter")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, "/settings", a.Visit().Path)
}

func TestToolbarFocusAndInvoke(t *testing.T) {
	a, m := newTestApp(t, Options{})

	press(m, "tab")
	require.Equal(t, ModeMenuBar, a.Focus.Current)
	press(m, "tab")
	require.Equal(t, ModeToolbar, a.Focus.Current)

	press(m, "enter")
	assert.Equal(t, "Clipboard tool clicked", a.Status().Snapshot().Message)

	press(m, "left")
	assert.Equal(t, a.Tools.Tools().Len()-1, a.Tools.Cursor())
	press(m, "enter")
	assert.Equal(t, "Dashboard Tool 2 clicked", a.Status().Snapshot().Message)

	press(m, "right", "right", "right", "right")
	press(m, "enter")
	assert.Equal(t, "Settings tool clicked", a.Status().Snapshot().Message)
	assert.Equal(t, "/settings", a.Visit().Path)

	press(m, "shift+tab")
	assert.Equal(t, ModeMenuBar, a.Focus.Current)
}

func TestDispatchScreenInvokesSelectedAction(t *testing.T) {
	a, m := newTestApp(t, Options{StartPath: "/dispatch"})
	press(m, "enter")
	assert.Equal(t, 110, a.Zoom(), "first action listed is zoom in")
}

func TestQuitKeys(t *testing.T) {
	_, m := newTestApp(t, Options{})
	assert.True(t, press(m, "q"))
	assert.True(t, press(m, "ctrl+q"))
	assert.True(t, press(m, "ctrl+c"))
	assert.True(t, press(m, " ", "q"))
}

func TestLeaderShowsHelpAndNavigates(t *testing.T) {
	a, m := newTestApp(t, Options{})
	press(m, " ")
	out := m.View()
	assert.Contains(t, out, "Go to")
	assert.Contains(t, out, "Palette")

	press(m, "g", "r")
	assert.Equal(t, "/reports", a.Visit().Path)
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestUnknownMenuActionIsLoggedNoOp(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	bar, err := menu.Compile([]menu.Definition{{
		Trigger: "Tools",
		Items:   []menu.Item{{Label: "Teleport", Action: "teleport"}},
	}}, nil)
	require.NoError(t, err)

	a, m := newTestApp(t, Options{Bar: bar, Logger: &log})
	press(m, "f10", "enter")
	assert.Equal(t, "/", a.Visit().Path)
	assert.Contains(t, buf.String(), "unknown action")
	assert.Contains(t, buf.String(), "teleport")
}

func TestMenuSelectRecordsSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	_, m := newTestApp(t, Options{Tracer: tp.Tracer("test")})

	press(m, "ctrl+s")
	var names []string
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
	}
	assert.Contains(t, names, "menu.select")
}

func TestRightPanelHiddenWhenNarrow(t *testing.T) {
	_, m := newTestApp(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.NotContains(t, m.View(), "Overview")
}
