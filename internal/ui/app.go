package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"rover/internal/action"
	"rover/internal/menu"
	"rover/internal/route"
	"rover/internal/status"
	"rover/internal/telemetry"
	"rover/internal/toolbar"
)

// Setting is a read-only key/value pair listed on the settings screen.
type Setting struct {
	Key, Value string
}

// Options configures NewAppModel. Zero fields get defaults: the default
// menu bar, route table and toolbars, a fresh status store, a no-op logger
// and "/" as the start path.
type Options struct {
	Context   context.Context
	Bar       *menu.Bar
	Routes    *route.Table
	Fallback  route.Fallback
	StartPath string
	Status    *status.Store
	Logger    *zerolog.Logger
	Tracer    oteltrace.Tracer
	Settings  []Setting
}

// AppModel is the root model of the shell.
type AppModel struct {
	ctx      context.Context
	log      zerolog.Logger
	tracer   oteltrace.Tracer
	bar      *menu.Bar
	routes   *route.Table
	nav      *route.Navigator
	status   *status.Store
	actions  *action.Registry
	screens  toolbar.Screens
	content  map[route.ViewID]Screen
	settings []Setting

	MenuBar    *MenuBar
	Tools      *ToolStrip
	Focus      *FocusManager
	Overlays   OverlayStack
	KeyHandler *KeyHandler

	visit  route.Visit
	visits map[string]int
	zoom   int
	width  int
	height int
}

// Default terminal size used until the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// NewAppModel creates the shell and navigates to the start path.
func NewAppModel(opts Options) (*AppModel, error) {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	if opts.Bar == nil {
		bar, err := menu.DefaultBar(func(c menu.Conflict) {
			log.Warn().Strs("path", c.Path).Str("label", c.Label).Msg("menu item has both action and route")
		})
		if err != nil {
			return nil, fmt.Errorf("build menu bar: %w", err)
		}
		opts.Bar = bar
	}
	if opts.Routes == nil {
		opts.Routes = route.DefaultTable()
	}
	if opts.Status == nil {
		opts.Status = status.NewStore()
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.Tracer("ui")
	}
	if opts.StartPath == "" {
		opts.StartPath = route.Root
	}

	a := &AppModel{
		ctx:      opts.Context,
		log:      log,
		tracer:   opts.Tracer,
		bar:      opts.Bar,
		routes:   opts.Routes,
		nav:      route.NewNavigator(opts.Routes, opts.Fallback),
		status:   opts.Status,
		settings: opts.Settings,
		MenuBar:  NewMenuBar(opts.Bar),
		Focus:    NewFocusManager(ModeMenuBar, ModeToolbar, ModeContent),
		visits:   make(map[string]int),
		zoom:     ZoomDefault,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	a.Focus.SetFocus(ModeContent)
	a.Focus.OnChange = func(from, to AppMode) {
		if from == ModeMenuBar {
			a.MenuBar.Close()
		}
		a.log.Debug().Stringer("from", from).Stringer("to", to).Msg("focus changed")
	}
	a.status.OnChange(func(st status.State) {
		a.log.Debug().Str("message", st.Message).Str("version", st.AppVersion).Msg("status changed")
	})

	hooks := toolbar.Hooks{
		Status: func(msg string) {
			a.log.Info().Str("tool_status", msg).Msg("tool clicked")
			a.status.SetStatus(msg)
		},
		Navigate: func(path string) { a.navigate(a.ctx, path) },
	}
	a.screens = toolbar.DefaultScreens(hooks)
	a.Tools = NewToolStrip(toolbar.DefaultGlobal(hooks))

	a.actions = action.NewRegistry(action.WithLogger(a.log))
	a.bindActions()
	a.KeyHandler = NewKeyHandler(a.bindKeys())
	a.content = a.newScreens()

	a.navigate(a.ctx, opts.StartPath)
	a.resize()
	return a, nil
}

// Zoom is the current zoom level in percent.
func (a *AppModel) Zoom() int { return a.zoom }

// Visit is the location being shown.
func (a *AppModel) Visit() route.Visit { return a.visit }

// Status is the store behind the status bar.
func (a *AppModel) Status() *status.Store { return a.status }

// Actions is the registry every menu item and shortcut dispatches through.
func (a *AppModel) Actions() *action.Registry { return a.actions }

// Navigator owns the navigation history.
func (a *AppModel) Navigator() *route.Navigator { return a.nav }

// navigate moves to path and reports unmatched paths in the status bar.
func (a *AppModel) navigate(ctx context.Context, path string) {
	v := a.nav.Navigate(ctx, path)
	ev := a.log.Debug()
	if v.Err != nil {
		ev = a.log.Warn().Err(v.Err)
		a.status.SetStatus(notFoundMessage(v))
	}
	ev.Str("path", path).Str("view", string(v.View)).Bool("redirected", v.Redirected).Msg("navigate")
	a.show(v)
}

func notFoundMessage(v route.Visit) string {
	msg := "No route for " + v.Requested
	var nf *route.NotFoundError
	if errors.As(v.Err, &nf) && nf.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", nf.Suggestion)
	}
	if v.Redirected {
		msg += ", showing " + v.Path
	}
	return msg
}

// show makes v the visible location: screen toolbar, content and counts.
func (a *AppModel) show(v route.Visit) {
	a.visit = v
	a.visits[v.Path]++
	cfg, _ := a.screens.Get(string(v.View))
	a.Tools.SetScreen(cfg.Tools)
	a.resize()
}

func (a *AppModel) totalVisits() int {
	n := 0
	for _, c := range a.visits {
		n += c
	}
	return n
}

func (a *AppModel) currentScreen() Screen {
	if s, ok := a.content[a.visit.View]; ok {
		return s
	}
	return a.content[route.ViewNotFound]
}

// rightPanelID is the panel configured for the current screen, if any.
func (a *AppModel) rightPanelID() (string, bool) {
	cfg, ok := a.screens.Get(string(a.visit.View))
	if !ok || cfg.RightPanel == "" {
		return "", false
	}
	if _, _, known := a.rightPanel(cfg.RightPanel); !known {
		return "", false
	}
	return cfg.RightPanel, true
}

func (a *AppModel) layout() Layout {
	_, hasRight := a.rightPanelID()
	return ComputeLayout(a.width, a.height, hasRight)
}

// resize tells every screen the size of the content panel body.
func (a *AppModel) resize() {
	if a.content == nil {
		return
	}
	w, h := Panel{Bounds: a.layout().Content}.Inner()
	for _, s := range a.content {
		s.SetSize(w, h)
	}
}

// selectEntry performs what a menu entry resolves to.
func (a *AppModel) selectEntry(e menu.Entry) tea.Cmd {
	ctx, span := a.tracer.Start(a.ctx, "menu.select",
		oteltrace.WithAttributes(
			telemetry.KeyMenuPath.String(e.Breadcrumb()),
			telemetry.KeyOutcome.String(e.Resolution.Kind.String()),
		))
	defer span.End()

	a.log.Debug().Str("item", e.Breadcrumb()).Stringer("kind", e.Resolution.Kind).Msg("menu select")
	a.MenuBar.Close()
	if a.Focus.Current == ModeMenuBar {
		a.Focus.SetFocus(ModeContent)
	}

	switch e.Resolution.Kind {
	case menu.KindNavigate:
		a.navigate(ctx, e.Resolution.Route)
		if a.visit.Err != nil {
			span.SetStatus(codes.Error, a.visit.Err.Error())
		}
	case menu.KindInvoke:
		return a.actions.DispatchName(ctx, e.Resolution.ActionName)
	}
	return nil
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentScreen().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil
	case MenuSelectedMsg:
		return a, a.selectEntry(msg.Entry)
	case paletteChoseMsg:
		a.Overlays.Remove(paletteOverlayID)
		return a, a.selectEntry(msg.Entry)
	case NavigateMsg:
		a.navigate(a.ctx, msg.Path)
		return a, nil
	case InvokeMsg:
		name := msg.Name
		if name == "" {
			name = msg.Action.String()
		}
		return a, a.actions.DispatchName(a.ctx, name)
	case DismissOverlayMsg:
		if msg.ID == "" {
			a.Overlays.Pop()
		} else {
			a.Overlays.Remove(msg.ID)
		}
		return a, nil
	case FocusMsg:
		a.Focus.SetFocus(msg.Mode)
		if msg.Mode == ModeMenuBar {
			a.MenuBar.Open(a.MenuBar.Active())
		}
		return a, nil
	case focusStepMsg:
		if msg < 0 {
			a.Focus.Prev()
		} else {
			a.Focus.Next()
		}
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	v, cmd := a.currentScreen().Update(msg)
	a.setCurrentScreen(v)
	return a, cmd
}

// handleKey routes a key: overlays first, then the focused menu bar, then
// keybindings, then the focused toolbar, and finally the content screen.
func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}

	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(s) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if a.Focus.Current == ModeMenuBar && !a.KeyHandler.LeaderWaiting {
		if s == "esc" {
			if a.MenuBar.IsOpen() {
				a.MenuBar.Back()
			} else {
				a.Focus.SetFocus(ModeContent)
			}
			return nil
		}
		if cmd, consumed := a.MenuBar.HandleKey(msg); consumed {
			return cmd
		}
	}

	if consumed, cmd := a.KeyHandler.HandleInMode(msg, a.Focus.Current); consumed {
		return cmd
	}

	if a.Focus.Current == ModeToolbar {
		switch s {
		case "left", "h":
			a.Tools.Move(-1)
		case "right", "l":
			a.Tools.Move(1)
		case "enter":
			a.Tools.Invoke(a.ctx)
		case "esc":
			a.Focus.SetFocus(ModeContent)
		}
		return nil
	}

	if a.Focus.Current == ModeContent {
		v, cmd := a.currentScreen().Update(msg)
		a.setCurrentScreen(v)
		return cmd
	}
	return nil
}

func (a *AppModel) setCurrentScreen(v View) {
	if s, ok := v.(Screen); ok {
		a.content[a.visit.View] = s
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	l := a.layout()

	content := Panel{
		ID:      "content",
		Title:   a.currentScreen().Title(),
		Bounds:  l.Content,
		Focused: a.Focus.Current == ModeContent,
	}.Render(a.currentScreen().View())

	main := content
	if id, ok := a.rightPanelID(); l.HasRight() && ok {
		title, body, _ := a.rightPanel(id)
		right := Panel{ID: id, Title: title, Bounds: l.Right}.Render(body)
		main = lipgloss.JoinHorizontal(lipgloss.Top, content, right)
	}

	if a.KeyHandler.LeaderWaiting {
		if help := RenderKeybindHelp(a.KeyHandler, a.Focus.Current); help != "" {
			main = placeOver(main, help, 1, max(l.Content.H-lipgloss.Height(help), 0))
		}
	}
	if dd := a.MenuBar.Dropdown(); dd != "" {
		main = placeOver(main, dd, a.MenuBar.TriggerOffset(a.MenuBar.Active()), 0)
	}
	if top, ok := a.Overlays.Peek(); ok {
		pop := top.View.View()
		x := max((a.width-lipgloss.Width(pop))/2, 0)
		main = placeOver(main, pop, x, 1)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.MenuBar.View(l.MenuBar.W, a.Focus.Current == ModeMenuBar),
		a.Tools.View(l.Toolbar.W, a.Focus.Current == ModeToolbar),
		main,
		RenderStatusBar(a.status.Snapshot(), a.visit.Path, a.zoom, l.Status.W),
	)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
