package toolbar

import "fmt"

// Screen identifiers with a toolbar of their own.
const (
	ScreenDashboard = "dashboard"
	ScreenSettings  = "settings"
	ScreenReports   = "reports"
)

// Right panel identifiers.
const (
	PanelDashboard = "DashboardRightPanel"
	PanelSettings  = "SettingsRightPanel"
	PanelReports   = "ReportsRightPanel"
)

// Hooks are the side effects default tools may perform.
type Hooks struct {
	Status   func(message string)
	Navigate func(path string)
}

func (h Hooks) status(msg string) {
	if h.Status != nil {
		h.Status(msg)
	}
}

func (h Hooks) notify(name string) func() {
	return func() { h.status(fmt.Sprintf("%s clicked", name)) }
}

// DefaultGlobal is the toolbar shown on every screen.
func DefaultGlobal(h Hooks) Toolbar {
	return Toolbar{
		{Icon: "📎", Name: "Clipboard tool", Run: h.notify("Clipboard tool")},
		{Icon: "✏️", Name: "Pen tool", Run: h.notify("Pen tool")},
		{Icon: "📍", Name: "Location tool", Run: h.notify("Location tool")},
		{Icon: "⚙️", Name: "Settings tool", Run: func() {
			h.status("Settings tool clicked")
			if h.Navigate != nil {
				h.Navigate("/settings")
			}
		}},
	}
}

// DefaultScreens is the per-screen toolbar table.
func DefaultScreens(h Hooks) Screens {
	return Screens{
		ScreenDashboard: {
			Tools: Toolbar{
				{Icon: "📋", Name: "Dashboard Tool 1", Run: h.notify("Dashboard Tool 1")},
				{Icon: "📊", Name: "Dashboard Tool 2", Run: h.notify("Dashboard Tool 2")},
			},
			RightPanel: PanelDashboard,
		},
		ScreenSettings: {
			Tools: Toolbar{
				{Icon: "⚙️", Name: "Settings Tool 1", Run: h.notify("Settings Tool 1")},
				{Icon: "🔧", Name: "Settings Tool 2", Run: h.notify("Settings Tool 2")},
			},
			RightPanel: PanelSettings,
		},
		ScreenReports: {
			Tools: Toolbar{
				{Icon: "📈", Name: "Reports Tool 1", Run: h.notify("Reports Tool 1")},
				{Icon: "📉", Name: "Reports Tool 2", Run: h.notify("Reports Tool 2")},
			},
			RightPanel: PanelReports,
		},
	}
}
