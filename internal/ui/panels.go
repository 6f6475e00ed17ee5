package ui

import (
	"fmt"
	"strings"

	"rover/internal/toolbar"
)

// rightPanel renders the side panel with the given id. ok is false for
// ids the shell does not know; the panel is then not drawn.
func (a *AppModel) rightPanel(id string) (title, body string, ok bool) {
	switch id {
	case toolbar.PanelDashboard:
		return "Overview", strings.Join([]string{
			fmt.Sprintf("Routes   %d", len(a.routes.Routes())),
			fmt.Sprintf("Menus    %d", a.bar.Len()),
			fmt.Sprintf("Tools    %d", a.Tools.Tools().Len()),
		}, "\n"), true
	case toolbar.PanelSettings:
		return "Display", strings.Join([]string{
			fmt.Sprintf("Zoom      %d%%", a.zoom),
			fmt.Sprintf("Fallback  %s", a.nav.Fallback()),
		}, "\n"), true
	case toolbar.PanelReports:
		st := a.status.Snapshot()
		return "Session", strings.Join([]string{
			fmt.Sprintf("History  %d", a.nav.Depth()),
			fmt.Sprintf("Visits   %d", a.totalVisits()),
			"",
			Styles.Muted.Render("Last status"),
			st.Message,
		}, "\n"), true
	}
	return "", "", false
}
