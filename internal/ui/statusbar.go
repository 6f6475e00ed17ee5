package ui

import (
	"fmt"

	"rover/internal/status"
	"rover/internal/ui/textutil"
)

// Zoom bounds and step, in percent.
const (
	ZoomDefault = 100
	ZoomMin     = 50
	ZoomMax     = 200
	ZoomStep    = 10
)

// clampZoom keeps z within [ZoomMin, ZoomMax].
func clampZoom(z int) int {
	return min(max(z, ZoomMin), ZoomMax)
}

// RenderStatusBar draws the bottom row: the status message on the left;
// path, zoom and version on the right.
func RenderStatusBar(st status.State, path string, zoom, width int) string {
	if width <= 0 {
		return ""
	}
	right := fmt.Sprintf("%s · %d%% · %s", path, zoom, st.AppVersion)
	line := textutil.Spread(" "+st.Message, right+" ", width)
	return Styles.StatusBar.Render(line)
}
