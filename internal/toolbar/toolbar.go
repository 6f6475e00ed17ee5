// Package toolbar holds the ordered tool lists shown above each screen.
package toolbar

import (
	"context"

	oteltrace "go.opentelemetry.io/otel/trace"

	"rover/internal/telemetry"
)

// Tool is one toolbar button. Icon is a display token (usually an emoji).
type Tool struct {
	Icon string
	Name string
	Run  func()
}

// Toolbar is laid out left to right in slice order.
type Toolbar []Tool

// Len returns the number of tools.
func (t Toolbar) Len() int {
	return len(t)
}

// Invoke fires the i-th tool. Out-of-range indexes and tools without a
// callback are ignored; nothing is returned to the caller. The span is
// taken from the global provider at call time.
func (t Toolbar) Invoke(ctx context.Context, i int) {
	if i < 0 || i >= len(t) {
		return
	}
	tool := t[i]
	_, span := telemetry.Tracer("toolbar").Start(ctx, "toolbar.invoke",
		oteltrace.WithAttributes(telemetry.KeyTool.String(tool.Name)))
	defer span.End()
	if tool.Run != nil {
		tool.Run()
	}
}

// Concat returns a new toolbar with other appended after t.
func (t Toolbar) Concat(other Toolbar) Toolbar {
	out := make(Toolbar, 0, len(t)+len(other))
	out = append(out, t...)
	return append(out, other...)
}

// ScreenConfig is the toolbar and side panel for one screen.
type ScreenConfig struct {
	Tools      Toolbar
	RightPanel string
}

// Screens maps screen identifiers to their configuration.
type Screens map[string]ScreenConfig

// Get returns the configuration for screenID. A missing screen is not an
// error: ok is false and callers render the default toolbar.
func (s Screens) Get(screenID string) (ScreenConfig, bool) {
	cfg, ok := s[screenID]
	return cfg, ok
}
