package route

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"rover/internal/telemetry"
)

// Fallback decides what the navigator shows for an unmatched path.
type Fallback int

const (
	// FallbackRoot redirects to Root.
	FallbackRoot Fallback = iota
	// FallbackNotFoundView shows ViewNotFound at the requested path.
	FallbackNotFoundView
)

func (f Fallback) String() string {
	switch f {
	case FallbackNotFoundView:
		return "not-found"
	default:
		return "root"
	}
}

// ParseFallback accepts "root" or "not-found".
func ParseFallback(s string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "root":
		return FallbackRoot, nil
	case "not-found", "notfound":
		return FallbackNotFoundView, nil
	}
	return FallbackRoot, fmt.Errorf("unknown fallback %q (want root or not-found)", s)
}

// Visit is the outcome of a navigation. Err is set when the requested path
// was not found; Redirected reports that the fallback moved to Root.
type Visit struct {
	Path       string
	View       ViewID
	Requested  string
	Redirected bool
	Err        error
}

// Navigator owns the current location and the back history.
type Navigator struct {
	table    *Table
	fallback Fallback
	current  Visit
	history  []Visit
	tracer   oteltrace.Tracer
}

// NewNavigator creates a navigator over table. Nothing is shown until the
// first Navigate.
func NewNavigator(table *Table, fallback Fallback) *Navigator {
	return &Navigator{
		table:    table,
		fallback: fallback,
		tracer:   telemetry.Tracer("route"),
	}
}

// SetTracer overrides the tracer used for navigation spans.
func (n *Navigator) SetTracer(t oteltrace.Tracer) {
	n.tracer = t
}

// Fallback returns the configured policy.
func (n *Navigator) Fallback() Fallback {
	return n.fallback
}

// Navigate moves to path. Unmatched paths are handled by the fallback
// policy and never fail. Re-navigating to the current path does not grow
// the history.
func (n *Navigator) Navigate(ctx context.Context, path string) Visit {
	_, span := n.tracer.Start(ctx, "route.navigate",
		oteltrace.WithAttributes(telemetry.KeyRoutePath.String(path)))
	defer span.End()

	v := n.resolve(path)
	if v.Err != nil {
		span.SetStatus(codes.Error, v.Err.Error())
	}
	span.SetAttributes(telemetry.KeyView.String(string(v.View)))

	if n.current.Path != "" && n.current.Path != v.Path {
		n.history = append(n.history, n.current)
	}
	n.current = v
	return v
}

func (n *Navigator) resolve(path string) Visit {
	view, err := n.table.Resolve(path)
	if err == nil {
		return Visit{Path: path, View: view, Requested: path}
	}
	if n.fallback == FallbackRoot && path != Root {
		if rootView, rootErr := n.table.Resolve(Root); rootErr == nil {
			return Visit{Path: Root, View: rootView, Requested: path, Redirected: true, Err: err}
		}
	}
	return Visit{Path: path, View: ViewNotFound, Requested: path, Err: err}
}

// Back returns to the previous location. ok is false when there is no
// history.
func (n *Navigator) Back() (Visit, bool) {
	if len(n.history) == 0 {
		return n.current, false
	}
	prev := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.current = prev
	return prev, true
}

// Current returns the location being shown.
func (n *Navigator) Current() Visit {
	return n.current
}

// Depth returns the number of entries Back can return to.
func (n *Navigator) Depth() int {
	return len(n.history)
}

// IsNotFound reports whether err came from an unmatched path.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
