// Package route binds paths to views and tracks navigation history.
package route

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Root is the path every fallback redirect lands on.
const Root = "/"

// ViewID names a view component. The shell maps it to something renderable.
type ViewID string

const (
	ViewDashboard ViewID = "dashboard"
	ViewSettings  ViewID = "settings"
	ViewReports   ViewID = "reports"
	ViewDispatch  ViewID = "dispatch"
	ViewNotFound  ViewID = "not-found"
)

// Route binds a path to a view. Name is optional.
type Route struct {
	Path string
	Name string
	View ViewID
}

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("route not found")
	// ErrDuplicatePath is returned by NewTable for repeated paths.
	ErrDuplicatePath = errors.New("duplicate route path")
)

// NotFoundError reports an unmatched path and, when one is close enough,
// the registered path it most resembles.
type NotFoundError struct {
	Path       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("no route for %s (did you mean %s?)", e.Path, e.Suggestion)
	}
	return fmt.Sprintf("no route for %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Table is an ordered, exact-match route table.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewTable builds a table, rejecting duplicate paths. Names, when set,
// are indexed first-wins.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	for _, r := range routes {
		if _, dup := t.byPath[r.Path]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
		}
		idx := len(t.routes)
		t.byPath[r.Path] = idx
		if r.Name != "" {
			if _, seen := t.byName[r.Name]; !seen {
				t.byName[r.Name] = idx
			}
		}
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// DefaultTable is the console's route table.
func DefaultTable() *Table {
	t, err := NewTable(
		Route{Path: "/", Name: "dashboard", View: ViewDashboard},
		Route{Path: "/settings", Name: "Settings", View: ViewSettings},
		Route{Path: "/reports", Name: "reports", View: ViewReports},
		Route{Path: "/dispatch", Name: "DispatchMain", View: ViewDispatch},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the view bound to path. Matching is exact; an unmatched
// path yields a *NotFoundError.
func (t *Table) Resolve(path string) (ViewID, error) {
	if i, ok := t.byPath[path]; ok {
		return t.routes[i].View, nil
	}
	return "", &NotFoundError{Path: path, Suggestion: t.nearest(path)}
}

// Lookup finds a route by name.
func (t *Table) Lookup(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns the routes in registration order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// maxSuggestDistance bounds how different a suggestion may be.
const maxSuggestDistance = 3

func (t *Table) nearest(path string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, r := range t.routes {
		d := levenshtein.ComputeDistance(path, r.Path)
		if d < bestDist {
			best, bestDist = r.Path, d
		}
	}
	return best
}
