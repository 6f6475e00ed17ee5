// Package action defines the closed set of named behaviors that menu items
// and key bindings can trigger, and the registry that binds them to handlers.
package action

// Action identifies a known behavior. Unknown is the explicit variant for
// names that are not part of the set.
type Action int

const (
	Unknown Action = iota
	ZoomIn
	ZoomOut
	ResetZoom
	Back
	Palette
	Quit
)

var names = map[Action]string{
	ZoomIn:    "zoomIn",
	ZoomOut:   "zoomOut",
	ResetZoom: "resetZoom",
	Back:      "back",
	Palette:   "palette",
	Quit:      "quit",
}

var byName = func() map[string]Action {
	m := make(map[string]Action, len(names))
	for a, n := range names {
		m[n] = a
	}
	return m
}()

func (a Action) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return "unknown"
}

// Parse maps a symbolic name (e.g. "zoomIn") to its Action.
// Names are case-sensitive; anything else is Unknown.
func Parse(name string) Action {
	if a, ok := byName[name]; ok {
		return a
	}
	return Unknown
}

// All lists the known actions in declaration order.
func All() []Action {
	return []Action{ZoomIn, ZoomOut, ResetZoom, Back, Palette, Quit}
}
