package menu

import (
	"strings"

	"rover/internal/action"
)

// Kind is the outcome of resolving a node.
type Kind int

const (
	KindNoOp Kind = iota
	KindNavigate
	KindInvoke
)

func (k Kind) String() string {
	switch k {
	case KindNavigate:
		return "navigate"
	case KindInvoke:
		return "invoke"
	default:
		return "noop"
	}
}

// Resolution says what selecting a node does. Route is set only for
// KindNavigate; Action and ActionName only for KindInvoke.
type Resolution struct {
	Kind       Kind
	Route      string
	Action     action.Action
	ActionName string
}

// Resolve maps a node to exactly one of navigate, invoke or no-op.
// Separators, labels and submenus are no-ops.
func Resolve(n Node) Resolution {
	switch n := n.(type) {
	case RouteItem:
		return Resolution{Kind: KindNavigate, Route: n.Route}
	case ActionItem:
		name := n.Name
		if name == "" {
			name = n.Action.String()
		}
		return Resolution{Kind: KindInvoke, Action: n.Action, ActionName: name}
	}
	return Resolution{Kind: KindNoOp}
}

// Walk visits nodes depth-first. path holds the titles of the enclosing
// submenus, outermost first.
func Walk(nodes []Node, fn func(path []string, n Node)) {
	walk(nil, nodes, fn)
}

func walk(path []string, nodes []Node, fn func([]string, Node)) {
	for _, n := range nodes {
		fn(path, n)
		if sub, ok := n.(Submenu); ok {
			walk(append(path[:len(path):len(path)], sub.Label), sub.Items, fn)
		}
	}
}

// Entry is an actionable leaf together with where it lives in the bar.
type Entry struct {
	Path       []string // trigger, then enclosing submenus
	Node       Node
	Resolution Resolution
}

// Breadcrumb renders the entry as "View › Settings".
func (e Entry) Breadcrumb() string {
	parts := append(append([]string(nil), e.Path...), e.Node.Title())
	return strings.Join(parts, " › ")
}

// Leaves returns every leaf in the bar that resolves to something other
// than a no-op, in display order.
func Leaves(b *Bar) []Entry {
	var out []Entry
	for _, m := range b.Menus() {
		Walk(m.Items, func(path []string, n Node) {
			res := Resolve(n)
			if res.Kind == KindNoOp {
				return
			}
			full := append([]string{m.Trigger}, path...)
			out = append(out, Entry{Path: full, Node: n, Resolution: res})
		})
	}
	return out
}
