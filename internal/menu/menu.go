// Package menu models the menu bar as a tree of tagged nodes and resolves
// leaf items into navigations, action invocations or no-ops.
package menu

import (
	"errors"
	"fmt"

	"rover/internal/action"
)

// ErrDuplicateTrigger is returned when two menus share a trigger label.
var ErrDuplicateTrigger = errors.New("duplicate menu trigger")

// Node is one entry in a menu. The concrete types are RouteItem, ActionItem,
// Separator, Label and Submenu.
type Node interface {
	Title() string
	node()
}

// RouteItem navigates to Route when selected.
type RouteItem struct {
	Label    string
	Route    string
	Shortcut string
}

// ActionItem invokes Action when selected. Name keeps the symbolic name as
// written, which matters when Action is action.Unknown.
type ActionItem struct {
	Label    string
	Action   action.Action
	Name     string
	Shortcut string
}

// Separator is a visual divider.
type Separator struct{}

// Label is an inert entry: it has neither an action, a route nor children.
type Label struct {
	Text     string
	Shortcut string
}

// Submenu expands into Items and is never itself actionable.
type Submenu struct {
	Label string
	Items []Node
}

func (n RouteItem) Title() string  { return n.Label }
func (n ActionItem) Title() string { return n.Label }
func (Separator) Title() string    { return "" }
func (n Label) Title() string      { return n.Text }
func (n Submenu) Title() string    { return n.Label }

func (RouteItem) node()  {}
func (ActionItem) node() {}
func (Separator) node()  {}
func (Label) node()      {}
func (Submenu) node()    {}

// ShortcutOf returns the shortcut declared on a leaf, or "".
func ShortcutOf(n Node) string {
	switch n := n.(type) {
	case RouteItem:
		return n.Shortcut
	case ActionItem:
		return n.Shortcut
	case Label:
		return n.Shortcut
	}
	return ""
}

// Menu groups items under a top-level trigger such as "File" or "View".
type Menu struct {
	Trigger string
	Items   []Node
}

// Bar is the ordered set of menus shown in the menu bar.
type Bar struct {
	menus []Menu
	index map[string]int
}

// NewBar builds a bar. Triggers must be unique.
func NewBar(menus ...Menu) (*Bar, error) {
	b := &Bar{
		menus: make([]Menu, 0, len(menus)),
		index: make(map[string]int, len(menus)),
	}
	for _, m := range menus {
		if _, dup := b.index[m.Trigger]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTrigger, m.Trigger)
		}
		b.index[m.Trigger] = len(b.menus)
		b.menus = append(b.menus, m)
	}
	return b, nil
}

// Menus returns the menus in display order.
func (b *Bar) Menus() []Menu {
	return b.menus
}

// Len returns the number of menus.
func (b *Bar) Len() int {
	return len(b.menus)
}

// At returns the i-th menu.
func (b *Bar) At(i int) (Menu, bool) {
	if i < 0 || i >= len(b.menus) {
		return Menu{}, false
	}
	return b.menus[i], true
}

// Items returns the ordered items under trigger.
func (b *Bar) Items(trigger string) ([]Node, bool) {
	i, ok := b.index[trigger]
	if !ok {
		return nil, false
	}
	return b.menus[i].Items, true
}
