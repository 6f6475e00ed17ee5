package menu

import "rover/internal/action"

// Item is the authored, record form of a menu entry. Every field is
// optional; Compile turns it into a tagged Node.
type Item struct {
	Label     string
	Action    string
	Route     string
	Shortcut  string
	Separator bool
	Items     []Item
}

// Definition is the authored form of a Menu.
type Definition struct {
	Trigger string
	Items   []Item
}

// Conflict describes an item that declared both an action and a route.
type Conflict struct {
	Path   []string // trigger, then enclosing submenus
	Label  string
	Action string
	Route  string
}

// Compile converts definitions into a Bar. Items with both an action and a
// route compile to a RouteItem and are reported to onConflict, which may be
// nil. Duplicate triggers are an error.
func Compile(defs []Definition, onConflict func(Conflict)) (*Bar, error) {
	menus := make([]Menu, 0, len(defs))
	for _, d := range defs {
		menus = append(menus, Menu{
			Trigger: d.Trigger,
			Items:   compileItems([]string{d.Trigger}, d.Items, onConflict),
		})
	}
	return NewBar(menus...)
}

func compileItems(path []string, items []Item, onConflict func(Conflict)) []Node {
	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, compileItem(path, it, onConflict))
	}
	return nodes
}

func compileItem(path []string, it Item, onConflict func(Conflict)) Node {
	switch {
	case it.Separator:
		return Separator{}
	case it.Items != nil:
		sub := append(path[:len(path):len(path)], it.Label)
		return Submenu{Label: it.Label, Items: compileItems(sub, it.Items, onConflict)}
	case it.Route != "":
		if it.Action != "" && onConflict != nil {
			onConflict(Conflict{
				Path:   append([]string(nil), path...),
				Label:  it.Label,
				Action: it.Action,
				Route:  it.Route,
			})
		}
		return RouteItem{Label: it.Label, Route: it.Route, Shortcut: it.Shortcut}
	case it.Action != "":
		return ActionItem{
			Label:    it.Label,
			Action:   action.Parse(it.Action),
			Name:     it.Action,
			Shortcut: it.Shortcut,
		}
	default:
		return Label{Text: it.Label, Shortcut: it.Shortcut}
	}
}
