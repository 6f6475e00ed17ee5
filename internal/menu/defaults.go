package menu

// DefaultDefinitions is the menu bar of the dispatch console.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Trigger: "File",
			Items: []Item{
				{Label: "Quit", Action: "quit", Shortcut: "Ctrl+Q"},
			},
		},
		{
			Trigger: "View",
			Items: []Item{
				{Label: "Dashboard", Route: "/", Shortcut: "⌘D"},
				{Label: "Settings", Route: "/settings", Shortcut: "⌘S"},
				{Label: "Reports", Route: "/reports", Shortcut: "⌘R"},
			},
		},
		{
			Trigger: "Administration",
			Items: []Item{
				{Label: "Zoom In", Action: "zoomIn"},
				{Label: "Zoom Out", Action: "zoomOut"},
				{Separator: true},
				{Label: "Reset Zoom", Action: "resetZoom"},
			},
		},
		{
			Trigger: "Go",
			Items: []Item{
				{Label: "Back", Action: "back", Shortcut: "Alt+Left"},
				{Label: "Dispatch", Route: "/dispatch"},
				{Separator: true},
				{Label: "Command Palette", Action: "palette", Shortcut: "⌘P"},
			},
		},
	}
}

// DefaultBar compiles DefaultDefinitions.
func DefaultBar(onConflict func(Conflict)) (*Bar, error) {
	return Compile(DefaultDefinitions(), onConflict)
}
