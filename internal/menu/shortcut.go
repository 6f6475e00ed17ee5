package menu

import "strings"

var modifierAliases = map[string]string{
	"⌘":       "ctrl",
	"cmd":     "ctrl",
	"command": "ctrl",
	"meta":    "ctrl",
	"super":   "ctrl",
	"control": "ctrl",
	"ctrl":    "ctrl",
	"⌃":       "ctrl",
	"⌥":       "alt",
	"option":  "alt",
	"opt":     "alt",
	"alt":     "alt",
	"⇧":       "shift",
	"shift":   "shift",
}

// modifier order matches how Bubble Tea spells keys ("alt+ctrl+s").
var modifierOrder = []string{"alt", "ctrl", "shift"}

var modifierSymbols = []string{"⌘", "⌃", "⌥", "⇧"}

// NormalizeShortcut converts a display shortcut ("⌘S", "Cmd+S", "Ctrl+S")
// into a terminal key string ("ctrl+s"). Terminals have no command key, so
// it maps to ctrl. Returns "" when no key is present.
func NormalizeShortcut(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// A trailing "+" right after a separator or a modifier symbol is the
	// plus key itself ("Ctrl++", "⌘+").
	plusKey := s == "+" || strings.HasSuffix(s, "++")
	for _, sym := range modifierSymbols {
		if strings.HasSuffix(s, sym+"+") {
			plusKey = true
		}
	}
	if plusKey {
		s = strings.TrimSuffix(s, "+")
	}
	for _, sym := range modifierSymbols {
		s = strings.ReplaceAll(s, sym, sym+"+")
	}

	mods := make(map[string]bool, len(modifierOrder))
	key := ""
	for _, part := range strings.Split(s, "+") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if m, ok := modifierAliases[part]; ok {
			mods[m] = true
			continue
		}
		key = part
	}
	if plusKey {
		key = "+"
	}
	if key == "" {
		return ""
	}

	var b strings.Builder
	for _, m := range modifierOrder {
		if mods[m] {
			b.WriteString(m)
			b.WriteByte('+')
		}
	}
	b.WriteString(key)
	return b.String()
}
