package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeShortcut(t *testing.T) {
	cases := map[string]string{
		"⌘D":           "ctrl+d",
		"⌘S":           "ctrl+s",
		"Cmd+R":        "ctrl+r",
		"Ctrl+Q":       "ctrl+q",
		"ctrl+q":       "ctrl+q",
		" Alt+Left ":   "alt+left",
		"⌥⌘P":          "alt+ctrl+p",
		"Shift+Alt+x":  "alt+shift+x",
		"F10":          "f10",
		"":             "",
		"⌘":            "",
		"Ctrl+":        "",
		"Ctrl++":       "ctrl++",
		"⌘+":           "ctrl++",
		"Ctrl+Shift++": "ctrl+shift++",
		"+":            "+",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeShortcut(in), "input %q", in)
	}
}

func TestNormalizeShortcut_Idempotent(t *testing.T) {
	for _, in := range []string{"⌘D", "Cmd+Shift+K", "⌥⌘P", "alt+left", "q", "Ctrl++", "+"} {
		once := NormalizeShortcut(in)
		assert.Equal(t, once, NormalizeShortcut(once), "input %q", in)
	}
}
