package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	assert.NotNil(t, reg.Lookup("q"))
	assert.NotNil(t, reg.Lookup("space q"), "space is normalized to SPC")
	assert.Nil(t, reg.Lookup("j"))
	assert.Nil(t, reg.Lookup("unknown"))
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", tea.Quit, "Quit", []AppMode{ModeContent})

	assert.NotNil(t, reg.LookupForMode("q", ModeContent))
	assert.Nil(t, reg.LookupForMode("q", ModeMenuBar))
	assert.NotNil(t, reg.Lookup("q"), "unfiltered lookup ignores modes")
}

func TestKeybindRegistry_LeaderHintsGroups(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC g d", tea.Quit, "Dashboard")
	reg.BindWithDesc("SPC z i", tea.Quit, "Zoom in")
	reg.Group("SPC g", "Go to")

	hints := reg.LeaderHints("", ModeContent)
	assert.Equal(t, map[string]string{"q": "Quit", "g": "Go to", "z": "z…"}, hints)

	next := reg.LeaderHints("SPC g", ModeContent)
	assert.Equal(t, map[string]string{"d": "Dashboard"}, next)
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	require.True(t, h.LeaderWaiting)
	assert.Equal(t, "SPC", h.CurrentSeq())

	consumed, cmd = h.Handle(keyMsg("x"))
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC g d", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("g"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting, "g is a prefix, keep waiting")

	_, cmd = h.Handle(keyMsg("d"))
	assert.NotNil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_DeadEndCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("y"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	require.True(t, h.LeaderWaiting)

	consumed, cmd := h.Handle(keyMsg("esc"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)

	consumed, _ = h.Handle(keyMsg("esc"))
	assert.False(t, consumed, "esc outside leader mode falls through")
}

func TestKeyHandler_SingleKeyInMode(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", tea.Quit, "Quit", []AppMode{ModeContent})
	reg.Bind("ctrl+s", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.HandleInMode(keyMsg("q"), ModeContent)
	assert.True(t, consumed)
	assert.NotNil(t, cmd)

	consumed, _ = h.HandleInMode(keyMsg("q"), ModeMenuBar)
	assert.False(t, consumed)

	consumed, cmd = h.HandleInMode(keyMsg("ctrl+s"), ModeMenuBar)
	assert.True(t, consumed)
	assert.NotNil(t, cmd)
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	assert.False(t, consumed)
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	assert.Empty(t, RenderKeybindHelp(nil, ModeContent))

	h.Handle(keyMsg(" "))
	out := RenderKeybindHelp(h, ModeContent)
	assert.Contains(t, out, "SPC")
	assert.Contains(t, out, "Quit")
	assert.Contains(t, out, "cancel")
}

// keyMsg builds the tea.KeyMsg whose String() is s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "alt+left":
		return tea.KeyMsg{Type: tea.KeyLeft, Alt: true}
	case "f10":
		return tea.KeyMsg{Type: tea.KeyF10}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+q":
		return tea.KeyMsg{Type: tea.KeyCtrlQ}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
