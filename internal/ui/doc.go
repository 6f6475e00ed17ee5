// Package ui is rover's terminal shell: a menu bar, a toolbar, a content
// area with an optional right panel, and a status bar, composed with
// Bubble Tea.
//
// Building blocks:
//   - View: a screen or popup with its own Init/Update/View
//   - Layout: splits the terminal into the shell's regions
//   - FocusManager: rotates keyboard focus between regions
//   - OverlayStack: popups (command palette, key help) that take input first
//   - KeybindRegistry: direct shortcuts and SPC-leader sequences
//
// AppModel owns all of it and is handed to tea.NewProgram through
// AsTeaModel.
package ui
