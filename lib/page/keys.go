// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package page

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the page-level key bindings, active while no menu is
// open. Once a menu opens, all input except ForceQuit routes to the
// open instance (see the dropdown package's KeyMap).
type KeyMap struct {
	FocusNext     key.Binding
	FocusPrevious key.Binding

	// Activate opens the focused trigger's menu. Keyboard activation
	// requires trigger focus: Enter on an unfocused page does nothing.
	Activate key.Binding

	Quit      key.Binding
	ForceQuit key.Binding // Honored even while a menu is open.
}

// DefaultKeyMap is the built-in page binding set.
var DefaultKeyMap = KeyMap{
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	FocusPrevious: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " ", "down", "up"),
		key.WithHelp("Enter", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
