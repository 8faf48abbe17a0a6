// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings active while a menu is open. The
// set is intentionally small: printable characters are reserved for
// typeahead, so there are no letter aliases for navigation (no vim
// j/k here).
type KeyMap struct {
	Down    key.Binding
	Up      key.Binding
	Home    key.Binding
	End     key.Binding
	Select  key.Binding // Commit the focused option.
	Dismiss key.Binding // Close without selecting.
	Erase   key.Binding // Remove the last typeahead character.
}

// DefaultKeyMap is the built-in binding set for open menus.
var DefaultKeyMap = KeyMap{
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next option"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous option"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home", "first option"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("End", "last option"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "select"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
	Erase: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("BS", "erase typeahead"),
	),
}
