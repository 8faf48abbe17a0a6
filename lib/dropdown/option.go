// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

// Option is a single selectable entry in a dropdown menu.
//
// Label is the plain-text form used for width computation, typeahead
// matching, and the trigger label after selection. Styled optionally
// carries a pre-styled (ANSI escaped) rendition of the same text for
// rich display content; when set, the menu renders Styled instead of
// Label but all state logic still operates on Label.
type Option struct {
	Label  string // Display text.
	Value  string // Opaque payload reported on selection.
	Styled string // Optional pre-styled display content.
}

// SelectionMsg is the selection notification emitted on every
// committed selection. It is delivered through the bubbletea loop so
// any model above the widget can observe it; the widget makes no
// assumption about subscriber behavior and does not wait for it.
type SelectionMsg struct {
	ID     string    // Identity of the owning instance.
	Value  string    // The chosen option's value.
	Index  int       // The chosen option's index.
	Option Option    // The chosen option itself.
	Source *Dropdown // The owning instance.
}
