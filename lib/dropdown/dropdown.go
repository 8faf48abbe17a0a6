// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NoSelection is the sentinel index meaning "no option": a dropdown
// with no committed selection has SelectedIndex() == NoSelection, and
// a closed menu always has FocusedIndex() == NoSelection.
const NoSelection = -1

// defaultMaxVisible is the menu window height used when the caller
// does not set one. Menus with more options than this scroll.
const defaultMaxVisible = 8

// Dropdown is one dropdown instance: a trigger showing the current
// selection (or a placeholder) and a menu of options that opens below
// it. The zero value is not usable; construct with [New].
//
// A Dropdown has two states, closed and open. The committed selection
// (selectedIndex) and the keyboard focus inside an open menu
// (focusedIndex) are independent: moving focus never changes the
// selection, and closing the menu resets focus but never the
// selection. The only operation that changes the selection is
// [Dropdown.SelectOption].
type Dropdown struct {
	id          string
	placeholder string
	options     []Option
	keys        KeyMap

	open          bool
	selectedIndex int
	focusedIndex  int
	destroyed     bool

	// Menu scroll window.
	maxVisible   int
	scrollOffset int

	// Screen placement, assigned by the hosting layout. The trigger
	// occupies the single row at anchorY; the menu opens on the rows
	// below it.
	anchorX int
	anchorY int

	typeahead typeaheadState
}

// New creates a closed Dropdown with no selection. The option order
// is fixed for the instance's lifetime: display order and keyboard
// navigation order are the construction order.
func New(id, placeholder string, options []Option) *Dropdown {
	return &Dropdown{
		id:            id,
		placeholder:   placeholder,
		options:       options,
		keys:          DefaultKeyMap,
		selectedIndex: NoSelection,
		focusedIndex:  NoSelection,
		maxVisible:    defaultMaxVisible,
	}
}

// ID returns the instance's stable identifier.
func (dropdown *Dropdown) ID() string { return dropdown.id }

// IsOpen reports whether the menu is currently visible.
func (dropdown *Dropdown) IsOpen() bool { return dropdown.open }

// Destroyed reports whether Destroy has been called.
func (dropdown *Dropdown) Destroyed() bool { return dropdown.destroyed }

// SelectedIndex returns the committed selection, or NoSelection.
func (dropdown *Dropdown) SelectedIndex() int { return dropdown.selectedIndex }

// FocusedIndex returns the option highlighted for keyboard
// navigation, or NoSelection. Always NoSelection while closed.
func (dropdown *Dropdown) FocusedIndex() int { return dropdown.focusedIndex }

// Options returns the instance's option list. Callers must not
// mutate it; the list is fixed at construction.
func (dropdown *Dropdown) Options() []Option { return dropdown.options }

// Selected returns the committed option, if any.
func (dropdown *Dropdown) Selected() (Option, bool) {
	if dropdown.selectedIndex == NoSelection {
		return Option{}, false
	}
	return dropdown.options[dropdown.selectedIndex], true
}

// Label returns the text shown on the trigger: the selected option's
// label, or the placeholder when nothing is selected.
func (dropdown *Dropdown) Label() string {
	if option, ok := dropdown.Selected(); ok {
		return option.Label
	}
	return dropdown.placeholder
}

// Placeholder returns the label shown while nothing is selected.
func (dropdown *Dropdown) Placeholder() string { return dropdown.placeholder }

// SetMaxVisible sets the menu window height. Values below 1 are
// clamped to 1.
func (dropdown *Dropdown) SetMaxVisible(rows int) {
	if rows < 1 {
		rows = 1
	}
	dropdown.maxVisible = rows
	dropdown.clampScroll()
}

// SetAnchor places the trigger's top-left corner at the given screen
// coordinate. Called by the hosting layout on every resize.
func (dropdown *Dropdown) SetAnchor(x, y int) {
	dropdown.anchorX = x
	dropdown.anchorY = y
}

// Anchor returns the trigger's screen position.
func (dropdown *Dropdown) Anchor() (x, y int) {
	return dropdown.anchorX, dropdown.anchorY
}

// ScrollOffset returns the index of the first visible menu row.
func (dropdown *Dropdown) ScrollOffset() int { return dropdown.scrollOffset }

// Open makes the menu visible. No-op if already open or destroyed.
//
// Before any of this instance's own side effects apply, every other
// instance in the registry is closed, so at no observable point are
// two menus open at once. The broadcast is synchronous and closing an
// already-closed instance is a no-op, which makes the call safe in
// any order. A nil registry skips the broadcast (standalone use).
//
// On open, keyboard focus lands on the committed selection, or
// nowhere if there is none.
func (dropdown *Dropdown) Open(registry *Registry) {
	if dropdown.destroyed || dropdown.open {
		return
	}
	if registry != nil {
		registry.CloseOthers(dropdown)
	}
	dropdown.open = true
	dropdown.focusedIndex = dropdown.selectedIndex
	dropdown.scrollOffset = 0
	dropdown.typeahead.reset()
	if dropdown.focusedIndex != NoSelection {
		dropdown.ensureFocusVisible()
	}
}

// Close hides the menu and resets keyboard focus. The committed
// selection is never touched. No-op if already closed or destroyed;
// always safe to call.
func (dropdown *Dropdown) Close() {
	if dropdown.destroyed || !dropdown.open {
		return
	}
	dropdown.open = false
	dropdown.focusedIndex = NoSelection
	dropdown.typeahead.reset()
}

// Toggle opens a closed menu and closes an open one.
func (dropdown *Dropdown) Toggle(registry *Registry) {
	if dropdown.open {
		dropdown.Close()
	} else {
		dropdown.Open(registry)
	}
}

// SelectOption commits the option at index: it becomes the trigger
// label, the menu closes, and the returned SelectionMsg should be
// delivered to observers. This is the only way the selection changes.
//
// An out-of-range index (including NoSelection) changes nothing and
// emits nothing. Destroyed instances ignore the call entirely.
func (dropdown *Dropdown) SelectOption(index int) (SelectionMsg, bool) {
	if dropdown.destroyed {
		return SelectionMsg{}, false
	}
	if index < 0 || index >= len(dropdown.options) {
		return SelectionMsg{}, false
	}
	dropdown.selectedIndex = index
	dropdown.Close()
	return SelectionMsg{
		ID:     dropdown.id,
		Value:  dropdown.options[index].Value,
		Index:  index,
		Option: dropdown.options[index],
		Source: dropdown,
	}, true
}

// Destroy forces the instance closed, removes it from the registry,
// and marks it dead. Every later operation and routed event is a
// no-op; the instance no longer participates in mutual exclusion or
// click interception.
func (dropdown *Dropdown) Destroy(registry *Registry) {
	if dropdown.destroyed {
		return
	}
	dropdown.Close()
	if registry != nil {
		registry.Remove(dropdown)
	}
	dropdown.destroyed = true
}

// MoveFocusDown moves keyboard focus one option down, clamped to the
// last option. From no focus, the first option is focused.
func (dropdown *Dropdown) MoveFocusDown() {
	if !dropdown.open || len(dropdown.options) == 0 {
		return
	}
	next := dropdown.focusedIndex + 1
	if last := len(dropdown.options) - 1; next > last {
		next = last
	}
	dropdown.focusedIndex = next
	dropdown.ensureFocusVisible()
}

// MoveFocusUp moves keyboard focus one option up, clamped to the
// first option. From no focus, the first option is focused.
func (dropdown *Dropdown) MoveFocusUp() {
	if !dropdown.open || len(dropdown.options) == 0 {
		return
	}
	next := dropdown.focusedIndex - 1
	if next < 0 {
		next = 0
	}
	dropdown.focusedIndex = next
	dropdown.ensureFocusVisible()
}

// FocusHome focuses the first option.
func (dropdown *Dropdown) FocusHome() {
	if !dropdown.open || len(dropdown.options) == 0 {
		return
	}
	dropdown.focusedIndex = 0
	dropdown.ensureFocusVisible()
}

// FocusEnd focuses the last option.
func (dropdown *Dropdown) FocusEnd() {
	if !dropdown.open || len(dropdown.options) == 0 {
		return
	}
	dropdown.focusedIndex = len(dropdown.options) - 1
	dropdown.ensureFocusVisible()
}

// HandleKey processes one keyboard event for an open menu. The
// hosting model routes all keys here while this instance is open.
// Returns the selection notification when the key committed one.
//
// Unbound printable characters feed the typeahead buffer; the focused
// option jumps to the best fuzzy match.
func (dropdown *Dropdown) HandleKey(message tea.KeyMsg) (SelectionMsg, bool) {
	if dropdown.destroyed || !dropdown.open {
		return SelectionMsg{}, false
	}

	switch {
	case key.Matches(message, dropdown.keys.Select):
		if dropdown.focusedIndex == NoSelection {
			// Activating with nothing focused toggles the menu shut.
			dropdown.Close()
			return SelectionMsg{}, false
		}
		return dropdown.SelectOption(dropdown.focusedIndex)

	case key.Matches(message, dropdown.keys.Dismiss):
		dropdown.Close()

	case key.Matches(message, dropdown.keys.Down):
		dropdown.MoveFocusDown()

	case key.Matches(message, dropdown.keys.Up):
		dropdown.MoveFocusUp()

	case key.Matches(message, dropdown.keys.Home):
		dropdown.FocusHome()

	case key.Matches(message, dropdown.keys.End):
		dropdown.FocusEnd()

	case key.Matches(message, dropdown.keys.Erase):
		dropdown.typeahead.erase()

	default:
		if message.Type == tea.KeyRunes && !message.Alt {
			dropdown.typeaheadInput(message.Runes)
		}
	}
	return SelectionMsg{}, false
}

// menuHeight returns the number of menu rows drawn below the trigger
// while open. An empty option list still shows one row (the empty
// notice).
func (dropdown *Dropdown) menuHeight() int {
	if len(dropdown.options) == 0 {
		return 1
	}
	if len(dropdown.options) < dropdown.maxVisible {
		return len(dropdown.options)
	}
	return dropdown.maxVisible
}

// hasScrollbar reports whether the menu needs a scrollbar column.
func (dropdown *Dropdown) hasScrollbar() bool {
	return len(dropdown.options) > dropdown.maxVisible
}

// ensureFocusVisible adjusts the scroll window so the focused option
// is inside it ("scroll into view").
func (dropdown *Dropdown) ensureFocusVisible() {
	if dropdown.focusedIndex == NoSelection {
		return
	}
	if dropdown.focusedIndex < dropdown.scrollOffset {
		dropdown.scrollOffset = dropdown.focusedIndex
	}
	if dropdown.focusedIndex >= dropdown.scrollOffset+dropdown.maxVisible {
		dropdown.scrollOffset = dropdown.focusedIndex - dropdown.maxVisible + 1
	}
	dropdown.clampScroll()
}

// clampScroll keeps the scroll offset within the valid range.
func (dropdown *Dropdown) clampScroll() {
	maxOffset := len(dropdown.options) - dropdown.maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if dropdown.scrollOffset > maxOffset {
		dropdown.scrollOffset = maxOffset
	}
	if dropdown.scrollOffset < 0 {
		dropdown.scrollOffset = 0
	}
}

// Contains reports whether the screen coordinate (x, y) falls within
// the instance's own extent: the trigger row, plus the open menu's
// rows (including the scrollbar column). The click interceptor uses
// this to decide whether an interaction is "outside" the instance.
func (dropdown *Dropdown) Contains(x, y int) bool {
	if dropdown.destroyed {
		return false
	}
	width := dropdown.Width()
	if y == dropdown.anchorY && x >= dropdown.anchorX && x < dropdown.anchorX+width {
		return true
	}
	if !dropdown.open {
		return false
	}
	menuWidth := width
	if dropdown.hasScrollbar() {
		menuWidth++
	}
	menuTop := dropdown.anchorY + 1
	return y >= menuTop && y < menuTop+dropdown.menuHeight() &&
		x >= dropdown.anchorX && x < dropdown.anchorX+menuWidth
}

// OptionAt maps a screen coordinate to the option index rendered
// there, or NoSelection when the coordinate is not on an option row
// (closed menu, trigger row, scrollbar column, empty notice).
func (dropdown *Dropdown) OptionAt(x, y int) int {
	if dropdown.destroyed || !dropdown.open {
		return NoSelection
	}
	if x < dropdown.anchorX || x >= dropdown.anchorX+dropdown.Width() {
		return NoSelection
	}
	row := y - dropdown.anchorY - 1
	if row < 0 || row >= dropdown.menuHeight() {
		return NoSelection
	}
	index := dropdown.scrollOffset + row
	if index >= len(dropdown.options) {
		return NoSelection
	}
	return index
}

// HandleClick processes a left-button press at a screen coordinate.
// A click on the trigger toggles the menu; a click on an option row
// commits it. The handled result reports whether the click landed on
// this instance at all; an unhandled click is "outside" and the
// hosting model closes the menu through the interceptor path instead.
func (dropdown *Dropdown) HandleClick(x, y int, registry *Registry) (msg SelectionMsg, selected, handled bool) {
	if dropdown.destroyed || !dropdown.Contains(x, y) {
		return SelectionMsg{}, false, false
	}
	if y == dropdown.anchorY {
		dropdown.Toggle(registry)
		return SelectionMsg{}, false, true
	}
	if index := dropdown.OptionAt(x, y); index != NoSelection {
		msg, selected = dropdown.SelectOption(index)
		return msg, selected, true
	}
	// Scrollbar column or empty notice: consumed, no state change.
	return SelectionMsg{}, false, true
}

// HandleWheel scrolls an open menu's window by delta rows (positive =
// down) without moving keyboard focus.
func (dropdown *Dropdown) HandleWheel(delta int) {
	if dropdown.destroyed || !dropdown.open {
		return
	}
	dropdown.scrollOffset += delta
	dropdown.clampScroll()
}
