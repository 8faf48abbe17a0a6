// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import (
	"time"

	"github.com/junegunn/fzf/src/util"

	"github.com/canopy-ui/dropdown/lib/tui"
)

// typeaheadResetDelay is the pause after which the next typed
// character starts a fresh typeahead query instead of extending the
// current one. Checked against timestamps at key time; no timer runs.
const typeaheadResetDelay = time.Second

// typeaheadState accumulates printable characters typed into an open
// menu. The buffer is matched fuzzily against option labels to jump
// keyboard focus, the way a native select jumps on typed prefixes.
type typeaheadState struct {
	buffer  []rune
	lastKey time.Time
	slab    *util.Slab // Lazily allocated fzf scratch space, reused across matches.
}

func (state *typeaheadState) append(runes []rune, now time.Time) {
	if !state.lastKey.IsZero() && now.Sub(state.lastKey) > typeaheadResetDelay {
		state.buffer = nil
	}
	state.lastKey = now
	state.buffer = append(state.buffer, runes...)
	if state.slab == nil {
		state.slab = tui.NewSlab()
	}
}

func (state *typeaheadState) erase() {
	if len(state.buffer) > 0 {
		state.buffer = state.buffer[:len(state.buffer)-1]
	}
}

func (state *typeaheadState) reset() {
	state.buffer = nil
	state.lastKey = time.Time{}
}

// TypeaheadQuery returns the current typeahead buffer, empty when
// none is active. The renderer uses it to highlight matched
// characters in menu rows.
func (dropdown *Dropdown) TypeaheadQuery() string {
	return string(dropdown.typeahead.buffer)
}

// typeaheadInput extends the typeahead buffer and jumps focus to the
// best-matching option. When nothing matches, focus stays where it
// is: typeahead never moves focus outside the option range and never
// touches the committed selection.
func (dropdown *Dropdown) typeaheadInput(runes []rune) {
	dropdown.typeahead.append(runes, time.Now())
	dropdown.focusBestMatch()
}

func (dropdown *Dropdown) focusBestMatch() {
	pattern := dropdown.typeahead.buffer
	if len(pattern) == 0 {
		return
	}
	bestIndex := NoSelection
	bestScore := 0
	for index, option := range dropdown.options {
		result := tui.FuzzyMatch(option.Label, pattern, dropdown.typeahead.slab)
		if result.Score > bestScore {
			bestIndex = index
			bestScore = result.Score
		}
	}
	if bestIndex != NoSelection {
		dropdown.focusedIndex = bestIndex
		dropdown.ensureFocusVisible()
	}
}
