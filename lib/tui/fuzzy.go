// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult holds the outcome of matching a pattern against a piece
// of text. Score is 0 when the pattern does not match; Positions
// lists the rune indices of the matched characters for highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// NewSlab allocates a scratch slab for the fzf matcher. Callers that
// match many candidates in one pass should allocate one slab and
// reuse it across FuzzyMatch calls; passing nil is also valid and
// simply skips the allocation reuse.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// FuzzyMatch runs the fzf V2 fuzzy-matching algorithm for a single
// pattern against a single text, case-insensitively. An empty pattern
// never matches (score 0): typeahead with no input should not
// highlight anything.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	// fzf expects a lowercase pattern for case-insensitive matching.
	lowered := make([]rune, len(pattern))
	for index, r := range pattern {
		lowered[index] = unicode.ToLower(r)
	}

	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
	}
	return matched
}
