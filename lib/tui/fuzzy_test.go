// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"sort"
	"testing"
)

func TestFuzzyMatchSubstring(t *testing.T) {
	result := FuzzyMatch("Production", []rune("prod"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) != 4 {
		t.Fatalf("expected 4 match positions, got %v", result.Positions)
	}
	// Position order is unspecified; the set must be the prefix runes.
	positions := append([]int(nil), result.Positions...)
	sort.Ints(positions)
	for index, position := range positions {
		if position != index {
			t.Errorf("sorted position %d = %d, want %d", index, position, index)
		}
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "uswest" matches "us-west-2" across the dash.
	result := FuzzyMatch("us-west-2", []rune("uswest"), nil)
	if result.Score <= 0 {
		t.Error("expected positive score for non-contiguous match")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("Staging", []rune("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected no positions, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	if result := FuzzyMatch("Development", []rune("DEV"), nil); result.Score <= 0 {
		t.Error("uppercase pattern should match")
	}
	if result := FuzzyMatch("UPPERCASE", []rune("upper"), nil); result.Score <= 0 {
		t.Error("lowercase pattern should match uppercase text")
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	if result := FuzzyMatch("anything", nil, nil); result.Score != 0 {
		t.Errorf("empty pattern should not match, got score %d", result.Score)
	}
}

func TestFuzzyMatchReusedSlab(t *testing.T) {
	slab := NewSlab()
	candidates := []string{"Apple", "Banana", "Cherry", "Cranberry"}
	matches := 0
	for _, candidate := range candidates {
		if FuzzyMatch(candidate, []rune("an"), slab).Score > 0 {
			matches++
		}
	}
	if matches != 2 {
		t.Errorf("expected Banana and Cranberry to match 'an', got %d matches", matches)
	}
}
