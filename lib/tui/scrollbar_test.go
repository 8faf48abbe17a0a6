// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func thumbRows(lines []string) []int {
	var rows []int
	for index, line := range lines {
		if strings.Contains(ansi.Strip(line), "┃") {
			rows = append(rows, index)
		}
	}
	return rows
}

func TestScrollbarFullThumbWhenContentFits(t *testing.T) {
	lines := ScrollbarColumn(DefaultTheme, 4, 3, 5, 0)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if got := thumbRows(lines); len(got) != 4 {
		t.Errorf("content that fits should render a full-height thumb, thumb rows %v", got)
	}
}

func TestScrollbarThumbTracksOffset(t *testing.T) {
	// 10 items, window of 4, height 4: thumb is 1 row within 4.
	top := thumbRows(ScrollbarColumn(DefaultTheme, 4, 10, 4, 0))
	if len(top) == 0 || top[0] != 0 {
		t.Errorf("offset 0 should put the thumb at the top, rows %v", top)
	}

	bottom := thumbRows(ScrollbarColumn(DefaultTheme, 4, 10, 4, 6))
	if len(bottom) == 0 || bottom[len(bottom)-1] != 3 {
		t.Errorf("max offset should put the thumb at the bottom, rows %v", bottom)
	}
}

func TestScrollbarZeroHeight(t *testing.T) {
	if lines := ScrollbarColumn(DefaultTheme, 0, 10, 4, 0); lines != nil {
		t.Errorf("zero height should render nothing, got %d lines", len(lines))
	}
}

func TestScrollbarRowWidth(t *testing.T) {
	for _, line := range ScrollbarColumn(DefaultTheme, 3, 10, 3, 2) {
		if got := ansi.StringWidth(line); got != 1 {
			t.Errorf("scrollbar rows are one column wide, got %d", got)
		}
	}
}
