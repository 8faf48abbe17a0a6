// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// ScrollbarColumn produces a single-column scrollbar of the given
// height, one rune per line. The thumb indicates the visible window
// within the total item count.
//
// The scrollbar is always fully rendered: track + thumb. When the
// content fits within the visible window the thumb spans the entire
// height.
func ScrollbarColumn(theme Theme, height, totalItems, visibleItems, scrollOffset int) []string {
	if height <= 0 {
		return nil
	}

	trackStyle := lipgloss.NewStyle().
		Foreground(theme.ScrollbarTrack).
		Background(theme.MenuBackground)
	thumbStyle := lipgloss.NewStyle().
		Foreground(theme.ScrollbarThumb).
		Background(theme.MenuBackground)

	lines := make([]string, height)

	if totalItems <= visibleItems || totalItems <= 0 {
		for index := range lines {
			lines[index] = thumbStyle.Render("┃")
		}
		return lines
	}

	// Thumb size proportional to visible/total, minimum 1 row.
	thumbSize := height * visibleItems / totalItems
	if thumbSize < 1 {
		thumbSize = 1
	}

	// Thumb position proportional to the scroll offset within the
	// scrollable range.
	scrollableRange := totalItems - visibleItems
	trackRange := height - thumbSize
	thumbOffset := 0
	if scrollableRange > 0 && trackRange > 0 {
		thumbOffset = scrollOffset * trackRange / scrollableRange
	}
	if thumbOffset+thumbSize > height {
		thumbOffset = height - thumbSize
	}

	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}

	return lines
}
