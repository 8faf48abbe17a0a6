// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the underlying view survive on both sides of the
// overlay region.
//
// Overlay lines falling outside the view's vertical range are skipped
// rather than extending the view: a menu opened near the bottom of a
// short terminal is clipped, matching how the rest of the page clips.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")

	for index, overlayLine := range overlayLines {
		target := anchorY + index
		if target < 0 || target >= len(viewLines) {
			continue
		}

		original := viewLines[target]
		originalWidth := ansi.StringWidth(original)
		overlayWidth := ansi.StringWidth(overlayLine)

		var spliced strings.Builder

		// Everything left of the anchor. If the original line is
		// shorter than the anchor, pad with spaces so the overlay
		// lands at the requested column.
		if anchorX > 0 {
			spliced.WriteString(ansi.Truncate(original, anchorX, ""))
			if originalWidth < anchorX {
				spliced.WriteString(strings.Repeat(" ", anchorX-originalWidth))
			}
		}

		// The overlay itself, bracketed by SGR resets so styling
		// cannot leak in either direction.
		spliced.WriteString("\x1b[0m")
		spliced.WriteString(overlayLine)
		spliced.WriteString("\x1b[0m")

		// Everything right of the overlay region.
		resume := anchorX + overlayWidth
		if resume < originalWidth {
			spliced.WriteString(ansi.TruncateLeft(original, resume, ""))
		}

		viewLines[target] = spliced.String()
	}

	return strings.Join(viewLines, "\n")
}
