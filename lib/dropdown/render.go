// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/canopy-ui/dropdown/lib/tui"
)

// Width returns the total visible width of the widget in columns.
// The trigger and every menu row render at exactly this width, which
// is also what mouse hit-testing uses (the scrollbar column, when
// present, adds one more).
func (dropdown *Dropdown) Width() int {
	// Layout: frame (1) + space + label field + space + marker + space.
	return dropdown.labelWidth() + 6
}

// labelWidth is the widest of the placeholder and all option labels,
// measured ANSI-aware. Minimum 1 so an all-empty widget still has a
// body.
func (dropdown *Dropdown) labelWidth() int {
	width := ansi.StringWidth(dropdown.placeholder)
	for _, option := range dropdown.options {
		if labelW := ansi.StringWidth(option.Label); labelW > width {
			width = labelW
		}
	}
	if width < 1 {
		width = 1
	}
	return width
}

// RenderTrigger produces the single always-visible trigger line: the
// current selection (or faint placeholder) plus the expanded marker.
// The marker mirrors the open state (▾ collapsed, ▴ expanded) and
// stays in sync with IsOpen on every transition, as does the ✓ marker
// RenderMenu puts on the committed option.
func (dropdown *Dropdown) RenderTrigger(theme tui.Theme, focused bool) string {
	frameColor := theme.TriggerBorder
	switch {
	case dropdown.open:
		frameColor = theme.TriggerOpenBorder
	case focused:
		frameColor = theme.TriggerFocusedBorder
	}
	frameStyle := lipgloss.NewStyle().Foreground(frameColor)

	labelColor := theme.NormalText
	if dropdown.selectedIndex == NoSelection {
		labelColor = theme.PlaceholderText
	}
	labelStyle := lipgloss.NewStyle().Foreground(labelColor)

	marker := "▾"
	if dropdown.open {
		marker = "▴"
	}

	labelField := dropdown.labelWidth() + 1
	return frameStyle.Render("▎") + " " +
		labelStyle.Render(padCell(dropdown.Label(), labelField)) + " " +
		frameStyle.Render(marker) + " "
}

// RenderMenu produces the open menu's lines for overlay splicing: one
// line per visible option (focus bar, typeahead match highlighting,
// selected ✓ marker) plus a scrollbar column when the options exceed
// the window. Returns nil while closed.
func (dropdown *Dropdown) RenderMenu(theme tui.Theme) []string {
	if !dropdown.open {
		return nil
	}

	rowStyle := lipgloss.NewStyle().
		Background(theme.MenuBackground).
		Foreground(theme.MenuForeground)
	focusStyle := lipgloss.NewStyle().
		Background(theme.FocusBackground).
		Foreground(theme.FocusForeground)

	if len(dropdown.options) == 0 {
		notice := lipgloss.NewStyle().
			Background(theme.MenuBackground).
			Foreground(theme.FaintText).
			Render(padCell("(no options)", dropdown.Width()))
		return []string{notice}
	}

	labelField := dropdown.labelWidth()
	query := dropdown.TypeaheadQuery()
	height := dropdown.menuHeight()

	var scrollbar []string
	if dropdown.hasScrollbar() {
		scrollbar = tui.ScrollbarColumn(theme, height,
			len(dropdown.options), dropdown.maxVisible, dropdown.scrollOffset)
	}

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		index := dropdown.scrollOffset + row
		option := dropdown.options[index]
		focused := index == dropdown.focusedIndex
		selected := index == dropdown.selectedIndex

		base := rowStyle
		if focused {
			base = focusStyle
		}

		marker := " "
		if focused {
			marker = ">"
		}
		check := " "
		if selected {
			check = "✓"
		}
		checkStyle := base.Foreground(theme.SelectedIndicator)

		var labelCell string
		switch {
		case option.Styled != "" && !focused:
			// Pre-styled content keeps its own colors; only the
			// padding takes the row background.
			labelCell = padStyledCell(option.Styled, labelField, base)
		case query != "":
			match := tui.FuzzyMatch(option.Label, []rune(query), dropdown.typeahead.slab)
			labelCell = highlightCell(option.Label, labelField, match.Positions,
				base, base.Foreground(theme.MatchForeground))
		default:
			labelCell = base.Render(padCell(option.Label, labelField))
		}

		line := base.Render(" "+marker+" ") + labelCell +
			base.Render(" ") + checkStyle.Render(check) + base.Render(" ")
		if scrollbar != nil {
			line += scrollbar[row]
		}
		lines = append(lines, line)
	}
	return lines
}

// padCell pads text with spaces to exactly width columns, truncating
// ANSI-aware when it is too wide.
func padCell(text string, width int) string {
	textWidth := ansi.StringWidth(text)
	if textWidth > width {
		return ansi.Truncate(text, width, "")
	}
	return text + strings.Repeat(" ", width-textWidth)
}

// padStyledCell pads pre-styled content to the field width, rendering
// only the padding with the row style so the content's own escapes
// survive.
func padStyledCell(styled string, width int, pad lipgloss.Style) string {
	styledWidth := ansi.StringWidth(styled)
	if styledWidth > width {
		return ansi.Truncate(styled, width, "")
	}
	if styledWidth == width {
		return styled
	}
	return styled + pad.Render(strings.Repeat(" ", width-styledWidth))
}

// highlightCell renders a label with the typeahead-matched rune
// positions in the match style and everything else (including the
// right padding) in the base style.
func highlightCell(label string, width int, positions []int, base, match lipgloss.Style) string {
	matched := make(map[int]bool, len(positions))
	for _, position := range positions {
		matched[position] = true
	}

	var cell strings.Builder
	runes := []rune(label)
	if len(runes) > width {
		runes = runes[:width]
	}
	for index, r := range runes {
		if matched[index] {
			cell.WriteString(match.Render(string(r)))
		} else {
			cell.WriteString(base.Render(string(r)))
		}
	}
	if pad := width - len(runes); pad > 0 {
		cell.WriteString(base.Render(strings.Repeat(" ", pad)))
	}
	return cell.String()
}
