// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for Canopy's terminal widgets. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
//
// The fields cover the trigger (the always-visible control), the
// floating menu, and page chrome. A single theme is shared by every
// widget on a page so that focus and selection read consistently.
type Theme struct {
	// Text colors.
	NormalText      lipgloss.Color
	FaintText       lipgloss.Color // Secondary chrome.
	PlaceholderText lipgloss.Color // Trigger label when nothing is selected.

	// Trigger chrome.
	TriggerBorder        lipgloss.Color // Border of an unfocused trigger.
	TriggerFocusedBorder lipgloss.Color // Border when the trigger has keyboard focus.
	TriggerOpenBorder    lipgloss.Color // Border while the menu is open.

	// Menu rows.
	MenuBackground    lipgloss.Color // Solid background behind menu rows.
	MenuForeground    lipgloss.Color // Text color of unfocused menu rows.
	FocusBackground   lipgloss.Color // Background of the keyboard-focused row.
	FocusForeground   lipgloss.Color
	SelectedIndicator lipgloss.Color // The checkmark on the committed selection.

	// Typeahead match highlighting within menu rows.
	MatchForeground lipgloss.Color

	// Scrollbar column (menus taller than their window).
	ScrollbarThumb lipgloss.Color
	ScrollbarTrack lipgloss.Color

	// Page chrome.
	TitleForeground  lipgloss.Color
	StatusForeground lipgloss.Color // Status line (last selection, help).
	HelpText         lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText:      lipgloss.Color("252"),
	FaintText:       lipgloss.Color("245"),
	PlaceholderText: lipgloss.Color("243"),

	TriggerBorder:        lipgloss.Color("240"),
	TriggerFocusedBorder: lipgloss.Color("75"),  // blue
	TriggerOpenBorder:    lipgloss.Color("220"), // amber

	MenuBackground:    lipgloss.Color("237"),
	MenuForeground:    lipgloss.Color("252"),
	FocusBackground:   lipgloss.Color("236"),
	FocusForeground:   lipgloss.Color("255"),
	SelectedIndicator: lipgloss.Color("114"), // green

	MatchForeground: lipgloss.Color("220"),

	ScrollbarThumb: lipgloss.Color("250"),
	ScrollbarTrack: lipgloss.Color("238"),

	TitleForeground:  lipgloss.Color("255"),
	StatusForeground: lipgloss.Color("245"),
	HelpText:         lipgloss.Color("241"),
}
