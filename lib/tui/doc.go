// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface primitives for
// Canopy widgets. Built for bubbletea (Elm architecture), it covers
// the common mechanics widgets need: a color theme, ANSI-aware overlay
// splicing for floating menus, a proportional scrollbar column, and
// fzf-backed fuzzy matching for typeahead.
//
// Widgets (dropdowns, and their hosting page) import this package for
// consistent look and behavior: same theme, same overlay mechanics.
// Each widget owns its own state machine and rendering.
package tui
