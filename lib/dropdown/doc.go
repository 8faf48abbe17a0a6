// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

// Package dropdown implements a single-select dropdown control for
// bubbletea applications. Each [Dropdown] owns the open/closed state,
// the committed selection, and the keyboard-focus index for one
// widget; a [Registry] tracks every live instance on a page and
// enforces the rule that at most one menu is open at a time.
//
// The widget is deliberately passive: it never talks to the terminal
// itself. A hosting model (see the page package) routes key and mouse
// events to it, splices its rendered menu over the page view, and
// forwards the [SelectionMsg] it emits on every committed selection.
//
// All state transitions are fail-soft. Navigation clamps to the valid
// option range, out-of-range selections are ignored, and operations
// on a destroyed instance are no-ops. Nothing in this package returns
// an error.
package dropdown
