// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

// Package page hosts multiple dropdown instances in one bubbletea
// model. It owns the instance registry, lays the widgets out, routes
// keyboard input to the focused or open instance, and implements the
// page-level click interceptor: a single mouse handler that closes
// any open menu when an interaction lands outside it.
//
// Pages are built from a [Definition], the declarative description of
// the widgets on the page. Definitions load from YAML or JSONC files
// or can be constructed directly in code.
//
// Selections surface three ways: as a [dropdown.SelectionMsg] through
// the bubbletea loop, through subscriber callbacks registered with
// [Page.Subscribe], and as slog records on the page's logger.
package page
