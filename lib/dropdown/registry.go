// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import "log/slog"

// Registry is the explicit collection of live dropdown instances on a
// page. The hosting model owns it and passes it where mutual
// exclusion matters: to each instance's Open call and to the click
// interceptor. Instances are independent except for the "at most one
// open" rule, which the registry enforces through CloseOthers.
//
// The registry tracks instances in insertion order. It is a lookup
// and broadcast structure, not an owner: destroying an instance
// removes it here, but construction and lifetime belong to the page.
//
// Not safe for concurrent use; bubbletea delivers all events on one
// goroutine, which is the execution model this package assumes.
type Registry struct {
	logger    *slog.Logger
	instances []*Dropdown
	byID      map[string]*Dropdown
}

// NewRegistry creates an empty registry. A nil logger falls back to
// slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger: logger,
		byID:   make(map[string]*Dropdown),
	}
}

// Add registers an instance. Destroyed instances are refused. A
// duplicate ID replaces the lookup entry but both instances remain in
// the broadcast set; the logger notes the collision.
func (registry *Registry) Add(dropdown *Dropdown) {
	if dropdown == nil || dropdown.Destroyed() {
		return
	}
	if _, exists := registry.byID[dropdown.ID()]; exists {
		registry.logger.Warn("duplicate dropdown id registered", "id", dropdown.ID())
	}
	registry.instances = append(registry.instances, dropdown)
	registry.byID[dropdown.ID()] = dropdown
}

// Remove takes an instance out of the registry. It stops receiving
// close broadcasts and is no longer reachable by lookup. No-op when
// the instance is not registered.
func (registry *Registry) Remove(dropdown *Dropdown) {
	for index, instance := range registry.instances {
		if instance == dropdown {
			registry.instances = append(registry.instances[:index], registry.instances[index+1:]...)
			break
		}
	}
	if registry.byID[dropdown.ID()] == dropdown {
		delete(registry.byID, dropdown.ID())
	}
}

// ByID looks up an instance by identifier, nil when absent.
func (registry *Registry) ByID(id string) *Dropdown {
	return registry.byID[id]
}

// Instances returns the live instances in insertion order. The
// returned slice is a copy; mutating it does not affect the registry.
func (registry *Registry) Instances() []*Dropdown {
	instances := make([]*Dropdown, len(registry.instances))
	copy(instances, registry.instances)
	return instances
}

// Len returns the number of live instances.
func (registry *Registry) Len() int { return len(registry.instances) }

// CloseOthers closes every registered instance except the given one.
// This is the mutual-exclusion broadcast: synchronous, and idempotent
// per instance because closing a closed menu is a no-op, so the call
// is safe regardless of order or re-entry.
func (registry *Registry) CloseOthers(except *Dropdown) {
	for _, instance := range registry.instances {
		if instance != except {
			instance.Close()
		}
	}
}

// CloseAll closes every registered instance.
func (registry *Registry) CloseAll() {
	registry.CloseOthers(nil)
}

// OpenInstance returns the currently open instance, nil when every
// menu is closed. With mutual exclusion intact there is never more
// than one.
func (registry *Registry) OpenInstance() *Dropdown {
	for _, instance := range registry.instances {
		if instance.IsOpen() {
			return instance
		}
	}
	return nil
}
