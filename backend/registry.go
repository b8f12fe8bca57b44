// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a Graphics instance for a registered backend.
type Factory func() (Graphics, error)

// registryEntry is a registered graphics backend.
type registryEntry struct {
	name      string
	priority  int
	factory   Factory
	available func() bool
}

// registry manages registered graphics backends.
type registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
}

// globalRegistry is the process-wide backend registry.
var globalRegistry = &registry{entries: make(map[string]*registryEntry)}

// Register adds a graphics backend to the registry. Backends call Register
// from an init function so that importing the backend package is enough to
// make it selectable:
//
//	func init() {
//	    backend.Register("software", 10, newGraphics, nil)
//	}
//
// Higher priority wins during auto-selection. A nil available function means
// the backend is always available. Registering an existing name replaces the
// previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.entries[name] = &registryEntry{
		name:      name,
		priority:  priority,
		factory:   factory,
		available: available,
	}
}

// List returns registered backend names sorted by priority, highest first.
func List() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	entries := make([]*registryEntry, 0, len(globalRegistry.entries))
	for _, e := range globalRegistry.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// ByName creates the named backend, or ErrUnknownBackend if it is not
// registered.
func ByName(name string) (Graphics, error) {
	globalRegistry.mu.RLock()
	e, ok := globalRegistry.entries[name]
	globalRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return e.factory()
}

// Default creates the highest-priority available backend, or ErrNoBackend
// when nothing usable is registered.
func Default() (Graphics, error) {
	for _, name := range List() {
		globalRegistry.mu.RLock()
		e := globalRegistry.entries[name]
		globalRegistry.mu.RUnlock()
		if e == nil {
			continue
		}
		if e.available != nil && !e.available() {
			continue
		}
		g, err := e.factory()
		if err != nil {
			continue
		}
		return g, nil
	}
	return nil, ErrNoBackend
}
