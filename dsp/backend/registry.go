package backend

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultName is the backend used when none is configured.
const DefaultName = "generic"

// Entry is a registered implementation.
type Entry struct {
	Backend Backend

	// Priority orders Names and Best. Higher wins. Suggested values:
	//   - generic: 0
	//   - gonum: 5
	//   - vecmath (SIMD kernels): 10
	Priority int
}

// Registry manages the registration and lookup of backends.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the registry implementation packages register into.
var Global = &Registry{}

// Register adds a backend. A later registration with the same name replaces
// the earlier one.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Backend.Name() == entry.Backend.Name() {
			r.entries[i] = entry
			r.sorted = false
			return
		}
	}

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the backend registered under name.
func (r *Registry) Lookup(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Backend.Name() == name {
			return e.Backend, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Best returns the highest-priority backend, or nil if none is registered.
func (r *Registry) Best() Backend {
	entries := r.List()
	if len(entries) == 0 {
		return nil
	}
	return entries[0].Backend
}

// Names returns registered backend names by descending priority.
func (r *Registry) Names() []string {
	entries := r.List()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Backend.Name()
	}
	return names
}

// List returns a copy of all entries, sorted by descending priority and then
// by name.
func (r *Registry) List() []Entry {
	r.mu.Lock()
	if !r.sorted {
		sort.SliceStable(r.entries, func(i, j int) bool {
			a, b := r.entries[i], r.entries[j]
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
			return a.Backend.Name() < b.Backend.Name()
		})
		r.sorted = true
	}
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.Unlock()

	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// Register adds a backend to the Global registry.
func Register(b Backend, priority int) {
	Global.Register(Entry{Backend: b, Priority: priority})
}

// Lookup finds a backend in the Global registry.
func Lookup(name string) (Backend, error) {
	return Global.Lookup(name)
}

// Names lists the Global registry.
func Names() []string {
	return Global.Names()
}
