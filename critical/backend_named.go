// SPDX-License-Identifier: MIT

package critical

import "sync"

// DefaultRegionName names the region that guards the pending-operations queue.
const DefaultRegionName = "pending_queue"

var (
	regionsMu sync.Mutex
	regions   = map[string]*Mutex{}
)

// NamedRegion is a critical region identified by name. Every NamedRegion with
// the same name excludes every other one, wherever it was created.
type NamedRegion struct {
	name string
	m    *Mutex
}

// Named returns the process-wide region called name, creating it on first use.
func Named(name string) *NamedRegion {
	regionsMu.Lock()
	defer regionsMu.Unlock()

	m, ok := regions[name]
	if !ok {
		m = NewMutex()
		regions[name] = m
	}
	return &NamedRegion{name: name, m: m}
}

// Name returns the region name.
func (r *NamedRegion) Name() string { return r.name }

// Lock implements Backend.
func (r *NamedRegion) Lock() error { return r.m.Lock() }

// Unlock implements Backend.
func (r *NamedRegion) Unlock() error { return r.m.Unlock() }

// TryLock implements Backend.
func (r *NamedRegion) TryLock() (bool, error) { return r.m.TryLock() }

// Kind implements Backend.
func (r *NamedRegion) Kind() Kind { return KindNamed }
