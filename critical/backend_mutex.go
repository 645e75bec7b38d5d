// SPDX-License-Identifier: MIT

package critical

import (
	"sync"
	"sync/atomic"
)

// Mutex is the POSIX-style backend. Releasing an unheld Mutex reports
// ErrNotHeld instead of aborting the process.
type Mutex struct {
	mu   sync.Mutex
	held atomic.Bool
}

// NewMutex returns an unlocked Mutex backend.
func NewMutex() *Mutex {
	return &Mutex{}
}

// Lock implements Backend.
func (m *Mutex) Lock() error {
	m.mu.Lock()
	m.held.Store(true)
	return nil
}

// Unlock implements Backend.
func (m *Mutex) Unlock() error {
	if !m.held.CompareAndSwap(true, false) {
		return ErrNotHeld
	}
	m.mu.Unlock()
	return nil
}

// TryLock implements Backend.
func (m *Mutex) TryLock() (bool, error) {
	if !m.mu.TryLock() {
		return false, nil
	}
	m.held.Store(true)
	return true, nil
}

// Kind implements Backend.
func (m *Mutex) Kind() Kind { return KindMutex }
