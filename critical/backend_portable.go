// SPDX-License-Identifier: MIT

package critical

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Portable is a weight-1 semaphore used as a mutex. Acquire errors from the
// semaphore are reported as lock failures.
type Portable struct {
	sem  *semaphore.Weighted
	held atomic.Bool
}

// NewPortable returns an unlocked Portable backend.
func NewPortable() *Portable {
	return &Portable{sem: semaphore.NewWeighted(1)}
}

// Lock implements Backend.
func (p *Portable) Lock() error {
	if err := p.sem.Acquire(context.Background(), 1); err != nil {
		return err
	}
	p.held.Store(true)
	return nil
}

// Unlock implements Backend.
func (p *Portable) Unlock() error {
	// semaphore.Release panics on over-release; check ownership first.
	if !p.held.CompareAndSwap(true, false) {
		return ErrNotHeld
	}
	p.sem.Release(1)
	return nil
}

// TryLock implements Backend.
func (p *Portable) TryLock() (bool, error) {
	if !p.sem.TryAcquire(1) {
		return false, nil
	}
	p.held.Store(true)
	return true, nil
}

// Kind implements Backend.
func (p *Portable) Kind() Kind { return KindPortable }
