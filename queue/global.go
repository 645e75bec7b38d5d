// SPDX-License-Identifier: MIT

package queue

import (
	"fmt"
	"sync/atomic"
)

// global is the library-wide queue. The pointer itself is swapped atomically;
// its contents are guarded by the queue's own critical section.
var global atomic.Pointer[Queue]

// Init creates the global queue. Call once at library start-up.
func Init(opts ...Option) error {
	q, err := New(opts...)
	if err != nil {
		return fmt.Errorf("queue.Init: %w", err)
	}
	if !global.CompareAndSwap(nil, q) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Finalize destroys the global queue. Handles still queued are dropped
// without being materialized.
func Finalize() error {
	if global.Swap(nil) == nil {
		return ErrNotInitialized
	}
	return nil
}

// Initialized reports whether a global queue exists.
func Initialized() bool {
	return global.Load() != nil
}

// Global returns the global queue, initializing it with defaults on first use.
func Global() *Queue {
	if q := global.Load(); q != nil {
		return q
	}
	q, err := New()
	if err != nil {
		// New only fails for an unknown backend kind; DefaultKind is always valid.
		panic(err)
	}
	if global.CompareAndSwap(nil, q) {
		return q
	}
	if cur := global.Load(); cur != nil {
		return cur
	}
	return q
}
