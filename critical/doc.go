// SPDX-License-Identifier: MIT

// Package critical provides the process-wide critical section that guards the
// global queue of matrices with pending operations.
//
// What & Why:
//
//	Section.Run executes a block under mutual exclusion against every other
//	goroutine entering a Section built on the same Backend. It is the only
//	sanctioned access path to the pending-operations queue.
//
// Backends (one interface, four interchangeable implementations):
//
//   - Mutex    – POSIX-style mutex (sync.Mutex with ownership check).
//   - Native   – OS critical-section style object (single-token channel).
//   - Portable – portable thread mutex (x/sync semaphore of weight 1).
//   - Named    – named critical region shared by name across the process;
//     the default when no build tag selects another backend.
//
// Build-time selection:
//
//	go build -tags critical_mutex     → DefaultKind == KindMutex
//	go build -tags critical_native    → DefaultKind == KindNative
//	go build -tags critical_portable  → DefaultKind == KindPortable
//	(no tag)                          → DefaultKind == KindNamed
//
// Failure semantics:
//
//	A lock or unlock failure is unrecoverable: the guarded data may have been
//	observed in an inconsistent state. Run returns an error wrapping ErrPanic,
//	the block is never executed after a failed lock, and a failed unlock
//	overrides the block's own success. Callers must propagate ErrPanic
//	unchanged and never retry.
//
// Single-threaded mode:
//
//	WithMultithreaded(false) skips acquisition and release entirely.
package critical
