// SPDX-License-Identifier: MIT

// Package queue holds the process-wide list of matrices that have pending
// (deferred) operations.
//
// Lifecycle:
//
//	queue.Init(...)     – library initialization creates the global queue
//	m.SetElement(...)   – a deferred operation inserts m
//	m.Wait()            – materialization removes m
//	queue.Global().Wait – forces every pending matrix (drain)
//	queue.Finalize()    – library shutdown destroys the queue
//
// Concurrency:
//
//	Every read and every mutation happens inside critical.Section.Run, so each
//	single operation is atomic end-to-end. Concurrent inserts and removes on
//	different handles may interleave arbitrarily; the queue never holds a
//	handle twice. A synchronization failure surfaces as critical.ErrPanic and
//	the operation reports no result.
package queue
