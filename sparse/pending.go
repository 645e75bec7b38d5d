// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/giserh/RedisGraph/queue"
)

// pendingQueue returns the queue m registers in.
func (m *Matrix[T]) pendingQueue() *queue.Queue {
	if m.queue != nil {
		return m.queue
	}
	return queue.Global()
}

// SetElement records A(row, col) = v as a pending tuple. The first pending
// tuple enqueues m in its pending-operations queue. Entries become visible to
// Column, At and the kernels only after Wait.
func (m *Matrix[T]) SetElement(row, col int, v T) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("Matrix.SetElement(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if len(m.pending) == 0 {
		if _, err := m.pendingQueue().Insert(m); err != nil {
			return fmt.Errorf("Matrix.SetElement(%d,%d): %w", row, col, err)
		}
	}
	m.pending = append(m.pending, Entry[T]{Row: row, Col: col, Val: v})
	return nil
}

// HasPending reports whether m holds unassembled tuples.
func (m *Matrix[T]) HasPending() bool { return len(m.pending) > 0 }

// NPending returns the number of unassembled tuples.
func (m *Matrix[T]) NPending() int { return len(m.pending) }

// Wait assembles pending tuples into the compressed storage and removes m
// from its queue. A pending tuple for an existing position is combined with
// the WithDup function as dup(existing, pending), or replaces it.
func (m *Matrix[T]) Wait() error {
	if len(m.pending) == 0 {
		return nil
	}
	entries := make([]Entry[T], 0, len(m.i)+len(m.pending))
	entries = append(entries, m.Entries()...)
	entries = append(entries, m.pending...)
	m.compress(m.combine(entries))
	m.pending = nil

	if _, err := m.pendingQueue().Remove(m); err != nil {
		return fmt.Errorf("Matrix.Wait: %w", err)
	}
	return nil
}
