// SPDX-License-Identifier: MIT

package spgemm

import (
	"math"
	"unsafe"
)

// Workspace is the dense per-goroutine accumulator of the kernels.
//
// Slot i is empty for the current column unless mark[i] equals the current
// generation; starting a column advances the generation instead of clearing
// the slots. A Workspace must not be shared between goroutines.
type Workspace[T any] struct {
	mark []uint64
	vals []T
	gen  uint64
}

// NewWorkspace allocates a workspace for operands with up to rows rows.
func NewWorkspace[T any](rows int) *Workspace[T] {
	return &Workspace[T]{
		mark: make([]uint64, rows),
		vals: make([]T, rows),
	}
}

// Rows returns the workspace length.
func (w *Workspace[T]) Rows() int { return len(w.mark) }

// WorkspaceBytes is the memory a Workspace[T] of the given length occupies.
func WorkspaceBytes[T any](rows int) int64 {
	var zero T
	return int64(rows) * (8 + int64(unsafe.Sizeof(zero)))
}

// advance reserves n fresh generations and returns the last one.
//
// Implementation:
//   - Stage 1: if gen+n would overflow, zero every mark and restart at 0.
//   - Stage 2: add n and return the new generation.
//
// Complexity:
//   - O(1), or O(rows) on the rare wrap.
func (w *Workspace[T]) advance(n uint64) uint64 {
	if w.gen > math.MaxUint64-n {
		clear(w.mark)
		w.gen = 0
	}
	w.gen += n
	return w.gen
}
