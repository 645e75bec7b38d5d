// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/giserh/RedisGraph/queue"
)

// nextID hands out HandleIDs; zero is never used.
var nextID atomic.Uint64

// Matrix is a compressed-sparse-column matrix in standard or hypersparse form.
//
// Column k of the stored slots spans i[p[k]:p[k+1]] and x[p[k]:p[k+1]].
// For a standard matrix slot k is column k; for a hypersparse one it is
// column h[k].
type Matrix[T any] struct {
	rows, cols int
	format     Format

	p []int
	h []int
	i []int
	x []T

	id      uint64
	pending []Entry[T]
	dup     func(old, new T) T
	queue   *queue.Queue
}

func newMatrix[T any](rows, cols int, o options) *Matrix[T] {
	m := &Matrix[T]{
		rows:   rows,
		cols:   cols,
		format: o.format,
		id:     nextID.Add(1),
		queue:  o.queue,
	}
	if o.dup != nil {
		box := o.dup
		m.dup = func(a, b T) T { return box(a, b).(T) }
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Format returns the representation tag.
func (m *Matrix[T]) Format() Format { return m.format }

// IsHyper reports whether m is hypersparse.
func (m *Matrix[T]) IsHyper() bool { return m.format == Hypersparse }

// NVals returns the number of assembled entries. Pending tuples are not counted.
func (m *Matrix[T]) NVals() int { return len(m.i) }

// NumVectors returns the number of stored column slots.
func (m *Matrix[T]) NumVectors() int { return len(m.p) - 1 }

// ColumnAt returns the column index and contents of slot pos.
func (m *Matrix[T]) ColumnAt(pos int) (int, []int, []T) {
	lo, hi := m.p[pos], m.p[pos+1]
	j := pos
	if m.format == Hypersparse {
		j = m.h[pos]
	}
	return j, m.i[lo:hi:hi], m.x[lo:hi:hi]
}

// slot returns the storage slot of column j, or -1.
func (m *Matrix[T]) slot(j int) int {
	if j < 0 || j >= m.cols {
		return -1
	}
	if m.format == Standard {
		return j
	}
	k, ok := slices.BinarySearch(m.h, j)
	if !ok {
		return -1
	}
	return k
}

// Column returns the row indices and values of column j; nil when j is
// empty or out of range.
// Complexity: O(1) standard, O(log |h|) hypersparse.
func (m *Matrix[T]) Column(j int) ([]int, []T) {
	k := m.slot(j)
	if k < 0 {
		return nil, nil
	}
	lo, hi := m.p[k], m.p[k+1]
	if lo == hi {
		return nil, nil
	}
	return m.i[lo:hi:hi], m.x[lo:hi:hi]
}

// HasColumn reports whether column j has at least one entry.
func (m *Matrix[T]) HasColumn(j int) bool {
	k := m.slot(j)
	return k >= 0 && m.p[k+1] > m.p[k]
}

// NonEmptyColumns counts columns with at least one entry.
func (m *Matrix[T]) NonEmptyColumns() int {
	n := 0
	for k := 0; k+1 < len(m.p); k++ {
		if m.p[k+1] > m.p[k] {
			n++
		}
	}
	return n
}

// At returns the entry at (row, col) and whether it is present.
// Complexity: O(log nnz(col)) plus the column lookup.
func (m *Matrix[T]) At(row, col int) (T, bool, error) {
	var zero T
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return zero, false, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	rows, vals := m.Column(col)
	k, ok := slices.BinarySearch(rows, row)
	if !ok {
		return zero, false, nil
	}
	return vals[k], true, nil
}

// Entries returns all assembled entries in column-major order.
func (m *Matrix[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(m.i))
	for k := 0; k < m.NumVectors(); k++ {
		j, rows, vals := m.ColumnAt(k)
		for t, r := range rows {
			out = append(out, Entry[T]{Row: r, Col: j, Val: vals[t]})
		}
	}
	return out
}

// CSC exposes the raw storage. h is nil for a standard matrix. The slices are
// shared with m and must not be modified.
func (m *Matrix[T]) CSC() (p, h, i []int, x []T) {
	return m.p, m.h, m.i, m.x
}

// HandleID implements queue.Handle.
func (m *Matrix[T]) HandleID() uint64 { return m.id }

// Materialize implements queue.Handle by assembling pending tuples.
func (m *Matrix[T]) Materialize() error { return m.Wait() }

// String summarizes shape, format and entry count.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix(%dx%d, %s, nvals=%d, pending=%d)",
		m.rows, m.cols, m.format, len(m.i), len(m.pending))
}

// Equal reports whether a and b have the same shape and the same entries,
// regardless of representation.
func Equal[T comparable](a, b Columns[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.NVals() != b.NVals() {
		return false
	}
	for j := 0; j < a.Cols(); j++ {
		ar, av := a.Column(j)
		br, bv := b.Column(j)
		if !slices.Equal(ar, br) || !slices.Equal(av, bv) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied value comparison.
func EqualFunc[T any](a, b Columns[T], eq func(x, y T) bool) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.NVals() != b.NVals() {
		return false
	}
	for j := 0; j < a.Cols(); j++ {
		ar, av := a.Column(j)
		br, bv := b.Column(j)
		if !slices.Equal(ar, br) || !slices.EqualFunc(av, bv, eq) {
			return false
		}
	}
	return true
}

var _ Columns[float64] = (*Matrix[float64])(nil)
var _ queue.Handle = (*Matrix[float64])(nil)
