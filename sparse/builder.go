// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"fmt"
	"slices"
)

// NewEmpty returns a rows×cols matrix with no entries.
func NewEmpty[T any](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewEmpty(%d,%d): %w", rows, cols, ErrBadShape)
	}
	m := newMatrix[T](rows, cols, gatherOptions(opts))
	m.compress(nil)
	return m, nil
}

// FromTriplets builds a matrix from unordered (row, col, value) entries.
// Stage 1 (Validate): shape and every index.
// Stage 2 (Prepare): stable sort by (col, row); duplicates are combined with
// the WithDup function in input order, or the last one wins.
// Stage 3 (Finalize): compress into the requested format.
// Complexity: O(nnz log nnz + cols).
func FromTriplets[T any](rows, cols int, entries []Entry[T], opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromTriplets(%d,%d): %w", rows, cols, ErrBadShape)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("FromTriplets: entry (%d,%d): %w", e.Row, e.Col, ErrOutOfRange)
		}
	}
	m := newMatrix[T](rows, cols, gatherOptions(opts))
	m.compress(m.combine(slices.Clone(entries)))
	return m, nil
}

// FromCSC adopts standard (h == nil) or hypersparse storage built elsewhere,
// after checking it with ValidateSorted. The slices are owned by the result.
func FromCSC[T any](rows, cols int, p, h, i []int, x []T, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromCSC(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts)
	o.format = Standard
	if h != nil {
		o.format = Hypersparse
	}
	m := newMatrix[T](rows, cols, o)
	m.p, m.h, m.i, m.x = p, h, i, x
	if err := ValidateSorted[T](m); err != nil {
		return nil, fmt.Errorf("FromCSC: %w", err)
	}
	return m, nil
}

// FromDense copies every present entry of d.
// Complexity: O(r*c).
func FromDense[T any](d *Dense[T], opts ...Option) (*Matrix[T], error) {
	if d == nil {
		return nil, sparseErrorf("FromDense", ErrNilMatrix)
	}
	m := newMatrix[T](d.r, d.c, gatherOptions(opts))
	entries := make([]Entry[T], 0)
	for j := 0; j < d.c; j++ {
		for i := 0; i < d.r; i++ {
			if k := i*d.c + j; d.set[k] {
				entries = append(entries, Entry[T]{Row: i, Col: j, Val: d.data[k]})
			}
		}
	}
	m.compress(entries)
	return m, nil
}

// ToDense expands the assembled entries of m. Fails with ErrBadShape for a
// matrix with a zero dimension.
func (m *Matrix[T]) ToDense() (*Dense[T], error) {
	d, err := NewDense[T](m.rows, m.cols)
	if err != nil {
		return nil, fmt.Errorf("Matrix.ToDense: %w", err)
	}
	for k := 0; k < m.NumVectors(); k++ {
		j, rows, vals := m.ColumnAt(k)
		for t, r := range rows {
			d.data[r*d.c+j] = vals[t]
			d.set[r*d.c+j] = true
		}
	}
	return d, nil
}

// Convert returns a copy of m in format f. Only assembled entries are copied;
// call Wait first to include pending tuples.
// Complexity: O(cols + nnz).
func (m *Matrix[T]) Convert(f Format) *Matrix[T] {
	out := m.cloneHeader()
	out.format = f
	out.i = slices.Clone(m.i)
	out.x = slices.Clone(m.x)
	switch {
	case m.format == f:
		out.p = slices.Clone(m.p)
		out.h = slices.Clone(m.h)
	case f == Hypersparse:
		out.p = make([]int, 1, m.NonEmptyColumns()+1)
		out.h = make([]int, 0, m.NonEmptyColumns())
		for j := 0; j < m.cols; j++ {
			if m.p[j+1] > m.p[j] {
				out.h = append(out.h, j)
				out.p = append(out.p, m.p[j+1])
			}
		}
	default:
		out.h = nil
		out.p = make([]int, m.cols+1)
		for k, j := range m.h {
			out.p[j+1] = m.p[k+1] - m.p[k]
		}
		for j := 0; j < m.cols; j++ {
			out.p[j+1] += out.p[j]
		}
	}
	return out
}

// Clone returns a deep copy of m with a fresh HandleID.
func (m *Matrix[T]) Clone() *Matrix[T] { return m.Convert(m.format) }

func (m *Matrix[T]) cloneHeader() *Matrix[T] {
	return &Matrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		format: m.format,
		id:     nextID.Add(1),
		dup:    m.dup,
		queue:  m.queue,
	}
}

// combine sorts entries by (col, row) and folds duplicates.
func (m *Matrix[T]) combine(entries []Entry[T]) []Entry[T] {
	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})
	out := entries[:0]
	for _, e := range entries {
		if n := len(out); n > 0 && out[n-1].Row == e.Row && out[n-1].Col == e.Col {
			if m.dup != nil {
				out[n-1].Val = m.dup(out[n-1].Val, e.Val)
			} else {
				out[n-1].Val = e.Val
			}
			continue
		}
		out = append(out, e)
	}
	return out
}

// compress rebuilds p, h, i, x from entries sorted by (col, row) without duplicates.
func (m *Matrix[T]) compress(entries []Entry[T]) {
	m.i = make([]int, len(entries))
	m.x = make([]T, len(entries))
	for k, e := range entries {
		m.i[k] = e.Row
		m.x[k] = e.Val
	}

	if m.format == Standard {
		m.h = nil
		m.p = make([]int, m.cols+1)
		for _, e := range entries {
			m.p[e.Col+1]++
		}
		for j := 0; j < m.cols; j++ {
			m.p[j+1] += m.p[j]
		}
		return
	}

	m.h = make([]int, 0)
	m.p = []int{0}
	for k, e := range entries {
		if k == 0 || entries[k-1].Col != e.Col {
			m.h = append(m.h, e.Col)
			m.p = append(m.p, k)
		}
		m.p[len(m.p)-1] = k + 1
	}
}
