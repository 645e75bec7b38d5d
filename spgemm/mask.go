// SPDX-License-Identifier: MIT

package spgemm

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/giserh/RedisGraph/sparse"
)

// Mask is the pattern of a matrix: one bitmap of row indices per non-empty
// column. Values of the source matrix are discarded.
type Mask struct {
	rows, cols int
	hyper      bool

	h    []int             // present columns, hypersparse only
	bits []*roaring.Bitmap // by column (standard) or parallel to h
	nnz  uint64
}

// NewMask captures the pattern of m. Pending tuples of m are assembled first.
// A hypersparse m yields a hypersparse Mask.
func NewMask[T any](m sparse.Columns[T]) (*Mask, error) {
	if m == nil {
		return nil, fmt.Errorf("NewMask: %w", ErrNilOperand)
	}
	if err := materialize(m); err != nil {
		return nil, fmt.Errorf("NewMask: %w", err)
	}
	if uint64(m.Rows()) > math.MaxUint32+1 {
		return nil, fmt.Errorf("NewMask: %d rows: %w", m.Rows(), ErrMaskShape)
	}

	out := &Mask{rows: m.Rows(), cols: m.Cols(), hyper: m.IsHyper()}
	if !out.hyper {
		out.bits = make([]*roaring.Bitmap, out.cols)
	}
	var buf []uint32
	for pos := 0; pos < m.NumVectors(); pos++ {
		j, rows, _ := m.ColumnAt(pos)
		if len(rows) == 0 {
			continue
		}
		buf = buf[:0]
		for _, r := range rows {
			buf = append(buf, uint32(r))
		}
		bm := roaring.New()
		bm.AddMany(buf)
		bm.RunOptimize()
		out.nnz += bm.GetCardinality()

		if out.hyper {
			out.h = append(out.h, j)
			out.bits = append(out.bits, bm)
		} else {
			out.bits[j] = bm
		}
	}
	return out, nil
}

// Rows returns the number of rows.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mask) Cols() int { return m.cols }

// IsHyper reports whether column lookup is by binary search.
func (m *Mask) IsHyper() bool { return m.hyper }

// NVals returns the number of allowed positions.
func (m *Mask) NVals() uint64 { return m.nnz }

// Column returns the allowed rows of column j, or nil when there are none.
// The bitmap is shared and must not be modified.
func (m *Mask) Column(j int) *roaring.Bitmap {
	if j < 0 || j >= m.cols {
		return nil
	}
	if !m.hyper {
		return m.bits[j]
	}
	k, ok := slices.BinarySearch(m.h, j)
	if !ok {
		return nil
	}
	return m.bits[k]
}

// NonEmptyColumns returns, in increasing order, the columns with at least
// one allowed row.
func (m *Mask) NonEmptyColumns() []int {
	if m.hyper {
		return slices.Clone(m.h)
	}
	out := make([]int, 0)
	for j, bm := range m.bits {
		if bm != nil {
			out = append(out, j)
		}
	}
	return out
}

// Contains reports whether M(i,j) exists.
func (m *Mask) Contains(i, j int) bool {
	if i < 0 || i >= m.rows {
		return false
	}
	bm := m.Column(j)
	return bm != nil && bm.Contains(uint32(i))
}

// pending is implemented by operands that defer assembly, such as
// *sparse.Matrix.
type pending interface {
	HasPending() bool
	Wait() error
}

// materialize assembles deferred work of c, if any.
func materialize[T any](c sparse.Columns[T]) error {
	if p, ok := c.(pending); ok && p.HasPending() {
		return p.Wait()
	}
	return nil
}
