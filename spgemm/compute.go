// SPDX-License-Identifier: MIT

package spgemm

import (
	"fmt"

	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
)

// ComputeColumn is the unit of work Multiply replicates: it returns column j
// of A*B (masked by mask when non-nil) with rows in increasing order, the
// semiring's elision applied, and the number of multiplies performed.
// w must have at least Rows(A) slots. Pending tuples are not assembled.
func ComputeColumn[T any](
	w *Workspace[T], a, b sparse.Columns[T], j int,
	sr semiring.Semiring[T], mask *Mask, policy MaskPolicy,
) (rows []int, vals []T, flops int64, err error) {
	if w == nil || a == nil || b == nil {
		return nil, nil, 0, fmt.Errorf("ComputeColumn: %w", ErrNilOperand)
	}
	if err := sr.Validate(); err != nil {
		return nil, nil, 0, fmt.Errorf("ComputeColumn: %w", err)
	}
	if a.Cols() != b.Rows() || w.Rows() < a.Rows() {
		return nil, nil, 0, fmt.Errorf("ComputeColumn: A %dx%d, B %dx%d, workspace %d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), w.Rows(), ErrDimensionMismatch)
	}
	if j < 0 || j >= b.Cols() {
		return nil, nil, 0, fmt.Errorf("ComputeColumn: column %d: %w", j, sparse.ErrOutOfRange)
	}
	if mask != nil && (mask.Rows() != a.Rows() || mask.Cols() != b.Cols()) {
		return nil, nil, 0, fmt.Errorf("ComputeColumn: %w", ErrMaskShape)
	}

	bRows, bVals := b.Column(j)
	if mask != nil {
		rows, flops = gustavsonMasked(w, ifaceCols[T]{c: a}, bRows, bVals, mask.Column(j), &sr, policy, nil)
	} else {
		rows, flops = gustavson(w, ifaceCols[T]{c: a}, bRows, bVals, &sr, nil)
	}
	rows, vals = finishColumn(w, &sr, rows, nil, 0, mask == nil)
	return rows, vals, flops, nil
}
