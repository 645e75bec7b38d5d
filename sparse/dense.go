// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strings"
)

// Dense is a row-major reference matrix with an explicit presence flag per
// cell, so that a stored zero and an absent entry stay distinguishable.
// It is the triple-loop oracle the sparse kernels are checked against.
type Dense[T any] struct {
	r, c int
	data []T
	set  []bool
}

// NewDense creates an r×c Dense matrix with no entries.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slices.
// Complexity: O(r*c) time and memory.
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("NewDense", ErrBadShape)
	}
	return &Dense[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols),
		set:  make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int { return d.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (d *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}
	return row*d.c + col, nil
}

// At returns the value at (row, col) and whether an entry is present.
// Complexity: O(1).
func (d *Dense[T]) At(row, col int) (T, bool, error) {
	var zero T
	idx, err := d.indexOf("At", row, col)
	if err != nil {
		return zero, false, err
	}
	return d.data[idx], d.set[idx], nil
}

// Set stores v at (row, col) and marks the entry present.
// Complexity: O(1).
func (d *Dense[T]) Set(row, col int, v T) error {
	idx, err := d.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v
	d.set[idx] = true
	return nil
}

// Unset removes the entry at (row, col).
func (d *Dense[T]) Unset(row, col int) error {
	idx, err := d.indexOf("Unset", row, col)
	if err != nil {
		return err
	}
	var zero T
	d.data[idx] = zero
	d.set[idx] = false
	return nil
}

// NVals returns the number of present entries.
// Complexity: O(r*c).
func (d *Dense[T]) NVals() int {
	n := 0
	for _, ok := range d.set {
		if ok {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (d *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{r: d.r, c: d.c, data: make([]T, len(d.data)), set: make([]bool, len(d.set))}
	copy(out.data, d.data)
	copy(out.set, d.set)
	return out
}

// String implements fmt.Stringer; absent entries print as ".".
func (d *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			k := i*d.c + j
			if d.set[k] {
				fmt.Fprintf(&sb, "%v", d.data[k])
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
