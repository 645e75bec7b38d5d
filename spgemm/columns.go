// SPDX-License-Identifier: MIT

package spgemm

import (
	"slices"

	"github.com/giserh/RedisGraph/sparse"
)

// colSource resolves column k of an operand.
type colSource[T any] interface {
	column(k int) ([]int, []T)
}

// directCols indexes the column pointers of a standard matrix.
type directCols[T any] struct {
	p, i []int
	x    []T
}

func (d directCols[T]) column(k int) ([]int, []T) {
	lo, hi := d.p[k], d.p[k+1]
	return d.i[lo:hi], d.x[lo:hi]
}

// lookupCols searches the column list when the matrix is hypersparse and
// indexes directly otherwise.
type lookupCols[T any] struct {
	p, h, i []int
	x       []T
}

func (l lookupCols[T]) column(k int) ([]int, []T) {
	s := k
	if l.h != nil {
		var ok bool
		if s, ok = slices.BinarySearch(l.h, k); !ok {
			return nil, nil
		}
	}
	lo, hi := l.p[s], l.p[s+1]
	return l.i[lo:hi], l.x[lo:hi]
}

// ifaceCols serves any other Columns implementation.
type ifaceCols[T any] struct {
	c sparse.Columns[T]
}

func (f ifaceCols[T]) column(k int) ([]int, []T) { return f.c.Column(k) }
