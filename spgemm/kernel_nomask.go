// SPDX-License-Identifier: MIT

// Package spgemm - unmasked Gustavson kernel.
//
// Purpose:
//   - Compute one column of C = A*B into a dense workspace, recording the
//     pattern in discovery order.
//
// Complexity quicksheet:
//   - O(flops) for the column; the driver sorts the pattern afterwards.

package spgemm

import "github.com/giserh/RedisGraph/semiring"

// gustavson computes the pattern of C(:,j) = A*B(:,j) into w and appends the
// touched rows to rows in discovery order. Values stay in w.vals until the
// next column starts. It returns the rows and the number of multiplies.
func gustavson[T any, A colSource[T]](
	w *Workspace[T], a A, bRows []int, bVals []T, sr *semiring.Semiring[T], rows []int,
) ([]int, int64) {
	g := w.advance(1)
	mul, add := sr.Multiply, sr.Add.Op
	var flops int64

	for t, k := range bRows {
		aRows, aVals := a.column(k)
		bkj := bVals[t]
		for s, i := range aRows {
			v := mul(aVals[s], bkj)
			if w.mark[i] != g {
				w.mark[i] = g
				w.vals[i] = v
				rows = append(rows, i)
			} else {
				w.vals[i] = add(w.vals[i], v)
			}
		}
		flops += int64(len(aRows))
	}
	return rows, flops
}
