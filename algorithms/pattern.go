// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/giserh/RedisGraph/sparse"
)

// patternOf copies the structure of m, keeping entries for which keep
// returns true (all when keep is nil), with every value set to one.
func patternOf[T, U any](m sparse.Columns[T], one U, keep func(i, j int) bool) (*sparse.Matrix[U], error) {
	var entries []sparse.Entry[U]
	for pos := 0; pos < m.NumVectors(); pos++ {
		j, rows, _ := m.ColumnAt(pos)
		for _, i := range rows {
			if keep == nil || keep(i, j) {
				entries = append(entries, sparse.Entry[U]{Row: i, Col: j, Val: one})
			}
		}
	}
	format := sparse.Standard
	if m.IsHyper() {
		format = sparse.Hypersparse
	}
	return sparse.FromTriplets(m.Rows(), m.Cols(), entries, sparse.WithFormat(format))
}

// checkSquare reports ErrNotSquare unless adj is n×n.
func checkSquare[T any](adj sparse.Columns[T]) (int, error) {
	if adj.Rows() != adj.Cols() {
		return 0, fmt.Errorf("%dx%d: %w", adj.Rows(), adj.Cols(), ErrNotSquare)
	}
	return adj.Rows(), nil
}

// waitPending assembles pending tuples of adj before its structure is read.
func waitPending[T any](adj sparse.Columns[T]) error {
	if m, ok := adj.(*sparse.Matrix[T]); ok {
		return m.Wait()
	}
	return nil
}
