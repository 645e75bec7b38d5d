// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures.

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/giserh/RedisGraph/sparse"
)

// hide wraps a Matrix so that only the Columns interface is visible.
type hide[T any] struct{ sparse.Columns[T] }

// mustTriplets builds a matrix or fails the test.
func mustTriplets[T any](t *testing.T, rows, cols int, entries []sparse.Entry[T], opts ...sparse.Option) *sparse.Matrix[T] {
	t.Helper()
	m, err := sparse.FromTriplets(rows, cols, entries, opts...)
	require.NoError(t, err)
	require.NoError(t, sparse.ValidateSorted(m))
	return m
}

// e is a short constructor for float64 entries.
func e(i, j int, v float64) sparse.Entry[float64] {
	return sparse.Entry[float64]{Row: i, Col: j, Val: v}
}

// fixture is a 4×6 matrix with empty columns 0, 2 and 5.
func fixture() []sparse.Entry[float64] {
	return []sparse.Entry[float64]{
		e(3, 1, 4), e(0, 1, 1), e(2, 3, 7), e(1, 4, 2), e(3, 4, 5), e(0, 4, -1),
	}
}
