// SPDX-License-Identifier: MIT
// Package spgemm_test contains shared fixtures and the dense reference.

package spgemm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/giserh/RedisGraph/queue"
	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

var formats = []sparse.Format{sparse.Standard, sparse.Hypersparse}

// hide exposes only the Columns interface, forcing the generic accessor.
type hide[T any] struct{ sparse.Columns[T] }

func mustTriplets[T any](t testing.TB, rows, cols int, entries []sparse.Entry[T], opts ...sparse.Option) *sparse.Matrix[T] {
	t.Helper()
	m, err := sparse.FromTriplets(rows, cols, entries, opts...)
	require.NoError(t, err)
	return m
}

func mustMask[T any](t testing.TB, m sparse.Columns[T]) *spgemm.Mask {
	t.Helper()
	mask, err := spgemm.NewMask(m)
	require.NoError(t, err)
	return mask
}

// smallInts draws values 1..9 so every sum is exact.
func smallInts(r *rand.Rand) float64 { return float64(r.Intn(9) + 1) }

func always(*rand.Rand) bool { return true }

func randomMatrix[T any](t testing.TB, rows, cols int, density float64, seed int64, value func(*rand.Rand) T, f sparse.Format) *sparse.Matrix[T] {
	t.Helper()
	m, err := sparse.Random(rows, cols, density, rand.New(rand.NewSource(seed)), value, sparse.WithFormat(f))
	require.NoError(t, err)
	return m
}

// reference is the triple-loop product over the dense expansion of a and b,
// accumulating over k in increasing order. A nil mask computes C = A*B.
func reference[T any](t testing.TB, a, b *sparse.Matrix[T], sr semiring.Semiring[T], mask *spgemm.Mask, policy spgemm.MaskPolicy) *sparse.Matrix[T] {
	t.Helper()
	var out []sparse.Entry[T]
	for j := 0; j < b.Cols(); j++ {
		for i := 0; i < a.Rows(); i++ {
			if mask != nil && !mask.Contains(i, j) {
				continue
			}
			var acc T
			found := false
			for k := 0; k < a.Cols(); k++ {
				av, aok, err := a.At(i, k)
				require.NoError(t, err)
				bv, bok, err := b.At(k, j)
				require.NoError(t, err)
				if !aok || !bok {
					continue
				}
				v := sr.Multiply(av, bv)
				if found {
					acc = sr.Add.Op(acc, v)
				} else {
					acc, found = v, true
				}
			}
			if !found {
				if mask == nil || policy != spgemm.EmitIdentity {
					continue
				}
				acc = sr.Add.Identity
			}
			if sr.Keep(acc) {
				out = append(out, sparse.Entry[T]{Row: i, Col: j, Val: acc})
			}
		}
	}
	return mustTriplets(t, a.Rows(), b.Cols(), out)
}

func newQueue(t testing.TB) *queue.Queue {
	t.Helper()
	q, err := queue.New()
	require.NoError(t, err)
	return q
}
