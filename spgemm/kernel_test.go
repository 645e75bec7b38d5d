// SPDX-License-Identifier: MIT

package spgemm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

func TestComputeColumn(t *testing.T) {
	sr := semiring.PlusTimes[float64]()
	a := mustTriplets(t, 3, 2, []entry{
		{Row: 2, Col: 0, Val: 1}, {Row: 0, Col: 0, Val: 2}, {Row: 2, Col: 1, Val: 3},
	})
	b := mustTriplets(t, 2, 1, []entry{{Row: 0, Col: 0, Val: 10}, {Row: 1, Col: 0, Val: 100}})
	w := spgemm.NewWorkspace[float64](3)

	rows, vals, flops, err := spgemm.ComputeColumn[float64](w, a, b, 0, sr, nil, spgemm.OmitEmpty)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, rows)
	assert.Equal(t, []float64{20, 310}, vals)
	assert.Equal(t, int64(3), flops)

	mask := mustMask[float64](t, mustTriplets(t, 3, 1, []entry{{Row: 1, Col: 0, Val: 1}, {Row: 2, Col: 0, Val: 1}}))
	rows, vals, flops, err = spgemm.ComputeColumn[float64](w, a, b, 0, sr, mask, spgemm.OmitEmpty)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rows)
	assert.Equal(t, []float64{310}, vals)
	assert.Equal(t, int64(2), flops, "row 0 is skipped before multiplying")

	rows, vals, _, err = spgemm.ComputeColumn[float64](w, a, b, 0, sr, mask, spgemm.EmitIdentity)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, rows)
	assert.Equal(t, []float64{0, 310}, vals)
}

func TestComputeColumn_Errors(t *testing.T) {
	sr := semiring.PlusTimes[float64]()
	a := mustTriplets[float64](t, 3, 2, nil)
	b := mustTriplets[float64](t, 2, 2, nil)

	_, _, _, err := spgemm.ComputeColumn[float64](nil, a, b, 0, sr, nil, spgemm.OmitEmpty)
	assert.ErrorIs(t, err, spgemm.ErrNilOperand)

	_, _, _, err = spgemm.ComputeColumn[float64](spgemm.NewWorkspace[float64](2), a, b, 0, sr, nil, spgemm.OmitEmpty)
	assert.ErrorIs(t, err, spgemm.ErrDimensionMismatch)

	w := spgemm.NewWorkspace[float64](3)
	_, _, _, err = spgemm.ComputeColumn[float64](w, a, b, 2, sr, nil, spgemm.OmitEmpty)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, _, _, err = spgemm.ComputeColumn[float64](w, b, a, 0, sr, nil, spgemm.OmitEmpty)
	assert.ErrorIs(t, err, spgemm.ErrDimensionMismatch)

	bad := mustMask[float64](t, mustTriplets[float64](t, 2, 2, nil))
	_, _, _, err = spgemm.ComputeColumn[float64](w, a, b, 0, sr, bad, spgemm.OmitEmpty)
	assert.ErrorIs(t, err, spgemm.ErrMaskShape)

	_, _, _, err = spgemm.ComputeColumn[float64](w, a, b, 0, semiring.Semiring[float64]{}, nil, spgemm.OmitEmpty)
	assert.ErrorIs(t, err, semiring.ErrNilOperator)
}

func TestWorkspace_GenerationWrap(t *testing.T) {
	sr := semiring.PlusTimes[float64]()
	a := randomMatrix(t, 12, 12, 0.3, 30, smallInts, sparse.Standard)
	b := randomMatrix(t, 12, 12, 0.3, 31, smallInts, sparse.Standard)
	mask := mustMask[float64](t, randomMatrix(t, 12, 12, 0.5, 32, smallInts, sparse.Standard))
	want := reference(t, a, b, sr, nil, 0)
	wantMasked := reference(t, a, b, sr, mask, spgemm.OmitEmpty)

	w := spgemm.NewWorkspace[float64](12)
	w.SetGeneration(math.MaxUint64 - 3)
	wrapped := false
	for j := 0; j < b.Cols(); j++ {
		rows, vals, _, err := spgemm.ComputeColumn[float64](w, a, b, j, sr, nil, spgemm.OmitEmpty)
		require.NoError(t, err)
		wr, wv := want.Column(j)
		assert.Equal(t, len(wr), len(rows), "column %d", j)
		if len(wr) > 0 {
			assert.Equal(t, wr, rows, "column %d", j)
			assert.Equal(t, wv, vals, "column %d", j)
		}

		rows, vals, _, err = spgemm.ComputeColumn[float64](w, a, b, j, sr, mask, spgemm.OmitEmpty)
		require.NoError(t, err)
		mr, mv := wantMasked.Column(j)
		assert.Equal(t, len(mr), len(rows), "masked column %d", j)
		if len(mr) > 0 {
			assert.Equal(t, mr, rows, "masked column %d", j)
			assert.Equal(t, mv, vals, "masked column %d", j)
		}
		if w.Generation() < 100 {
			wrapped = true
		}
	}
	assert.True(t, wrapped)
}

func TestDispatch(t *testing.T) {
	std := mustTriplets[float64](t, 2, 2, nil)
	hyp := mustTriplets[float64](t, 2, 2, nil, sparse.WithFormat(sparse.Hypersparse))
	stdMask := mustMask[float64](t, std)
	hypMask := mustMask[float64](t, hyp)

	cases := []struct {
		name string
		a, b *sparse.Matrix[float64]
		m    *spgemm.Mask
		c    sparse.Format
		want spgemm.Variant
	}{
		{"all standard", std, std, nil, sparse.Standard, spgemm.PlainNoMask},
		{"standard masked", std, std, stdMask, sparse.Standard, spgemm.PlainMask},
		{"hyper A", hyp, std, nil, sparse.Standard, spgemm.HyperNoMask},
		{"hyper B", std, hyp, nil, sparse.Standard, spgemm.HyperNoMask},
		{"hyper C", std, std, nil, sparse.Hypersparse, spgemm.HyperNoMask},
		{"hyper M", std, std, hypMask, sparse.Standard, spgemm.HyperMask},
		{"hyper A masked", hyp, std, stdMask, sparse.Standard, spgemm.HyperMask},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := spgemm.Dispatch[float64](tc.a, tc.b, tc.m, tc.c)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.m != nil, got.Masked())
		})
	}
	assert.Equal(t, "hyper_mask", spgemm.HyperMask.String())
	assert.Equal(t, "unknown", spgemm.Variant(9).String())
	assert.True(t, spgemm.HyperNoMask.Hyper())
	assert.False(t, spgemm.PlainMask.Hyper())
}

func TestMask(t *testing.T) {
	for _, f := range formats {
		src := mustTriplets(t, 4, 1000, []entry{
			{Row: 3, Col: 999, Val: 0}, {Row: 0, Col: 999, Val: 5}, {Row: 2, Col: 7, Val: 1},
		}, sparse.WithFormat(f))
		m := mustMask[float64](t, src)
		assert.Equal(t, 4, m.Rows())
		assert.Equal(t, 1000, m.Cols())
		assert.Equal(t, f == sparse.Hypersparse, m.IsHyper())
		assert.Equal(t, uint64(3), m.NVals())
		assert.True(t, m.Contains(3, 999), "a stored zero is still allowed")
		assert.True(t, m.Contains(2, 7))
		assert.False(t, m.Contains(1, 999))
		assert.False(t, m.Contains(-1, 7))
		assert.Nil(t, m.Column(8))
		assert.Nil(t, m.Column(1000))
		assert.Equal(t, []uint32{0, 3}, m.Column(999).ToArray())
		assert.Equal(t, []int{7, 999}, m.NonEmptyColumns())
	}
	_, err := spgemm.NewMask[float64](nil)
	assert.ErrorIs(t, err, spgemm.ErrNilOperand)
}

func TestMask_AssemblesPending(t *testing.T) {
	src, err := sparse.NewEmpty[int](3, 3, sparse.WithQueue(newQueue(t)))
	require.NoError(t, err)
	require.NoError(t, src.SetElement(1, 2, 9))
	m, err := spgemm.NewMask[int](src)
	require.NoError(t, err)
	assert.True(t, m.Contains(1, 2))
	assert.False(t, src.HasPending())
}

func TestParseMaskPolicy(t *testing.T) {
	for in, want := range map[string]spgemm.MaskPolicy{
		"omit_empty":    spgemm.OmitEmpty,
		" OMIT ":        spgemm.OmitEmpty,
		"emit_identity": spgemm.EmitIdentity,
		"Identity":      spgemm.EmitIdentity,
	} {
		got, err := spgemm.ParseMaskPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := spgemm.ParseMaskPolicy("sometimes")
	assert.ErrorIs(t, err, spgemm.ErrUnknownMaskPolicy)
	assert.Equal(t, "emit_identity", spgemm.EmitIdentity.String())
	assert.Equal(t, "MaskPolicy(7)", spgemm.MaskPolicy(7).String())
}

func TestWorkspaceBytes(t *testing.T) {
	assert.Equal(t, int64(10*16), spgemm.WorkspaceBytes[float64](10))
	assert.Equal(t, int64(10*9), spgemm.WorkspaceBytes[bool](10))
	assert.Equal(t, 10, spgemm.NewWorkspace[int32](10).Rows())
}
