// SPDX-License-Identifier: MIT

// Package spgemm - masked Gustavson kernel and MaskPolicy.
//
// Purpose:
//   - Compute one column of C<M> = A*B, skipping rows outside M(:,j) before
//     the multiply operator runs.
//   - Decide, through MaskPolicy, what an allowed row with no contribution
//     becomes.
//
// Complexity quicksheet:
//   - O(|M(:,j)| + flops restricted to allowed rows); no sort, output is in
//     mask order.

package spgemm

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/giserh/RedisGraph/semiring"
)

// MaskPolicy decides what happens to allowed positions that receive no
// contribution.
type MaskPolicy uint8

const (
	// OmitEmpty leaves such positions absent from C.
	OmitEmpty MaskPolicy = iota
	// EmitIdentity stores the additive identity there.
	EmitIdentity
)

// DefaultMaskPolicy is used when WithMaskPolicy is not given.
const DefaultMaskPolicy = OmitEmpty

// String implements fmt.Stringer.
func (p MaskPolicy) String() string {
	switch p {
	case OmitEmpty:
		return "omit_empty"
	case EmitIdentity:
		return "emit_identity"
	default:
		return fmt.Sprintf("MaskPolicy(%d)", uint8(p))
	}
}

// ParseMaskPolicy accepts the String forms, case-insensitively.
func ParseMaskPolicy(s string) (MaskPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "omit_empty", "omit":
		return OmitEmpty, nil
	case "emit_identity", "identity":
		return EmitIdentity, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMaskPolicy)
}

// gustavsonMasked computes C(:,j)<M(:,j)> = A*B(:,j).
//
// Implementation:
//   - Stage 1: take two generations; mark every row of M(:,j) "allowed".
//   - Stage 2: for each B(k,j) and A(i,k), skip i unless allowed or touched;
//     the first hit stores the product, later hits add.
//   - Stage 3: walk M(:,j) again and append touched rows, plus untouched
//     ones under EmitIdentity with the Add identity as value.
//
// Returns:
//   - rows extended with C(:,j)'s rows in increasing order, and the flop count.
//
// Notes:
//   - An empty mask column returns immediately without reading A or B.
//   - bRows may be empty; under EmitIdentity that still emits identities.
func gustavsonMasked[T any, A colSource[T]](
	w *Workspace[T], a A, bRows []int, bVals []T, mcol *roaring.Bitmap,
	sr *semiring.Semiring[T], policy MaskPolicy, rows []int,
) ([]int, int64) {
	if mcol == nil || mcol.IsEmpty() {
		return rows, 0
	}
	g := w.advance(2)
	allowed, touched := g-1, g

	it := mcol.Iterator()
	for it.HasNext() {
		w.mark[it.Next()] = allowed
	}

	mul, add := sr.Multiply, sr.Add.Op
	var flops int64
	for t, k := range bRows {
		aRows, aVals := a.column(k)
		bkj := bVals[t]
		for s, i := range aRows {
			switch w.mark[i] {
			case allowed:
				w.mark[i] = touched
				w.vals[i] = mul(aVals[s], bkj)
				flops++
			case touched:
				w.vals[i] = add(w.vals[i], mul(aVals[s], bkj))
				flops++
			}
		}
	}

	it = mcol.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		switch {
		case w.mark[i] == touched:
			rows = append(rows, i)
		case policy == EmitIdentity:
			w.vals[i] = sr.Add.Identity
			rows = append(rows, i)
		}
	}
	return rows, flops
}
