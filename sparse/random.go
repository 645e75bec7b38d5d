// SPDX-License-Identifier: MIT
// Package: sparse
//
// random.go - Random(rows, cols, density) constructor.
//
// Model:
//   - Each cell is an entry independently with probability density.
//   - Cells are visited in column-major order; instead of one Bernoulli trial
//     per cell the gap to the next entry is drawn from the geometric
//     distribution, so the cost follows nnz rather than rows*cols.
//
// Contract:
//   - rows, cols ≥ 0 (else ErrBadShape).
//   - 0 ≤ density ≤ 1 (else ErrInvalidProbability).
//   - rng must be non-nil when 0 < density < 1 (else ErrNeedRandSource).
//   - value may be nil; entries then hold the zero value of T.
//
// Determinism:
//   - Fixed seed, shape and density give the same matrix.

package sparse

import (
	"fmt"
	"math"
	"math/rand"
)

const methodRandom = "Random"

// Random samples a rows×cols matrix with independent entry probability density.
// value draws each stored value.
func Random[T any](rows, cols int, density float64, rng *rand.Rand, value func(*rand.Rand) T, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", methodRandom, rows, cols, ErrBadShape)
	}
	if density < 0 || density > 1 || math.IsNaN(density) {
		return nil, fmt.Errorf("%s: density=%.6f not in [0,1]: %w", methodRandom, density, ErrInvalidProbability)
	}
	if rng == nil && density > 0 && density < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	m := newMatrix[T](rows, cols, gatherOptions(opts))
	total := int64(rows) * int64(cols)
	var entries []Entry[T]
	if density > 0 && total > 0 {
		entries = make([]Entry[T], 0, int(float64(total)*density)+1)
	}

	draw := func() T {
		var zero T
		if value == nil {
			return zero
		}
		return value(rng)
	}

	switch {
	case density == 0 || total == 0:
	case density == 1:
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				entries = append(entries, Entry[T]{Row: i, Col: j, Val: draw()})
			}
		}
	default:
		logq := math.Log1p(-density)
		for cell := int64(-1); ; {
			// 1-U lies in (0,1], so the logarithm is finite.
			gap := math.Floor(math.Log(1-rng.Float64()) / logq)
			if gap >= float64(total-cell-1) {
				break
			}
			cell += int64(gap) + 1
			entries = append(entries, Entry[T]{
				Row: int(cell % int64(rows)),
				Col: int(cell / int64(rows)),
				Val: draw(),
			})
		}
	}

	m.compress(entries)
	return m, nil
}
