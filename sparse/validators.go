// SPDX-License-Identifier: MIT
// Package: sparse
//
// validators.go - structural checks shared by the builder and the kernels.
//
// Contract:
//   - Validators never modify their inputs and return wrapped sentinels.
//   - ValidateSorted is the single definition of a well-formed Matrix.
//
// Complexity:
//   - ValidateSorted: O(NumVectors + nnz).
//   - Shape validators: O(1).

package sparse

import (
	"fmt"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSorted checks the compressed storage of m:
// p starts at 0, is non-decreasing and ends at nnz; len(i) == len(x);
// row indices are in range and strictly increase within each column; for a
// hypersparse matrix h is strictly increasing, in range and names only
// non-empty columns.
func ValidateSorted[T any](m *Matrix[T]) error {
	const tag = "ValidateSorted"
	if m == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	nvec := m.cols
	if m.format == Hypersparse {
		nvec = len(m.h)
	}
	if len(m.p) != nvec+1 || m.p[0] != 0 || m.p[nvec] != len(m.i) || len(m.i) != len(m.x) {
		return validatorErrorf(tag+": pointers", ErrUnsorted)
	}
	for k := 0; k < nvec; k++ {
		lo, hi := m.p[k], m.p[k+1]
		if lo > hi || hi > len(m.i) {
			return validatorErrorf(fmt.Sprintf("%s: slot %d pointer decreases", tag, k), ErrUnsorted)
		}
		if m.format == Hypersparse {
			j := m.h[k]
			if j < 0 || j >= m.cols || (k > 0 && m.h[k-1] >= j) {
				return validatorErrorf(fmt.Sprintf("%s: column list at %d", tag, k), ErrUnsorted)
			}
			if lo == hi {
				return validatorErrorf(fmt.Sprintf("%s: empty listed column %d", tag, j), ErrUnsorted)
			}
		}
		for t := lo; t < hi; t++ {
			r := m.i[t]
			if r < 0 || r >= m.rows || (t > lo && m.i[t-1] >= r) {
				return validatorErrorf(fmt.Sprintf("%s: slot %d row %d", tag, k, r), ErrUnsorted)
			}
		}
	}
	return nil
}

// ValidateMulShapes checks that a*b is defined: a.Cols() == b.Rows().
func ValidateMulShapes[T any](a, b Columns[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulShapes", ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulShapes: %dx%d * %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch)
	}
	return nil
}

// ValidateShape checks that m is rows×cols.
func ValidateShape[T any](m Columns[T], rows, cols int) error {
	if m == nil {
		return validatorErrorf("ValidateShape", ErrNilMatrix)
	}
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), rows, cols),
			ErrDimensionMismatch)
	}
	return nil
}
