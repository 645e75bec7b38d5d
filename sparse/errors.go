// SPDX-License-Identifier: MIT

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is negative (or
	// non-positive for Dense).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrUnsorted indicates that compressed storage violates the ordering
	// invariants (row indices per column, hypersparse column list, pointers).
	ErrUnsorted = errors.New("sparse: storage invariant violated")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrInvalidProbability indicates a density outside [0,1].
	ErrInvalidProbability = errors.New("sparse: probability out of range")

	// ErrNeedRandSource indicates that a stochastic constructor was called without RNG.
	ErrNeedRandSource = errors.New("sparse: rng is required")
)

// sparseErrorf prefixes err with the method name.
func sparseErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
