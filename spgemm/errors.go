// SPDX-License-Identifier: MIT

package spgemm

import "errors"

var (
	// ErrDimensionMismatch indicates Cols(A) != Rows(B).
	ErrDimensionMismatch = errors.New("spgemm: dimension mismatch")

	// ErrMaskShape indicates a mask whose shape differs from Rows(A)×Cols(B).
	ErrMaskShape = errors.New("spgemm: mask shape mismatch")

	// ErrOutOfMemory indicates that workspace memory could not be reserved.
	// It wraps resource.ErrMemoryLimitExceeded.
	ErrOutOfMemory = errors.New("spgemm: out of memory")

	// ErrNilOperand indicates a nil A, B or workspace.
	ErrNilOperand = errors.New("spgemm: nil operand")

	// ErrUnknownMaskPolicy is returned by ParseMaskPolicy.
	ErrUnknownMaskPolicy = errors.New("spgemm: unknown mask policy")
)
