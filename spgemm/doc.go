// SPDX-License-Identifier: MIT

// Package spgemm multiplies sparse matrices over an arbitrary semiring with
// Gustavson's column-wise algorithm.
//
//	C    = A*B
//	C<M> = A*B   (C(i,j) may exist only where M(i,j) exists)
//
// Multiply validates the operands once, asks Dispatch for one of four
// kernel variants (plain or hypersparse-aware, masked or unmasked) and runs
// the per-column kernel over chunks of output columns on a bounded set of
// goroutines. Each goroutine owns one dense Workspace of length Rows(A) whose
// slots are invalidated by advancing a generation counter rather than by
// clearing.
//
// The kernels never drop computed values. Zero elision is decided by the
// semiring's Elide predicate and applied when the output column is finished.
//
// Complexity of one multiply:
//
//	Time:  O(flops + Σ|M(:,j)| + nnz(C) log) where flops counts every
//	       applied multiply; hypersparse operands add a log factor per
//	       column lookup.
//	Space: workers * Rows(A) * (8 + sizeof(T)) for workspaces plus C.
package spgemm
