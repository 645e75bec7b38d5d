// SPDX-License-Identifier: MIT

// Package sparse provides the compressed-sparse-column matrix that the SpGEMM
// kernels consume and produce.
//
// Representations:
//
//   - Standard: one column pointer per column; column j is found by direct
//     indexing in O(1).
//   - Hypersparse: only non-empty columns are stored, together with their
//     explicit index list h; column j is found by binary search in O(log |h|).
//     Use it when the number of non-empty columns is far below Cols().
//
// Both satisfy the Columns capability interface, so algorithms are written
// once and never branch on the representation themselves.
//
// Invariants:
//
//	Within every column the row indices are strictly increasing and unique.
//	In a hypersparse matrix the column list h is strictly increasing and
//	every listed column is non-empty.
//
// Pending operations:
//
//	SetElement records a pending tuple instead of rebuilding the storage and
//	enqueues the matrix in the global pending-operations queue. Wait (or
//	queue.Global().Wait) assembles the tuples and dequeues the matrix. A
//	Matrix is not safe for concurrent mutation; the queue is.
//
// Complexity:
//
//	FromTriplets  O(nnz log nnz)
//	Column        O(1) standard, O(log |h|) hypersparse
//	Convert       O(Cols() + nnz)
//	Wait          O((nnz + pending) log(nnz + pending))
package sparse
