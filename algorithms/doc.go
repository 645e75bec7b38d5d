// SPDX-License-Identifier: MIT

// Package algorithms implements graph algorithms as sequences of sparse
// matrix products.
//
// A graph on n vertices is an n×n matrix whose column j lists the
// out-neighbours of vertex j; values are ignored. All functions accept any
// sparse.Columns and forward extra spgemm options (workers, controller,
// logger, metrics) to every product they run.
//
//   - BFS: level-synchronous breadth-first search; each level is one
//     product with the min-second semiring, masked by the unvisited
//     vertices, which also picks parents.
//   - KHop: vertices reachable within k hops, over the boolean semiring.
//   - TriangleCount: C<L> = L*L with the plus-pair semiring on the strictly
//     lower triangle L of a symmetric adjacency matrix.
package algorithms
