// Package graphblas is an in-memory engine for sparse linear algebra over
// semirings, built around masked sparse matrix multiplication (SpGEMM).
//
// What is in the box?
//
//   - Sparse matrices in compressed-column form, standard or hypersparse,
//     with pending tuples that are assembled lazily
//   - Semirings: plus-times, min-plus, max-plus, lor-land, plus-pair and
//     friends, or your own monoid plus multiply operator
//   - Gustavson SpGEMM: C = A*B and C<M> = A*B with a roaring-bitmap mask,
//     parallel over columns of B with one dense workspace per worker
//   - A process-wide pending-operations queue guarded by a configurable
//     critical section
//   - Graph algorithms on adjacency matrices: BFS, k-hop reachability and
//     triangle counting
//
// Subpackages:
//
//	semiring/    monoids, semirings and the built-in catalogue
//	sparse/      Matrix, Dense, builders, validation, random matrices
//	spgemm/      masks, kernel dispatch, workspaces, Multiply
//	queue/       pending-operations queue and its global instance
//	critical/    critical section with named, mutex, native and portable backends
//	resource/    memory and worker-slot limits shared by concurrent calls
//	algorithms/  BFS, KHop, TriangleCount
//	config/      defaults, YAML file and GRAPHBLAS_* environment via koanf
//	logging/     slog wrapper with the library's field names
//	metrics/     Collector interface, in-memory and Prometheus collectors
//	cmd/spgemm   benchmark CLI
//
// Quick example, C = A*B over plus-times:
//
//	    A         B          C
//	  [1 . ]    [. 2]      [. 2]
//	  [. 3 ]  × [4 .]  =   [12 .]
//
//	a, _ := sparse.FromTriplets(2, 2, []sparse.Entry[float64]{{0, 0, 1}, {1, 1, 3}})
//	b, _ := sparse.FromTriplets(2, 2, []sparse.Entry[float64]{{1, 0, 4}, {0, 1, 2}})
//	c, _ := spgemm.Multiply(ctx, a, b, semiring.PlusTimes[float64]())
//
//	go get github.com/giserh/RedisGraph
package graphblas
