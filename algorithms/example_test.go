// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"context"
	"fmt"

	"github.com/giserh/RedisGraph/algorithms"
	"github.com/giserh/RedisGraph/sparse"
)

func ExampleTriangleCount() {
	// Two triangles sharing the edge 1-2.
	edges := [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}
	var entries []sparse.Entry[int]
	for _, e := range edges {
		entries = append(entries,
			sparse.Entry[int]{Row: e[0], Col: e[1], Val: 1},
			sparse.Entry[int]{Row: e[1], Col: e[0], Val: 1})
	}
	adj, _ := sparse.FromTriplets(4, 4, entries)

	n, _ := algorithms.TriangleCount[int](context.Background(), adj)
	fmt.Println(n)
	// Output: 2
}
