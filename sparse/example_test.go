// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/giserh/RedisGraph/sparse"
)

func ExampleFromTriplets() {
	m, err := sparse.FromTriplets(3, 1000, []sparse.Entry[int]{
		{Row: 2, Col: 999, Val: 7},
		{Row: 0, Col: 10, Val: 1},
	}, sparse.WithFormat(sparse.Hypersparse))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)
	fmt.Println(m.NumVectors(), m.HasColumn(999), m.HasColumn(500))
	// Output:
	// Matrix(3x1000, hypersparse, nvals=2, pending=0)
	// 2 true false
}
