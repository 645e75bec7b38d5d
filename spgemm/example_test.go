// SPDX-License-Identifier: MIT

package spgemm_test

import (
	"context"
	"fmt"

	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

func ExampleMultiply() {
	a, _ := sparse.FromTriplets(2, 2, []sparse.Entry[int]{{Row: 0, Col: 0, Val: 1}, {Row: 1, Col: 1, Val: 2}})
	b, _ := sparse.FromTriplets(2, 2, []sparse.Entry[int]{{Row: 0, Col: 0, Val: 3}, {Row: 1, Col: 1, Val: 4}})
	m, _ := sparse.FromTriplets(2, 2, []sparse.Entry[int]{{Row: 0, Col: 0, Val: 1}})
	mask, _ := spgemm.NewMask[int](m)

	ctx := context.Background()
	c, _ := spgemm.Multiply[int](ctx, a, b, semiring.PlusTimes[int]())
	fmt.Println(c.Entries())

	cm, _ := spgemm.Multiply[int](ctx, a, b, semiring.PlusTimes[int](), spgemm.WithMask(mask))
	fmt.Println(cm.Entries())
	// Output:
	// [{0 0 3} {1 1 8}]
	// [{0 0 3}]
}
