// SPDX-License-Identifier: MIT

package algorithms

import (
	"context"
	"fmt"

	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

// TriangleCount counts the triangles of the undirected graph whose symmetric
// adjacency matrix is adj. Self-loops are ignored.
//
// With L the strictly lower triangle of adj, C<L> = L*L over plus-pair holds
// in C(i,j) the number of k with i > k > j closing a triangle on the edge
// (i,j); every triangle is counted exactly once.
func TriangleCount[T any](ctx context.Context, adj sparse.Columns[T], opts ...spgemm.Option) (int64, error) {
	if _, err := checkSquare(adj); err != nil {
		return 0, fmt.Errorf("TriangleCount: %w", err)
	}
	if err := waitPending(adj); err != nil {
		return 0, fmt.Errorf("TriangleCount: %w", err)
	}
	lower, err := patternOf[T, int64](adj, 1, func(i, j int) bool { return i > j })
	if err != nil {
		return 0, fmt.Errorf("TriangleCount: %w", err)
	}
	mask, err := spgemm.NewMask[int64](lower)
	if err != nil {
		return 0, fmt.Errorf("TriangleCount: %w", err)
	}

	opts = append(opts[:len(opts):len(opts)], spgemm.WithMask(mask))
	c, err := spgemm.Multiply[int64](ctx, lower, lower, semiring.PlusPair[int64](), opts...)
	if err != nil {
		return 0, fmt.Errorf("TriangleCount: %w", err)
	}

	var total int64
	for pos := 0; pos < c.NumVectors(); pos++ {
		_, _, vals := c.ColumnAt(pos)
		for _, v := range vals {
			total += v
		}
	}
	return total, nil
}
