// SPDX-License-Identifier: MIT

package algorithms

import (
	"context"
	"fmt"
	"slices"

	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

// KHop returns, in ascending order, the vertices reachable from sources in
// at most k hops. Sources are included (k = 0 returns them deduplicated).
// All sources expand together: one product over lor-land per hop, stopping
// early once no new vertex appears.
func KHop[T any](ctx context.Context, adj sparse.Columns[T], sources []int, k int, opts ...spgemm.Option) ([]int, error) {
	n, err := checkSquare(adj)
	if err != nil {
		return nil, fmt.Errorf("KHop: %w", err)
	}
	if k < 0 {
		return nil, fmt.Errorf("KHop: k=%d: %w", k, ErrNegativeHops)
	}
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("KHop: source %d: %w", s, ErrVertexOutOfRange)
		}
	}
	if err := waitPending(adj); err != nil {
		return nil, fmt.Errorf("KHop: %w", err)
	}
	g, err := patternOf[T, bool](adj, true, nil)
	if err != nil {
		return nil, fmt.Errorf("KHop: %w", err)
	}

	seen := make([]bool, n)
	var frontier []sparse.Entry[bool]
	for _, s := range sources {
		if !seen[s] {
			seen[s] = true
			frontier = append(frontier, sparse.Entry[bool]{Row: s, Col: 0, Val: true})
		}
	}

	sr := semiring.LorLand()
	for hop := 0; hop < k && len(frontier) > 0; hop++ {
		f, err := sparse.FromTriplets(n, 1, frontier)
		if err != nil {
			return nil, fmt.Errorf("KHop: hop %d: %w", hop+1, err)
		}
		next, err := spgemm.Multiply[bool](ctx, g, f, sr, opts...)
		if err != nil {
			return nil, fmt.Errorf("KHop: hop %d: %w", hop+1, err)
		}
		frontier = frontier[:0]
		rows, _ := next.Column(0)
		for _, i := range rows {
			if !seen[i] {
				seen[i] = true
				frontier = append(frontier, sparse.Entry[bool]{Row: i, Col: 0, Val: true})
			}
		}
	}

	out := make([]int, 0)
	for i, ok := range seen {
		if ok {
			out = append(out, i)
		}
	}
	return slices.Clip(out), nil
}
