// SPDX-License-Identifier: MIT

package algorithms

import (
	"context"
	"fmt"

	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

// BFSResult holds the outcome of a breadth-first search.
type BFSResult struct {
	// Order lists visited vertices level by level, ascending within a level.
	Order []int
	// Depth is the hop distance from the source, -1 when unreachable.
	Depth []int
	// Parent is the smallest-index predecessor on the previous level,
	// -1 for the source and unreachable vertices.
	Parent []int
	// Levels is the number of levels, including the source level.
	Levels int
}

// BFS performs a level-synchronous breadth-first search from source.
//
// Each level computes next<unvisited> = adj * frontier over min-second, where
// the frontier holds every vertex's own index, so next(i) is the smallest
// frontier vertex with an edge into i. The mask keeps visited vertices out of
// the product. ctx is checked before every level.
//
// Time: O(levels * n) plus the products.
func BFS[T any](ctx context.Context, adj sparse.Columns[T], source int, opts ...spgemm.Option) (*BFSResult, error) {
	n, err := checkSquare(adj)
	if err != nil {
		return nil, fmt.Errorf("BFS: %w", err)
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("BFS: source %d: %w", source, ErrVertexOutOfRange)
	}
	if err := waitPending(adj); err != nil {
		return nil, fmt.Errorf("BFS: %w", err)
	}
	g, err := patternOf[T, int64](adj, 1, nil)
	if err != nil {
		return nil, fmt.Errorf("BFS: %w", err)
	}

	res := &BFSResult{
		Order:  []int{source},
		Depth:  make([]int, n),
		Parent: make([]int, n),
		Levels: 1,
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}
	res.Depth[source] = 0

	sr := semiring.MinSecond[int64]()
	frontier := []sparse.Entry[int64]{{Row: source, Col: 0, Val: int64(source)}}
	for depth := 1; len(frontier) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		mask, err := unvisited(res.Depth)
		if err != nil {
			return res, fmt.Errorf("BFS: level %d: %w", depth, err)
		}
		if mask.NVals() == 0 {
			break
		}
		f, err := sparse.FromTriplets(n, 1, frontier)
		if err != nil {
			return res, fmt.Errorf("BFS: level %d: %w", depth, err)
		}
		levelOpts := append(opts[:len(opts):len(opts)], spgemm.WithMask(mask), spgemm.WithMaskPolicy(spgemm.OmitEmpty))
		next, err := spgemm.Multiply[int64](ctx, g, f, sr, levelOpts...)
		if err != nil {
			return res, fmt.Errorf("BFS: level %d: %w", depth, err)
		}

		frontier = frontier[:0]
		rows, parents := next.Column(0)
		for t, i := range rows {
			res.Depth[i] = depth
			res.Parent[i] = int(parents[t])
			res.Order = append(res.Order, i)
			frontier = append(frontier, sparse.Entry[int64]{Row: i, Col: 0, Val: int64(i)})
		}
		if len(frontier) > 0 {
			res.Levels++
		}
	}
	return res, nil
}

// unvisited builds the n×1 mask of vertices with no depth yet.
func unvisited(depth []int) (*spgemm.Mask, error) {
	var entries []sparse.Entry[bool]
	for i, d := range depth {
		if d < 0 {
			entries = append(entries, sparse.Entry[bool]{Row: i, Col: 0, Val: true})
		}
	}
	m, err := sparse.FromTriplets(len(depth), 1, entries)
	if err != nil {
		return nil, err
	}
	return spgemm.NewMask[bool](m)
}
