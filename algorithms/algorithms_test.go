// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giserh/RedisGraph/algorithms"
	"github.com/giserh/RedisGraph/queue"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

// directed builds an n-vertex graph; column j lists the out-neighbours of j.
func directed(t *testing.T, n int, edges [][2]int, opts ...sparse.Option) *sparse.Matrix[float64] {
	t.Helper()
	entries := make([]sparse.Entry[float64], 0, len(edges))
	for _, e := range edges {
		entries = append(entries, sparse.Entry[float64]{Row: e[1], Col: e[0], Val: 1})
	}
	m, err := sparse.FromTriplets(n, n, entries, opts...)
	require.NoError(t, err)
	return m
}

// undirected stores every edge in both directions.
func undirected(t *testing.T, n int, edges [][2]int, opts ...sparse.Option) *sparse.Matrix[float64] {
	t.Helper()
	both := make([][2]int, 0, 2*len(edges))
	for _, e := range edges {
		both = append(both, e, [2]int{e[1], e[0]})
	}
	return directed(t, n, both, opts...)
}

func TestBFS_Path(t *testing.T) {
	// 0 -> 1 -> 2 -> 3, 0 -> 2, 4 isolated.
	g := directed(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 2}})
	res, err := algorithms.BFS[float64](context.Background(), g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2, -1}, res.Depth)
	assert.Equal(t, []int{-1, 0, 0, 2, -1}, res.Parent)
	assert.Equal(t, 3, res.Levels)
}

func TestBFS_SmallestParent(t *testing.T) {
	// Both 1 and 2 reach 3; the smaller index wins.
	g := undirected(t, 4, [][2]int{{0, 2}, {0, 1}, {2, 3}, {1, 3}}, sparse.WithFormat(sparse.Hypersparse))
	res, err := algorithms.BFS[float64](context.Background(), g, 0, spgemm.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Parent[3])
	assert.Equal(t, 2, res.Depth[3])
}

func TestBFS_IgnoresEmitIdentity(t *testing.T) {
	g := directed(t, 4, [][2]int{{0, 1}, {1, 2}})
	res, err := algorithms.BFS[float64](context.Background(), g, 0, spgemm.WithMaskPolicy(spgemm.EmitIdentity))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, -1}, res.Depth)
	assert.Equal(t, []int{-1, 0, 1, -1}, res.Parent)
}

func TestBFS_Errors(t *testing.T) {
	ctx := context.Background()
	rect, err := sparse.NewEmpty[float64](2, 3)
	require.NoError(t, err)
	_, err = algorithms.BFS[float64](ctx, rect, 0)
	assert.ErrorIs(t, err, algorithms.ErrNotSquare)

	g := directed(t, 3, nil)
	_, err = algorithms.BFS[float64](ctx, g, 3)
	assert.ErrorIs(t, err, algorithms.ErrVertexOutOfRange)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	res, err := algorithms.BFS[float64](canceled, directed(t, 2, [][2]int{{0, 1}}), 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{0}, res.Order)
}

func TestBFS_PendingEdges(t *testing.T) {
	q, err := queue.New()
	require.NoError(t, err)
	g, err := sparse.NewEmpty[float64](3, 3, sparse.WithQueue(q))
	require.NoError(t, err)
	require.NoError(t, g.SetElement(1, 0, 1)) // edge 0 -> 1
	require.NoError(t, g.SetElement(2, 1, 1)) // edge 1 -> 2

	res, err := algorithms.BFS[float64](context.Background(), g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Depth)
}

func TestKHop(t *testing.T) {
	ctx := context.Background()
	g := directed(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {5, 0}})

	cases := []struct {
		name    string
		sources []int
		k       int
		want    []int
	}{
		{"zero hops", []int{2, 2}, 0, []int{2}},
		{"one hop", []int{0}, 1, []int{0, 1}},
		{"three hops", []int{0}, 3, []int{0, 1, 2, 3}},
		{"saturates", []int{0}, 100, []int{0, 1, 2, 3, 4}},
		{"many sources", []int{5, 3}, 1, []int{0, 3, 4, 5}},
		{"no sources", nil, 2, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := algorithms.KHop[float64](ctx, g, tc.sources, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := algorithms.KHop[float64](ctx, g, []int{0}, -1)
	assert.ErrorIs(t, err, algorithms.ErrNegativeHops)
	_, err = algorithms.KHop[float64](ctx, g, []int{6}, 1)
	assert.ErrorIs(t, err, algorithms.ErrVertexOutOfRange)
}

func TestTriangleCount_Fixtures(t *testing.T) {
	ctx := context.Background()
	k4 := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  int64
	}{
		{"empty", 3, nil, 0},
		{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, 1},
		{"K4", 4, k4, 4},
		{"square", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, 0},
		{"self loop ignored", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 1}}, 1},
	}
	for _, tc := range cases {
		for _, f := range []sparse.Format{sparse.Standard, sparse.Hypersparse} {
			t.Run(tc.name+"/"+f.String(), func(t *testing.T) {
				got, err := algorithms.TriangleCount[float64](ctx, undirected(t, tc.n, tc.edges, sparse.WithFormat(f)))
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

func TestTriangleCount_MatchesBruteForce(t *testing.T) {
	const n = 40
	rng := rand.New(rand.NewSource(42))
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.2 {
				adj[i][j], adj[j][i] = true, true
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	var want int64
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				if adj[a][b] && adj[b][c] && adj[a][c] {
					want++
				}
			}
		}
	}

	got, err := algorithms.TriangleCount[float64](context.Background(), undirected(t, n, edges), spgemm.WithWorkers(4), spgemm.WithChunkSize(3))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTriangleCount_NotSquare(t *testing.T) {
	rect, err := sparse.NewEmpty[float64](2, 3)
	require.NoError(t, err)
	_, err = algorithms.TriangleCount[float64](context.Background(), rect)
	assert.ErrorIs(t, err, algorithms.ErrNotSquare)
}
