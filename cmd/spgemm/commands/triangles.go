// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/giserh/RedisGraph/algorithms"
	"github.com/giserh/RedisGraph/sparse"
)

func newTrianglesCmd() *cobra.Command {
	var (
		n       int
		density float64
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "triangles",
		Short: "Count triangles of a random undirected graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, rt *session) error {
				adj, err := randomUndirected(n, density, seed)
				if err != nil {
					return err
				}
				opts, err := rt.spgemmOptions()
				if err != nil {
					return err
				}
				start := time.Now()
				count, err := algorithms.TriangleCount[bool](ctx, adj, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "vertices=%d edges=%d triangles=%d elapsed=%s\n",
					n, adj.NVals()/2, count, time.Since(start))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&n, "n", 1000, "number of vertices")
	cmd.Flags().Float64Var(&density, "density", 0.01, "edge probability")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

// randomUndirected samples a directed pattern and mirrors it into a
// symmetric adjacency matrix without self loops.
func randomUndirected(n int, density float64, seed int64) (*sparse.Matrix[bool], error) {
	rng := rand.New(rand.NewSource(seed))
	g, err := sparse.Random[bool](n, n, density/2, rng, nil)
	if err != nil {
		return nil, fmt.Errorf("generate graph: %w", err)
	}
	entries := make([]sparse.Entry[bool], 0, 2*g.NVals())
	for _, e := range g.Entries() {
		if e.Row == e.Col {
			continue
		}
		entries = append(entries,
			sparse.Entry[bool]{Row: e.Row, Col: e.Col, Val: true},
			sparse.Entry[bool]{Row: e.Col, Col: e.Row, Val: true})
	}
	return sparse.FromTriplets(n, n, entries)
}
