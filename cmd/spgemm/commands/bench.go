// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

type benchFlags struct {
	rows, inner, cols int
	density           float64
	maskDensity       float64
	hyper             bool
	semiring          string
	seed              int64
	repeat            int
	linger            time.Duration
}

func newBenchCmd() *cobra.Command {
	var f benchFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Multiply random sparse matrices and report timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, rt *session) error {
				return runBench(ctx, cmd, rt, f)
			})
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.rows, "rows", 1000, "rows of A and C")
	fl.IntVar(&f.inner, "inner", 1000, "columns of A, rows of B")
	fl.IntVar(&f.cols, "cols", 1000, "columns of B and C")
	fl.Float64Var(&f.density, "density", 0.01, "entry probability of A and B")
	fl.Float64Var(&f.maskDensity, "mask-density", 0, "entry probability of the mask (0 = unmasked)")
	fl.BoolVar(&f.hyper, "hyper", false, "store the operands hypersparse")
	fl.StringVar(&f.semiring, "semiring", "plus_times", "plus_times, min_plus, max_plus or plus_pair")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.IntVar(&f.repeat, "repeat", 3, "number of multiplications")
	fl.DurationVar(&f.linger, "linger", 0, "keep the metrics endpoint up this long after the runs")
	return cmd
}

func benchSemiring(name string) (semiring.Semiring[float64], error) {
	switch name {
	case "plus_times":
		return semiring.PlusTimes[float64](), nil
	case "min_plus":
		return semiring.MinPlus[float64](), nil
	case "max_plus":
		return semiring.MaxPlus[float64](), nil
	case "plus_pair":
		return semiring.PlusPair[float64](), nil
	default:
		return semiring.Semiring[float64]{}, fmt.Errorf("unknown semiring %q", name)
	}
}

func runBench(ctx context.Context, cmd *cobra.Command, rt *session, f benchFlags) error {
	if f.repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1, got %d", f.repeat)
	}
	sr, err := benchSemiring(f.semiring)
	if err != nil {
		return err
	}
	format := sparse.Standard
	if f.hyper {
		format = sparse.Hypersparse
	}

	rng := rand.New(rand.NewSource(f.seed))
	value := func(r *rand.Rand) float64 { return float64(r.Intn(9) + 1) }
	a, err := sparse.Random(f.rows, f.inner, f.density, rng, value, sparse.WithFormat(format))
	if err != nil {
		return fmt.Errorf("generate A: %w", err)
	}
	b, err := sparse.Random(f.inner, f.cols, f.density, rng, value, sparse.WithFormat(format))
	if err != nil {
		return fmt.Errorf("generate B: %w", err)
	}

	opts, err := rt.spgemmOptions()
	if err != nil {
		return err
	}
	var mask *spgemm.Mask
	if f.maskDensity > 0 {
		pattern, err := sparse.Random[bool](f.rows, f.cols, f.maskDensity, rng, nil, sparse.WithFormat(format))
		if err != nil {
			return fmt.Errorf("generate mask: %w", err)
		}
		if mask, err = spgemm.NewMask[bool](pattern); err != nil {
			return err
		}
		opts = append(opts, spgemm.WithMask(mask))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "A=%s B=%s semiring=%s\n", a, b, f.semiring)
	for run := 1; run <= f.repeat; run++ {
		before := rt.stats.GetStats()
		start := time.Now()
		c, err := spgemm.Multiply[float64](ctx, a, b, sr, opts...)
		if err != nil {
			return fmt.Errorf("run %d: %w", run, err)
		}
		elapsed := time.Since(start)
		after := rt.stats.GetStats()
		variant := spgemm.Dispatch[float64](a, b, mask, c.Format())
		fmt.Fprintf(out, "run=%d variant=%s nvals=%d flops=%d digest=%016x elapsed=%s\n",
			run, variant, c.NVals(), after.MultiplyFlops-before.MultiplyFlops, digest(c), elapsed)
	}
	if peak := rt.ctl.PeakMemoryUsage(); peak > 0 {
		fmt.Fprintf(out, "peak_workspace_bytes=%d\n", peak)
	}

	if f.linger > 0 && rt.addr != "" {
		fmt.Fprintf(out, "metrics on http://%s/metrics for %s\n", rt.addr, f.linger)
		select {
		case <-time.After(f.linger):
		case <-ctx.Done():
		}
	}
	return nil
}
