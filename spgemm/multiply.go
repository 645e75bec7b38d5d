// SPDX-License-Identifier: MIT

// Package spgemm - Multiply driver: validate, dispatch, execute, assemble.
//
// Purpose:
//   - Run the per-column Gustavson kernel over every output column of C,
//     in parallel chunks, and build C in one pass at the end.
//   - Keep all structural checks at this boundary; kernels assume valid input.
//   - Never hand out a partially built C: any failure returns nil.
//
// AI-Hints:
//   - Pass WithController to share one memory budget between concurrent calls.
//   - WithChunkSize trades scheduling overhead against load balance; the
//     derived size gives every worker about four chunks.
//   - Under EmitIdentity with a mask the driver walks the mask's columns,
//     so a hypersparse B still yields identities where B(:,j) is absent.
//
// Complexity quicksheet:
//   - Time O(flops + nnz(C) log(col len) + columns visited); memory
//     O(workers * rows(A)) for workspaces plus O(nnz(C)) output.

package spgemm

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/giserh/RedisGraph/logging"
	"github.com/giserh/RedisGraph/resource"
	"github.com/giserh/RedisGraph/semiring"
	"github.com/giserh/RedisGraph/sparse"
)

// Multiply computes C = A*B over sr, or C<M> = A*B when WithMask is given.
//
// Implementation:
//   - Stage 1 (Validate): operands, operators, A/B and mask shapes; pending
//     tuples of A and B are assembled.
//   - Stage 2 (Dispatch): pick the kernel variant and the output format.
//   - Stage 3 (Execute): run the kernel over chunks of output columns, one
//     workspace per worker.
//   - Stage 4 (Finalize): assemble C column by column.
//
// Inputs:
//   - a, b: operands with a.Cols() == b.Rows(); any sparse.Columns works,
//     *sparse.Matrix takes the direct-access path.
//   - sr: semiring with non-nil Add.Op and Multiply.
//   - opts: WithMask, WithMaskPolicy, WithWorkers, WithChunkSize,
//     WithOutputFormat, WithController, WithLogger, WithMetrics.
//
// Returns:
//   - *sparse.Matrix[T]: rows(A)×cols(B), hypersparse iff B is (unless forced).
//
// Errors:
//   - ErrNilOperand, semiring.ErrNilOperator, ErrDimensionMismatch, ErrMaskShape.
//   - ErrOutOfMemory when the controller refuses the workspaces.
//   - ctx.Err() when ctx ends before all chunks ran.
//
// Determinism:
//   - C does not depend on worker count, chunk size or operand formats.
//
// On any error C is nil. ctx only stops the scheduling of further chunks;
// a running chunk always completes.
func Multiply[T any](ctx context.Context, a, b sparse.Columns[T], sr semiring.Semiring[T], opts ...Option) (c *sparse.Matrix[T], err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.OrNoop(o.logger).WithComponent("spgemm")

	var (
		variant    Variant
		flops      int64
		rows, cols int
		start      = time.Now()
	)
	defer func() {
		dur := time.Since(start)
		var nvals int64
		if c != nil {
			nvals = int64(c.NVals())
		}
		o.metrics.RecordMultiply(variant.String(), flops, nvals, dur, err)
		logger.LogMultiply(ctx, variant.String(), rows, cols, flops, nvals, dur, err)
	}()

	if err := validate(a, b, &sr, o.mask); err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	rows, cols = a.Rows(), b.Cols()

	format := sparse.Standard
	if b.IsHyper() {
		format = sparse.Hypersparse
	}
	if o.outputFormat != nil {
		format = *o.outputFormat
	}
	variant = Dispatch(a, b, o.mask, format)

	var chunks []chunkOut[T]
	switch am := a.(type) {
	case *sparse.Matrix[T]:
		p, h, i, x := am.CSC()
		if variant.Hyper() {
			chunks, flops, err = execute(ctx, lookupCols[T]{p: p, h: h, i: i, x: x}, rows, b, &sr, &o, variant)
		} else {
			chunks, flops, err = execute(ctx, directCols[T]{p: p, i: i, x: x}, rows, b, &sr, &o, variant)
		}
	default:
		chunks, flops, err = execute(ctx, ifaceCols[T]{c: a}, rows, b, &sr, &o, variant)
	}
	if err != nil {
		return nil, fmt.Errorf("Multiply(%s): %w", variant, err)
	}

	c, err = assemble(rows, cols, format, chunks)
	if err != nil {
		return nil, fmt.Errorf("Multiply(%s): %w", variant, err)
	}
	return c, nil
}

// validate checks everything the kernels assume.
func validate[T any](a, b sparse.Columns[T], sr *semiring.Semiring[T], m *Mask) error {
	if a == nil || b == nil {
		return ErrNilOperand
	}
	if err := sr.Validate(); err != nil {
		return err
	}
	if err := materialize(a); err != nil {
		return fmt.Errorf("assemble A: %w", err)
	}
	if err := materialize(b); err != nil {
		return fmt.Errorf("assemble B: %w", err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	if m != nil && (m.Rows() != a.Rows() || m.Cols() != b.Cols()) {
		return fmt.Errorf("mask %dx%d, output %dx%d: %w", m.Rows(), m.Cols(), a.Rows(), b.Cols(), ErrMaskShape)
	}
	return nil
}

// chunkOut holds the finished columns of one chunk of B's slots.
type chunkOut[T any] struct {
	cols []int // output column of each slot
	ptr  []int // len(cols)+1 offsets into rows/vals
	rows []int
	vals []T
}

// execute runs the kernel over every column of the plan.
//
// Implementation:
//   - Stage 1: size chunks and reserve one workspace per worker.
//   - Stage 2: schedule chunks on an errgroup limited to the worker count;
//     each task takes a worker slot from the controller and a workspace
//     from the pool.
//   - Stage 3: wait, then report ctx's error if it ended meanwhile.
//
// Complexity:
//   - Time O(flops / workers) wall clock; Space O(workers * rows(A)).
func execute[T any, A colSource[T]](
	ctx context.Context, a A, aRows int, b sparse.Columns[T],
	sr *semiring.Semiring[T], o *options, variant Variant,
) ([]chunkOut[T], int64, error) {
	plan := planColumns(b, o.mask, o.policy, variant)
	nvec := plan.len()
	size := o.chunkSize
	if size == 0 {
		size = max(1, ceilDiv(nvec, o.workers*chunksPerWorker))
	}
	nchunks := ceilDiv(nvec, size)
	workers := min(o.workers, nchunks)

	ws, release, err := reserveWorkspaces[T](o.controller, workers, aRows)
	if err != nil {
		return nil, 0, err
	}
	defer release()
	pool := make(chan *Workspace[T], len(ws))
	for _, w := range ws {
		pool <- w
	}

	chunks := make([]chunkOut[T], nchunks)
	var flops atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for ci := 0; ci < nchunks; ci++ {
		if gctx.Err() != nil {
			break
		}
		ci := ci
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := o.controller.AcquireWorker(gctx); err != nil {
				return err
			}
			defer o.controller.ReleaseWorker()

			w := <-pool
			defer func() { pool <- w }()

			lo := ci * size
			hi := min(lo+size, nvec)
			flops.Add(runChunk(w, a, plan, lo, hi, o.mask, variant, sr, o.policy, &chunks[ci]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return chunks, flops.Load(), nil
}

// reserveWorkspaces charges n workspaces to ctl and allocates them. The
// returned release gives the memory back.
func reserveWorkspaces[T any](ctl *resource.Controller, n, rows int) ([]*Workspace[T], func(), error) {
	bytes := WorkspaceBytes[T](rows)
	ws := make([]*Workspace[T], 0, n)
	release := func() {
		for range ws {
			ctl.ReleaseMemory(bytes)
		}
	}
	for k := 0; k < n; k++ {
		if err := ctl.AcquireMemory(bytes); err != nil {
			release()
			return nil, nil, fmt.Errorf("%w: workspace %d of %d (%d bytes): %w", ErrOutOfMemory, k+1, n, bytes, err)
		}
		ws = append(ws, NewWorkspace[T](rows))
	}
	return ws, release, nil
}

// columnPlan is the sequence of output columns the driver computes.
//
// Normally these are B's stored slots: a column B does not store yields an
// empty C column. Under EmitIdentity a masked column yields identities even
// when B(:,j) is empty, so the plan then follows the mask's non-empty
// columns and looks B's columns up. Both orders are increasing in j.
type columnPlan[T any] struct {
	b      sparse.Columns[T]
	byMask bool
	cols   []int
}

func planColumns[T any](b sparse.Columns[T], m *Mask, policy MaskPolicy, variant Variant) columnPlan[T] {
	if variant.Masked() && policy == EmitIdentity {
		return columnPlan[T]{b: b, byMask: true, cols: m.NonEmptyColumns()}
	}
	return columnPlan[T]{b: b}
}

func (p columnPlan[T]) len() int {
	if p.byMask {
		return len(p.cols)
	}
	return p.b.NumVectors()
}

func (p columnPlan[T]) at(pos int) (j int, rows []int, vals []T) {
	if !p.byMask {
		return p.b.ColumnAt(pos)
	}
	j = p.cols[pos]
	rows, vals = p.b.Column(j)
	return j, rows, vals
}

// runChunk computes the output columns at plan positions [lo, hi).
func runChunk[T any, A colSource[T]](
	w *Workspace[T], a A, plan columnPlan[T], lo, hi int, mask *Mask,
	variant Variant, sr *semiring.Semiring[T], policy MaskPolicy, out *chunkOut[T],
) int64 {
	out.cols = make([]int, 0, hi-lo)
	out.ptr = make([]int, 1, hi-lo+1)
	var flops int64
	for pos := lo; pos < hi; pos++ {
		j, bRows, bVals := plan.at(pos)
		start := len(out.rows)
		var f int64
		if variant.Masked() {
			out.rows, f = gustavsonMasked(w, a, bRows, bVals, mask.Column(j), sr, policy, out.rows)
		} else {
			out.rows, f = gustavson(w, a, bRows, bVals, sr, out.rows)
		}
		flops += f
		out.rows, out.vals = finishColumn(w, sr, out.rows, out.vals, start, !variant.Masked())
		out.cols = append(out.cols, j)
		out.ptr = append(out.ptr, len(out.rows))
	}
	return flops
}

// finishColumn sorts rows[start:] if needed, gathers the values from w and
// drops entries the semiring elides.
func finishColumn[T any](w *Workspace[T], sr *semiring.Semiring[T], rows []int, vals []T, start int, sortRows bool) ([]int, []T) {
	seg := rows[start:]
	if sortRows {
		slices.Sort(seg)
	}
	n := start
	for _, i := range seg {
		v := w.vals[i]
		if !sr.Keep(v) {
			continue
		}
		rows[n] = i
		vals = append(vals, v)
		n++
	}
	return rows[:n], vals
}

// assemble concatenates the chunks into C.
func assemble[T any](rows, cols int, format sparse.Format, chunks []chunkOut[T]) (*sparse.Matrix[T], error) {
	nnz := 0
	for k := range chunks {
		nnz += len(chunks[k].rows)
	}
	i := make([]int, 0, nnz)
	x := make([]T, 0, nnz)

	var p, h []int
	if format == sparse.Hypersparse {
		p = []int{0}
		h = make([]int, 0)
	} else {
		p = make([]int, cols+1)
	}
	for k := range chunks {
		ch := &chunks[k]
		for s, j := range ch.cols {
			n := ch.ptr[s+1] - ch.ptr[s]
			if format == sparse.Hypersparse {
				if n == 0 {
					continue
				}
				h = append(h, j)
				p = append(p, len(i)+n)
			} else {
				p[j+1] = n
			}
			i = append(i, ch.rows[ch.ptr[s]:ch.ptr[s+1]]...)
			x = append(x, ch.vals[ch.ptr[s]:ch.ptr[s+1]]...)
		}
	}
	if format == sparse.Standard {
		for j := 0; j < cols; j++ {
			p[j+1] += p[j]
		}
	}
	return sparse.FromCSC(rows, cols, p, h, i, x)
}

func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}
