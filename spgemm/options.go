// SPDX-License-Identifier: MIT

package spgemm

import (
	"runtime"

	"github.com/giserh/RedisGraph/logging"
	"github.com/giserh/RedisGraph/metrics"
	"github.com/giserh/RedisGraph/resource"
	"github.com/giserh/RedisGraph/sparse"
)

const (
	panicNilMask      = "spgemm: WithMask(nil)"
	panicBadPolicy    = "spgemm: WithMaskPolicy: unknown policy"
	panicBadWorkers   = "spgemm: WithWorkers(n < 1)"
	panicBadChunk     = "spgemm: WithChunkSize(n < 1)"
	panicBadFormat    = "spgemm: WithOutputFormat: unknown format"
	panicNilControl   = "spgemm: WithController(nil)"
	panicNilLogger    = "spgemm: WithLogger(nil)"
	panicNilCollector = "spgemm: WithMetrics(nil)"
)

// chunksPerWorker is how many column chunks each worker gets when the chunk
// size is derived automatically.
const chunksPerWorker = 4

// Option configures Multiply.
type Option func(*options)

type options struct {
	mask         *Mask
	policy       MaskPolicy
	workers      int
	chunkSize    int // 0: derived from the number of B columns
	outputFormat *sparse.Format
	controller   *resource.Controller
	logger       *logging.Logger
	metrics      metrics.Collector
}

func defaultOptions() options {
	return options{
		policy:  DefaultMaskPolicy,
		workers: runtime.GOMAXPROCS(0),
		metrics: metrics.Noop{},
	}
}

// WithMask restricts C to the pattern of m. Panics if m is nil.
func WithMask(m *Mask) Option {
	if m == nil {
		panic(panicNilMask)
	}
	return func(o *options) { o.mask = m }
}

// WithMaskPolicy sets how allowed but uncomputed positions are treated.
func WithMaskPolicy(p MaskPolicy) Option {
	if p != OmitEmpty && p != EmitIdentity {
		panic(panicBadPolicy)
	}
	return func(o *options) { o.policy = p }
}

// WithWorkers bounds the goroutines running kernels. Default GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}
	return func(o *options) { o.workers = n }
}

// WithChunkSize sets how many B columns form one unit of scheduling.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(panicBadChunk)
	}
	return func(o *options) { o.chunkSize = n }
}

// WithOutputFormat forces the representation of C. By default C is
// hypersparse exactly when B is.
func WithOutputFormat(f sparse.Format) Option {
	if f != sparse.Standard && f != sparse.Hypersparse {
		panic(panicBadFormat)
	}
	return func(o *options) { o.outputFormat = &f }
}

// WithController charges workspace memory and worker slots to c.
func WithController(c *resource.Controller) Option {
	if c == nil {
		panic(panicNilControl)
	}
	return func(o *options) { o.controller = c }
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the collector. Panics if c is nil.
func WithMetrics(c metrics.Collector) Option {
	if c == nil {
		panic(panicNilCollector)
	}
	return func(o *options) { o.metrics = c }
}
