// SPDX-License-Identifier: MIT

package critical

import (
	"github.com/giserh/RedisGraph/logging"
	"github.com/giserh/RedisGraph/metrics"
)

// DefaultMultithreaded enables locking. With false every Run executes the
// block directly, matching a library initialized for single-threaded use.
const DefaultMultithreaded = true

const (
	panicNilBackend = "critical: WithBackend(nil)"
	panicNilLogger  = "critical: WithLogger(nil)"
	panicNilMetrics = "critical: WithMetrics(nil)"
)

// Option configures a Section.
type Option func(*options)

type options struct {
	backend       Backend
	kind          Kind
	multithreaded bool
	logger        *logging.Logger
	metrics       metrics.Collector
}

func defaultOptions() options {
	return options{
		kind:          DefaultKind,
		multithreaded: DefaultMultithreaded,
		metrics:       metrics.Noop{},
	}
}

// WithBackend uses b instead of constructing one from the Kind.
// Panics if b is nil.
func WithBackend(b Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}
	return func(o *options) { o.backend = b }
}

// WithKind selects the backend implementation at runtime, overriding DefaultKind.
func WithKind(k Kind) Option {
	return func(o *options) { o.kind = k }
}

// WithMultithreaded toggles locking.
func WithMultithreaded(on bool) Option {
	return func(o *options) { o.multithreaded = on }
}

// WithLogger sets the logger used to report synchronization failures.
// Panics if l is nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the collector for lock wait times and failures.
// Panics if c is nil.
func WithMetrics(c metrics.Collector) Option {
	if c == nil {
		panic(panicNilMetrics)
	}
	return func(o *options) { o.metrics = c }
}
