// SPDX-License-Identifier: MIT

package queue

import (
	"github.com/giserh/RedisGraph/critical"
	"github.com/giserh/RedisGraph/logging"
	"github.com/giserh/RedisGraph/metrics"
)

const (
	panicNilSection = "queue: WithSection(nil)"
	panicNilLogger  = "queue: WithLogger(nil)"
	panicNilMetrics = "queue: WithMetrics(nil)"
)

// Option configures a Queue.
type Option func(*options)

type options struct {
	section       *critical.Section
	multithreaded bool
	logger        *logging.Logger
	metrics       metrics.Collector
}

func defaultOptions() options {
	return options{
		multithreaded: critical.DefaultMultithreaded,
		metrics:       metrics.Noop{},
	}
}

// WithSection guards the queue with s instead of a section built from DefaultKind.
// Panics if s is nil.
func WithSection(s *critical.Section) Option {
	if s == nil {
		panic(panicNilSection)
	}
	return func(o *options) { o.section = s }
}

// WithMultithreaded sets the mode of the section New builds. Ignored with WithSection.
func WithMultithreaded(on bool) Option {
	return func(o *options) { o.multithreaded = on }
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the collector receiving queue lengths. Panics if c is nil.
func WithMetrics(c metrics.Collector) Option {
	if c == nil {
		panic(panicNilMetrics)
	}
	return func(o *options) { o.metrics = c }
}
