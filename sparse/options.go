// SPDX-License-Identifier: MIT

package sparse

import "github.com/giserh/RedisGraph/queue"

// DefaultFormat is the representation used when WithFormat is not given.
const DefaultFormat = Standard

const (
	panicBadFormat = "sparse: WithFormat: unknown format"
	panicNilDup    = "sparse: WithDup(nil)"
	panicNilQueue  = "sparse: WithQueue(nil)"
)

// Option configures matrix construction.
type Option func(*options)

type options struct {
	format Format
	dup    func(old, new any) any
	queue  *queue.Queue
}

func defaultOptions() options {
	return options{format: DefaultFormat}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFormat selects the representation. Panics on an unknown Format.
func WithFormat(f Format) Option {
	if f != Standard && f != Hypersparse {
		panic(panicBadFormat)
	}
	return func(o *options) { o.format = f }
}

// WithDup sets how duplicate (row, col) entries combine. The default keeps the
// last one. fn must accept and return the matrix element type; it is applied
// as fn(earlier, later). Panics if fn is nil.
func WithDup[T any](fn func(old, new T) T) Option {
	if fn == nil {
		panic(panicNilDup)
	}
	return func(o *options) {
		o.dup = func(a, b any) any { return fn(a.(T), b.(T)) }
	}
}

// WithQueue registers pending operations in q instead of queue.Global().
// Panics if q is nil.
func WithQueue(q *queue.Queue) Option {
	if q == nil {
		panic(panicNilQueue)
	}
	return func(o *options) { o.queue = q }
}
