// SPDX-License-Identifier: MIT

package metrics

import (
	"sync/atomic"
	"time"
)

// Collector receives operational measurements.
type Collector interface {
	// RecordMultiply is called once per SpGEMM call with the dispatched
	// variant, the number of multiply-operator applications, the number of
	// stored output entries and the total duration.
	RecordMultiply(variant string, flops, nvals int64, duration time.Duration, err error)

	// RecordCritical is called once per critical-section entry with the time
	// spent waiting for the lock. err is non-nil on synchronization failure.
	RecordCritical(wait time.Duration, err error)

	// RecordQueueLen reports the pending-operations queue length after a mutation.
	RecordQueueLen(n int)
}

// Noop is a Collector that discards everything.
type Noop struct{}

// RecordMultiply implements Collector.
func (Noop) RecordMultiply(string, int64, int64, time.Duration, error) {}

// RecordCritical implements Collector.
func (Noop) RecordCritical(time.Duration, error) {}

// RecordQueueLen implements Collector.
func (Noop) RecordQueueLen(int) {}

// OrNoop returns c, or Noop when c is nil.
func OrNoop(c Collector) Collector {
	if c == nil {
		return Noop{}
	}
	return c
}

// Basic keeps simple in-memory counters.
// Useful for debugging and tests without external dependencies.
type Basic struct {
	MultiplyCount      atomic.Int64
	MultiplyErrors     atomic.Int64
	MultiplyFlops      atomic.Int64
	MultiplyNVals      atomic.Int64
	MultiplyTotalNanos atomic.Int64
	CriticalCount      atomic.Int64
	CriticalFailures   atomic.Int64
	CriticalWaitNanos  atomic.Int64
	QueueLen           atomic.Int64
}

// RecordMultiply implements Collector.
func (b *Basic) RecordMultiply(_ string, flops, nvals int64, duration time.Duration, err error) {
	b.MultiplyCount.Add(1)
	b.MultiplyTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MultiplyErrors.Add(1)
		return
	}
	b.MultiplyFlops.Add(flops)
	b.MultiplyNVals.Add(nvals)
}

// RecordCritical implements Collector.
func (b *Basic) RecordCritical(wait time.Duration, err error) {
	b.CriticalCount.Add(1)
	b.CriticalWaitNanos.Add(wait.Nanoseconds())
	if err != nil {
		b.CriticalFailures.Add(1)
	}
}

// RecordQueueLen implements Collector.
func (b *Basic) RecordQueueLen(n int) {
	b.QueueLen.Store(int64(n))
}

// Stats is a point-in-time copy of Basic.
type Stats struct {
	MultiplyCount    int64
	MultiplyErrors   int64
	MultiplyFlops    int64
	MultiplyNVals    int64
	AvgMultiply      time.Duration
	CriticalCount    int64
	CriticalFailures int64
	QueueLen         int64
}

// GetStats returns a snapshot of the counters.
func (b *Basic) GetStats() Stats {
	s := Stats{
		MultiplyCount:    b.MultiplyCount.Load(),
		MultiplyErrors:   b.MultiplyErrors.Load(),
		MultiplyFlops:    b.MultiplyFlops.Load(),
		MultiplyNVals:    b.MultiplyNVals.Load(),
		CriticalCount:    b.CriticalCount.Load(),
		CriticalFailures: b.CriticalFailures.Load(),
		QueueLen:         b.QueueLen.Load(),
	}
	if s.MultiplyCount > 0 {
		s.AvgMultiply = time.Duration(b.MultiplyTotalNanos.Load() / s.MultiplyCount)
	}
	return s
}

// Multi fans every measurement out to each non-nil collector.
func Multi(cs ...Collector) Collector {
	out := make(multi, 0, len(cs))
	for _, c := range cs {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

type multi []Collector

func (m multi) RecordMultiply(variant string, flops, nvals int64, duration time.Duration, err error) {
	for _, c := range m {
		c.RecordMultiply(variant, flops, nvals, duration, err)
	}
}

func (m multi) RecordCritical(wait time.Duration, err error) {
	for _, c := range m {
		c.RecordCritical(wait, err)
	}
}

func (m multi) RecordQueueLen(n int) {
	for _, c := range m {
		c.RecordQueueLen(n)
	}
}
