// SPDX-License-Identifier: MIT

// Package metrics defines the Collector interface used by the multiply driver,
// the critical section and the pending-operations queue, together with a no-op
// collector, an in-memory atomic collector and a Prometheus-backed collector.
//
// Example Prometheus integration:
//
//	reg := prometheus.NewRegistry()
//	col := metrics.NewPrometheus(reg, "graphblas")
//	c, err := spgemm.Multiply(ctx, a, b, sr, spgemm.WithMetrics(col))
package metrics
