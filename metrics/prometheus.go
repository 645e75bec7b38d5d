// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus is a Collector backed by client_golang metrics.
type Prometheus struct {
	multiplies   *prometheus.CounterVec
	multiplyDur  *prometheus.HistogramVec
	flops        prometheus.Counter
	nvals        prometheus.Counter
	criticalWait prometheus.Histogram
	criticalFail prometheus.Counter
	queueLen     prometheus.Gauge
}

// NewPrometheus creates the metrics under namespace and registers them on reg.
// A nil reg registers on prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prometheus{
		multiplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "spgemm",
			Name:      "multiplies_total",
			Help:      "SpGEMM calls by kernel variant and outcome.",
		}, []string{"variant", "outcome"}),
		multiplyDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "spgemm",
			Name:      "duration_seconds",
			Help:      "SpGEMM wall time by kernel variant.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"variant"}),
		flops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "spgemm",
			Name:      "flops_total",
			Help:      "Multiply-operator applications.",
		}),
		nvals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "spgemm",
			Name:      "output_entries_total",
			Help:      "Entries stored in SpGEMM outputs.",
		}),
		criticalWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "critical",
			Name:      "wait_seconds",
			Help:      "Time spent acquiring the critical section.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}),
		criticalFail: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "critical",
			Name:      "failures_total",
			Help:      "Lock or unlock failures of the critical section.",
		}),
		queueLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "pending_matrices",
			Help:      "Matrices with pending operations.",
		}),
	}
	reg.MustRegister(p.multiplies, p.multiplyDur, p.flops, p.nvals, p.criticalWait, p.criticalFail, p.queueLen)

	return p
}

// RecordMultiply implements Collector.
func (p *Prometheus) RecordMultiply(variant string, flops, nvals int64, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	p.multiplies.WithLabelValues(variant, outcome).Inc()
	p.multiplyDur.WithLabelValues(variant).Observe(duration.Seconds())
	if err == nil {
		p.flops.Add(float64(flops))
		p.nvals.Add(float64(nvals))
	}
}

// RecordCritical implements Collector.
func (p *Prometheus) RecordCritical(wait time.Duration, err error) {
	p.criticalWait.Observe(wait.Seconds())
	if err != nil {
		p.criticalFail.Inc()
	}
}

// RecordQueueLen implements Collector.
func (p *Prometheus) RecordQueueLen(n int) {
	p.queueLen.Set(float64(n))
}
