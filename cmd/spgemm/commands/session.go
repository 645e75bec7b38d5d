// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/giserh/RedisGraph/config"
	"github.com/giserh/RedisGraph/logging"
	"github.com/giserh/RedisGraph/metrics"
	"github.com/giserh/RedisGraph/queue"
	"github.com/giserh/RedisGraph/resource"
	"github.com/giserh/RedisGraph/spgemm"
)

const metricsNamespace = "graphblas"

// session is the per-invocation library state: config, logger, metrics
// and the process-wide pending queue.
type session struct {
	cfg    config.Config
	logger *logging.Logger
	reg    *prometheus.Registry
	stats  *metrics.Basic
	mc     metrics.Collector
	ctl    *resource.Controller
	addr   string
	runID  string
}

// spgemmOptions returns the configured kernel options plus logger and metrics.
func (rt *session) spgemmOptions() ([]spgemm.Option, error) {
	opts, err := rt.cfg.SpGEMMOptions(rt.ctl)
	if err != nil {
		return nil, err
	}
	return append(opts, spgemm.WithLogger(rt.logger), spgemm.WithMetrics(rt.mc)), nil
}

// withSession loads the configuration, initializes the library, runs fn and
// tears everything down again, also when fn fails.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, rt *session) error) (err error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	ov, err := overrides(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path, config.WithOverrides(ov))
	if err != nil {
		return err
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	logger := cfg.Logger(cmd.ErrOrStderr())
	rt := &session{
		cfg:    cfg,
		logger: &logging.Logger{Logger: logger.With("run", id.String())},
		reg:    reg,
		stats:  &metrics.Basic{},
		ctl:    cfg.Controller(),
		runID:  id.String(),
	}
	rt.mc = metrics.Multi(metrics.NewPrometheus(reg, metricsNamespace), rt.stats)

	qopts, err := cfg.QueueOptions(rt.logger, rt.mc)
	if err != nil {
		return err
	}
	if err := queue.Init(qopts...); err != nil {
		return fmt.Errorf("init queue: %w", err)
	}
	defer func() {
		if ferr := queue.Finalize(); ferr != nil && err == nil {
			err = fmt.Errorf("finalize queue: %w", ferr)
		}
	}()

	if cfg.Metrics.Address != "" {
		stop, err := rt.serveMetrics(cfg.Metrics.Address)
		if err != nil {
			return err
		}
		defer stop()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, rt)
}

// serveMetrics exposes the registry on /metrics until stop is called.
func (rt *session) serveMetrics(addr string) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	rt.addr = ln.Addr().String()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(rt.reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rt.logger.Error("metrics server stopped", "addr", rt.addr, "error", err)
		}
	}()
	rt.logger.Info("serving metrics", "addr", rt.addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
