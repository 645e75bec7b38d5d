// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/giserh/RedisGraph/critical"
	"github.com/giserh/RedisGraph/logging"
	"github.com/giserh/RedisGraph/metrics"
	"github.com/giserh/RedisGraph/queue"
	"github.com/giserh/RedisGraph/resource"
	"github.com/giserh/RedisGraph/sparse"
	"github.com/giserh/RedisGraph/spgemm"
)

// DefaultEnvPrefix is the environment variable prefix.
const DefaultEnvPrefix = "GRAPHBLAS_"

// Config is the full engine configuration.
type Config struct {
	Critical CriticalConfig `koanf:"critical"`
	SpGEMM   SpGEMMConfig   `koanf:"spgemm"`
	Resource ResourceConfig `koanf:"resource"`
	Log      LogConfig      `koanf:"log"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// CriticalConfig selects the critical-section backend and library mode.
type CriticalConfig struct {
	// Backend is one of named, mutex, native, portable; empty means the
	// build default.
	Backend       string `koanf:"backend"`
	Multithreaded bool   `koanf:"multithreaded"`
}

// SpGEMMConfig tunes Multiply.
type SpGEMMConfig struct {
	// Workers bounds kernel goroutines; 0 means GOMAXPROCS.
	Workers int `koanf:"workers"`
	// ChunkSize is the number of B columns per task; 0 derives it.
	ChunkSize  int    `koanf:"chunk_size"`
	MaskPolicy string `koanf:"mask_policy"`
	// OutputFormat is auto, standard or hypersparse.
	OutputFormat string `koanf:"output_format"`
}

// ResourceConfig limits workspace memory and concurrent workers.
type ResourceConfig struct {
	MemoryLimit int64 `koanf:"memory_limit"`
	MaxWorkers  int64 `koanf:"max_workers"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsConfig configures the Prometheus endpoint of the CLI.
type MetricsConfig struct {
	Address string `koanf:"address"`
}

// Default returns the configuration used when no source sets a key.
func Default() Config {
	return Config{
		Critical: CriticalConfig{Backend: critical.DefaultKind.String(), Multithreaded: critical.DefaultMultithreaded},
		SpGEMM:   SpGEMMConfig{MaskPolicy: spgemm.DefaultMaskPolicy.String(), OutputFormat: "auto"},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// defaultsMap mirrors Default in koanf key form.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"critical.backend":       d.Critical.Backend,
		"critical.multithreaded": d.Critical.Multithreaded,
		"spgemm.workers":         d.SpGEMM.Workers,
		"spgemm.chunk_size":      d.SpGEMM.ChunkSize,
		"spgemm.mask_policy":     d.SpGEMM.MaskPolicy,
		"spgemm.output_format":   d.SpGEMM.OutputFormat,
		"resource.memory_limit":  d.Resource.MemoryLimit,
		"resource.max_workers":   d.Resource.MaxWorkers,
		"log.level":              d.Log.Level,
		"log.format":             d.Log.Format,
		"metrics.address":        d.Metrics.Address,
	}
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	envPrefix string
	overrides map[string]any
}

// WithEnvPrefix replaces DefaultEnvPrefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *loader) { l.envPrefix = prefix }
}

// WithOverrides applies values keyed like "spgemm.workers" last.
func WithOverrides(values map[string]any) Option {
	return func(l *loader) { l.overrides = values }
}

// Load reads defaults, the YAML file at path (skipped when empty), the
// environment and the overrides, then validates the result.
func Load(path string, opts ...Option) (Config, error) {
	l := loader{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&l)
	}

	k := koanf.New(".")
	if err := k.Load(mapProvider(defaultsMap()), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load file %s: %w", path, err)
		}
	}

	// GRAPHBLAS_SPGEMM_MASK_POLICY -> spgemm.mask_policy
	prefix := l.envPrefix
	transform := func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, prefix))
		return strings.Replace(s, "_", ".", 1)
	}
	if err := k.Load(env.Provider(prefix, ".", transform), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if len(l.overrides) > 0 {
		if err := k.Load(mapProvider(l.overrides), nil); err != nil {
			return Config{}, fmt.Errorf("load overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that has a closed set of values or a sign.
func (c Config) Validate() error {
	if _, err := c.CriticalKind(); err != nil {
		return fmt.Errorf("%w: critical.backend: %w", ErrInvalidConfig, err)
	}
	if c.SpGEMM.Workers < 0 {
		return fmt.Errorf("%w: spgemm.workers=%d < 0", ErrInvalidConfig, c.SpGEMM.Workers)
	}
	if c.SpGEMM.ChunkSize < 0 {
		return fmt.Errorf("%w: spgemm.chunk_size=%d < 0", ErrInvalidConfig, c.SpGEMM.ChunkSize)
	}
	if _, err := spgemm.ParseMaskPolicy(c.SpGEMM.MaskPolicy); err != nil {
		return fmt.Errorf("%w: spgemm.mask_policy: %w", ErrInvalidConfig, err)
	}
	if _, _, err := c.outputFormat(); err != nil {
		return err
	}
	if c.Resource.MemoryLimit < 0 {
		return fmt.Errorf("%w: resource.memory_limit=%d < 0", ErrInvalidConfig, c.Resource.MemoryLimit)
	}
	if c.Resource.MaxWorkers < 0 {
		return fmt.Errorf("%w: resource.max_workers=%d < 0", ErrInvalidConfig, c.Resource.MaxWorkers)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level=%q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format=%q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// CriticalKind resolves critical.backend; empty selects critical.DefaultKind.
func (c Config) CriticalKind() (critical.Kind, error) {
	if c.Critical.Backend == "" {
		return critical.DefaultKind, nil
	}
	return critical.ParseKind(c.Critical.Backend)
}

// outputFormat returns the forced output format, if any.
func (c Config) outputFormat() (sparse.Format, bool, error) {
	switch strings.ToLower(c.SpGEMM.OutputFormat) {
	case "", "auto":
		return 0, false, nil
	case "standard":
		return sparse.Standard, true, nil
	case "hypersparse", "hyper":
		return sparse.Hypersparse, true, nil
	}
	return 0, false, fmt.Errorf("%w: spgemm.output_format=%q", ErrInvalidConfig, c.SpGEMM.OutputFormat)
}

// Controller builds the resource controller, or nil when no limit is set.
func (c Config) Controller() *resource.Controller {
	if c.Resource.MemoryLimit == 0 && c.Resource.MaxWorkers == 0 {
		return nil
	}
	return resource.NewController(resource.Config{
		MemoryLimitBytes: c.Resource.MemoryLimit,
		MaxWorkers:       c.Resource.MaxWorkers,
	})
}

// SpGEMMOptions translates the spgemm and resource sections into Multiply
// options. ctl may be nil; it is usually the result of Controller, shared
// by all multiplies.
func (c Config) SpGEMMOptions(ctl *resource.Controller) ([]spgemm.Option, error) {
	policy, err := spgemm.ParseMaskPolicy(c.SpGEMM.MaskPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: spgemm.mask_policy: %w", ErrInvalidConfig, err)
	}
	opts := []spgemm.Option{spgemm.WithMaskPolicy(policy)}
	if c.SpGEMM.Workers > 0 {
		opts = append(opts, spgemm.WithWorkers(c.SpGEMM.Workers))
	}
	if c.SpGEMM.ChunkSize > 0 {
		opts = append(opts, spgemm.WithChunkSize(c.SpGEMM.ChunkSize))
	}
	f, forced, err := c.outputFormat()
	if err != nil {
		return nil, err
	}
	if forced {
		opts = append(opts, spgemm.WithOutputFormat(f))
	}
	if ctl != nil {
		opts = append(opts, spgemm.WithController(ctl))
	}
	return opts, nil
}

// QueueOptions configures queue.Init from the critical section. l and mc
// are optional and passed to both the section and the queue.
func (c Config) QueueOptions(l *logging.Logger, mc metrics.Collector) ([]queue.Option, error) {
	kind, err := c.CriticalKind()
	if err != nil {
		return nil, fmt.Errorf("%w: critical.backend: %w", ErrInvalidConfig, err)
	}
	copts := []critical.Option{critical.WithKind(kind), critical.WithMultithreaded(c.Critical.Multithreaded)}
	var qopts []queue.Option
	if l != nil {
		copts = append(copts, critical.WithLogger(l))
		qopts = append(qopts, queue.WithLogger(l))
	}
	if mc != nil {
		copts = append(copts, critical.WithMetrics(mc))
		qopts = append(qopts, queue.WithMetrics(mc))
	}
	s, err := critical.New(copts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return append(qopts, queue.WithSection(s)), nil
}

// Logger builds the logger described by the log section.
func (c Config) Logger(w io.Writer) *logging.Logger {
	level := logging.ParseLevel(c.Log.Level)
	if strings.EqualFold(c.Log.Format, "json") {
		return logging.NewJSONLogger(w, level)
	}
	return logging.NewTextLogger(w, level)
}

// mapProvider is a koanf provider backed by a map of dotted keys.
type mapProvider map[string]any

// ReadBytes is not supported; koanf uses Read.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errReadBytesNotSupported
}

// Read returns the map, unflattened on the "." delimiter.
func (m mapProvider) Read() (map[string]any, error) {
	out := make(map[string]any)
	for key, v := range m {
		parts := strings.Split(key, ".")
		cur := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := cur[p].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cur[p] = next
			}
			cur = next
		}
		cur[parts[len(parts)-1]] = v
	}
	return out, nil
}
