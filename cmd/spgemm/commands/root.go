// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Version is reported by the version subcommand and --version.
const Version = "0.1.0"

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"backend":       "critical.backend",
	"multithreaded": "critical.multithreaded",
	"workers":       "spgemm.workers",
	"chunk-size":    "spgemm.chunk_size",
	"mask-policy":   "spgemm.mask_policy",
	"output-format": "spgemm.output_format",
	"memory-limit":  "resource.memory_limit",
	"max-workers":   "resource.max_workers",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"metrics-addr":  "metrics.address",
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "spgemm",
		Short: "Masked sparse matrix multiplication over semirings",
		Long: `spgemm runs Gustavson's sparse matrix multiplication on random
matrices and reports timings, flop counts and result sizes.

Settings come from built-in defaults, an optional YAML file, GRAPHBLAS_*
environment variables and finally the flags below.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("backend", "", "critical section backend (named, mutex, native, portable)")
	pf.Bool("multithreaded", true, "serialize pending queue access")
	pf.Int("workers", 0, "kernel workers (0 = GOMAXPROCS)")
	pf.Int("chunk-size", 0, "columns of B per task (0 = automatic)")
	pf.String("mask-policy", "", "omit_empty or emit_identity")
	pf.String("output-format", "", "auto, standard or hypersparse")
	pf.Int64("memory-limit", 0, "workspace memory limit in bytes (0 = unlimited)")
	pf.Int64("max-workers", 0, "process-wide worker slots (0 = unlimited)")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-format", "", "text or json")
	pf.String("metrics-addr", "", "serve Prometheus metrics on this address")

	root.AddCommand(newBenchCmd(), newTrianglesCmd(), newVersionCmd())
	return root
}

// Execute runs the root command; an interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// overrides collects the persistent flags the user actually set.
func overrides(cmd *cobra.Command) (map[string]any, error) {
	out := make(map[string]any)
	flags := cmd.Flags()
	for name, key := range flagKeys {
		if !flags.Changed(name) {
			continue
		}
		f := flags.Lookup(name)
		var (
			v   any
			err error
		)
		switch f.Value.Type() {
		case "int":
			v, err = flags.GetInt(name)
		case "int64":
			v, err = flags.GetInt64(name)
		case "bool":
			v, err = flags.GetBool(name)
		default:
			v, err = flags.GetString(name)
		}
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}
