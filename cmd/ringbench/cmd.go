// File: cmd/ringbench/cmd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/control"
)

type runOptions struct {
	configPath   string
	name         string
	kind         string
	capacity     int
	backend      string
	ops          int
	dequeueEvery int
	logLevel     string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ringbench",
		Short:         "Benchmark hioload-ring engines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	def := control.DefaultConfig()
	opts := runOptions{
		name:         def.Name,
		kind:         string(def.Kind),
		capacity:     def.Capacity,
		backend:      string(def.Backend),
		ops:          1_000_000,
		dequeueEvery: 2,
		logLevel:     "info",
	}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an enqueue/dequeue workload against one engine",
		Long: `Run an enqueue/dequeue workload against one engine.
Flags describe the ring unless --config names a YAML file, in which case the
file wins. Every --dequeue-every enqueues one element is dequeued; 0 disables
dequeues so the ring runs permanently full and every enqueue evicts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML ring config file")
	f.StringVar(&opts.name, "name", opts.name, "ring name used in logs and metrics")
	f.StringVar(&opts.kind, "kind", opts.kind, "engine: masking, sparse or subtracting")
	f.IntVar(&opts.capacity, "capacity", opts.capacity, "logical ring capacity")
	f.StringVar(&opts.backend, "backend", opts.backend, "storage backend: heap or mapped")
	f.IntVar(&opts.ops, "ops", opts.ops, "number of enqueue operations")
	f.IntVar(&opts.dequeueEvery, "dequeue-every", opts.dequeueEvery, "dequeue after every N enqueues (0 = never)")
	f.StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level: debug, info, warn, error")
	f.SortFlags = false
	return cmd
}

func (o runOptions) config() (control.Config, error) {
	if o.configPath != "" {
		return control.LoadConfig(o.configPath)
	}
	cfg := control.Config{
		Name:     o.name,
		Kind:     control.Kind(o.kind),
		Capacity: o.capacity,
		Backend:  control.Backend(o.backend),
	}
	return cfg, cfg.Validate()
}

func run(out io.Writer, opts runOptions) error {
	if opts.ops <= 0 {
		return fmt.Errorf("--ops must be positive, got %d", opts.ops)
	}
	log, err := control.NewLogger(opts.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	r, closer, err := control.BuildScalar[uint64](cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	registry := control.NewMetricsRegistry()
	ring := control.Instrument[uint64](cfg.Name, r, registry, log)
	log.Info("starting workload",
		zap.String("kind", string(cfg.Kind)),
		zap.Int("capacity", cfg.Capacity),
		zap.String("backend", string(cfg.Backend)),
		zap.Int("ops", opts.ops))

	start := time.Now()
	res, err := runWorkload(ring, opts.ops, opts.dequeueEvery)
	if err != nil {
		return err
	}
	ring.Publish()
	log.Info("workload finished", zap.Duration("elapsed", time.Since(start)), zap.Any("metrics", registry.GetSnapshot()))

	report(out, cfg, res, ring.Stats())
	return nil
}
