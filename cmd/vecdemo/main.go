// vecdemo exercises the vector package end to end: it runs the
// mutation scenario from the package documentation, traces capacity
// growth and shrink, fills vectors from concurrent workers over a
// shared allocator, and optionally writes the scenario vector to a
// snapshot file.
//
// Configuration comes from an optional YAML file (--config); flags
// override file values.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	alloc, release := cfg.Allocator.Build()
	defer release()
	logger.Info("starting", "allocator", cfg.Allocator.Kind, "chunk_size", cfg.Allocator.ChunkSize, "limit", cfg.Allocator.Limit)

	v, err := runScenario(stdout, alloc)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	defer v.Free()

	if err := runGrowthTrace(stdout, alloc, cfg.Pushes); err != nil {
		return fmt.Errorf("growth trace: %w", err)
	}

	if cfg.Workers > 0 {
		if err := runWorkers(logger, alloc, cfg.Workers, cfg.Pushes); err != nil {
			return fmt.Errorf("workers: %w", err)
		}
		logger.Info("workers finished", "workers", cfg.Workers, "elements", cfg.Pushes)
	}

	if path := cfg.Snapshot.Path; path != "" {
		n, err := writeSnapshot(path, v, cfg.Snapshot.Compress)
		if err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		restored, err := readSnapshot(path, alloc, cfg.Snapshot.Compress)
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		defer restored.Free()
		logger.Info("snapshot written", "path", path, "bytes", n, "compressed", cfg.Snapshot.Compress, "elements", restored.Len())
	}

	if m, ok := alloc.(allocatorMetrics); ok {
		am := m.Metrics()
		logger.Info("arena",
			"size_in_use", am.SizeInUse,
			"capacity", am.Capacity,
			"chunks", am.NumChunks,
			"reallocations", am.Reallocations,
			"in_place", am.InPlace)
	}
	return nil
}

// parseConfig loads the config file named by --config, if any, and
// applies the flags that were set explicitly.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	defaults := DefaultConfig()

	var (
		configPath string
		flagValues Config
	)
	flagSet := pflag.NewFlagSet("vecdemo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file")
	flagSet.StringVar(&flagValues.Allocator.Kind, "allocator", defaults.Allocator.Kind, "allocator kind: heap, arena or safe-arena")
	flagSet.IntVar(&flagValues.Allocator.ChunkSize, "chunk-size", defaults.Allocator.ChunkSize, "arena chunk size in bytes")
	flagSet.IntVar(&flagValues.Allocator.Limit, "limit", defaults.Allocator.Limit, "arena byte limit (0 = unbounded)")
	flagSet.IntVarP(&flagValues.Pushes, "pushes", "n", defaults.Pushes, "elements pushed by the growth trace and each worker")
	flagSet.IntVarP(&flagValues.Workers, "workers", "w", defaults.Workers, "concurrent workers, each with its own vector")
	flagSet.StringVar(&flagValues.Snapshot.Path, "snapshot", defaults.Snapshot.Path, "write the scenario vector to this file")
	flagSet.BoolVar(&flagValues.Snapshot.Compress, "compress", defaults.Snapshot.Compress, "zstd-compress the snapshot file")
	flagSet.StringVar(&flagValues.LogLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn or error")

	if err := flagSet.Parse(args); err != nil {
		return Config{}, err
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", extra[0])
	}

	cfg := defaults
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	overrides := []struct {
		name  string
		apply func()
	}{
		{"allocator", func() { cfg.Allocator.Kind = flagValues.Allocator.Kind }},
		{"chunk-size", func() { cfg.Allocator.ChunkSize = flagValues.Allocator.ChunkSize }},
		{"limit", func() { cfg.Allocator.Limit = flagValues.Allocator.Limit }},
		{"pushes", func() { cfg.Pushes = flagValues.Pushes }},
		{"workers", func() { cfg.Workers = flagValues.Workers }},
		{"snapshot", func() { cfg.Snapshot.Path = flagValues.Snapshot.Path }},
		{"compress", func() { cfg.Snapshot.Compress = flagValues.Snapshot.Compress }},
		{"log-level", func() { cfg.LogLevel = flagValues.LogLevel }},
	}
	for _, o := range overrides {
		if flagSet.Changed(o.name) {
			o.apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
