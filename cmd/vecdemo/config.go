package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/arena"
)

// Allocator kinds accepted in the config file and on the command line.
const (
	AllocatorHeap      = "heap"
	AllocatorArena     = "arena"
	AllocatorSafeArena = "safe-arena"
)

// Config is the demo configuration. Flags override values loaded from
// the file.
type Config struct {
	// Allocator selects where vector buffers come from.
	Allocator AllocatorConfig `yaml:"allocator"`

	// Pushes is the number of elements pushed by the growth trace and
	// by each worker.
	Pushes int `yaml:"pushes"`

	// Workers is the number of goroutines that each fill and drain
	// their own vector. Zero skips the worker run.
	Workers int `yaml:"workers"`

	// Snapshot configures where the scenario vector is written.
	Snapshot SnapshotConfig `yaml:"snapshot"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// AllocatorConfig configures the vector allocator.
type AllocatorConfig struct {
	Kind      string `yaml:"kind"`
	ChunkSize int    `yaml:"chunk_size"`
	// Limit caps the arena's total bytes. Zero means unbounded.
	Limit int `yaml:"limit"`
}

// SnapshotConfig configures the snapshot file. An empty Path skips it.
type SnapshotConfig struct {
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Allocator: AllocatorConfig{
			Kind:      AllocatorHeap,
			ChunkSize: arena.DefaultChunkSize,
		},
		Pushes:   128,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the demo cannot run with.
func (c Config) Validate() error {
	var errs []error
	switch c.Allocator.Kind {
	case AllocatorHeap, AllocatorSafeArena:
	case AllocatorArena:
		if c.Workers > 1 {
			errs = append(errs, fmt.Errorf("allocator %q is not goroutine-safe; use %q with %d workers", AllocatorArena, AllocatorSafeArena, c.Workers))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown allocator kind %q", c.Allocator.Kind))
	}
	if c.Allocator.ChunkSize < 0 {
		errs = append(errs, fmt.Errorf("chunk_size must not be negative, got %d", c.Allocator.ChunkSize))
	}
	if c.Allocator.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must not be negative, got %d", c.Allocator.Limit))
	}
	if c.Pushes < 0 {
		errs = append(errs, fmt.Errorf("pushes must not be negative, got %d", c.Pushes))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// allocatorMetrics is implemented by both arena kinds.
type allocatorMetrics interface {
	Metrics() arena.ArenaMetrics
}

// Build creates the configured allocator and a function releasing it.
func (c AllocatorConfig) Build() (vector.Allocator, func()) {
	switch c.Kind {
	case AllocatorArena:
		a := arena.NewArena(c.ChunkSize)
		a.SetLimit(c.Limit)
		return a, a.Release
	case AllocatorSafeArena:
		s := arena.NewSafeArena(c.ChunkSize)
		s.SetLimit(c.Limit)
		return s, s.Release
	default:
		return vector.HeapAllocator{}, func() {}
	}
}
