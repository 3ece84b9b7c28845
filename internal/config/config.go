// Package config loads process configuration from the environment, the
// same getEnv-with-fallback shape the sudoku service used for its own
// settings.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"srither/internal/constants"
)

// Config holds the CLI's tunable knobs.
type Config struct {
	// Workers is the goroutine-pool size used by the test and bench
	// subcommands for parallel file processing.
	Workers int
	// Budget is the default DFS choice-point ceiling applied to solve
	// when --budget isn't given. 0 means unbounded.
	Budget int
	// BenchDB is an optional path to a SQLite database file that the
	// bench subcommand appends run history to. Empty disables
	// persistence.
	BenchDB string
}

// Load reads SRITHER_WORKERS, SRITHER_BUDGET, and SRITHER_BENCH_DB from
// the environment, falling back to runtime.NumCPU() and
// constants.DefaultBudget.
func Load() (*Config, error) {
	workers, err := getEnvInt("SRITHER_WORKERS", runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("config: SRITHER_WORKERS must be >= 1, got %d", workers)
	}

	budget, err := getEnvInt("SRITHER_BUDGET", constants.DefaultBudget)
	if err != nil {
		return nil, err
	}
	if budget < 0 {
		return nil, fmt.Errorf("config: SRITHER_BUDGET must be >= 0, got %d", budget)
	}

	return &Config{
		Workers: workers,
		Budget:  budget,
		BenchDB: os.Getenv("SRITHER_BENCH_DB"),
	}, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, val, err)
	}
	return n, nil
}
