package config_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"srither/internal/config"
	"srither/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SRITHER_WORKERS", "")
	t.Setenv("SRITHER_BUDGET", "")
	t.Setenv("SRITHER_BENCH_DB", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.Equal(t, constants.DefaultBudget, cfg.Budget)
	require.Equal(t, "", cfg.BenchDB)
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("SRITHER_WORKERS", "16")
	t.Setenv("SRITHER_BUDGET", "500")
	t.Setenv("SRITHER_BENCH_DB", "/tmp/bench.db")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Workers)
	require.Equal(t, 500, cfg.Budget)
	require.Equal(t, "/tmp/bench.db", cfg.BenchDB)
}

func TestLoadRejectsNonIntWorkers(t *testing.T) {
	t.Setenv("SRITHER_WORKERS", "nope")
	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadRejectsZeroWorkers(t *testing.T) {
	t.Setenv("SRITHER_WORKERS", "0")
	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadRejectsNegativeBudget(t *testing.T) {
	t.Setenv("SRITHER_BUDGET", "-1")
	_, err := config.Load()
	require.Error(t, err)
}
