package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secrecy/config"
	"github.com/katalvlaran/secrecy/equivocation"
	"github.com/katalvlaran/secrecy/rates"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, rates.DefaultGate(), cfg.Gate)
	require.Equal(t, 39, cfg.Sweep.Count)
	require.True(t, cfg.Sweep.IncludeZero)
	require.Equal(t, equivocation.DefaultMaxStates, cfg.EngineOptions().MaxStates)
}

func TestDecodeOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
workers: 3
gate:
  min_errors: 50
engine:
  max_states: 1024
  parallelism: 2
`))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, int64(50), cfg.Gate.MinErrors)
	require.Equal(t, int64(100), cfg.Gate.MinCorrect)
	require.Equal(t, "info", cfg.Logging.Level)

	o := cfg.EngineOptions()
	require.Equal(t, uint64(1024), o.MaxStates)
	require.Equal(t, 2, o.Parallelism)
	require.Equal(t, equivocation.DefaultTolerance, o.Tolerance)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "wokers: 3\n",
		"bad type":      "workers: many\n",
		"negative":      "workers: -1\n",
		"grid too wide": "sweep: {start: 0.5, step: 0.1, count: 10}\n",
		"negative gate": "gate: {min_errors: -5}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, path, cfg.Source())

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, config.ErrNoConfigFile)

	cfg, err = config.LoadOrDefault(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}
