package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secrecy/logger"
)

func TestCreateConfig(t *testing.T) {
	cfg := logger.CreateConfig("", false, false, "", "")
	require.Equal(t, "info", cfg.MinLevel)
	require.NotNil(t, cfg.ConsoleConfig)
	require.Nil(t, cfg.FileConfig)
	require.Nil(t, cfg.RollingConfig)

	cfg = logger.CreateConfig("debug", true, false, "/var/log/secrecy", "/tmp/x/run.log")
	require.Nil(t, cfg.ConsoleConfig)
	require.Equal(t, "run.log", cfg.FileConfig.Filename)
	require.Nil(t, cfg.RollingConfig, "file takes precedence")

	cfg = logger.CreateConfig("warn", true, false, "/var/log/secrecy", "")
	require.Equal(t, "/var/log/secrecy", cfg.RollingConfig.Dirname)
	require.Equal(t, 5, cfg.RollingConfig.MaxBackups)
}

func TestCreateFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.Create(&logger.Config{
		ConsoleConfig: &logger.ConsoleConfig{AsJSON: true, Out: &buf},
		MinLevel:      "warn",
	})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("code", "bch-32-16").Msg("shown")

	var ev map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev))
	require.Equal(t, "shown", ev["message"])
	require.Equal(t, "bch-32-16", ev["code"])
}

func TestCreateBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.Create(&logger.Config{
		ConsoleConfig: &logger.ConsoleConfig{AsJSON: true, Out: &buf},
		MinLevel:      "loud",
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Failed to parse log level")

	buf.Reset()
	log.Debug().Msg("hidden")
	require.Empty(t, buf.String())
	log.Info().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestCreateFileWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "secrecy.log")
	log, err := logger.Create(logger.CreateConfig("info", true, false, "", path))
	require.NoError(t, err)

	log.Info().Msg("to file")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")
}

func TestCreateRollingWriter(t *testing.T) {
	dir := t.TempDir()
	log, err := logger.Create(logger.CreateConfig("info", true, false, dir, ""))
	require.NoError(t, err)

	log.Info().Msg("rolled")
	data, err := os.ReadFile(filepath.Join(dir, "secrecy.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "rolled")
}
