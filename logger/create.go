// SPDX-License-Identifier: MIT

// Package logger builds the zerolog logger used by the command-line tool.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	dirPermMode  = 0744 // rwxr--r--
	filePermMode = 0644 // rw-r--r--

	consoleTimeFormat = time.RFC3339
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = utcNow
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// resilientMultiWriter keeps writing to the remaining sinks when one fails.
type resilientMultiWriter struct {
	level   zerolog.Level
	writers []io.Writer
}

func (t resilientMultiWriter) Write(p []byte) (n int, err error) {
	for _, w := range t.writers {
		_, _ = w.Write(p)
	}
	return len(p), nil
}

func (t resilientMultiWriter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	if t.level <= level {
		for _, w := range t.writers {
			_, _ = w.Write(p)
		}
	}
	return len(p), nil
}

// Create builds a logger from cfg. A nil cfg logs info and above to the
// console. An unparsable level falls back to info and is reported once on
// the new logger.
func Create(cfg *Config) (*zerolog.Logger, error) {
	if cfg == nil {
		cfg = &Config{ConsoleConfig: &ConsoleConfig{}, MinLevel: defaultMinLevel}
	}

	var writers []io.Writer
	if cfg.ConsoleConfig != nil {
		writers = append(writers, createConsoleWriter(*cfg.ConsoleConfig))
	}
	if cfg.FileConfig != nil {
		w, err := createFileWriter(*cfg.FileConfig)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}
	if cfg.RollingConfig != nil {
		w, err := createRollingWriter(*cfg.RollingConfig)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}

	level, levelErr := zerolog.ParseLevel(cfg.MinLevel)
	if levelErr != nil || cfg.MinLevel == "" {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(resilientMultiWriter{level, writers}).With().Timestamp().Logger()
	if levelErr != nil {
		log.Error().Msgf("Failed to parse log level %q, using %q instead", cfg.MinLevel, level)
	}

	return &log, nil
}

func createConsoleWriter(cfg ConsoleConfig) io.Writer {
	out := cfg.Out
	isTerminal := false
	if out == nil {
		out = colorable.NewColorable(os.Stderr)
		isTerminal = term.IsTerminal(int(os.Stderr.Fd()))
	}
	if cfg.AsJSON {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor || !isTerminal,
		TimeFormat: consoleTimeFormat,
	}
}

func createFileWriter(cfg FileConfig) (io.Writer, error) {
	if cfg.Dirname != "" {
		if err := os.MkdirAll(cfg.Dirname, dirPermMode); err != nil {
			return nil, errors.Wrap(err, "unable to create directories for new logfile")
		}
	}
	f, err := os.OpenFile(cfg.Fullpath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermMode)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open logfile")
	}

	return f, nil
}

func createRollingWriter(cfg RollingConfig) (io.Writer, error) {
	if err := os.MkdirAll(cfg.Dirname, dirPermMode); err != nil {
		return nil, errors.Wrapf(err, "unable to create log directory %s", cfg.Dirname)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dirname, cfg.Filename),
		MaxBackups: cfg.MaxBackups,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
	}, nil
}

// Fallback returns a console logger at info level for use when Create fails.
func Fallback(err error) *zerolog.Logger {
	log := zerolog.New(createConsoleWriter(ConsoleConfig{})).With().Timestamp().Logger()
	log.Error().Msgf("Falling back to a default logger due to logger setup failure: %s", err)

	return &log
}
