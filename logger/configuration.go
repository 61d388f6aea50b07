// SPDX-License-Identifier: MIT

package logger

import (
	"io"
	"path/filepath"
)

const (
	defaultMinLevel    = "info"
	defaultLogFilename = "secrecy.log"

	rollingMaxSize    = 1 // megabytes
	rollingMaxBackups = 5 // files
	rollingMaxAge     = 0 // keep forever
)

// Config selects the log sinks. A nil sink config disables that sink.
type Config struct {
	ConsoleConfig *ConsoleConfig
	FileConfig    *FileConfig
	RollingConfig *RollingConfig

	MinLevel string // trace | debug | info | warn | error | fatal
}

// ConsoleConfig controls the human-readable console writer.
type ConsoleConfig struct {
	NoColor bool
	AsJSON  bool
	Out     io.Writer // nil means os.Stderr
}

// FileConfig appends to a single log file.
type FileConfig struct {
	Dirname  string
	Filename string
}

// Fullpath joins Dirname and Filename.
func (fc *FileConfig) Fullpath() string {
	return filepath.Join(fc.Dirname, fc.Filename)
}

// RollingConfig writes to a size-rotated log file.
type RollingConfig struct {
	Dirname  string
	Filename string

	MaxSize    int // megabytes
	MaxBackups int // files
	MaxAge     int // days
}

// CreateConfig builds a Config from flag-style values. A non-rolling file
// path takes precedence over a rolling directory.
func CreateConfig(minLevel string, disableTerminal, formatJSON bool, rollingLogDir, logFile string) *Config {
	var console *ConsoleConfig
	if !disableTerminal {
		console = &ConsoleConfig{AsJSON: formatJSON}
	}

	var file *FileConfig
	var rolling *RollingConfig
	if logFile != "" {
		dirname, filename := filepath.Split(logFile)
		file = &FileConfig{Dirname: dirname, Filename: filename}
	} else if rollingLogDir != "" {
		rolling = &RollingConfig{
			Dirname:    rollingLogDir,
			Filename:   defaultLogFilename,
			MaxSize:    rollingMaxSize,
			MaxBackups: rollingMaxBackups,
			MaxAge:     rollingMaxAge,
		}
	}

	if minLevel == "" {
		minLevel = defaultMinLevel
	}

	return &Config{
		ConsoleConfig: console,
		FileConfig:    file,
		RollingConfig: rolling,
		MinLevel:      minLevel,
	}
}
