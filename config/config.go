// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the command-line tool.
//
// Every field has a default (see Default); a file only needs the keys it
// overrides. Unknown keys are rejected.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/secrecy/equivocation"
	"github.com/katalvlaran/secrecy/rates"
)

// DefaultPath is probed when no --config flag is given.
const DefaultPath = "~/.secrecy/config.yaml"

// ErrNoConfigFile indicates that the requested file does not exist.
var ErrNoConfigFile = errors.New("config: no configuration file found")

// Config is the root of the configuration file.
type Config struct {
	Logging Logging    `yaml:"logging"`
	Workers int        `yaml:"workers"`
	Engine  Engine     `yaml:"engine"`
	Sweep   Sweep      `yaml:"sweep"`
	Gate    rates.Gate `yaml:"gate"`
	Metrics Metrics    `yaml:"metrics"`

	source string
}

// Logging mirrors the logger flags.
type Logging struct {
	Level     string `yaml:"level"`
	File      string `yaml:"file"`
	Directory string `yaml:"directory"`
	JSON      bool   `yaml:"json"`
}

// Engine bounds one equivocation evaluation.
type Engine struct {
	MaxStates         uint64  `yaml:"max_states"`
	Parallelism       int     `yaml:"parallelism"`
	ParallelThreshold int     `yaml:"parallel_threshold"`
	Tolerance         float64 `yaml:"tolerance"`
}

// Sweep describes the default probability grid.
type Sweep struct {
	Start       float64 `yaml:"start"`
	Step        float64 `yaml:"step"`
	Count       int     `yaml:"count"`
	IncludeZero bool    `yaml:"include_zero"`
}

// Metrics configures the Prometheus endpoint; an empty address disables it.
type Metrics struct {
	Address string `yaml:"address"`
}

// Default returns the built-in configuration: p = x/80 for x = 1..39 with a
// leading zero row, the 100/100 sample gate, and engine defaults.
func Default() Config {
	return Config{
		Logging: Logging{Level: "info"},
		Engine: Engine{
			MaxStates:         equivocation.DefaultMaxStates,
			ParallelThreshold: equivocation.DefaultParallelThreshold,
			Tolerance:         equivocation.DefaultTolerance,
		},
		Sweep: Sweep{Start: 1.0 / 80, Step: 1.0 / 80, Count: 39, IncludeZero: true},
		Gate:  rates.DefaultGate(),
	}
}

// Source returns the file the configuration was read from, if any.
func (c Config) Source() string { return c.source }

// EngineOptions converts the engine section.
func (c Config) EngineOptions() equivocation.Options {
	o := equivocation.DefaultOptions()
	if c.Engine.MaxStates != 0 {
		o.MaxStates = c.Engine.MaxStates
	}
	if c.Engine.Parallelism > 0 {
		o.Parallelism = c.Engine.Parallelism
	}
	if c.Engine.ParallelThreshold > 0 {
		o.ParallelThreshold = c.Engine.ParallelThreshold
	}
	if c.Engine.Tolerance > 0 {
		o.Tolerance = c.Engine.Tolerance
	}

	return o
}

// Validate rejects values no component can run with.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return errors.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.Sweep.Count < 0 || c.Sweep.Step < 0 {
		return errors.Errorf("sweep count and step must be non-negative, got %d and %v", c.Sweep.Count, c.Sweep.Step)
	}
	if c.Sweep.Start < 0 || c.Sweep.Start+c.Sweep.Step*float64(max(c.Sweep.Count-1, 0)) > 1 {
		return errors.New("sweep grid must lie within [0, 1]")
	}
	if c.Gate.MinErrors < 0 || c.Gate.MinCorrect < 0 {
		return errors.New("gate minimums must be non-negative")
	}

	return nil
}

// Decode reads YAML from r on top of Default. An empty document yields the
// defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "error parsing YAML")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// Load reads the file at path after expanding a leading ~. A missing file
// yields ErrNoConfigFile.
func Load(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot expand %s", path)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, ErrNoConfigFile
		}
		return Config{}, errors.Wrapf(err, "cannot read %s", expanded)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Wrapf(err, "config file at %s", expanded)
	}
	cfg.source = expanded

	return cfg, nil
}

// LoadOrDefault is Load where a missing file is not an error.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNoConfigFile) {
		return Default(), nil
	}

	return cfg, err
}
