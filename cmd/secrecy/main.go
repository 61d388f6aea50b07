// SPDX-License-Identifier: MIT

// Command secrecy builds cyclic codes and evaluates their syndrome
// equivocation, error-rate curves and reference bounds.
package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/katalvlaran/secrecy/config"
	"github.com/katalvlaran/secrecy/logger"
	"github.com/katalvlaran/secrecy/metrics"
)

var (
	Version   = "DEV"
	BuildTime = "unknown"
)

const (
	configFlag       = "config"
	logLevelFlag     = "loglevel"
	logFileFlag      = "logfile"
	logDirectoryFlag = "log-directory"
	logJSONFlag      = "log-json"
	workersFlag      = "workers"
	metricsFlag      = "metrics"
	outputFlag       = "output"
)

// state is shared by all commands of one invocation.
type state struct {
	cfg       config.Config
	log       *zerolog.Logger
	collector *metrics.Collector
	shutdown  []func()
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	st := &state{}
	nop := zerolog.Nop()
	st.log = &nop

	app := &cli.App{
		Name:      "secrecy",
		Usage:     "syndrome equivocation of binary cyclic codes",
		UsageText: "secrecy [global options] command [command options] [arguments...]",
		Version:   fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Flags:     globalFlags(),
		Before:    st.before,
		After:     st.after,
		Commands: []*cli.Command{
			codesCommand(),
			matrixCommand(st),
			tableCommand(st),
			equivocationCommand(st),
			ratesCommand(st),
			boundsCommand(),
		},
	}

	return app
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Usage:   "YAML configuration file",
			Value:   config.DefaultPath,
			EnvVars: []string{"SECRECY_CONFIG"},
		},
		&cli.StringFlag{
			Name:    logLevelFlag,
			Usage:   "log level: trace, debug, info, warn, error, fatal",
			EnvVars: []string{"SECRECY_LOGLEVEL"},
		},
		&cli.StringFlag{
			Name:  logFileFlag,
			Usage: "append logs to this file",
		},
		&cli.StringFlag{
			Name:  logDirectoryFlag,
			Usage: "write size-rotated logs into this directory",
		},
		&cli.BoolFlag{
			Name:  logJSONFlag,
			Usage: "log to the console as JSON",
		},
		&cli.IntFlag{
			Name:  workersFlag,
			Usage: "concurrent evaluations (0: one per CPU)",
		},
		&cli.StringFlag{
			Name:  metricsFlag,
			Usage: "serve Prometheus metrics on this address, e.g. localhost:9464",
		},
	}
}

func (st *state) before(c *cli.Context) error {
	var err error
	if c.IsSet(configFlag) {
		st.cfg, err = config.Load(c.String(configFlag))
	} else {
		st.cfg, err = config.LoadOrDefault(c.String(configFlag))
	}
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	st.applyFlags(c)

	log, err := logger.Create(logger.CreateConfig(
		st.cfg.Logging.Level,
		false,
		st.cfg.Logging.JSON,
		st.cfg.Logging.Directory,
		st.cfg.Logging.File,
	))
	if err != nil {
		log = logger.Fallback(err)
	}
	st.log = log
	if src := st.cfg.Source(); src != "" {
		st.log.Debug().Str("path", src).Msg("Loaded configuration")
	}

	undo, err := maxprocs.Set(maxprocs.Logger(st.log.Printf))
	if err != nil {
		st.log.Warn().Err(err).Msg("Failed to set GOMAXPROCS")
	}
	st.shutdown = append(st.shutdown, undo)

	return st.startMetrics(c.Context)
}

func (st *state) applyFlags(c *cli.Context) {
	if c.IsSet(logLevelFlag) {
		st.cfg.Logging.Level = c.String(logLevelFlag)
	}
	if c.IsSet(logFileFlag) {
		st.cfg.Logging.File = c.String(logFileFlag)
	}
	if c.IsSet(logDirectoryFlag) {
		st.cfg.Logging.Directory = c.String(logDirectoryFlag)
	}
	if c.IsSet(logJSONFlag) {
		st.cfg.Logging.JSON = c.Bool(logJSONFlag)
	}
	if c.IsSet(workersFlag) {
		st.cfg.Workers = c.Int(workersFlag)
	}
	if c.IsSet(metricsFlag) {
		st.cfg.Metrics.Address = c.String(metricsFlag)
	}
}

func (st *state) startMetrics(parent context.Context) error {
	if st.cfg.Metrics.Address == "" {
		return nil
	}
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return errors.Wrap(err, "registering metrics")
	}
	l, err := net.Listen("tcp", st.cfg.Metrics.Address)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", st.cfg.Metrics.Address)
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = metrics.Serve(ctx, l, reg, st.log)
	}()
	st.collector = collector
	st.shutdown = append(st.shutdown, func() {
		cancel()
		<-done
	})

	return nil
}

func (st *state) after(*cli.Context) error {
	for i := len(st.shutdown) - 1; i >= 0; i-- {
		st.shutdown[i]()
	}
	st.shutdown = nil

	return nil
}

func (st *state) workers() int {
	if st.cfg.Workers > 0 {
		return st.cfg.Workers
	}

	return st.cfg.EngineOptions().Parallelism
}
