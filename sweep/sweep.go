// SPDX-License-Identifier: MIT

// Package sweep evaluates the equivocation of a code over a grid of
// crossover probabilities.
//
// Evaluations at different probabilities are independent; a Runner fans them
// out over a bounded worker pool and returns the points sorted by p. The
// engine itself stays sequential across code positions.
package sweep

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/secrecy/equivocation"
	"github.com/katalvlaran/secrecy/metrics"
	"github.com/katalvlaran/secrecy/syndrome"
)

// ErrEmptyJob indicates a job without probabilities.
var ErrEmptyJob = errors.New("sweep: job has no probabilities")

// Grid returns count points start, start+step, …, each rounded to 12
// decimal places so that e.g. 1/80 + 38·(1/80) prints as 0.4875. With
// includeZero the grid starts with an extra p = 0.
func Grid(start, step float64, count int, includeZero bool) []float64 {
	if count < 0 {
		count = 0
	}
	out := make([]float64, 0, count+1)
	if includeZero {
		out = append(out, 0)
	}
	for i := 0; i < count; i++ {
		p := start + float64(i)*step
		out = append(out, math.Round(p*1e12)/1e12)
	}

	return out
}

// DefaultGrid is 0 followed by p = x/80 for x = 1..39.
func DefaultGrid() []float64 {
	return Grid(1.0/80, 1.0/80, 39, true)
}

// Job is one code evaluated over a probability grid.
type Job struct {
	Name          string
	Table         syndrome.Table
	M             int
	Probabilities []float64
}

// Point is one row of the equivocation curve.
type Point struct {
	P  float64
	Eq float64
}

// Runner evaluates jobs on a bounded pool of goroutines.
type Runner struct {
	log     *zerolog.Logger
	metrics *metrics.Collector
	workers int
	opts    equivocation.Options
}

// NewRunner returns a runner with at most workers concurrent evaluations
// (≤ 0 means one). log and collector may be nil.
func NewRunner(log *zerolog.Logger, collector *metrics.Collector, workers int, opts equivocation.Options) *Runner {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	if workers < 1 {
		workers = 1
	}

	return &Runner{log: log, metrics: collector, workers: workers, opts: opts}
}

// Run evaluates every probability of job. The first failure cancels the
// remaining evaluations of this job and is returned.
func (r *Runner) Run(ctx context.Context, job Job) ([]Point, error) {
	if len(job.Probabilities) == 0 {
		return nil, fmt.Errorf("%s: %w", job.Name, ErrEmptyJob)
	}
	log := r.log.With().Str("code", job.Name).Int("m", job.M).Int("n", len(job.Table)).Logger()
	log.Info().Int("points", len(job.Probabilities)).Msg("Starting sweep")
	started := time.Now()

	points := make([]Point, len(job.Probabilities))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, p := range job.Probabilities {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			eq, err := equivocation.Equivocation(job.Table, job.M, p, &r.opts)
			r.metrics.Observe(job.Name, job.M, time.Since(t0), err)
			if err != nil {
				return fmt.Errorf("%s: p=%v: %w", job.Name, p, err)
			}
			log.Debug().Float64("p", p).Float64("eq", eq).Dur("elapsed", time.Since(t0)).Msg("Evaluated")
			points[i] = Point{P: p, Eq: eq}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Err(err).Msg("Sweep failed")
		return nil, err
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].P < points[j].P })
	log.Info().Dur("elapsed", time.Since(started)).Msg("Sweep finished")

	return points, nil
}

// Result is the outcome of one job in RunAll.
type Result struct {
	Job    string
	Points []Point
	Err    error
}

// RunAll runs jobs one after another, each with the full worker pool. A
// failing job is reported in its Result and does not stop the others;
// only cancellation of ctx does.
func (r *Runner) RunAll(ctx context.Context, jobs []Job) []Result {
	out := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			out = append(out, Result{Job: job.Name, Err: err})
			continue
		}
		points, err := r.Run(ctx, job)
		out = append(out, Result{Job: job.Name, Points: points, Err: err})
	}

	return out
}

// WriteCSV writes the header p,eq and one row per point.
func WriteCSV(w io.Writer, points []Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"p", "eq"}); err != nil {
		return err
	}
	for _, pt := range points {
		row := []string{
			strconv.FormatFloat(pt.P, 'g', -1, 64),
			strconv.FormatFloat(pt.Eq, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
