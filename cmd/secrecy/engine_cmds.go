// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/secrecy/matrix"
	"github.com/katalvlaran/secrecy/sweep"
)

const (
	plainFlag       = "plain"
	probFlag        = "p"
	startFlag       = "start"
	stepFlag        = "step"
	countFlag       = "count"
	includeZeroFlag = "include-zero"
	rateFlag        = "rate"
)

func matrixCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "matrix",
		Usage: "Print the systematic generator and parity-check matrices",
		Flags: append(codeFlags(),
			&cli.BoolFlag{Name: plainFlag, Usage: "render rows as [b, b, ...] instead of {b,b,...},"},
			outputFlagDef(),
		),
		Action: func(c *cli.Context) error {
			code, name, err := st.buildFromFlags(c)
			if err != nil {
				return err
			}
			w, closeOut, err := openOutput(c)
			if err != nil {
				return err
			}
			defer closeOut()

			st.log.Info().Str("code", name).Int("n", code.N).Int("k", code.K).Msg("Built code")
			for _, part := range []struct {
				label string
				m     *matrix.BitMatrix
			}{{"G", code.G}, {"H", code.H}} {
				fmt.Fprintf(w, "%s (%s):\n", part.label, name)
				if err := writeMatrix(w, part.m, c.Bool(plainFlag)); err != nil {
					return errors.Wrap(err, "writing matrix")
				}
			}
			return nil
		},
	}
}

func writeMatrix(w io.Writer, m *matrix.BitMatrix, plain bool) error {
	if plain {
		_, err := io.WriteString(w, m.String())
		return err
	}

	return m.WriteLiteral(w)
}

func tableCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "Print the per-position syndrome table",
		Flags: append(codeFlags(), outputFlagDef()),
		Action: func(c *cli.Context) error {
			t, m, name, err := st.tableFromFlags(c)
			if err != nil {
				return err
			}
			w, closeOut, err := openOutput(c)
			if err != nil {
				return err
			}
			defer closeOut()

			vals := make([]string, len(t))
			for i, v := range t {
				vals[i] = fmt.Sprint(v)
			}
			fmt.Fprintf(w, "# %s n=%d m=%d\n[%s]\n", name, len(t), m, strings.Join(vals, ", "))
			return nil
		},
	}
}

func equivocationCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:    "equivocation",
		Aliases: []string{"eq"},
		Usage:   "Sweep the crossover probability and print p,eq",
		Flags: append(codeFlags(),
			&cli.Float64SliceFlag{Name: probFlag, Usage: "explicit probabilities (overrides the grid)"},
			&cli.Float64Flag{Name: startFlag, Usage: "first grid point"},
			&cli.Float64Flag{Name: stepFlag, Usage: "grid spacing"},
			&cli.IntFlag{Name: countFlag, Usage: "number of grid points"},
			&cli.BoolFlag{Name: includeZeroFlag, Usage: "prepend p = 0"},
			&cli.BoolFlag{Name: rateFlag, Usage: "print eq/m instead of eq"},
			outputFlagDef(),
		),
		Action: func(c *cli.Context) error {
			t, m, name, err := st.tableFromFlags(c)
			if err != nil {
				return err
			}
			probs := st.gridFromFlags(c)

			runner := sweep.NewRunner(st.log, st.collector, st.workers(), st.cfg.EngineOptions())
			points, err := runner.Run(c.Context, sweep.Job{Name: name, Table: t, M: m, Probabilities: probs})
			if err != nil {
				return err
			}
			if c.Bool(rateFlag) {
				for i := range points {
					points[i].Eq /= float64(m)
				}
			}

			w, closeOut, err := openOutput(c)
			if err != nil {
				return err
			}
			defer closeOut()

			return sweep.WriteCSV(w, points)
		},
	}
}

func (st *state) gridFromFlags(c *cli.Context) []float64 {
	if ps := c.Float64Slice(probFlag); len(ps) > 0 {
		return ps
	}
	g := st.cfg.Sweep
	if c.IsSet(startFlag) {
		g.Start = c.Float64(startFlag)
	}
	if c.IsSet(stepFlag) {
		g.Step = c.Float64(stepFlag)
	}
	if c.IsSet(countFlag) {
		g.Count = c.Int(countFlag)
	}
	if c.IsSet(includeZeroFlag) {
		g.IncludeZero = c.Bool(includeZeroFlag)
	}

	return sweep.Grid(g.Start, g.Step, g.Count, g.IncludeZero)
}
