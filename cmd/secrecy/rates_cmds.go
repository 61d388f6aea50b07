// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/secrecy/bounds"
	"github.com/katalvlaran/secrecy/rates"
)

const (
	minErrorsFlag  = "min-errors"
	minCorrectFlag = "min-correct"
	referenceFlag  = "reference"
	bobSNRFlag     = "bob-snr"
	distanceFlag   = "distance"
	gammaFlag      = "gamma"
	bitsFlag       = "bits"
	lengthFlag     = "length"
	loFlag         = "lo"
	hiFlag         = "hi"
)

func ratesCommand(st *state) *cli.Command {
	gateFlags := []cli.Flag{
		&cli.Int64Flag{Name: minErrorsFlag, Usage: "minimum erroneous trials per point"},
		&cli.Int64Flag{Name: minCorrectFlag, Usage: "minimum correct trials per point"},
		outputFlagDef(),
	}

	return &cli.Command{
		Name:  "rates",
		Usage: "Turn simulation records into error-rate curves",
		Subcommands: []*cli.Command{
			{
				Name:      "ber",
				Usage:     "Bit error rate of every record",
				ArgsUsage: "[records.csv]",
				Flags:     []cli.Flag{outputFlagDef()},
				Action: func(c *cli.Context) error {
					recs, err := readRecords(c)
					if err != nil {
						return err
					}
					return writeCurve(c, rates.BERCurve(recs))
				},
			},
			{
				Name:      "bler",
				Usage:     "Block error rate of the records passing the sample gate",
				ArgsUsage: "[records.csv]",
				Flags:     gateFlags,
				Action: func(c *cli.Context) error {
					recs, err := readRecords(c)
					if err != nil {
						return err
					}
					gate := st.cfg.Gate
					if c.IsSet(minErrorsFlag) {
						gate.MinErrors = c.Int64(minErrorsFlag)
					}
					if c.IsSet(minCorrectFlag) {
						gate.MinCorrect = c.Int64(minCorrectFlag)
					}
					curve := rates.BLERCurve(recs, gate)
					if dropped := len(recs) - len(curve.Points); dropped > 0 {
						st.log.Info().Int("dropped", dropped).Int64("min_errors", gate.MinErrors).
							Int64("min_correct", gate.MinCorrect).Msg("Records below sample gate")
					}
					return writeCurve(c, curve)
				},
			},
			{
				Name:      "shift",
				Usage:     "Map every x to reference − x",
				ArgsUsage: "[curve.csv]",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: referenceFlag, Usage: "receiver operating SNR in dB", Required: true},
					outputFlagDef(),
				},
				Action: func(c *cli.Context) error {
					curve, err := readCurve(c)
					if err != nil {
						return err
					}
					return writeCurve(c, curve.Shift(c.Float64(referenceFlag)))
				},
			},
			{
				Name:      "sort",
				Usage:     "Sort a curve ascending by x",
				ArgsUsage: "[curve.csv]",
				Flags:     []cli.Flag{outputFlagDef()},
				Action: func(c *cli.Context) error {
					curve, err := readCurve(c)
					if err != nil {
						return err
					}
					curve.Sort()
					return writeCurve(c, curve)
				},
			},
			{
				Name:      "pathloss",
				Usage:     "Map eavesdropper SNR to distance under log-distance path loss",
				ArgsUsage: "[curve.csv]",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: bobSNRFlag, Usage: "receiver SNR in dB", Required: true},
					&cli.Float64Flag{Name: distanceFlag, Usage: "receiver distance", Value: 10},
					&cli.Float64Flag{Name: gammaFlag, Usage: "path-loss exponent", Value: 3},
					outputFlagDef(),
				},
				Action: func(c *cli.Context) error {
					curve, err := readCurve(c)
					if err != nil {
						return err
					}
					bob, d, gamma := c.Float64(bobSNRFlag), c.Float64(distanceFlag), c.Float64(gammaFlag)
					mapped, err := curve.MapX("d", func(snr float64) (float64, error) {
						return bounds.EveDistance(bob, d, gamma, snr)
					})
					if err != nil {
						return err
					}
					return writeCurve(c, mapped)
				},
			},
		},
	}
}

func boundsCommand() *cli.Command {
	return &cli.Command{
		Name:  "bounds",
		Usage: "Reference curves: Fano bound and uncoded BPSK",
		Subcommands: []*cli.Command{
			{
				Name:      "fano",
				Usage:     "Upper bound on residual entropy from a (snr, block error) curve",
				ArgsUsage: "[bler.csv]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: bitsFlag, Usage: "message length in bits", Required: true},
					outputFlagDef(),
				},
				Action: func(c *cli.Context) error {
					curve, err := readCurve(c)
					if err != nil {
						return err
					}
					bits := c.Int(bitsFlag)
					out := rates.Curve{XLabel: curve.XLabel, YLabel: "Hmax", Points: make([]rates.Point, len(curve.Points))}
					for i, p := range curve.Points {
						h, err := bounds.FanoBound(p.Y, bits)
						if err != nil {
							return errors.Wrapf(err, "%s=%v", curve.XLabel, p.X)
						}
						out.Points[i] = rates.Point{X: p.X, Y: h}
					}
					return writeCurve(c, out)
				},
			},
			{
				Name:  "uncoded",
				Usage: "Uncoded BPSK over AWGN: snr,ber,bler,H,d",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: lengthFlag, Aliases: []string{"l"}, Usage: "block length", Value: 128},
					&cli.Float64Flag{Name: loFlag, Usage: "first SNR in dB", Value: -15},
					&cli.Float64Flag{Name: hiFlag, Usage: "SNR bound in dB (exclusive)", Value: 15},
					&cli.Float64Flag{Name: stepFlag, Usage: "SNR spacing in dB", Value: 0.5},
					outputFlagDef(),
				},
				Action: uncodedAction,
			},
		},
	}
}

func uncodedAction(c *cli.Context) error {
	l := c.Int(lengthFlag)
	w, closeOut, err := openOutput(c)
	if err != nil {
		return err
	}
	defer closeOut()

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"snr", "ber", "bler", "H", "d"})
	for _, snr := range bounds.Grid(c.Float64(loFlag), c.Float64(hiFlag), c.Float64(stepFlag)) {
		bler, err := bounds.UncodedBLER(snr, l)
		if err != nil {
			return err
		}
		h, err := bounds.UncodedEquivocation(snr, l)
		if err != nil {
			return err
		}
		_ = cw.Write([]string{
			formatFloat(snr),
			formatFloat(bounds.UncodedBER(snr)),
			formatFloat(bler),
			formatFloat(h),
			formatFloat(h / float64(l)),
		})
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func readRecords(c *cli.Context) ([]rates.Record, error) {
	r, closeIn, err := openInput(c)
	if err != nil {
		return nil, err
	}
	defer closeIn()

	recs, err := rates.ParseRecords(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading records")
	}

	return recs, nil
}

func readCurve(c *cli.Context) (rates.Curve, error) {
	r, closeIn, err := openInput(c)
	if err != nil {
		return rates.Curve{}, err
	}
	defer closeIn()

	curve, err := rates.ReadCurve(r)
	if err != nil {
		return rates.Curve{}, errors.Wrap(err, "reading curve")
	}

	return curve, nil
}

func writeCurve(c *cli.Context, curve rates.Curve) error {
	w, closeOut, err := openOutput(c)
	if err != nil {
		return err
	}
	defer closeOut()

	return curve.WriteCSV(w)
}
