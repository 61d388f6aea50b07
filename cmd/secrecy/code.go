// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/secrecy/codes"
	"github.com/katalvlaran/secrecy/cyclic"
	"github.com/katalvlaran/secrecy/syndrome"
)

const (
	codeFlag      = "code"
	nFlag         = "n"
	kFlag         = "k"
	generatorFlag = "generator"
	extendFlag    = "extend"
	subcodeFlag   = "subcode"
)

func codeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    codeFlag,
			Aliases: []string{"c"},
			Usage:   "preset or fixture name (see 'secrecy codes')",
		},
		&cli.IntFlag{Name: nFlag, Usage: "length of the base cyclic code"},
		&cli.IntFlag{Name: kFlag, Usage: "dimension of the base cyclic code"},
		&cli.StringFlag{
			Name:    generatorFlag,
			Aliases: []string{"g"},
			Usage:   "generator polynomial in octal, highest degree first",
		},
		&cli.BoolFlag{Name: extendFlag, Usage: "append an overall parity bit"},
		&cli.IntFlag{Name: subcodeFlag, Usage: "drop this many rows of G"},
	}
}

// presetFromFlags resolves --code, or assembles an ad-hoc preset from
// --n/--k/--generator.
func presetFromFlags(c *cli.Context) (codes.Preset, error) {
	if name := c.String(codeFlag); name != "" {
		return codes.LookupPreset(name)
	}
	if !c.IsSet(nFlag) || !c.IsSet(kFlag) || !c.IsSet(generatorFlag) {
		return codes.Preset{}, errors.New("either --code or all of --n, --k and --generator are required")
	}

	return codes.Preset{
		Name:    fmt.Sprintf("cyclic-%d-%d-%s", c.Int(nFlag), c.Int(kFlag), c.String(generatorFlag)),
		N:       c.Int(nFlag),
		K:       c.Int(kFlag),
		Octal:   c.String(generatorFlag),
		Extend:  c.Bool(extendFlag),
		Subcode: c.Int(subcodeFlag),
	}, nil
}

func (st *state) buildFromFlags(c *cli.Context) (*cyclic.Code, string, error) {
	p, err := presetFromFlags(c)
	if err != nil {
		return nil, "", err
	}
	code, err := p.Build(cyclic.WithLogger(st.log.With().Str("code", p.Name).Logger()))
	if err != nil {
		return nil, "", errors.Wrap(err, "building code")
	}

	return code, p.Name, nil
}

// tableFromFlags also accepts fixture names, which carry no matrices.
func (st *state) tableFromFlags(c *cli.Context) (syndrome.Table, int, string, error) {
	if name := c.String(codeFlag); name != "" {
		if _, err := codes.LookupPreset(name); err != nil {
			t, m, err := codes.Lookup(name)
			if err != nil {
				return nil, 0, "", err
			}
			return t, m, name, nil
		}
	}
	code, name, err := st.buildFromFlags(c)
	if err != nil {
		return nil, 0, "", err
	}
	t, m, err := syndrome.Extract(code.H)
	if err != nil {
		return nil, 0, "", errors.Wrapf(err, "%s", name)
	}

	return t, m, name, nil
}

func codesCommand() *cli.Command {
	return &cli.Command{
		Name:  "codes",
		Usage: "List code presets and fixtures",
		Action: func(c *cli.Context) error {
			w := c.App.Writer
			for _, name := range codes.Names() {
				p, err := codes.LookupPreset(name)
				if err != nil {
					t, m, err := codes.Lookup(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%-20s fixture  n=%d m=%d\n", name, len(t), m)
					continue
				}
				fmt.Fprintf(w, "%-20s preset   base=(%d,%d) g=%s extend=%t subcode=%d\n",
					name, p.N, p.K, p.Octal, p.Extend, p.Subcode)
			}
			return nil
		},
	}
}
