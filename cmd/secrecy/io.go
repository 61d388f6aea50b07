// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func outputFlagDef() cli.Flag {
	return &cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Usage:   "write to this file instead of stdout",
	}
}

// openOutput returns --output or the app writer.
func openOutput(c *cli.Context) (io.Writer, func() error, error) {
	path := c.String(outputFlag)
	if path == "" {
		return c.App.Writer, func() error { return nil }, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot expand %s", path)
	}
	f, err := os.Create(expanded)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating output")
	}

	return f, f.Close, nil
}

// openInput returns the file named by the first argument, or stdin when the
// argument is absent or "-".
func openInput(c *cli.Context) (io.Reader, func() error, error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		r := c.App.Reader
		if r == nil {
			r = os.Stdin
		}
		return r, func() error { return nil }, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot expand %s", path)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input")
	}

	return f, f.Close, nil
}
