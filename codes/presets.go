// SPDX-License-Identifier: MIT

package codes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/secrecy/cyclic"
	"github.com/katalvlaran/secrecy/gf2"
	"github.com/katalvlaran/secrecy/syndrome"
)

// ErrUnknownCode indicates a name that is neither a preset nor a fixture.
var ErrUnknownCode = errors.New("codes: unknown code")

// Preset describes a cyclic code by its construction parameters.
type Preset struct {
	Name    string
	N, K    int    // base cyclic code
	Octal   string // generator polynomial
	Extend  bool
	Subcode int
}

var presets = []Preset{
	{Name: "hamming-7-4", N: 7, K: 4, Octal: "13"},
	{Name: "bch-32-16", N: 31, K: 16, Octal: "107657", Extend: true},
	{Name: "bch-64-32", N: 63, K: 36, Octal: "1033500423", Extend: true, Subcode: 4},
	{Name: "bch-128-64", N: 127, K: 64, Octal: "1206534025570773100045", Extend: true},
	{Name: "bch-256-128", N: 255, K: 131, Octal: "215713331471510151261250277442142024165471", Extend: true, Subcode: 3},
}

// Params parses the generator and returns the builder parameters.
func (p Preset) Params() (cyclic.Params, error) {
	g, err := gf2.ParseOctal(p.Octal)
	if err != nil {
		return cyclic.Params{}, fmt.Errorf("%s: %w", p.Name, err)
	}

	return cyclic.Params{N: p.N, K: p.K, Generator: g}, nil
}

// Options returns the builder options matching Extend and Subcode.
func (p Preset) Options() []cyclic.Option {
	var opts []cyclic.Option
	if p.Extend {
		opts = append(opts, cyclic.WithExtension())
	}
	if p.Subcode > 0 {
		opts = append(opts, cyclic.WithSubcode(p.Subcode))
	}

	return opts
}

// Build constructs the code. Extra options (e.g. cyclic.WithLogger) are
// applied after the preset's own.
func (p Preset) Build(extra ...cyclic.Option) (*cyclic.Code, error) {
	params, err := p.Params()
	if err != nil {
		return nil, err
	}
	code, err := cyclic.Build(params, append(p.Options(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}

	return code, nil
}

// Table builds the code and extracts its syndrome table.
func (p Preset) Table(extra ...cyclic.Option) (syndrome.Table, int, error) {
	code, err := p.Build(extra...)
	if err != nil {
		return nil, 0, err
	}
	t, m, err := syndrome.Extract(code.H)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", p.Name, err)
	}

	return t, m, nil
}

// Presets returns all presets in definition order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownCode)
}

// Lookup resolves name to a syndrome table: a fixture is returned verbatim,
// a preset is built and extracted.
func Lookup(name string) (syndrome.Table, int, error) {
	if f, ok := fixtures[name]; ok {
		return f.table.Clone(), f.m, nil
	}
	p, err := LookupPreset(name)
	if err != nil {
		return nil, 0, err
	}

	return p.Table()
}

// Names lists every preset and fixture name, sorted.
func Names() []string {
	names := make([]string, 0, len(presets)+len(fixtures))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
