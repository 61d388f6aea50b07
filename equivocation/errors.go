// SPDX-License-Identifier: MIT

package equivocation

import (
	"errors"

	"github.com/katalvlaran/secrecy/syndrome"
)

var (
	// ErrInvalidProbability indicates p outside [0, 1] or NaN.
	ErrInvalidProbability = errors.New("equivocation: crossover probability must be in [0, 1]")

	// ErrSyndromeOverflow indicates a table entry ≥ 2^m.
	ErrSyndromeOverflow = syndrome.ErrSyndromeOverflow

	// ErrInvalidWidth indicates m < 1 or m > syndrome.MaxWidth.
	ErrInvalidWidth = errors.New("equivocation: invalid syndrome width")

	// ErrResourceExhausted indicates that 2^m exceeds Options.MaxStates.
	ErrResourceExhausted = errors.New("equivocation: distribution exceeds configured state ceiling")

	// ErrNotNormalized indicates that the final distribution does not sum to
	// 1 within Options.Tolerance.
	ErrNotNormalized = errors.New("equivocation: distribution does not sum to 1")
)
