// SPDX-License-Identifier: MIT

// Package syndrome projects a parity-check matrix onto its per-position
// syndrome contributions.
//
// Bit-order convention:
//
//	Column j of H (m rows) becomes the integer
//	  table[j] = Σ_r H[r][j] · 2^(m−1−r)
//	i.e. H's TOPMOST row is the MOST significant bit. Systematic H = [Pᵀ | I]
//	therefore ends in the descending powers 2^(m−1), …, 2, 1.
//
// A single error at position j produces syndrome table[j]; an error pattern
// e produces the XOR of table[j] over the set positions of e.
package syndrome

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/secrecy/cyclic"
	"github.com/katalvlaran/secrecy/matrix"
)

// MaxWidth is the largest syndrome width representable in a Table entry.
const MaxWidth = 63

var (
	// ErrWidthTooLarge indicates an H with more than MaxWidth rows.
	ErrWidthTooLarge = errors.New("syndrome: width exceeds 63 bits")

	// ErrSyndromeOverflow indicates a table entry ≥ 2^m.
	ErrSyndromeOverflow = errors.New("syndrome: table entry does not fit the width")

	// ErrInvalidWidth indicates m < 1.
	ErrInvalidWidth = errors.New("syndrome: width must be positive")

	// ErrLengthMismatch indicates an error pattern whose length differs from the table.
	ErrLengthMismatch = errors.New("syndrome: error pattern length mismatch")
)

// Table holds one syndrome contribution per code position.
type Table []uint64

// Extract packs every column of H into an integer, topmost row first.
// It returns the table and the width m = H.Rows().
func Extract(H *matrix.BitMatrix) (Table, int, error) {
	if err := matrix.ValidateNotNil(H); err != nil {
		return nil, 0, fmt.Errorf("Extract: %w", err)
	}
	m, n := H.Shape()
	if m > MaxWidth {
		return nil, 0, fmt.Errorf("Extract: m=%d: %w", m, ErrWidthTooLarge)
	}
	t := make(Table, n)
	for j := 0; j < n; j++ {
		col, err := H.Column(j)
		if err != nil {
			return nil, 0, fmt.Errorf("Extract: %w", err)
		}
		var v uint64
		for _, b := range col {
			v = v<<1 | uint64(b)
		}
		t[j] = v
	}

	return t, m, nil
}

// FromCode extracts the table of a built code's parity-check matrix.
func FromCode(c *cyclic.Code) (Table, int, error) {
	if c == nil {
		return nil, 0, fmt.Errorf("FromCode: %w", matrix.ErrNilMatrix)
	}

	return Extract(c.H)
}

// Validate checks that 1 ≤ m ≤ MaxWidth and every entry is below 2^m.
func (t Table) Validate(m int) error {
	if m < 1 {
		return fmt.Errorf("Validate: m=%d: %w", m, ErrInvalidWidth)
	}
	if m > MaxWidth {
		return fmt.Errorf("Validate: m=%d: %w", m, ErrWidthTooLarge)
	}
	limit := uint64(1) << uint(m)
	for i, v := range t {
		if v >= limit {
			return fmt.Errorf("Validate: table[%d]=%d, m=%d: %w", i, v, m, ErrSyndromeOverflow)
		}
	}

	return nil
}

// Clone returns an independent copy.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)

	return out
}

// XorAll returns the XOR of every entry: the syndrome of the all-ones error.
func (t Table) XorAll() uint64 {
	var s uint64
	for _, v := range t {
		s ^= v
	}

	return s
}

// Syndrome returns the syndrome of error pattern e (one 0/1 entry per position).
func (t Table) Syndrome(e []uint8) (uint64, error) {
	if len(e) != len(t) {
		return 0, fmt.Errorf("Syndrome: len(e)=%d, n=%d: %w", len(e), len(t), ErrLengthMismatch)
	}
	var s uint64
	for i, b := range e {
		if b&1 == 1 {
			s ^= t[i]
		}
	}

	return s, nil
}

// Reversed returns the entries in reverse position order. Column order does
// not change the syndrome distribution; tables published in the opposite
// order compare equal after reversal.
func (t Table) Reversed() Table {
	out := make(Table, len(t))
	for i, v := range t {
		out[len(t)-1-i] = v
	}

	return out
}
