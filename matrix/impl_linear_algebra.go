// SPDX-License-Identifier: MIT
// Package matrix provides GF(2) operations on BitMatrix values: transpose,
// products and zero tests. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Notes:
//   - Inner products are computed as popcount(rowA AND rowB) mod 2, so the
//     hot loops run word-parallel inside the bitset library.
//   - Inputs are never mutated; every result is freshly allocated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul           = "Mul"
	opMulTransposed = "MulTransposed"
	opTranspose     = "Transpose"
	opIsZero        = "IsZero"
	opReduce        = "Reduce"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m *BitMatrix) (*BitMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := newBitMatrixZeroOK(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		row := m.rows[i]
		for j, ok := row.NextSet(0); ok && j < uint(m.c); j, ok = row.NextSet(j + 1) {
			out.rows[j].Set(uint(i))
		}
	}

	return out, nil
}

// MulTransposed returns a·bᵀ over GF(2) without materialising bᵀ.
// Cell (i, j) is the parity of |a.row(i) ∧ b.row(j)|.
//
// Inputs:
//   - a: r×c, b: s×c (same width).
//
// Returns:
//   - r×s result.
//
// Complexity:
//   - Time O(r*s*c/64), Space O(r*s/64).
//
// AI-Hints:
//   - G·Hᵀ == 0 is the defining relation of a code pair; call this with
//     (G, H) and check IsZero.
func MulTransposed(a, b *BitMatrix) (*BitMatrix, error) {
	if err := ValidateSameWidth(a, b); err != nil {
		return nil, matrixErrorf(opMulTransposed, err)
	}
	out, err := newBitMatrixZeroOK(a.r, b.r)
	if err != nil {
		return nil, matrixErrorf(opMulTransposed, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.r; j++ {
			if a.rows[i].IntersectionCardinality(b.rows[j])&1 == 1 {
				out.rows[i].Set(uint(j))
			}
		}
	}

	return out, nil
}

// Mul returns the product a·b over GF(2).
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: transpose b once and delegate to MulTransposed.
//
// Complexity: O(r*n*c/64) plus the O(n*c) transpose.
func Mul(a, b *BitMatrix) (*BitMatrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := MulTransposed(a, bt)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// IsZero reports whether every cell of m is 0.
func IsZero(m *BitMatrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsZero, err)
	}
	for _, row := range m.rows {
		if row.Any() {
			return false, nil
		}
	}

	return true, nil
}
