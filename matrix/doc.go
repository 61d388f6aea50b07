// SPDX-License-Identifier: MIT

// Package matrix provides binary (GF(2)) matrices for linear block codes.
//
// The matrix package provides:
//
//   - BitMatrix: r×c storage where every row is an independently owned
//     bit set of fixed logical width c.
//   - Row operations needed by code construction: swap, XOR one row into
//     another, append a column or a row, drop trailing rows.
//   - GF(2) algebra: Transpose, Mul, MulTransposed (a·bᵗ) and IsZero.
//   - Reduce: in-place Gauss–Jordan elimination to reduced row-echelon form,
//     reporting the pivot columns it used.
//   - Rendering in two forms: String() for debugging and WriteLiteral for the
//     comma-separated "{0,1,...}," rows consumed by external tools.
//
// All arithmetic is mod 2: addition is XOR and multiplication is AND, so a
// dot product is the parity of the popcount of the bitwise AND of two rows.
//
// See the examples in this package and in cyclic for usage patterns.
package matrix
