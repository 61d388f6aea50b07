// SPDX-License-Identifier: MIT

// Package matrix - BitMatrix storage (row-owned bit sets) & safe accessors.
//
// Purpose:
//   - Store each row as its own *bitset.BitSet so that row swaps are pointer
//     swaps and row XOR is a word-parallel symmetric difference.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Invariants:
//   - len(rows) == r; every row has logical width c. Bits at index ≥ c are
//     never set; all mutators keep that true.
//
// Complexity quicksheet:
//   - NewBitMatrix: O(r*c/64); At/Set: O(1); Clone: O(r*c/64); XorRow: O(c/64).

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxColumn    = "Column"
	ctxSwap      = "SwapRows"
	ctxXor       = "XorRow"
	ctxAppendCol = "AppendColumn"
	ctxAppendRow = "AppendRow"
	ctxTruncate  = "Truncate"
	ctxFromRows  = "FromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_litRowOpen  = "{"
	_litRowClose = "},\n"
	_litSep      = ","
)

// bitErrorf wraps an error with a uniform BitMatrix context and callsite indices.
func bitErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("BitMatrix.%s(%d,%d): %w", method, row, col, err)
}

// BitMatrix is a dense binary matrix with row-owned storage.
//   - r,c hold dimensions (rows, cols).
//   - rows[i] holds row i; bit j is cell (i, j).
type BitMatrix struct {
	r, c int
	rows []*bitset.BitSet
}

var _ fmt.Stringer = (*BitMatrix)(nil)

// NewBitMatrix creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c/64), Space O(r*c/64).
func NewBitMatrix(rows, cols int) (*BitMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newBitMatrixZeroOK(rows, cols)
}

// newBitMatrixZeroOK allows rows==0 or cols==0 for internal builders.
func newBitMatrixZeroOK(rows, cols int) (*BitMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	m := &BitMatrix{r: rows, c: cols, rows: make([]*bitset.BitSet, rows)}
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(cols))
	}

	return m, nil
}

// FromRows builds a BitMatrix from a rectangular slice of 0/1 rows.
// The input is copied; later changes to it do not affect the matrix.
func FromRows(data [][]uint8) (*BitMatrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	cols := len(data[0])
	m, err := newBitMatrixZeroOK(len(data), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, bitErrorf(ctxFromRows, i, len(row), ErrRaggedRows)
		}
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				m.rows[i].Set(uint(j))
			default:
				return nil, bitErrorf(ctxFromRows, i, j, ErrNonBinary)
			}
		}
	}

	return m, nil
}

// Identity returns I_n.
func Identity(n int) (*BitMatrix, error) {
	m, err := NewBitMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(uint(i))
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *BitMatrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *BitMatrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *BitMatrix) Shape() (rows, cols int) { return m.r, m.c }

// checkIndex validates (row, col) against the current shape.
func (m *BitMatrix) checkIndex(method string, row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return bitErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// At returns the bit at (row, col).
func (m *BitMatrix) At(row, col int) (uint8, error) {
	if err := m.checkIndex(ctxAt, row, col); err != nil {
		return 0, err
	}
	if m.rows[row].Test(uint(col)) {
		return 1, nil
	}

	return 0, nil
}

// Set writes v (0 or 1) at (row, col).
func (m *BitMatrix) Set(row, col int, v uint8) error {
	if err := m.checkIndex(ctxSet, row, col); err != nil {
		return err
	}
	if v > 1 {
		return bitErrorf(ctxSet, row, col, ErrNonBinary)
	}
	m.rows[row].SetTo(uint(col), v == 1)

	return nil
}

// bit is the unchecked accessor used by kernels after shape validation.
func (m *BitMatrix) bit(row, col int) bool { return m.rows[row].Test(uint(col)) }

// Row returns a copy of row i as 0/1 values.
func (m *BitMatrix) Row(i int) ([]uint8, error) {
	if i < 0 || i >= m.r {
		return nil, bitErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]uint8, m.c)
	for j, ok := m.rows[i].NextSet(0); ok && j < uint(m.c); j, ok = m.rows[i].NextSet(j + 1) {
		out[j] = 1
	}

	return out, nil
}

// Column returns a copy of column j as 0/1 values, top row first.
func (m *BitMatrix) Column(j int) ([]uint8, error) {
	if j < 0 || j >= m.c {
		return nil, bitErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]uint8, m.r)
	for i := 0; i < m.r; i++ {
		if m.bit(i, j) {
			out[i] = 1
		}
	}

	return out, nil
}

// RowWeight returns the Hamming weight of row i.
func (m *BitMatrix) RowWeight(i int) (int, error) {
	if i < 0 || i >= m.r {
		return 0, bitErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return int(m.rows[i].Count()), nil
}

// Clone returns a deep copy; rows are not shared.
func (m *BitMatrix) Clone() *BitMatrix {
	out := &BitMatrix{r: m.r, c: m.c, rows: make([]*bitset.BitSet, m.r)}
	for i, row := range m.rows {
		out.rows[i] = row.Clone()
	}

	return out
}

// Equal reports whether m and o have the same shape and contents.
func (m *BitMatrix) Equal(o *BitMatrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.rows {
		if m.rows[i].SymmetricDifferenceCardinality(o.rows[i]) != 0 {
			return false
		}
	}

	return true
}

// SwapRows exchanges rows i and j (pointer swap, O(1)).
func (m *BitMatrix) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return bitErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// XorRow replaces row dst with row dst ⊕ row src.
func (m *BitMatrix) XorRow(dst, src int) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return bitErrorf(ctxXor, dst, src, ErrOutOfRange)
	}
	m.rows[dst].InPlaceSymmetricDifference(m.rows[src])

	return nil
}

// AppendColumn widens the matrix by one column holding bits (top row first).
func (m *BitMatrix) AppendColumn(bits []uint8) error {
	if err := ValidateBits(bits, m.r); err != nil {
		return bitErrorf(ctxAppendCol, m.r, m.c, err)
	}
	for i, b := range bits {
		m.rows[i].SetTo(uint(m.c), b == 1)
	}
	m.c++

	return nil
}

// AppendRow adds a new bottom row; bits must have length Cols().
func (m *BitMatrix) AppendRow(bits []uint8) error {
	if err := ValidateBits(bits, m.c); err != nil {
		return bitErrorf(ctxAppendRow, m.r, m.c, err)
	}
	row := bitset.New(uint(m.c))
	for j, b := range bits {
		if b == 1 {
			row.Set(uint(j))
		}
	}
	m.rows = append(m.rows, row)
	m.r++

	return nil
}

// Truncate keeps the first rows rows and drops the rest.
func (m *BitMatrix) Truncate(rows int) error {
	if rows < 0 || rows > m.r {
		return bitErrorf(ctxTruncate, rows, m.c, ErrOutOfRange)
	}
	for i := rows; i < m.r; i++ {
		m.rows[i] = nil
	}
	m.rows = m.rows[:rows]
	m.r = rows

	return nil
}

// String implements fmt.Stringer: one "[b, b, ...]" line per row.
func (m *BitMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			if m.bit(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// WriteLiteral renders every row as "{b,b,...},\n", the literal form read by
// the simulation tools.
func (m *BitMatrix) WriteLiteral(w io.Writer) error {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.Reset()
		sb.WriteString(_litRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_litSep)
			}
			if m.bit(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(_litRowClose)
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}
