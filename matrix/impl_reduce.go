// SPDX-License-Identifier: MIT

package matrix

// Reduce brings m to reduced row-echelon form in place and returns the pivot
// column of every pivot row, in row order. The rank of m is len(pivots).
//
// Algorithm (Gauss–Jordan over GF(2)):
//  1. Keep a row pointer r and a column pointer lead, both starting at 0.
//  2. Scan rows r..R-1 of column lead for a 1. If none is found, advance lead
//     and rescan without advancing r.
//  3. Swap the pivot row into position r, then XOR row r into EVERY other row
//     (above and below) holding a 1 in column lead. Column lead now contains
//     exactly one 1.
//  4. Advance r and lead; stop when either pointer runs out.
//
// Rows r..R-1 left after termination are all zero: they were linearly
// dependent on the pivot rows.
//
// Complexity:
//   - Time O(R * R * C/64) row XORs, Space O(1) beyond m.
//
// Notes:
//   - Determinism: the first 1 found scanning downwards is always the pivot.
func Reduce(m *BitMatrix) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	pivots := make([]int, 0, m.r)
	lead := 0
	for r := 0; r < m.r && lead < m.c; r++ {
		// locate a pivot, moving right across empty columns
		i := r
		for !m.bit(i, lead) {
			i++
			if i == m.r {
				i = r
				lead++
				if lead == m.c {
					return pivots, nil
				}
			}
		}
		if i != r {
			m.rows[i], m.rows[r] = m.rows[r], m.rows[i]
		}
		for k := 0; k < m.r; k++ {
			if k != r && m.bit(k, lead) {
				m.rows[k].InPlaceSymmetricDifference(m.rows[r])
			}
		}
		pivots = append(pivots, lead)
		lead++
	}

	return pivots, nil
}

// Rank returns the GF(2) rank of m without modifying it.
func Rank(m *BitMatrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opReduce, err)
	}
	pivots, err := Reduce(m.Clone())
	if err != nil {
		return 0, err
	}

	return len(pivots), nil
}
