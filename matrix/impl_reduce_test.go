package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secrecy/matrix"
)

func TestReduceFullRank(t *testing.T) {
	// rows x^i·(1 + x + x^3) for the (7,4) Hamming code
	m := mustRows(t, [][]uint8{
		{1, 1, 0, 1, 0, 0, 0},
		{0, 1, 1, 0, 1, 0, 0},
		{0, 0, 1, 1, 0, 1, 0},
		{0, 0, 0, 1, 1, 0, 1},
	})
	pivots, err := matrix.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, pivots)
	require.Equal(t,
		"[1, 0, 0, 0, 1, 1, 0]\n"+
			"[0, 1, 0, 0, 0, 1, 1]\n"+
			"[0, 0, 1, 0, 1, 1, 1]\n"+
			"[0, 0, 0, 1, 1, 0, 1]\n",
		m.String())
}

// TestReduceSkipsEmptyColumn covers the "advance column, keep row" path.
func TestReduceSkipsEmptyColumn(t *testing.T) {
	m := mustRows(t, [][]uint8{
		{0, 1, 1},
		{0, 1, 0},
	})
	pivots, err := matrix.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, pivots)
	require.Equal(t, "[0, 1, 0]\n[0, 0, 1]\n", m.String())
}

// TestReduceEliminatesAbove checks that the pivot row is XORed into rows above it too.
func TestReduceEliminatesAbove(t *testing.T) {
	m := mustRows(t, [][]uint8{
		{1, 1, 1},
		{0, 1, 0},
		{0, 0, 1},
	})
	pivots, err := matrix.Reduce(m)
	require.NoError(t, err)
	require.Len(t, pivots, 3)
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", m.String())
}

func TestReduceRankDeficient(t *testing.T) {
	m := mustRows(t, [][]uint8{
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 0}, // row0 ⊕ row1
	})
	pivots, err := matrix.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pivots)

	last, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0, 0}, last) // dependent row collapses to zero
}

func TestRankDoesNotMutate(t *testing.T) {
	m := mustRows(t, [][]uint8{
		{1, 1},
		{1, 1},
	})
	before := m.Clone()
	r, err := matrix.Rank(m)
	require.NoError(t, err)
	require.Equal(t, 1, r)
	require.True(t, m.Equal(before))

	_, err = matrix.Reduce(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
