package syndrome_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secrecy/cyclic"
	"github.com/katalvlaran/secrecy/gf2"
	"github.com/katalvlaran/secrecy/matrix"
	"github.com/katalvlaran/secrecy/syndrome"
)

func TestExtractBitOrder(t *testing.T) {
	// column j = (top, middle, bottom); top row is the MSB
	H, err := matrix.FromRows([][]uint8{
		{1, 0, 0},
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	tab, m, err := syndrome.Extract(H)
	require.NoError(t, err)
	require.Equal(t, 3, m)
	require.Equal(t, syndrome.Table{0b101, 0b010, 0b001}, tab)
}

func TestExtractHamming(t *testing.T) {
	g, err := gf2.ParseOctal("13")
	require.NoError(t, err)
	code, err := cyclic.Build(cyclic.Params{N: 7, K: 4, Generator: g})
	require.NoError(t, err)

	tab, m, err := syndrome.Extract(code.H)
	require.NoError(t, err)
	require.Equal(t, 3, m)
	require.Equal(t, syndrome.Table{6, 3, 7, 5, 4, 2, 1}, tab)
	require.NoError(t, tab.Validate(m))

	// every single-bit error has a distinct nonzero syndrome
	seen := map[uint64]bool{}
	for _, v := range tab {
		require.NotZero(t, v)
		seen[v] = true
	}
	require.Len(t, seen, 7)
}

func TestExtractRejectsWideMatrix(t *testing.T) {
	H, err := matrix.NewBitMatrix(64, 2)
	require.NoError(t, err)
	_, _, err = syndrome.Extract(H)
	require.ErrorIs(t, err, syndrome.ErrWidthTooLarge)

	_, _, err = syndrome.Extract(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidate(t *testing.T) {
	tab := syndrome.Table{1, 2, 3}
	require.NoError(t, tab.Validate(2))
	require.ErrorIs(t, tab.Validate(1), syndrome.ErrSyndromeOverflow)
	require.ErrorIs(t, tab.Validate(0), syndrome.ErrInvalidWidth)
	require.ErrorIs(t, tab.Validate(64), syndrome.ErrWidthTooLarge)
}

func TestSyndromeOfPattern(t *testing.T) {
	tab := syndrome.Table{6, 3, 7, 5, 4, 2, 1}

	s, err := tab.Syndrome([]uint8{0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Zero(t, s)

	s, err = tab.Syndrome([]uint8{1, 0, 1, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, uint64(6^7), s)

	s, err = tab.Syndrome([]uint8{1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, tab.XorAll(), s)

	_, err = tab.Syndrome([]uint8{1})
	require.ErrorIs(t, err, syndrome.ErrLengthMismatch)
}

// TestCodewordsHaveZeroSyndrome checks every row of G against the table.
func TestCodewordsHaveZeroSyndrome(t *testing.T) {
	g, err := gf2.ParseOctal("107657")
	require.NoError(t, err)
	code, err := cyclic.Build(cyclic.Params{N: 31, K: 16, Generator: g}, cyclic.WithExtension())
	require.NoError(t, err)
	tab, m, err := syndrome.Extract(code.H)
	require.NoError(t, err)
	require.Equal(t, 16, m)

	for i := 0; i < code.K; i++ {
		row, err := code.G.Row(i)
		require.NoError(t, err)
		s, err := tab.Syndrome(row)
		require.NoError(t, err)
		require.Zero(t, s, "row %d", i)
	}
}

func TestCloneAndReverse(t *testing.T) {
	tab := syndrome.Table{1, 2, 3}
	c := tab.Clone()
	c[0] = 9
	require.Equal(t, uint64(1), tab[0])
	require.Equal(t, syndrome.Table{3, 2, 1}, tab.Reversed())
}

func TestFromCode(t *testing.T) {
	g, err := gf2.ParseOctal("13")
	require.NoError(t, err)
	code, err := cyclic.Build(cyclic.Params{N: 7, K: 4, Generator: g}, cyclic.WithExtension())
	require.NoError(t, err)

	tab, m, err := syndrome.FromCode(code)
	require.NoError(t, err)
	require.Equal(t, 4, m)
	require.Len(t, tab, 8)
	require.NoError(t, tab.Validate(m))

	_, _, err = syndrome.FromCode(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
