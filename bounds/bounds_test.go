package bounds_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secrecy/bounds"
)

func TestBinaryEntropy(t *testing.T) {
	h, err := bounds.BinaryEntropy(0.3)
	require.NoError(t, err)
	require.InDelta(t, 0.881290899, h, 1e-9)

	for _, p := range []float64{0, 1} {
		h, err = bounds.BinaryEntropy(p)
		require.NoError(t, err)
		require.Equal(t, 0.0, h)
	}
	h, err = bounds.BinaryEntropy(0.5)
	require.NoError(t, err)
	require.Equal(t, 1.0, h)

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err = bounds.BinaryEntropy(p)
		require.ErrorIs(t, err, bounds.ErrInvalidProbability)
	}
}

func TestFanoBound(t *testing.T) {
	h, err := bounds.FanoBound(0, 16)
	require.NoError(t, err)
	require.Equal(t, 0.0, h)

	h, err = bounds.FanoBound(1, 8)
	require.NoError(t, err)
	require.InDelta(t, math.Log2(255), h, 1e-12)

	h, err = bounds.FanoBound(0.1, 16)
	require.NoError(t, err)
	require.InDelta(t, 2.068993392194555, h, 1e-12)

	// stays finite where 2^bits overflows float64
	h, err = bounds.FanoBound(1, 2048)
	require.NoError(t, err)
	require.InDelta(t, 2048.0, h, 1e-9)

	_, err = bounds.FanoBound(0.5, 0)
	require.ErrorIs(t, err, bounds.ErrInvalidLength)
	_, err = bounds.FanoBound(2, 8)
	require.ErrorIs(t, err, bounds.ErrInvalidProbability)
}

func TestQ(t *testing.T) {
	require.Equal(t, 0.5, bounds.Q(0))
	require.InDelta(t, 0.024997895148220435, bounds.Q(1.96), 1e-15)
	require.InDelta(t, 1.0, bounds.Q(-1.96)+bounds.Q(1.96), 1e-15)
}

func TestUncoded(t *testing.T) {
	require.InDelta(t, 0.07864960352514257, bounds.UncodedBER(0), 1e-15)
	require.InDelta(t, 3.872108215522048e-06, bounds.UncodedBER(10), 1e-15)

	bler, err := bounds.UncodedBLER(0, 16)
	require.NoError(t, err)
	require.InDelta(t, 0.7303519816265958, bler, 1e-12)

	eq, err := bounds.UncodedEquivocation(0, 16)
	require.NoError(t, err)
	require.InDelta(t, 6.358448308554712, eq, 1e-12)

	_, err = bounds.UncodedBLER(0, 0)
	require.ErrorIs(t, err, bounds.ErrInvalidLength)
	_, err = bounds.UncodedEquivocation(0, -1)
	require.ErrorIs(t, err, bounds.ErrInvalidLength)
}

func TestUncodedBERDecreasing(t *testing.T) {
	prev := 1.0
	for _, snr := range bounds.Grid(-15, 15, 0.5) {
		ber := bounds.UncodedBER(snr)
		require.Less(t, ber, prev)
		prev = ber
	}
}

func TestEveDistance(t *testing.T) {
	d, err := bounds.EveDistance(9.7, 10, 3, 9.7)
	require.NoError(t, err)
	require.InDelta(t, 10.0, d, 1e-9)

	// 30 dB less SNR at γ = 3 is one decade farther
	d, err = bounds.EveDistance(9.7, 10, 3, -20.3)
	require.NoError(t, err)
	require.InDelta(t, 100.0, d, 1e-9)

	_, err = bounds.EveDistance(9.7, 0, 3, 0)
	require.ErrorIs(t, err, bounds.ErrInvalidPathLoss)
}

func TestGrid(t *testing.T) {
	g := bounds.Grid(-15, 15, 0.5)
	require.Len(t, g, 60)
	require.Equal(t, -15.0, g[0])
	require.Equal(t, 14.5, g[59])
	require.Nil(t, bounds.Grid(1, 0, 0.5))
	require.Nil(t, bounds.Grid(0, 1, 0))
}
