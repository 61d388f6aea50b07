package rates_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secrecy/rates"
)

const sample = `l,snr,n,block_errors,bit_errors
128,2.0,10000,5000,90000
128, 2.5, 10000, 150, 1200
128,3.0,10000,99,500
128,-1.0,10000,9950,600000
`

func TestParseRecords(t *testing.T) {
	recs, err := rates.ParseRecords(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, recs, 4)
	require.Equal(t, rates.Record{Length: 128, SNR: 2.5, Trials: 10000, BlockErrors: 150, BitErrors: 1200}, recs[1])
	require.Equal(t, int64(9850), recs[1].Correct())
}

func TestParseRecordsWithoutHeader(t *testing.T) {
	recs, err := rates.ParseRecords(strings.NewReader("16,0.5,10,1,1\n\n16,1.0,10,0,0\n"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
}

func TestParseRecordsErrors(t *testing.T) {
	cases := []struct {
		name, in string
		want     error
	}{
		{"short row", "128,2.0,10\n", rates.ErrMalformedRecord},
		{"bad number", "128,2.0,ten,1,1\n", rates.ErrMalformedRecord},
		{"zero trials", "128,2.0,0,0,0\n", rates.ErrNoTrials},
		{"too many block errors", "128,2.0,10,11,20\n", rates.ErrInconsistentRecord},
		{"bits below blocks", "128,2.0,10,5,4\n", rates.ErrInconsistentRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rates.ParseRecords(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGate(t *testing.T) {
	g := rates.DefaultGate()
	require.Equal(t, rates.Gate{MinErrors: 100, MinCorrect: 100}, g)

	cases := []struct {
		name        string
		trials, blk int64
		want        bool
	}{
		{"both sides enough", 1000, 100, true},
		{"too few errors", 1000, 99, false},
		{"too few correct", 1000, 901, false},
		{"exactly at both limits", 200, 100, true},
	}
	for _, tc := range cases {
		r := rates.Record{Length: 16, Trials: tc.trials, BlockErrors: tc.blk, BitErrors: tc.blk}
		require.Equal(t, tc.want, g.Admit(r), tc.name)
	}

	relaxed := rates.Gate{MinErrors: 1}
	require.True(t, relaxed.Admit(rates.Record{Length: 16, Trials: 10, BlockErrors: 10, BitErrors: 10}))
}

func TestRatesFromRecord(t *testing.T) {
	r := rates.Record{Length: 128, SNR: 2.5, Trials: 10000, BlockErrors: 150, BitErrors: 1280}
	require.Equal(t, 0.001, r.BER())

	bler, ok := r.BLER(rates.DefaultGate())
	require.True(t, ok)
	require.Equal(t, 0.015, bler)

	_, ok = rates.Record{Length: 128, Trials: 10000, BlockErrors: 10, BitErrors: 10}.BLER(rates.DefaultGate())
	require.False(t, ok)
	require.Equal(t, 0.0, rates.Record{}.BER())
}

func TestCurves(t *testing.T) {
	recs, err := rates.ParseRecords(strings.NewReader(sample))
	require.NoError(t, err)

	ber := rates.BERCurve(recs)
	require.Len(t, ber.Points, 4)
	require.Equal(t, "ber", ber.YLabel)

	// 99 block errors and 50 correct trials fall below the gate
	bler := rates.BLERCurve(recs, rates.DefaultGate())
	require.Equal(t, []rates.Point{{X: 2.0, Y: 0.5}, {X: 2.5, Y: 0.015}}, bler.Points)
}

func TestShiftSortWrite(t *testing.T) {
	c := rates.Curve{XLabel: "snr", YLabel: "bler", Points: []rates.Point{
		{X: 1.5, Y: 0.2}, {X: -2, Y: 0.9}, {X: 3, Y: 0.01},
	}}
	shifted := c.Shift(13)
	require.Equal(t, 1.5, c.Points[0].X, "input untouched")
	shifted.Sort()
	require.Equal(t, []rates.Point{{X: 10, Y: 0.01}, {X: 11.5, Y: 0.2}, {X: 15, Y: 0.9}}, shifted.Points)

	var buf bytes.Buffer
	require.NoError(t, shifted.WriteCSV(&buf))
	require.Equal(t, "snr,bler\n10,0.01\n11.5,0.2\n15,0.9\n", buf.String())
}

func TestReadCurveRoundTrip(t *testing.T) {
	in := "snr,ber\n3, 0.25\n-1,0.5\n"
	c, err := rates.ReadCurve(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "snr", c.XLabel)
	require.Len(t, c.Points, 2)

	c.Sort()
	var buf bytes.Buffer
	require.NoError(t, c.WriteCSV(&buf))
	require.Equal(t, "snr,ber\n-1,0.5\n3,0.25\n", buf.String())

	_, err = rates.ReadCurve(strings.NewReader("snr,ber\n1\n"))
	require.ErrorIs(t, err, rates.ErrMalformedCurve)
	_, err = rates.ReadCurve(strings.NewReader("snr,ber\n1,x\n"))
	require.ErrorIs(t, err, rates.ErrMalformedCurve)
}

func TestMapX(t *testing.T) {
	c := rates.Curve{XLabel: "snr", YLabel: "ber", Points: []rates.Point{{X: 1, Y: 0.1}}}
	out, err := c.MapX("d", func(x float64) (float64, error) { return 2 * x, nil })
	require.NoError(t, err)
	require.Equal(t, "d", out.XLabel)
	require.Equal(t, 2.0, out.Points[0].X)
}

func TestAggregate(t *testing.T) {
	trials := []rates.Trial{
		{SNR: 1, BitErrors: 0}, {SNR: 2, BitErrors: 3}, {SNR: 1, BitErrors: 2}, {SNR: 1, BitErrors: 0},
	}
	recs := rates.Aggregate(16, trials)
	require.Equal(t, []rates.Record{
		{Length: 16, SNR: 1, Trials: 3, BlockErrors: 1, BitErrors: 2},
		{Length: 16, SNR: 2, Trials: 1, BlockErrors: 1, BitErrors: 3},
	}, recs)
}
