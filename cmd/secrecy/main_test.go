package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the CLI with a quiet config file and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: error\n"), 0o644))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"secrecy", "--config", cfg}, args...))

	return out.String(), err
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table", "--code", "hamming-7-4")
	require.NoError(t, err)
	require.Equal(t, "# hamming-7-4 n=7 m=3\n[6, 3, 7, 5, 4, 2, 1]\n", out)
}

func TestTableCommandFixture(t *testing.T) {
	out, err := run(t, "table", "-c", "fixture-bch-16-32")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# fixture-bch-16-32 n=32 m=16\n[1, 2, 4, 8,"))
}

func TestTableCommandAdHoc(t *testing.T) {
	out, err := run(t, "table", "--n", "7", "--k", "4", "--generator", "13")
	require.NoError(t, err)
	require.Contains(t, out, "[6, 3, 7, 5, 4, 2, 1]")
}

func TestMatrixCommand(t *testing.T) {
	out, err := run(t, "matrix", "--code", "hamming-7-4", "--plain")
	require.NoError(t, err)
	require.Contains(t, out, "H (hamming-7-4):\n[1, 0, 1, 1, 1, 0, 0]\n[1, 1, 1, 0, 0, 1, 0]\n[0, 1, 1, 1, 0, 0, 1]\n")

	out, err = run(t, "matrix", "--code", "hamming-7-4")
	require.NoError(t, err)
	require.Contains(t, out, "{1,0,1,1,1,0,0},\n")
}

func TestMatrixCommandRejectsNonCyclic(t *testing.T) {
	_, err := run(t, "matrix", "--n", "7", "--k", "4", "--generator", "17")
	require.Error(t, err)
}

func TestEquivocationCommand(t *testing.T) {
	out, err := run(t, "eq", "--code", "hamming-7-4", "-p", "0.5", "-p", "0")
	require.NoError(t, err)
	require.Equal(t, "p,eq\n0,0\n0.5,3\n", out)
}

func TestEquivocationCommandDefaultGrid(t *testing.T) {
	out, err := run(t, "--workers", "3", "equivocation", "--code", "hamming-7-4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 41)
	require.Equal(t, "p,eq", lines[0])
	require.Equal(t, "0,0", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "0.0125,"))
	require.True(t, strings.HasPrefix(lines[40], "0.4875,"))
}

func TestEquivocationCommandToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eq.csv")
	out, err := run(t, "eq", "-c", "hamming-7-4", "-p", "0.5", "--rate", "-o", path)
	require.NoError(t, err)
	require.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "p,eq\n0.5,1\n", string(data))
}

func TestEquivocationCommandRejectsBadProbability(t *testing.T) {
	_, err := run(t, "eq", "-c", "hamming-7-4", "-p", "1.5")
	require.Error(t, err)
}

func TestUnknownCode(t *testing.T) {
	_, err := run(t, "table", "--code", "golay-23-12")
	require.Error(t, err)
	_, err = run(t, "table")
	require.Error(t, err)
}

func TestCodesCommand(t *testing.T) {
	out, err := run(t, "codes")
	require.NoError(t, err)
	require.Contains(t, out, "bch-64-32")
	require.Contains(t, out, "fixture-h1")
}

func TestRatesCommands(t *testing.T) {
	dir := t.TempDir()
	records := filepath.Join(dir, "records.csv")
	require.NoError(t, os.WriteFile(records, []byte(
		"l,snr,n,block_errors,bit_errors\n128,3.0,1000,150,1280\n128,2.0,1000,500,6400\n128,4.0,1000,50,64\n",
	), 0o644))

	out, err := run(t, "rates", "bler", records)
	require.NoError(t, err)
	require.Equal(t, "snr,bler\n3,0.15\n2,0.5\n", out)

	out, err = run(t, "rates", "bler", "--min-errors", "10", records)
	require.NoError(t, err)
	require.Contains(t, out, "4,0.05")

	berPath := filepath.Join(dir, "ber.csv")
	_, err = run(t, "rates", "ber", "-o", berPath, records)
	require.NoError(t, err)

	out, err = run(t, "rates", "sort", berPath)
	require.NoError(t, err)
	require.Equal(t, "snr,ber\n2,0.05\n3,0.01\n4,0.0005\n", out)

	out, err = run(t, "rates", "shift", "--reference", "13", berPath)
	require.NoError(t, err)
	require.Equal(t, "snr,ber\n10,0.01\n11,0.05\n9,0.0005\n", out)
}

func TestBoundsCommands(t *testing.T) {
	dir := t.TempDir()
	bler := filepath.Join(dir, "bler.csv")
	require.NoError(t, os.WriteFile(bler, []byte("snr,bler\n1,0\n2,1\n"), 0o644))

	out, err := run(t, "bounds", "fano", "--bits", "8", bler)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{"snr,Hmax", "1,0"}, lines[:2])
	require.True(t, strings.HasPrefix(lines[2], "2,7.99"))

	out, err = run(t, "bounds", "uncoded", "--length", "16", "--lo", "0", "--hi", "1")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "snr,ber,bler,H,d", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "0,0.0786496035"))
}

func TestMetricsEndpointLifecycle(t *testing.T) {
	out, err := run(t, "--metrics", "127.0.0.1:0", "eq", "-c", "hamming-7-4", "-p", "0.1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "p,eq\n0.1,"))
}

func TestMissingConfigFile(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run([]string{"secrecy", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "codes"})
	require.Error(t, err)
}
