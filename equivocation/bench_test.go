package equivocation_test

import (
	"testing"

	"github.com/katalvlaran/secrecy/equivocation"
	"github.com/katalvlaran/secrecy/syndrome"
)

func benchTable(n, m int) syndrome.Table {
	t := make(syndrome.Table, n)
	mask := uint64(1)<<uint(m) - 1
	x := uint64(0x9E3779B97F4A7C15)
	for i := range t {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		t[i] = x & mask
	}
	return t
}

func benchmarkDistribute(b *testing.B, parallelism int) {
	table := benchTable(64, 18)
	opts := &equivocation.Options{Parallelism: parallelism}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := equivocation.Distribute(table, 18, 0.1, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistributeSerial(b *testing.B)   { benchmarkDistribute(b, 1) }
func BenchmarkDistributeParallel(b *testing.B) { benchmarkDistribute(b, 4) }
