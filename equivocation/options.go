// SPDX-License-Identifier: MIT

package equivocation

import "runtime"

// Defaults.
const (
	// DefaultMaxStates caps 2^m at 2^27 (two 1 GiB float64 buffers).
	DefaultMaxStates uint64 = 1 << 27

	// DefaultParallelThreshold is the smallest 2^m split across goroutines.
	DefaultParallelThreshold = 1 << 16

	// DefaultTolerance bounds |Σ D − 1| at the end of the fold.
	DefaultTolerance = 1e-9
)

// Options configures one engine call.
type Options struct {
	// MaxStates is the largest 2^m the engine will allocate. Zero means
	// DefaultMaxStates.
	MaxStates uint64

	// Parallelism is the number of goroutines used per step; values ≤ 1
	// run each step on the calling goroutine.
	Parallelism int

	// ParallelThreshold is the smallest distribution size split across
	// goroutines; smaller steps are not worth the scheduling overhead.
	ParallelThreshold int

	// Tolerance bounds |Σ D − 1| checked once after the last position.
	Tolerance float64
}

// DefaultOptions returns the recommended settings: one goroutine per
// available CPU for large distributions.
func DefaultOptions() Options {
	return Options{
		MaxStates:         DefaultMaxStates,
		Parallelism:       runtime.GOMAXPROCS(0),
		ParallelThreshold: DefaultParallelThreshold,
		Tolerance:         DefaultTolerance,
	}
}

// normalized fills zero fields with defaults.
func (o Options) normalized() Options {
	if o.MaxStates == 0 {
		o.MaxStates = DefaultMaxStates
	}
	if o.ParallelThreshold <= 0 {
		o.ParallelThreshold = DefaultParallelThreshold
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}

	return o
}

// RequiredBytes returns the memory held by the two distribution buffers for
// syndrome width m.
func RequiredBytes(m int) uint64 {
	if m < 0 || m > 59 {
		return ^uint64(0)
	}

	return 16 << uint(m)
}
