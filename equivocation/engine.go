// SPDX-License-Identifier: MIT

package equivocation

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/secrecy/syndrome"
)

// Distribution is a probability distribution over syndromes 0..2^m−1.
type Distribution []float64

// Sum returns Σ D using compensated (Neumaier) summation.
func (d Distribution) Sum() float64 {
	var sum, c float64
	for _, v := range d {
		t := sum + v
		if math.Abs(sum) >= math.Abs(v) {
			c += (sum - t) + v
		} else {
			c += (v - t) + sum
		}
		sum = t
	}

	return sum + c
}

// Entropy returns −Σ D[s]·log2 D[s] in bits. Zero cells are skipped, never
// passed to the logarithm.
func (d Distribution) Entropy() float64 {
	h := 0.0
	for _, v := range d {
		if v <= 0 {
			continue
		}
		h -= v * math.Log2(v)
	}

	return h
}

// Support returns the number of syndromes with nonzero probability.
func (d Distribution) Support() int {
	n := 0
	for _, v := range d {
		if v > 0 {
			n++
		}
	}

	return n
}

// Distribute runs the position-by-position fold and returns the syndrome
// distribution for crossover probability p.
//
// Errors:
//   - ErrInvalidProbability: p ∉ [0, 1].
//   - ErrInvalidWidth: m ∉ [1, syndrome.MaxWidth].
//   - ErrSyndromeOverflow: some table[i] ≥ 2^m.
//   - ErrResourceExhausted: 2^m > opts.MaxStates (checked before allocating).
//   - ErrNotNormalized: Σ D drifted beyond opts.Tolerance.
//
// A nil opts uses DefaultOptions().
func Distribute(table syndrome.Table, m int, p float64, opts *Options) (Distribution, error) {
	o := DefaultOptions()
	if opts != nil {
		o = opts.normalized()
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("Distribute: p=%v: %w", p, ErrInvalidProbability)
	}
	if m < 1 || m > syndrome.MaxWidth {
		return nil, fmt.Errorf("Distribute: m=%d: %w", m, ErrInvalidWidth)
	}
	if err := table.Validate(m); err != nil {
		if errors.Is(err, syndrome.ErrSyndromeOverflow) {
			return nil, fmt.Errorf("Distribute: %w", err)
		}
		return nil, fmt.Errorf("Distribute: %v: %w", err, ErrInvalidWidth)
	}
	states := uint64(1) << uint(m)
	if states > o.MaxStates {
		return nil, fmt.Errorf("Distribute: 2^%d states (%d bytes) > ceiling %d: %w",
			m, RequiredBytes(m), o.MaxStates, ErrResourceExhausted)
	}

	cur := make(Distribution, states)
	next := make(Distribution, states)
	cur[0] = 1

	workers := 1
	if o.Parallelism > 1 && states >= uint64(o.ParallelThreshold) {
		workers = o.Parallelism
	}
	q := 1 - p
	for _, t := range table {
		if t == 0 {
			continue // XOR with 0 leaves every cell in place
		}
		if workers == 1 {
			fold(next, cur, t, p, q, 0, len(cur))
		} else {
			foldParallel(next, cur, t, p, q, workers)
		}
		cur, next = next, cur
	}

	if sum := cur.Sum(); math.Abs(sum-1) > o.Tolerance {
		return nil, fmt.Errorf("Distribute: Σ=%.17g: %w", sum, ErrNotNormalized)
	}

	return cur, nil
}

// fold writes dst[s] = q·src[s] + p·src[s⊕t] for s in [lo, hi).
func fold(dst, src Distribution, t uint64, p, q float64, lo, hi int) {
	for s := lo; s < hi; s++ {
		dst[s] = q*src[s] + p*src[uint64(s)^t]
	}
}

// foldParallel splits one fold step into contiguous chunks. Chunks write
// disjoint ranges of dst and only read src, so no synchronisation beyond the
// final Wait is needed.
func foldParallel(dst, src Distribution, t uint64, p, q float64, workers int) {
	n := len(src)
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo := lo
		g.Go(func() error {
			fold(dst, src, t, p, q, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // fold never fails
}

// Equivocation returns the entropy, in bits, of the syndrome distribution.
// p = 0 and p = 1 both give exactly 0.
func Equivocation(table syndrome.Table, m int, p float64, opts *Options) (float64, error) {
	d, err := Distribute(table, m, p, opts)
	if err != nil {
		return 0, err
	}

	return d.Entropy(), nil
}

// Rate normalises an equivocation by the syndrome width: eq/m ∈ [0, 1].
func Rate(eq float64, m int) float64 {
	if m <= 0 {
		return 0
	}

	return eq / float64(m)
}
