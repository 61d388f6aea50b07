// SPDX-License-Identifier: MIT

// Package equivocation computes the syndrome distribution of a binary code on
// a binary symmetric channel and its Shannon entropy (the equivocation).
//
// 🚀 What is it?
//
//	For a code with syndrome table t (one m-bit contribution per position)
//	and crossover probability p, every position is independently flipped
//	with probability p. The syndrome is the XOR of t[i] over flipped
//	positions; its entropy measures what an eavesdropper still does not
//	know about the error pattern after observing the syndrome.
//
// Algorithm Outline:
//  1. D[0] = 1, D[s] = 0 elsewhere (size 2^m).
//  2. For i = 0..n−1, in order:
//     D'[s] = (1−p)·D[s] + p·D[s ⊕ t[i]]
//  3. Check Σ D = 1 within Options.Tolerance.
//  4. H = −Σ_{D[s] > 0} D[s]·log2 D[s].
//
// Step 2 is written in gather form: every output cell reads two input cells
// and writes one, so a step splits into independent chunks that run on
// separate goroutines. The outer loop over positions is strictly sequential.
//
// Performance:
//
//   - Time:   O(n·2^m)
//   - Memory: two float64 arrays of 2^m entries (16·2^m bytes)
//
// m of 20–32 is common; at m = 32 the arrays need 64 GiB. Requests above
// Options.MaxStates are rejected with ErrResourceExhausted before anything
// is allocated.
package equivocation
