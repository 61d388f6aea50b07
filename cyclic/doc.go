// SPDX-License-Identifier: MIT

// Package cyclic builds generator and parity-check matrices of binary cyclic
// codes (Hamming, BCH and friends) from their generator polynomial.
//
// Pipeline (Build):
//
//  1. Validate cyclicity: g(x) must divide xⁿ+1 exactly.
//  2. h(x) = (xⁿ+1)/g(x).
//  3. Raw G: row i = xⁱ·g(x) (k rows, width n).
//     Raw H: row i = reciprocal of h(x) shifted so that G·Hᵀ = 0 (n−k rows).
//  4. Optional extension: overall parity bit on G, zero column plus an
//     all-ones row on H. n grows by one, k is unchanged.
//  5. Optional subcode: drop trailing rows of G. k shrinks, n is unchanged,
//     and H is recomputed from the reduced G.
//  6. Gauss–Jordan elimination of G into systematic form [I_k | P].
//  7. H = [Pᵀ | I_{n−k}] derived from the systematic G.
//
// Every stage is exported on its own so tests and tools can inspect the
// intermediate matrices; Build simply chains them.
//
// Errors:
//   - ErrNonCyclicGenerator: g does not divide xⁿ+1.
//   - ErrRankDeficient: elimination found fewer than k pivots.
//   - ErrAssumedLayoutViolation: leading k columns are not I_k after elimination.
//   - ErrInvalidParameters: inconsistent (n, k, deg g).
//   - ErrInvalidSubcode: subcode row count out of range.
package cyclic
