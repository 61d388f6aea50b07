// SPDX-License-Identifier: MIT

// Package gf2 implements polynomial arithmetic over the binary field GF(2).
//
// Representation:
//
//	Poly is a slice of coefficients, lowest degree first:
//	  x^3 + x + 1  ⇔  Poly{1, 1, 0, 1}
//	The slice is always trimmed: the last element is 1 unless the polynomial
//	is identically zero, in which case the slice is empty. Degree is len−1.
//
// Operations:
//   - Add: coefficient-wise XOR.
//   - Multiply: binary convolution (XOR into position i+j).
//   - Divide: long division with XOR in place of subtraction.
//
// Division is total: Divide(f, 0) yields (0, f). Code builders treat any
// nonzero remainder of x^n+1 by g as "g does not generate a cyclic code of
// length n", so a zero divisor is rejected the same way.
//
// Textual decoding (ParseOctal, FromBits) lives here as a convenience for
// drivers that read the usual octal code tables; the arithmetic itself never
// depends on a radix.
package gf2
