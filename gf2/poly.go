// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"
	"strings"
)

// Poly is a binary polynomial, lowest-degree coefficient first, always trimmed.
type Poly []uint8

// New builds a trimmed Poly from coefficients given lowest degree first.
// Every coefficient must be 0 or 1.
func New(coeffs ...uint8) (Poly, error) {
	p := make(Poly, len(coeffs))
	for i, c := range coeffs {
		if c > 1 {
			return nil, fmt.Errorf("New: coeff[%d]=%d: %w", i, c, ErrNonBinary)
		}
		p[i] = c
	}

	return p.trim(), nil
}

// FromBits builds a Poly from bits written highest degree first, the order
// in which generator polynomials are usually printed.
func FromBits(bits []uint8) (Poly, error) {
	n := len(bits)
	p := make(Poly, n)
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("FromBits: bit[%d]=%d: %w", i, b, ErrNonBinary)
		}
		p[n-1-i] = b // reverse into lowest-first order
	}

	return p.trim(), nil
}

// ParseOctal decodes the octal notation of code tables: every digit expands
// to three bits, most significant first, and leading zero bits are dropped.
//
// Example: "13" → 001 011 → x^3 + x + 1.
func ParseOctal(s string) (Poly, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("ParseOctal(%q): %w", s, ErrBadDigit)
	}
	bits := make([]uint8, 0, 3*len(s))
	for i, r := range s {
		if r < '0' || r > '7' {
			return nil, fmt.Errorf("ParseOctal(%q): position %d: %w", s, i, ErrBadDigit)
		}
		d := uint8(r - '0')
		bits = append(bits, (d>>2)&1, (d>>1)&1, d&1)
	}

	return FromBits(bits)
}

// Monomial returns x^d.
func Monomial(d int) (Poly, error) {
	if d < 0 {
		return nil, fmt.Errorf("Monomial(%d): %w", d, ErrNegativeDegree)
	}
	p := make(Poly, d+1)
	p[d] = 1

	return p, nil
}

// XnPlusOne returns x^n + 1. For n == 0 the result is the zero polynomial
// (1 + 1 = 0 over GF(2)).
func XnPlusOne(n int) (Poly, error) {
	if n < 0 {
		return nil, fmt.Errorf("XnPlusOne(%d): %w", n, ErrNegativeDegree)
	}
	if n == 0 {
		return Poly{}, nil
	}
	p := make(Poly, n+1)
	p[0], p[n] = 1, 1

	return p, nil
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p) == 0 }

// Coeff returns the coefficient of x^i (0 outside the stored range).
func (p Poly) Coeff(i int) uint8 {
	if i < 0 || i >= len(p) {
		return 0
	}

	return p[i]
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	copy(out, p)

	return out
}

// Equal reports coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Reverse returns the reciprocal polynomial x^deg(p) · p(1/x).
// Trailing zeros produced by a zero constant term are trimmed.
func (p Poly) Reverse() Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}

	return out.trim()
}

// Weight returns the number of nonzero coefficients.
func (p Poly) Weight() int {
	w := 0
	for _, c := range p {
		w += int(c)
	}

	return w
}

// String renders p as a sum of powers of x, highest first: "x^3 + x + 1".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		switch i {
		case 0:
			sb.WriteString("1")
		case 1:
			sb.WriteString("x")
		default:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}

	return sb.String()
}

// Octal renders p in the octal notation accepted by ParseOctal.
func (p Poly) Octal() string {
	if p.IsZero() {
		return "0"
	}
	// group bits from the low end in triples
	digits := make([]byte, 0, len(p)/3+1)
	for i := 0; i < len(p); i += 3 {
		d := p.Coeff(i) | p.Coeff(i+1)<<1 | p.Coeff(i+2)<<2
		digits = append(digits, '0'+d)
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	return string(digits)
}

// trim drops trailing zero coefficients in place.
func (p Poly) trim() Poly {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}

	return p[:n]
}
