// SPDX-License-Identifier: MIT

package gf2

// Add returns a + b, i.e. the coefficient-wise XOR.
func Add(a, b Poly) Poly {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := a.Clone()
	for i, c := range b {
		out[i] ^= c
	}

	return out.trim()
}

// Multiply returns a · b by binary convolution.
// For every pair of set coefficients (i, j) the bit at i+j is toggled.
// Complexity: O(deg a · deg b).
func Multiply(a, b Poly) Poly {
	if a.IsZero() || b.IsZero() {
		return Poly{}
	}
	out := make(Poly, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j] ^= bj
		}
	}

	return out.trim()
}

// Divide returns quotient and remainder of f / g with deg r < deg g.
//
// At each step g's leading term is aligned under the current leading term of
// the running remainder and XORed in. Division is total: a zero divisor
// yields (0, f).
// Complexity: O((deg f − deg g + 1) · deg g).
func Divide(f, g Poly) (quotient, remainder Poly) {
	r := f.Clone()
	if g.IsZero() || len(r) < len(g) {
		return Poly{}, r
	}
	dg := g.Degree()
	q := make(Poly, len(r)-dg)
	for top := r.Degree(); top >= dg; top-- {
		if r[top] == 0 {
			continue
		}
		shift := top - dg
		q[shift] = 1
		for j, gj := range g {
			r[shift+j] ^= gj
		}
	}

	return q.trim(), r.trim()
}

// Mod returns f mod g.
func Mod(f, g Poly) Poly {
	_, r := Divide(f, g)

	return r
}

// Divides reports whether g divides f exactly. The zero polynomial divides
// only itself.
func Divides(g, f Poly) bool {
	if g.IsZero() {
		return f.IsZero()
	}

	return Mod(f, g).IsZero()
}
