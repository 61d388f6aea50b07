// SPDX-License-Identifier: MIT

package cyclic

import (
	"fmt"

	"github.com/katalvlaran/secrecy/gf2"
	"github.com/katalvlaran/secrecy/matrix"
)

// Stage tags used in error wrapping and log events.
const (
	stageParams     = "Params"
	stageParity     = "ParityPolynomial"
	stageRawG       = "RawGenerator"
	stageRawH       = "RawParityCheck"
	stageExtend     = "Extend"
	stageSubcode    = "Subcode"
	stageSystematic = "Systematic"
	stageDeriveH    = "ParityFromSystematic"
	stageCheck      = "Check"
)

// Params describes a cyclic code before any extension or subcode reduction.
// K must equal N − deg(Generator).
type Params struct {
	N         int
	K         int
	Generator gf2.Poly
}

// Validate checks 0 < K < N and deg(Generator) == N − K.
func (p Params) Validate() error {
	if p.N <= 0 || p.K <= 0 || p.K >= p.N {
		return cyclicErrorf(stageParams, fmt.Errorf("n=%d k=%d: %w", p.N, p.K, ErrInvalidParameters))
	}
	if d := p.Generator.Degree(); d != p.N-p.K {
		return cyclicErrorf(stageParams, fmt.Errorf("deg g=%d, want n-k=%d: %w", d, p.N-p.K, ErrInvalidParameters))
	}

	return nil
}

// Code is a constructed binary linear code in systematic form.
type Code struct {
	N, K      int
	Generator gf2.Poly // g(x) as supplied
	Parity    gf2.Poly // h(x) = (xⁿ+1)/g(x) of the base cyclic code
	G         *matrix.BitMatrix
	H         *matrix.BitMatrix
	Extended  bool // overall parity bit appended
	Removed   int  // rows dropped by subcode reduction
}

// Redundancy returns n − k, the syndrome width.
func (c *Code) Redundancy() int { return c.N - c.K }

// Rate returns k / n.
func (c *Code) Rate() float64 { return float64(c.K) / float64(c.N) }

// Check verifies the defining relation G·Hᵀ = 0.
func (c *Code) Check() error { return Orthogonal(c.G, c.H) }

// Orthogonal returns nil iff G·Hᵀ = 0 over GF(2).
func Orthogonal(G, H *matrix.BitMatrix) error {
	prod, err := matrix.MulTransposed(G, H)
	if err != nil {
		return cyclicErrorf(stageCheck, err)
	}
	zero, err := matrix.IsZero(prod)
	if err != nil {
		return cyclicErrorf(stageCheck, err)
	}
	if !zero {
		return cyclicErrorf(stageCheck, ErrNotOrthogonal)
	}

	return nil
}

// ParityPolynomial validates that g divides xⁿ+1 and returns h = (xⁿ+1)/g.
func ParityPolynomial(n int, g gf2.Poly) (gf2.Poly, error) {
	f, err := gf2.XnPlusOne(n)
	if err != nil {
		return nil, cyclicErrorf(stageParity, err)
	}
	h, r := gf2.Divide(f, g)
	if !r.IsZero() {
		return nil, cyclicErrorf(stageParity, fmt.Errorf("g=%s, n=%d, remainder %s: %w", g, n, r, ErrNonCyclicGenerator))
	}

	return h, nil
}

// RawGenerator returns the k×n matrix whose row i holds the coefficients of
// xⁱ·g(x), k = n − deg g.
func RawGenerator(n int, g gf2.Poly) (*matrix.BitMatrix, error) {
	dg := g.Degree()
	if dg <= 0 || dg >= n {
		return nil, cyclicErrorf(stageRawG, fmt.Errorf("deg g=%d, n=%d: %w", dg, n, ErrInvalidParameters))
	}
	k := n - dg
	G, err := matrix.NewBitMatrix(k, n)
	if err != nil {
		return nil, cyclicErrorf(stageRawG, err)
	}
	for i := 0; i < k; i++ {
		for j, c := range g {
			if c == 1 {
				_ = G.Set(i, i+j, 1) // i+j ≤ k−1+dg = n−1
			}
		}
	}

	return G, nil
}

// RawParityCheck returns the (n−deg h)×n matrix whose rows hold the
// reciprocal of h(x), shifted one place left per row starting from the right
// edge: row i covers columns n−1−i−deg h .. n−1−i.
//
// Row i enforces Σ_j c_j·h_{t−j} = 0 for t = n−1−i, which every codeword
// m(x)·g(x) satisfies for deg h ≤ t < n.
func RawParityCheck(n int, h gf2.Poly) (*matrix.BitMatrix, error) {
	dh := h.Degree()
	if dh <= 0 || dh >= n {
		return nil, cyclicErrorf(stageRawH, fmt.Errorf("deg h=%d, n=%d: %w", dh, n, ErrInvalidParameters))
	}
	rows := n - dh
	H, err := matrix.NewBitMatrix(rows, n)
	if err != nil {
		return nil, cyclicErrorf(stageRawH, err)
	}
	for i := 0; i < rows; i++ {
		t := n - 1 - i
		for d, c := range h {
			if c == 1 {
				_ = H.Set(i, t-d, 1)
			}
		}
	}

	return H, nil
}

// Extend returns copies of G and H for the code extended by an overall
// parity bit: every G row gains the XOR of its bits, every H row gains a 0
// and H gains a final all-ones row. G·Hᵀ = 0 is preserved because each G row
// now has even weight.
func Extend(G, H *matrix.BitMatrix) (*matrix.BitMatrix, *matrix.BitMatrix, error) {
	if err := matrix.ValidateSameWidth(G, H); err != nil {
		return nil, nil, cyclicErrorf(stageExtend, err)
	}
	ge, he := G.Clone(), H.Clone()

	parity := make([]uint8, ge.Rows())
	for i := range parity {
		w, err := ge.RowWeight(i)
		if err != nil {
			return nil, nil, cyclicErrorf(stageExtend, err)
		}
		parity[i] = uint8(w & 1)
	}
	if err := ge.AppendColumn(parity); err != nil {
		return nil, nil, cyclicErrorf(stageExtend, err)
	}

	if err := he.AppendColumn(make([]uint8, he.Rows())); err != nil {
		return nil, nil, cyclicErrorf(stageExtend, err)
	}
	ones := make([]uint8, he.Cols())
	for j := range ones {
		ones[j] = 1
	}
	if err := he.AppendRow(ones); err != nil {
		return nil, nil, cyclicErrorf(stageExtend, err)
	}

	return ge, he, nil
}

// Subcode returns a copy of G without its last rows rows. The caller must
// derive a fresh H for the reduced code; the old one no longer matches.
func Subcode(G *matrix.BitMatrix, rows int) (*matrix.BitMatrix, error) {
	if err := matrix.ValidateNotNil(G); err != nil {
		return nil, cyclicErrorf(stageSubcode, err)
	}
	if rows < 0 || rows >= G.Rows() {
		return nil, cyclicErrorf(stageSubcode, fmt.Errorf("rows=%d, k=%d: %w", rows, G.Rows(), ErrInvalidSubcode))
	}
	out := G.Clone()
	if err := out.Truncate(G.Rows() - rows); err != nil {
		return nil, cyclicErrorf(stageSubcode, err)
	}

	return out, nil
}

// Systematic reduces G in place to [I_k | P].
//
// Errors:
//   - ErrRankDeficient when fewer than k pivots exist.
//   - ErrAssumedLayoutViolation when the pivots are not the leading k columns.
func Systematic(G *matrix.BitMatrix) error {
	pivots, err := matrix.Reduce(G)
	if err != nil {
		return cyclicErrorf(stageSystematic, err)
	}
	if len(pivots) < G.Rows() {
		return cyclicErrorf(stageSystematic, fmt.Errorf("rank %d < k=%d: %w", len(pivots), G.Rows(), ErrRankDeficient))
	}

	return checkSystematic(stageSystematic, G)
}

// checkSystematic verifies that the leading k×k block of G is I_k and that
// at least one parity column exists.
func checkSystematic(stage string, G *matrix.BitMatrix) error {
	k, n := G.Shape()
	if k >= n {
		return cyclicErrorf(stage, fmt.Errorf("k=%d, n=%d: %w", k, n, ErrAssumedLayoutViolation))
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v, err := G.At(i, j)
			if err != nil {
				return cyclicErrorf(stage, err)
			}
			if (v == 1) != (i == j) {
				return cyclicErrorf(stage, fmt.Errorf("cell (%d,%d)=%d: %w", i, j, v, ErrAssumedLayoutViolation))
			}
		}
	}

	return nil
}

// ParityFromSystematic derives H = [Pᵀ | I_{n−k}] from G = [I_k | P].
// The layout is re-verified; a G that is not systematic yields
// ErrAssumedLayoutViolation instead of a wrong H.
func ParityFromSystematic(G *matrix.BitMatrix) (*matrix.BitMatrix, error) {
	if err := matrix.ValidateNotNil(G); err != nil {
		return nil, cyclicErrorf(stageDeriveH, err)
	}
	if err := checkSystematic(stageDeriveH, G); err != nil {
		return nil, err
	}
	k, n := G.Shape()
	H, err := matrix.NewBitMatrix(n-k, n)
	if err != nil {
		return nil, cyclicErrorf(stageDeriveH, err)
	}
	for i := 0; i < n-k; i++ {
		for j := 0; j < k; j++ {
			v, _ := G.At(j, k+i) // Pᵀ[i][j] = P[j][i]
			if v == 1 {
				_ = H.Set(i, j, 1)
			}
		}
		_ = H.Set(i, k+i, 1)
	}

	return H, nil
}

// Build constructs the systematic (G, H) pair of the code described by p,
// optionally extended and/or reduced to a subcode.
//
// Stages run in this order: cyclicity check, raw G/H, extension, subcode
// reduction, elimination, H derivation. Any failure aborts the build and no
// partial matrices are returned.
func Build(p Params, opts ...Option) (*Code, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := o.log.With().Int("n", p.N).Int("k", p.K).Str("g", p.Generator.Octal()).Logger()

	h, err := ParityPolynomial(p.N, p.Generator)
	if err != nil {
		return nil, err
	}
	G, err := RawGenerator(p.N, p.Generator)
	if err != nil {
		return nil, err
	}
	H, err := RawParityCheck(p.N, h)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("h", h.Octal()).Msg("raw generator and parity-check matrices built")

	if o.extend {
		if G, H, err = Extend(G, H); err != nil {
			return nil, err
		}
		log.Debug().Int("n_ext", G.Cols()).Msg("code extended by overall parity bit")
	}
	if err = Orthogonal(G, H); err != nil {
		return nil, err
	}

	if o.subcode != 0 {
		if G, err = Subcode(G, o.subcode); err != nil {
			return nil, err
		}
		log.Debug().Int("removed", o.subcode).Int("k_sub", G.Rows()).Msg("subcode rows removed")
	}

	if err = Systematic(G); err != nil {
		return nil, err
	}
	if H, err = ParityFromSystematic(G); err != nil {
		return nil, err
	}
	log.Debug().Int("rows", H.Rows()).Msg("systematic parity-check matrix derived")

	return &Code{
		N:         G.Cols(),
		K:         G.Rows(),
		Generator: p.Generator.Clone(),
		Parity:    h,
		G:         G,
		H:         H,
		Extended:  o.extend,
		Removed:   o.subcode,
	}, nil
}
