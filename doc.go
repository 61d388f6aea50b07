// Package secrecy measures how much a binary cyclic code hides from an
// eavesdropper who only sees its syndrome.
//
// What is in the box?
//
//	gf2/: binary polynomials: multiply, divide, remainder, octal parsing
//	matrix/: bit-packed GF(2) matrices, products, Gauss–Jordan reduction
//	cyclic/: G and H from (n, k, g): extension, subcodes, systematic form
//	syndrome/: H's columns packed into per-position syndrome integers
//	equivocation/: syndrome distribution over a BSC(p) and its entropy
//	sweep/: parallel p-sweeps producing p,eq curves
//	codes/: named presets (Hamming, extended BCH) and fixed tables
//	bounds/: binary entropy, Fano bound, uncoded BPSK baselines
//	rates/: Monte-Carlo records to BER/BLER curves, shift and sort
//	cmd/secrecy: command-line front end
//
// Quick example (Hamming(7,4), all seven single-error syndromes distinct):
//
//	code, _ := cyclic.Build(cyclic.Params{N: 7, K: 4, Generator: g})
//	table, m, _ := syndrome.Extract(code.H)    // [6 3 7 5 4 2 1], m = 3
//	eq, _ := equivocation.Equivocation(table, m, 0.5, nil)
//	// eq == 3: at p = ½ the syndrome reveals nothing
//
//	go install github.com/katalvlaran/secrecy/cmd/secrecy@latest
package secrecy
