// SPDX-License-Identifier: MIT

// Package bounds provides the closed-form reference curves plotted next to
// the syndrome equivocation: binary entropy, the Fano upper bound on
// residual uncertainty, and the uncoded BPSK/AWGN baselines.
//
// SNR values are Eb/N0 in dB with Eb = Es = 1.
package bounds

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidProbability indicates a probability outside [0, 1] or NaN.
	ErrInvalidProbability = errors.New("bounds: probability must be in [0, 1]")

	// ErrInvalidLength indicates a non-positive block length or bit count.
	ErrInvalidLength = errors.New("bounds: length must be positive")

	// ErrInvalidPathLoss indicates a non-positive distance or exponent.
	ErrInvalidPathLoss = errors.New("bounds: distance and path-loss exponent must be positive")
)

func checkProb(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("p=%v: %w", p, ErrInvalidProbability)
	}
	return nil
}

// BinaryEntropy returns h(p) = −p·log2 p − (1−p)·log2(1−p), with h(0) = h(1) = 0.
func BinaryEntropy(p float64) (float64, error) {
	if err := checkProb(p); err != nil {
		return 0, fmt.Errorf("BinaryEntropy: %w", err)
	}

	return binaryEntropy(p), nil
}

func binaryEntropy(p float64) float64 {
	if p == 0 || p == 1 {
		return 0
	}

	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}

// FanoBound returns the upper bound on H(M | Y) for a message of bits bits
// decoded with block error probability pe:
//
//	H ≤ h(pe) + pe·log2(2^bits − 1)
//
// The log term is evaluated as bits + log2(1 − 2^−bits) so it stays finite
// for any block length.
func FanoBound(pe float64, bits int) (float64, error) {
	if err := checkProb(pe); err != nil {
		return 0, fmt.Errorf("FanoBound: %w", err)
	}
	if bits < 1 {
		return 0, fmt.Errorf("FanoBound: bits=%d: %w", bits, ErrInvalidLength)
	}
	if pe == 0 {
		return 0, nil
	}

	return binaryEntropy(pe) + pe*log2Mersenne(bits), nil
}

// log2Mersenne returns log2(2^b − 1).
func log2Mersenne(b int) float64 {
	return float64(b) + math.Log1p(-math.Exp2(-float64(b)))/math.Ln2
}

// Q is the Gaussian tail probability Q(x) = ½·erfc(x/√2).
func Q(x float64) float64 {
	return 0.5 * math.Erfc(x/math.Sqrt2)
}

// UncodedBER returns the bit error rate of uncoded BPSK over AWGN:
// Q(√(2·Eb/N0)).
func UncodedBER(snrDB float64) float64 {
	snr := math.Pow(10, snrDB/10)

	return Q(math.Sqrt(2 * snr))
}

// UncodedBLER returns 1 − (1 − BER)^l for an uncoded block of l bits.
func UncodedBLER(snrDB float64, l int) (float64, error) {
	if l < 1 {
		return 0, fmt.Errorf("UncodedBLER: l=%d: %w", l, ErrInvalidLength)
	}

	return -math.Expm1(float64(l) * math.Log1p(-UncodedBER(snrDB))), nil
}

// UncodedEquivocation returns l·h(BER) bits for an uncoded block of l bits.
func UncodedEquivocation(snrDB float64, l int) (float64, error) {
	if l < 1 {
		return 0, fmt.Errorf("UncodedEquivocation: l=%d: %w", l, ErrInvalidLength)
	}

	return float64(l) * binaryEntropy(UncodedBER(snrDB)), nil
}

// EveDistance maps an eavesdropper SNR to her distance from the transmitter
// under a log-distance path-loss model, given Bob's SNR at distance dBob:
//
//	d_eve = 10^((snrBob + 10·γ·log10 dBob − snrEve) / (10·γ))
func EveDistance(snrBobDB, dBob, gamma, snrEveDB float64) (float64, error) {
	if dBob <= 0 || gamma <= 0 {
		return 0, fmt.Errorf("EveDistance: d=%v γ=%v: %w", dBob, gamma, ErrInvalidPathLoss)
	}
	exp := (snrBobDB + 10*gamma*math.Log10(dBob) - snrEveDB) / (10 * gamma)

	return math.Pow(10, exp), nil
}

// Grid returns the SNR points lo, lo+step, … strictly below hi.
func Grid(lo, hi, step float64) []float64 {
	if step <= 0 || hi <= lo {
		return nil
	}
	n := int(math.Ceil((hi - lo) / step))
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		if x >= hi {
			break
		}
		out = append(out, x)
	}

	return out
}
