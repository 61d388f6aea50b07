// SPDX-License-Identifier: MIT

package cyclic

import (
	"errors"
	"fmt"
)

var (
	// ErrNonCyclicGenerator indicates that the generator polynomial does not
	// divide xⁿ+1; no matrices are produced.
	ErrNonCyclicGenerator = errors.New("cyclic: generator does not divide x^n+1")

	// ErrRankDeficient indicates that elimination found fewer independent rows
	// than the declared dimension k.
	ErrRankDeficient = errors.New("cyclic: generator matrix is rank deficient")

	// ErrAssumedLayoutViolation indicates that G is not of the form [I_k | P],
	// so H = [Pᵀ | I] would be wrong.
	ErrAssumedLayoutViolation = errors.New("cyclic: generator matrix is not in systematic form")

	// ErrInvalidParameters indicates inconsistent n, k and generator degree.
	ErrInvalidParameters = errors.New("cyclic: invalid code parameters")

	// ErrInvalidSubcode indicates a subcode row count outside [0, k).
	ErrInvalidSubcode = errors.New("cyclic: invalid subcode row count")

	// ErrNotOrthogonal indicates G·Hᵀ ≠ 0.
	ErrNotOrthogonal = errors.New("cyclic: G·Hᵀ is not zero")
)

// cyclicErrorf tags err with the stage that produced it.
func cyclicErrorf(stage string, err error) error {
	return fmt.Errorf("cyclic.%s: %w", stage, err)
}
