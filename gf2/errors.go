// SPDX-License-Identifier: MIT

package gf2

import "errors"

var (
	// ErrNonBinary indicates a coefficient other than 0 or 1.
	ErrNonBinary = errors.New("gf2: coefficient must be 0 or 1")

	// ErrBadDigit indicates a character outside the octal alphabet.
	ErrBadDigit = errors.New("gf2: invalid octal digit")

	// ErrNegativeDegree indicates a negative degree or length request.
	ErrNegativeDegree = errors.New("gf2: degree must be non-negative")
)
