// SPDX-License-Identifier: MIT

package rates

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord indicates a line that does not parse as a record.
	ErrMalformedRecord = errors.New("rates: malformed record")

	// ErrNoTrials indicates a record with zero trials or a non-positive length.
	ErrNoTrials = errors.New("rates: record has no trials")

	// ErrInconsistentRecord indicates error counts exceeding what the trials allow.
	ErrInconsistentRecord = errors.New("rates: error counts exceed trial count")

	// ErrMalformedCurve indicates a curve row that is not two numbers.
	ErrMalformedCurve = errors.New("rates: malformed curve row")
)

func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
