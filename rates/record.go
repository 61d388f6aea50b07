// SPDX-License-Identifier: MIT

package rates

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record aggregates the trials run at one SNR point.
type Record struct {
	Length      int     // bits per block
	SNR         float64 // dB
	Trials      int64
	BlockErrors int64
	BitErrors   int64
}

// Validate checks the counts for internal consistency.
func (r Record) Validate() error {
	if r.Trials <= 0 || r.Length <= 0 {
		return fmt.Errorf("snr=%v: %w", r.SNR, ErrNoTrials)
	}
	if r.BlockErrors < 0 || r.BitErrors < 0 ||
		r.BlockErrors > r.Trials || r.BitErrors > r.Trials*int64(r.Length) ||
		r.BitErrors < r.BlockErrors {
		return fmt.Errorf("snr=%v: %w", r.SNR, ErrInconsistentRecord)
	}

	return nil
}

// Correct returns the number of error-free trials.
func (r Record) Correct() int64 { return r.Trials - r.BlockErrors }

// BER returns bit_errors / (trials · length).
func (r Record) BER() float64 {
	if r.Trials <= 0 || r.Length <= 0 {
		return 0
	}

	return float64(r.BitErrors) / (float64(r.Trials) * float64(r.Length))
}

// BLER returns block_errors / trials and whether the record passed the gate.
func (r Record) BLER(g Gate) (float64, bool) {
	if r.Trials <= 0 || !g.Admit(r) {
		return 0, false
	}

	return float64(r.BlockErrors) / float64(r.Trials), true
}

// ParseRecords reads comma-separated records. A leading header line (first
// field not numeric) and blank lines are skipped; fields may carry
// surrounding spaces.
func ParseRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []Record
	for first := true; ; first = false {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrMalformedRecord)
		}
		line, _ := cr.FieldPos(0)
		if first && isHeader(fields) {
			continue
		}
		rec, err := parseRecord(fields)
		if err != nil {
			return nil, lineErrorf(line, err)
		}
		out = append(out, rec)
	}

	return out, nil
}

func isHeader(fields []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	return err != nil
}

func parseRecord(fields []string) (Record, error) {
	if len(fields) != 5 {
		return Record{}, fmt.Errorf("%d fields, want 5: %w", len(fields), ErrMalformedRecord)
	}
	var (
		rec  Record
		errs [5]error
	)
	var l int64
	l, errs[0] = strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
	rec.Length = int(l)
	rec.SNR, errs[1] = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	rec.Trials, errs[2] = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	rec.BlockErrors, errs[3] = strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
	rec.BitErrors, errs[4] = strconv.ParseInt(strings.TrimSpace(fields[4]), 10, 64)
	for i, err := range errs {
		if err != nil {
			return Record{}, fmt.Errorf("field %d: %v: %w", i+1, err, ErrMalformedRecord)
		}
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// Trial is the outcome of one simulated block.
type Trial struct {
	SNR       float64
	BitErrors int64
}

// Aggregate folds per-trial outcomes into one Record per SNR, in order of
// first appearance. A trial with any bit error counts as a block error.
func Aggregate(length int, trials []Trial) []Record {
	index := make(map[float64]int)
	var out []Record
	for _, t := range trials {
		i, ok := index[t.SNR]
		if !ok {
			i = len(out)
			index[t.SNR] = i
			out = append(out, Record{Length: length, SNR: t.SNR})
		}
		out[i].Trials++
		out[i].BitErrors += t.BitErrors
		if t.BitErrors > 0 {
			out[i].BlockErrors++
		}
	}

	return out
}
