// SPDX-License-Identifier: MIT

package rates

// Default minimum sample counts.
const (
	DefaultMinErrors  = 100
	DefaultMinCorrect = 100
)

// Gate requires at least MinErrors erroneous and MinCorrect correct trials
// before a block error rate is reported.
type Gate struct {
	MinErrors  int64 `yaml:"min_errors"`
	MinCorrect int64 `yaml:"min_correct"`
}

// DefaultGate returns the 100/100 gate.
func DefaultGate() Gate {
	return Gate{MinErrors: DefaultMinErrors, MinCorrect: DefaultMinCorrect}
}

// Admit reports whether r carries enough samples on both sides.
func (g Gate) Admit(r Record) bool {
	return r.BlockErrors >= g.MinErrors && r.Correct() >= g.MinCorrect
}
