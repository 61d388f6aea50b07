// SPDX-License-Identifier: MIT

package cyclic

import "github.com/rs/zerolog"

// Option mutates build options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	extend  bool
	subcode int
	log     zerolog.Logger
}

func defaultOptions() options {
	return options{log: zerolog.Nop()}
}

// WithExtension appends an overall parity bit (n → n+1, minimum distance +1).
func WithExtension() Option {
	return func(o *options) { o.extend = true }
}

// WithSubcode drops the last rows rows of G (k → k−rows).
// Negative values are rejected by Build with ErrInvalidSubcode.
func WithSubcode(rows int) Option {
	return func(o *options) { o.subcode = rows }
}

// WithLogger routes per-stage debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}
