// SPDX-License-Identifier: MIT

// Package rates turns Monte-Carlo simulation records into error-rate curves.
//
// A record line is
//
//	length,snr,trials,block_errors,bit_errors
//
// as written by the trial simulators. BER is always emitted; BLER is emitted
// only for records that pass a minimum-sample Gate, which bounds estimator
// variance in the low-probability tails.
//
// Curves are two-column tables (x, y) that can be shifted onto another SNR
// axis, sorted, and written back as CSV.
package rates
