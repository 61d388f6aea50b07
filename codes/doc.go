// SPDX-License-Identifier: MIT

// Package codes names the cyclic codes used throughout the tool and carries
// the precomputed syndrome tables they were originally evaluated with.
//
// Presets (generator in octal, highest-degree coefficient first):
//
//	hamming-7-4    Hamming(7,4)      g = 13
//	bch-32-16      BCH(31,16)  + extension                  → (32,16)
//	bch-64-32      BCH(63,36)  + extension, 4 rows dropped  → (64,32)
//	bch-128-64     BCH(127,64) + extension                  → (128,64)
//	bch-256-128    BCH(255,131)+ extension, 3 rows dropped  → (256,128)
//
// The two largest presets have redundancy above syndrome.MaxWidth; they build
// generator and parity-check matrices but no syndrome table.
//
// Fixtures are fixed syndrome tables stored verbatim. Every accessor returns
// a fresh copy.
package codes
