// SPDX-License-Identifier: MIT

package codes

import "github.com/katalvlaran/secrecy/syndrome"

// Fixture names accepted by Lookup.
const (
	FixtureH0       = "fixture-h0"
	FixtureH1       = "fixture-h1"
	FixtureBCH16x32 = "fixture-bch-16-32"
	FixtureBCH32x64 = "fixture-bch-32-64"
)

type fixture struct {
	table syndrome.Table
	m     int
}

var fixtures = map[string]fixture{
	FixtureH0:       {h0, 15},
	FixtureH1:       {h1, 15},
	FixtureBCH16x32: {bch16x32, 16},
	FixtureBCH32x64: {bch32x64, 32},
}

// H0 returns a (48, 33) code table with m = 15.
func H0() (syndrome.Table, int) { return h0.Clone(), 15 }

// H1 returns a (49, 34) code table with m = 15.
func H1() (syndrome.Table, int) { return h1.Clone(), 15 }

// BCH16x32 returns the extended BCH(32,16) table with m = 16. It equals the
// table of preset bch-32-16 with positions reversed.
func BCH16x32() (syndrome.Table, int) { return bch16x32.Clone(), 16 }

// BCH32x64 returns the extended BCH(64,32) table with m = 32. It equals the
// table of preset bch-64-32 with positions reversed.
func BCH32x64() (syndrome.Table, int) { return bch32x64.Clone(), 32 }

var h0 = syndrome.Table{
	1, 2, 4, 8, 16, 32, 64, 126, 128, 256, 512, 826, 1024, 2048, 3879, 4096,
	7163, 7913, 8192, 9215, 9632, 10552, 16384, 16975, 17378, 17779, 18843,
	19664, 21136, 21973, 22578, 23393, 24092, 24495, 25144, 26321, 26409, 26640,
	26663, 27411, 28092, 28622, 29302, 29977, 31397, 31871, 32395, 32607,
}

var h1 = syndrome.Table{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 3879, 4096, 5541, 7031,
	7160, 7913, 8192, 9215, 13987, 14289, 16384, 16975, 17378, 17579, 18413,
	18843, 18960, 19350, 19955, 21973, 23259, 23393, 24092, 24495, 25609, 25698,
	26321, 26409, 27411, 28092, 28133, 28622, 28816, 31397, 31675, 31871, 32153,
}

var bch16x32 = syndrome.Table{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768,
	60387, 15398, 30796, 61592, 2771, 5541, 11081, 22161, 44321, 45474, 34983,
	64174, 7871, 15741, 31481, 62961,
}

var bch32x64 = syndrome.Table{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768,
	65536, 131072, 262144, 524288, 1048576, 2097152, 4194304, 8388608, 16777216,
	33554432, 67108864, 134217728, 268435456, 536870912, 1073741824, 2147483648,
	2432887841, 3003593824, 4144792801, 2132534752, 4265069504, 1835891617,
	3671783233, 615973536, 1231947072, 2463894144, 3032152353, 4168556128,
	1642909921, 3285819841, 380743584, 761487168, 1522974336, 3045948672,
	4195882529, 1697824864, 3395649728, 97119649, 194239297, 388478593,
	776957185, 1553914369, 3107828737, 3816391712, 1475470433, 2950940865,
	3469049248, 210245473,
}
