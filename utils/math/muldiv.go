// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import "math/bits"

// MulDiv64 returns floor(x * n / d) computed with a 128-bit intermediate, so
// the product never wraps. Requires d != 0 and a quotient that fits in 64
// bits; both hold whenever n <= d, which callers scaling a value by a
// fraction n/d guarantee.
func MulDiv64(x, n, d uint64) uint64 {
	hi, lo := bits.Mul64(x, n)
	q, _ := bits.Div64(hi, lo, d)
	return q
}
