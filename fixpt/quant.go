// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixpt

// MaxCode returns the largest magnitude code for nbc bits
func MaxCode(nbc int) int32 {
	return int32(1)<<(nbc-1) - 1
}

// NegZero returns the signed-zero code for nbc bits: the most negative
// code, which Quantize never produces for any other value.
func NegZero(nbc int) int32 {
	return -(int32(1) << (nbc - 1))
}

// Quantize reduces an S31 weight to an nbc-bit signed code.  The weight is
// rounded to nearest at 32-nbc bits, then its magnitude is clamped to MaxCode,
// so a weight at or beyond full scale never wraps.  A negative weight that
// rounds to zero is encoded as NegZero.  The bool reports a clamp.
func Quantize(w int32, nbc int) (int32, bool) {
	sh := uint(32 - nbc)
	c := RoundShift(int64(w), sh)
	mx := int64(MaxCode(nbc))
	switch {
	case c > mx:
		return int32(mx), true
	case c < -mx:
		return int32(-mx), true
	case c == 0 && w < 0:
		return NegZero(nbc), false
	}
	return int32(c), false
}

// Expand returns the S31 weight for an nbc-bit code.  The signed-zero code
// expands to -1, the smallest negative S31 value, so the sign survives.
func Expand(c int32, nbc int) int32 {
	if c == NegZero(nbc) {
		return -1
	}
	return c << uint(32-nbc)
}

// QuantExpand quantizes w and expands it back, giving the weight exactly as a
// stored-and-fetched connection will see it.
func QuantExpand(w int32, nbc int) (int32, bool) {
	c, sat := Quantize(w, nbc)
	return Expand(c, nbc), sat
}
