// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fixpt holds the fixed-point arithmetic conventions shared by connection
generation and its numeric consumers.

Values are scaled integers, written Sn for a scale of 2^n (S31 has 1.0 at 2^31,
so it spans [-1, 1)).  All operations here round half away from zero when they
drop bits, and saturate rather than wrap when a result leaves the int32 range.
Operations that saturate report it, so callers can keep an overflow count.
*/
package fixpt

import (
	"math"

	"github.com/goki/mat32"
)

const (
	// MaxS is the largest int32 value
	MaxS = math.MaxInt32

	// MinS is the smallest int32 value
	MinS = math.MinInt32

	// MinNbc and MaxNbc bound the number of bits in a stored weight code
	MinNbc = 2
	MaxNbc = 16
)

// Sat saturates a 64-bit intermediate to int32, returning true if it clamped
func Sat(x int64) (int32, bool) {
	switch {
	case x > MaxS:
		return MaxS, true
	case x < MinS:
		return MinS, true
	}
	return int32(x), false
}

// RoundShift shifts x right by n bits, rounding half away from zero
func RoundShift(x int64, n uint) int64 {
	if n == 0 {
		return x
	}
	half := int64(1) << (n - 1)
	if x < 0 {
		return -((-x + half) >> n)
	}
	return (x + half) >> n
}

// DivRound returns a/b rounded half away from zero.  b must not be 0.
func DivRound(a, b int64) int64 {
	q := a / b
	r := a % b
	if r < 0 {
		r = -r
	}
	ab := b
	if ab < 0 {
		ab = -ab
	}
	if 2*r >= ab {
		if (a < 0) != (b < 0) {
			q--
		} else {
			q++
		}
	}
	return q
}

// SatAdd returns a+b saturated to int32
func SatAdd(a, b int32) (int32, bool) {
	return Sat(int64(a) + int64(b))
}

// SatShl returns a shifted left by n bits, saturated to int32
func SatShl(a int32, n uint) (int32, bool) {
	if n >= 32 {
		if a == 0 {
			return 0, false
		}
		if a > 0 {
			return MaxS, true
		}
		return MinS, true
	}
	return Sat(int64(a) << n)
}

// MulS returns a*b shifted right by n with rounding, saturated to int32.
// For a in Sk and b in Sn the result is in Sk.
func MulS(a, b int32, n uint) (int32, bool) {
	return Sat(RoundShift(int64(a)*int64(b), n))
}

// FromFloat converts a float to Sn fixed point with rounding and saturation
func FromFloat(f float32, n uint) (int32, bool) {
	v := float64(mat32.Round(f*float32(int64(1)<<n)))
	switch {
	case v >= MaxS:
		return MaxS, v > MaxS
	case v <= MinS:
		return MinS, v < MinS
	}
	return int32(v), false
}

// ToFloat converts an Sn fixed point value to float
func ToFloat(v int32, n uint) float32 {
	return float32(v) / float32(int64(1)<<n)
}
