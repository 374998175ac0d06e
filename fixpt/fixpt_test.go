// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixpt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundShift(t *testing.T) {
	tests := []struct {
		x    int64
		n    uint
		want int64
	}{
		{5, 1, 3},
		{-5, 1, -3},
		{4, 1, 2},
		{7, 2, 2},
		{6, 2, 2},
		{-6, 2, -2},
		{-7, 2, -2},
		{1, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundShift(tt.x, tt.n), "x=%d n=%d", tt.x, tt.n)
	}
}

func TestDivRound(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{7, 2, 4},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 4},
		{5, 3, 2},
		{4, 3, 1},
		{-5, 3, -2},
		{-4, 3, -1},
		{6, 4, 2},
		{1, 3, 0},
		{0, 5, 0},
		{1500, 1000, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DivRound(tt.a, tt.b), "a=%d b=%d", tt.a, tt.b)
	}
}

func TestSaturate(t *testing.T) {
	v, sat := SatAdd(math.MaxInt32, 1)
	assert.True(t, sat)
	assert.Equal(t, int32(math.MaxInt32), v)
	v, sat = SatAdd(math.MinInt32, -1)
	assert.True(t, sat)
	assert.Equal(t, int32(math.MinInt32), v)
	v, sat = SatAdd(2, 3)
	assert.False(t, sat)
	assert.Equal(t, int32(5), v)

	v, sat = SatShl(1<<24, 7)
	assert.True(t, sat)
	assert.Equal(t, int32(math.MaxInt32), v)
	v, sat = SatShl(-(1 << 24), 7)
	assert.False(t, sat, "-1.0 is representable in S31")
	assert.Equal(t, int32(math.MinInt32), v)

	v, _ = MulS(1<<14, 3<<14, 14)
	assert.Equal(t, int32(3<<14), v)
}

func TestFloat(t *testing.T) {
	v, sat := FromFloat(0.5, 24)
	assert.False(t, sat)
	assert.Equal(t, int32(1<<23), v)
	v, sat = FromFloat(1, 31)
	assert.True(t, sat)
	assert.Equal(t, int32(math.MaxInt32), v)
	assert.InDelta(t, 0.25, ToFloat(1<<12, 14), 1.0e-7)
}

func TestQuantizeBoundary(t *testing.T) {
	for nbc := MinNbc; nbc <= MaxNbc; nbc++ {
		mx := MaxCode(nbc)
		c, sat := Quantize(math.MaxInt32, nbc)
		assert.True(t, sat, "nbc %d", nbc)
		assert.Equal(t, mx, c)

		c, sat = Quantize(math.MinInt32, nbc)
		assert.True(t, sat, "nbc %d", nbc)
		assert.Equal(t, -mx, c, "never the signed-zero code")

		c, sat = Quantize(-1, nbc)
		assert.False(t, sat)
		assert.Equal(t, NegZero(nbc), c)
		assert.Equal(t, int32(-1), Expand(c, nbc))

		c, _ = Quantize(0, nbc)
		assert.Equal(t, int32(0), c)
	}
}

func TestQuantizeRound(t *testing.T) {
	// 8 bits: one code step is 2^24 in S31
	c, _ := Quantize(3<<23, 8)
	assert.Equal(t, int32(2), c, "1.5 steps rounds away from zero")
	c, _ = Quantize(-(3 << 23), 8)
	assert.Equal(t, int32(-2), c)
	w, _ := QuantExpand(5<<24, 8)
	assert.Equal(t, int32(5<<24), w)
}
