// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rnd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipMatchesStepping(t *testing.T) {
	seeds := []int32{0, 1, 1009, 123456789, math.MaxInt32, -1, -987654321}
	counts := []uint64{0, 1, 2, 17, 1023, 1 << 20}
	for _, s0 := range seeds {
		for _, n := range counts {
			step := s0
			for i := uint64(0); i < n; i++ {
				Udev(&step)
			}
			skip := s0
			Skip(&skip, n)
			if n == 0 {
				assert.Equal(t, s0, skip, "zero skip must not touch the seed")
				continue
			}
			require.Equal(t, step, skip, "seed %d skip %d", s0, n)
			assert.Equal(t, step, Skipped(s0, n))
		}
	}
}

func TestUdevRange(t *testing.T) {
	seed := int32(-5)
	for i := 0; i < 10000; i++ {
		u := Udev(&seed)
		require.GreaterOrEqual(t, u, int32(0))
		require.Equal(t, u, seed)
	}
}

func TestPowCompose(t *testing.T) {
	a := Pow(300).Then(Pow(77))
	b := Pow(377)
	assert.Equal(t, b, a)
	assert.Equal(t, Ident, Pow(0))
	assert.Equal(t, Step, Pow(1))
}

func TestUdevN(t *testing.T) {
	seed := int32(42)
	var hist [7]int
	for i := 0; i < 7000; i++ {
		v := UdevN(&seed, 7)
		require.True(t, v >= 0 && v < 7)
		hist[v]++
	}
	for i, h := range hist {
		assert.InDelta(t, 1000, h, 150, "bin %d", i)
	}
	s2 := int32(42)
	UdevN(&s2, 0)
	assert.Equal(t, Skipped(42, 1), s2)
}

func TestNdev(t *testing.T) {
	seed := int32(7)
	s0 := seed
	v := Ndev(&seed, 12345, 0)
	assert.Equal(t, int32(12345), v, "zero sigma returns the mean")
	assert.Equal(t, Skipped(s0, 2), seed, "two draws per deviate")

	const n = 20000
	const sig = 1 << 20
	sum, sumsq := 0.0, 0.0
	for i := 0; i < n; i++ {
		x := float64(Ndev(&seed, 0, sig)) / sig
		sum += x
		sumsq += x * x
	}
	mean := sum / n
	vr := sumsq/n - mean*mean
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, vr, 0.05)

	seed = 3
	assert.Equal(t, int32(math.MaxInt32), Ndev(&seed, math.MaxInt32, 0))
}

func TestNoise(t *testing.T) {
	seed := int32(99)
	s0 := seed
	Noise(&seed, 0, 1000, 0)
	assert.Equal(t, Skipped(s0, 3), seed, "three draws regardless of outcome")

	seed = 99
	assert.Equal(t, int32(0), Noise(&seed, 500, 0, 0), "zero fraction never passes")
	seed = 99
	assert.Equal(t, int32(500), Noise(&seed, 500, 0, math.MaxInt32))
}
