// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rnd

import "math"

const (
	// ndevK is sqrt(6) in S14, which scales the sum of two uniform draws
	// to unit variance
	ndevK = 40132

	// NdevShift is the binary scale of the deviate multiplying sigma
	NdevShift = 24
)

// Ndev returns a normal-like deviate with given mean and sigma, which share
// whatever fixed-point scale the caller uses.  It is built from exactly two
// draws: their centered sum is a triangular variate, rescaled to unit variance.
// The result saturates to the int32 range.
func Ndev(seed *int32, mean, sigma int32) int32 {
	u1 := int64(Udev(seed))
	u2 := int64(Udev(seed))
	d := (u1 + u2 - S31) >> 7 // S24, in [-1, 1)
	z := (d * ndevK) >> 14    // S24, unit variance
	v := int64(mean) + ((z * int64(sigma)) >> NdevShift)
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// Noise is the thresholded noise generator: a first draw is compared against
// frac (an S31 fraction), then an Ndev deviate is drawn.  The deviate is
// returned if the first draw was below frac, else 0.  Three draws are always
// consumed, so the stream position never depends on the outcome.
func Noise(seed *int32, mean, sigma, frac int32) int32 {
	u := Udev(seed)
	v := Ndev(seed, mean, sigma)
	if u < frac {
		return v
	}
	return 0
}
