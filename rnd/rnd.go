// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rnd provides the deterministic seed stream used by connection generation.

The stream is a 31-bit linear congruential generator.  Each draw replaces the
seed with the next value of the recurrence and returns it, so a seed fully
describes a position in the stream.  Skip advances a seed by any number of draws
in O(log n) using the affine form of the recurrence, giving exactly the same
result as stepping one draw at a time, including all 32-bit wraparound.
*/
package rnd

const (
	// Mult is the multiplier of the recurrence
	Mult uint32 = 1103515245

	// Incr is the increment of the recurrence
	Incr uint32 = 12345

	// Mask keeps the low 31 bits of a seed
	Mask uint32 = 0x7fffffff

	// S31 is the value 1.0 in S31 fixed point, one more than the largest draw
	S31 = int64(1) << 31
)

// Affine is an n-step map of the recurrence: s' = (A*s + C) mod 2^32,
// masked to 31 bits when applied.
type Affine struct {
	A uint32
	C uint32
}

// Step is the single draw map
var Step = Affine{A: Mult, C: Incr}

// Ident is the zero draw map
var Ident = Affine{A: 1, C: 0}

// pow2 holds the maps for 2^k draws, k = 0..63
var pow2 [64]Affine

func init() {
	pow2[0] = Step
	for k := 1; k < 64; k++ {
		pow2[k] = pow2[k-1].Then(pow2[k-1])
	}
}

// Apply returns the seed after this map is applied to seed
func (af Affine) Apply(seed int32) int32 {
	return int32((af.A*uint32(seed) + af.C) & Mask)
}

// Then returns the map that applies af first and then nx
func (af Affine) Then(nx Affine) Affine {
	return Affine{A: nx.A * af.A, C: nx.A*af.C + nx.C}
}

// Pow returns the map equivalent to n single draws
func Pow(n uint64) Affine {
	r := Ident
	for k := 0; n != 0; k++ {
		if n&1 != 0 {
			r = r.Then(pow2[k])
		}
		n >>= 1
	}
	return r
}

// Udev draws the next value from the stream at seed, returning it in [0, 2^31)
// and leaving seed at the new position.
func Udev(seed *int32) int32 {
	*seed = Step.Apply(*seed)
	return *seed
}

// Skip advances seed by n draws, discarding the values
func Skip(seed *int32, n uint64) {
	if n == 0 {
		return
	}
	*seed = Pow(n).Apply(*seed)
}

// Skipped returns the seed that results from n draws starting at seed
func Skipped(seed int32, n uint64) int32 {
	Skip(&seed, n)
	return seed
}

// UdevN returns a draw reduced to [0, n), taking the high-order bits of the
// draw, which are the better-mixed ones for this kind of generator.
// n <= 0 returns 0 but still consumes the draw.
func UdevN(seed *int32, n int32) int32 {
	u := Udev(seed)
	if n <= 0 {
		return 0
	}
	return int32((int64(u) * int64(n)) >> 31)
}
