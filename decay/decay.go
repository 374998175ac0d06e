// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decay provides the fixed-point persistence filter used by amplification
and self-input computations: each cycle, a persistent value is multiplied by a
decay factor omega and a new input is added, in one of three forms
(exponential, limiting, saturating).
*/
package decay

import (
	"github.com/emer/cns/fixpt"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// OmegaShift is the binary scale of Omega (S15)
const OmegaShift = 15

// Kinds of decay
type Kinds int32

//go:generate stringer -type=Kinds

var KiT_Kinds = kit.Enums.AddEnum(KindsN, kit.NotBitFlag, nil)

func (ev Kinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Kinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Exponential: v = in + omega*old
	Exponential Kinds = iota

	// Limiting: exponential, then the magnitude is clamped to Limit
	Limiting

	// Saturating: the new input is scaled by the remaining headroom below
	// Limit, so the value approaches Limit asymptotically
	Saturating

	KindsN
)

// Params are the decay parameters for one persistent variable
type Params struct {
	Kind     Kinds   `desc:"form of the decay"`
	HalfLife float32 `def:"0" desc:"half-life in cycles -- if > 0, Omega is computed from it in Update"`
	Omega    int32   `def:"16384" desc:"persistence factor per cycle, S15 (32768 = no decay)"`
	Limit    int32   `desc:"magnitude limit for Limiting and Saturating kinds, in the scale of the decayed variable -- must be > 0 for those kinds"`
}

func (dp *Params) Defaults() {
	dp.Kind = Exponential
	dp.HalfLife = 0
	dp.Omega = 1 << (OmegaShift - 1)
	dp.Limit = 1 << 14
	dp.Update()
}

// Update computes Omega from HalfLife when HalfLife is set
func (dp *Params) Update() {
	if dp.HalfLife > 0 {
		om := mat32.Pow(0.5, 1/dp.HalfLife)
		dp.Omega, _ = fixpt.FromFloat(om, OmegaShift)
	}
	if dp.Omega > 1<<OmegaShift {
		dp.Omega = 1 << OmegaShift
	}
	if dp.Omega < 0 {
		dp.Omega = 0
	}
}

// Apply returns the new persistent value given the old value and new input.
// The bool reports whether any step saturated.
func (dp *Params) Apply(old, in int32) (int32, bool) {
	dcy, sat := fixpt.MulS(old, dp.Omega, OmegaShift)
	switch dp.Kind {
	case Limiting:
		v, s2 := fixpt.SatAdd(in, dcy)
		if dp.Limit > 0 {
			if v > dp.Limit {
				return dp.Limit, true
			}
			if v < -dp.Limit {
				return -dp.Limit, true
			}
		}
		return v, sat || s2
	case Saturating:
		if dp.Limit <= 0 {
			return dcy, sat
		}
		ad := dcy
		if ad < 0 {
			ad = -ad
		}
		room := int64(dp.Limit) - int64(ad)
		if room < 0 {
			room = 0
		}
		add := fixpt.DivRound(int64(in)*room, int64(dp.Limit))
		v, s2 := fixpt.Sat(int64(dcy) + add)
		return v, sat || s2
	}
	v, s2 := fixpt.SatAdd(in, dcy)
	return v, sat || s2
}
