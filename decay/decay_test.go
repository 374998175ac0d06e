// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decay

import (
	"testing"

	"github.com/emer/cns/fixpt"
	"github.com/goki/mat32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-3)

func TestExponential(t *testing.T) {
	dp := Params{}
	dp.Defaults()
	v := int32(1 << 14)
	v, _ = dp.Apply(v, 0)
	if v != 1<<13 {
		t.Errorf("half decay: got %v want %v\n", v, 1<<13)
	}
	v, _ = dp.Apply(v, 100)
	if v != 1<<12+100 {
		t.Errorf("decay plus input: got %v want %v\n", v, 1<<12+100)
	}
}

func TestHalfLife(t *testing.T) {
	dp := Params{}
	dp.Defaults()
	dp.HalfLife = 4
	dp.Update()
	om := fixpt.ToFloat(dp.Omega, OmegaShift)
	dif := mat32.Abs(om - mat32.Pow(0.5, 0.25))
	if dif > difTol {
		t.Errorf("omega from half-life: %v dif %v\n", om, dif)
	}
	v := int32(1 << 20)
	for i := 0; i < 4; i++ {
		v, _ = dp.Apply(v, 0)
	}
	got := fixpt.ToFloat(v, 20)
	if mat32.Abs(got-0.5) > difTol {
		t.Errorf("after one half-life: %v\n", got)
	}
}

func TestLimiting(t *testing.T) {
	dp := Params{}
	dp.Defaults()
	dp.Kind = Limiting
	dp.Limit = 1000
	v, sat := dp.Apply(1500, 400)
	if v != 1000 || !sat {
		t.Errorf("limit: got %v sat %v\n", v, sat)
	}
	v, _ = dp.Apply(-3000, -10)
	if v != -1000 {
		t.Errorf("negative limit: got %v\n", v)
	}
}

func TestSaturating(t *testing.T) {
	dp := Params{}
	dp.Defaults()
	dp.Kind = Saturating
	dp.Limit = 1 << 14
	dp.Omega = 1 << OmegaShift
	v := int32(0)
	prev := int32(-1)
	for i := 0; i < 200; i++ {
		v, _ = dp.Apply(v, 1<<12)
		if v < prev {
			t.Errorf("saturating value decreased at %d: %v < %v\n", i, v, prev)
		}
		if v > dp.Limit {
			t.Errorf("saturating value exceeded limit: %v\n", v)
		}
		prev = v
	}
	if dp.Limit-v > 16 {
		t.Errorf("saturating value did not approach limit: %v\n", v)
	}
}

func TestSaturatingRounds(t *testing.T) {
	dp := Params{}
	dp.Defaults()
	dp.Kind = Saturating
	dp.Limit = 1000
	dp.Omega = 1 << OmegaShift
	tests := []struct {
		old, in, want int32
	}{
		{500, 3, 502},
		{500, -3, 498},
		{500, 1, 501},
		{500, 2, 501},
		{500, -1, 499},
		{-500, 3, -498},
		{0, 7, 7},
		{1000, 50, 1000},
	}
	for _, tt := range tests {
		v, _ := dp.Apply(tt.old, tt.in)
		if v != tt.want {
			t.Errorf("Apply(%d, %d) = %d, want %d\n", tt.old, tt.in, v, tt.want)
		}
	}
}
