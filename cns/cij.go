// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"fmt"

	"github.com/emer/cns/fixpt"
	"github.com/emer/cns/rnd"
)

// lane is the Cij lane block of the current connection.  Cloned subarbors
// replay the weights of the first subarbor.
func (g *Gen) lane() int32 {
	if g.ct.Rules.Sa == SaClone {
		return g.isyn % g.ct.Nsa
	}
	return g.isyn
}

// WtSeed returns the weight lane seed of the current connection, before any
// draws
func (g *Gen) WtSeed() int32 {
	return rnd.Skipped(g.st.CSeed, uint64(g.lane())*CDraws)
}

// RestartSeed returns the weight lane seed captured at the first connection
// of the cell, which every cloned subarbor restarts from
func (g *Gen) RestartSeed() int32 {
	return g.st.CSeed
}

// Cij returns the weight of the current connection, S31.  Generated weights
// are returned as they will be fetched back: quantized to Nbc bits and
// expanded.  Weights that saturate are counted in Stats.NSat.  Hand-vision
// connections carry no weight.
func (g *Gen) Cij() int32 {
	if g.cijOK {
		return g.cij
	}
	ct := g.ct
	if ct == nil || g.nval == 0 {
		return 0
	}
	g.cijOK = true
	if ct.Rules.First == LNone {
		g.cijCode = 0
		g.cij = 0
		return 0
	}
	cp := &ct.Cij
	var w int32
	var sat bool
	switch ct.Rules.Cij {
	case CijFetch:
		g.cijCode = int32(g.mem.Cij[g.mem.Row(g.grp.Cell)+int(g.nval-1)])
		g.cij = fixpt.Expand(g.cijCode, cp.Nbc)
		return g.cij
	case CijGaussian:
		s := g.WtSeed()
		w, sat = fixpt.SatShl(rnd.Ndev(&s, cp.Mean24, cp.Sigma24), 7)
	case CijGradient:
		w, sat = g.gradient()
	case CijExtern:
		w = int32(g.ext.Wt) << 16
	case CijMatrix, CijMatAvg:
		w, sat = g.matrix()
	default:
		g.fail(fatal(ErrCodeBadRule, g.Ly.Nm, g.ict, int64(ct.Rules.Cij), fmt.Sprintf("weight strategy %v cannot generate", ct.Rules.Cij)))
		g.cij = 0
		return 0
	}
	code, qsat := fixpt.Quantize(w, cp.Nbc)
	if sat || qsat {
		g.Stats.NSat++
	}
	g.cijCode = code
	g.cij = fixpt.Expand(code, cp.Nbc)
	return g.cij
}

// gradient interpolates the corner weights bilinearly at the position of
// the target group, after mirroring and rotating the layer, and adds noise
func (g *Gen) gradient() (int32, bool) {
	cp := &g.ct.Cij
	ly := g.Ly
	const one = int64(1) << 16
	fx := frac16(g.grp.Gx, ly.NGx)
	fy := frac16(g.grp.Gy, ly.NGy)
	if cp.Mirror {
		fx = one - fx
	}
	for r := mod32(cp.Rot, 4); r > 0; r-- {
		fx, fy = fy, one-fx
	}
	c := &cp.Corners24
	bot := int64(c[0]) + fixpt.RoundShift((int64(c[1])-int64(c[0]))*fx, 16)
	top := int64(c[2]) + fixpt.RoundShift((int64(c[3])-int64(c[2]))*fx, 16)
	v := bot + fixpt.RoundShift((top-bot)*fy, 16)
	s := g.WtSeed()
	v += int64(rnd.Noise(&s, 0, cp.Noise24, cp.Frac31))
	w24, sat := fixpt.Sat(v)
	w, sat2 := fixpt.SatShl(w24, 7)
	return w, sat || sat2
}

// frac16 is the position of i in [0, n-1] as an S16 fraction
func frac16(i, n int32) int64 {
	if n <= 1 {
		return 0
	}
	return (int64(i) << 16) / int64(n-1)
}

// matrix looks the weight up in the coefficient matrix, averaging AvgN
// entries for MatAvg
func (g *Gen) matrix() (int32, bool) {
	ct := g.ct
	cp := &ct.Cij
	vals := cp.Mat.Values
	n := int32(len(vals))
	i := g.isyn
	if cp.Share {
		i %= ct.Nsa
	}
	m := i / cp.MatStride
	if ct.Rules.Cij == CijMatrix {
		return fixpt.FromFloat(vals[m%n], 31)
	}
	var sum float32
	for j := int32(0); j < cp.AvgN; j++ {
		sum += vals[(m*cp.AvgN+j)%n]
	}
	return fixpt.FromFloat(sum/float32(cp.AvgN), 31)
}
