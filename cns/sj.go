// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"github.com/emer/cns/fixpt"
	"github.com/goki/ki/ints"
)

// SrcData is the presynaptic data a connection type reads its source values
// from.  Only the field matching the source kind and color mode is used.
type SrcData struct {
	S     []int16                       `desc:"repertoire cell states, S14"`
	Phase []uint8                       `desc:"repertoire cell phases"`
	Pix   []byte                        `desc:"input array pixels, encoded per the connection type's color mode"`
	VGB   []byte                        `desc:"virtual group byte values"`
	VGF   []float32                     `desc:"virtual group float values"`
	Val   []int32                       `desc:"external values, S14"`
	User  func(lij int32, ch int) int32 `desc:"user callback returning an S14 value for a source and channel"`
}

// rgb returns the channels of pixel i of an input array as 8-bit values
func (sd *SrcData) rgb(col ColorModes, i int32) (r, g, b int32) {
	switch col {
	case Col8:
		p := int32(sd.Pix[i])
		return (p >> 5 & 7) * 255 / 7, (p >> 2 & 7) * 255 / 7, (p & 3) * 255 / 3
	case Col16:
		w := int32(sd.Pix[2*i])<<8 | int32(sd.Pix[2*i+1])
		return (w >> 11 & 31) * 255 / 31, (w >> 5 & 63) * 255 / 63, (w & 31) * 255 / 31
	case Col24, ColOpp:
		return int32(sd.Pix[3*i]), int32(sd.Pix[3*i+1]), int32(sd.Pix[3*i+2])
	}
	v := int32(sd.Pix[i])
	return v, v, v
}

// opponent channels clamped to [0, 255]
func opponent(r, g, b int32, ch ColorChans) int32 {
	var v int32
	switch ch {
	case ChRed:
		v = r - g
	case ChGreen:
		v = g - r
	case ChBlue:
		v = b - (r+g)/2
	default:
		v = (r+g)/2 - b
	}
	return int32(ints.MaxInt(int(v), 0))
}

// channel returns the channel read by the current connection
func (g *Gen) channel() ColorChans {
	ct := g.ct
	if ct.Chan == ChSub {
		return ColorChans(g.isyn % ct.Nsa % int32(ChSub))
	}
	return ct.Chan
}

// Sj returns the presynaptic value of the current connection, S14, from
// the given source data
func (g *Gen) Sj(src *SrcData) int32 {
	ct := g.ct
	if ct == nil || g.nval == 0 || src == nil {
		return 0
	}
	lij := g.lij
	switch ct.Rules.Sj {
	case SjRep:
		return int32(src.S[lij])
	case SjGray:
		return int32(src.Pix[lij]) << 6
	case SjCol8Chan, SjCol16Chan, SjCol24Chan:
		r, gr, b := src.rgb(ct.Color, lij)
		switch g.channel() {
		case ChRed:
			return r << 6
		case ChGreen:
			return gr << 6
		case ChBlue:
			return b << 6
		}
		return (r + gr + b) / 3 << 6
	case SjCol8Avg, SjCol16Avg, SjCol24Avg:
		r, gr, b := src.rgb(ct.Color, lij)
		return (r + gr + b) / 3 << 6
	case SjOppRG, SjOppGR, SjOppBY, SjOppYB, SjOppSub:
		r, gr, b := src.rgb(ColOpp, lij)
		return opponent(r, gr, b, g.oppChannel()) << 6
	case SjVGByte:
		return int32(src.VGB[lij]) << 6
	case SjVGFloat:
		v, _ := fixpt.FromFloat(src.VGF[lij], 14)
		return v
	case SjValue:
		return src.Val[lij]
	case SjUser:
		return src.User(lij, int(g.channel()))
	}
	return 0
}

// oppChannel is the opponent channel of the current connection
func (g *Gen) oppChannel() ColorChans {
	switch g.ct.Rules.Sj {
	case SjOppRG:
		return ChRed
	case SjOppGR:
		return ChGreen
	case SjOppBY:
		return ChBlue
	case SjOppYB:
		return ChAvg
	}
	return ColorChans(g.isyn % g.ct.Nsa % int32(ChSub))
}
