// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"testing"

	"github.com/emer/cns/rnd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// srcNet has a 3x3x2 repertoire source and a 2x2x1 target with one
// uniform connection type, configured by set before Build.  Non-repertoire
// sources are 6x6.
func srcNet(t *testing.T, kind SrcKinds, nc int32, set func(ct *ConnType)) (*CellType, *ConnType) {
	net := NewNetwork("Src")
	net.AddCellType("Src", 3, 3, 2)
	ly := net.AddCellType("Tgt", 2, 2, 1)
	ct := ly.AddConnType("Conn", kind, nc)
	if kind == SrcRep {
		ct.SrcName = "Src"
	} else {
		ct.SrcNx = 6
		ct.SrcNy = 6
	}
	ct.Opts.Set(KgU)
	if set != nil {
		set(ct)
	}
	require.NoError(t, net.Build())
	require.NoError(t, net.Dispatch(GenerateAll))
	return ly, ct
}

// eachConn calls fn at every valid connection of the cell
func eachConn(t *testing.T, ly *CellType, cell int32, fn func(g *Gen)) {
	g := NewGen(ly)
	require.NoError(t, g.NewCell(cell))
	require.NoError(t, g.Begin(0))
	n := 0
	for {
		_, ok, err := g.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		fn(g)
		n++
	}
	require.NoError(t, g.End())
	require.Greater(t, n, 0)
}

func fill(n int, pat ...byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = pat[i%len(pat)]
	}
	return b
}

func TestSj(t *testing.T) {
	s := make([]int16, 18)
	for i := range s {
		s[i] = int16(i*3 - 20)
	}
	vgf := make([]float32, 36)
	val := make([]int32, 36)
	for i := range vgf {
		vgf[i] = 0.5
		val[i] = int32(i)*100 - 1000
	}
	konst := func(v int32) func(lij, isyn int32) int32 {
		return func(lij, isyn int32) int32 { return v }
	}
	// 0xAE is 3-3-2 (5, 3, 2): (182, 109, 170)
	col8 := &SrcData{Pix: fill(36, 0xAE)}
	// 0x8410 is 5-6-5 (16, 32, 16): (131, 129, 131)
	col16 := &SrcData{Pix: fill(72, 0x84, 0x10)}
	col24 := &SrcData{Pix: fill(108, 30, 90, 200)}
	opp := &SrcData{Pix: fill(108, 200, 90, 30)}

	tests := []struct {
		name string
		kind SrcKinds
		set  func(ct *ConnType)
		rule SjRules
		src  *SrcData
		want func(lij, isyn int32) int32
	}{
		{"Rep", SrcRep, nil, SjRep, &SrcData{S: s},
			func(lij, isyn int32) int32 { return lij*3 - 20 }},
		{"Gray", SrcIA, nil, SjGray, &SrcData{Pix: fill(36, 200)}, konst(12800)},
		{"Col8Red", SrcIA, func(ct *ConnType) { ct.Color = Col8 }, SjCol8Chan, col8, konst(182 << 6)},
		{"Col8Green", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = Col8, ChGreen }, SjCol8Chan, col8, konst(109 << 6)},
		{"Col8Blue", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = Col8, ChBlue }, SjCol8Chan, col8, konst(170 << 6)},
		{"Col8Avg", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = Col8, ChAvg }, SjCol8Avg, col8, konst(153 << 6)},
		{"Col16Red", SrcIA, func(ct *ConnType) { ct.Color = Col16 }, SjCol16Chan, col16, konst(8384)},
		{"Col16Green", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = Col16, ChGreen }, SjCol16Chan, col16, konst(8256)},
		{"Col16Avg", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = Col16, ChAvg }, SjCol16Avg, col16, konst(8320)},
		{"Col24Avg", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = Col24, ChAvg }, SjCol24Avg, col24, konst(106 << 6)},
		{"Col24Sub", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan, ct.Nsa = Col24, ChSub, 4 }, SjCol24Chan, col24,
			func(lij, isyn int32) int32 { return [4]int32{1920, 5760, 12800, 6784}[isyn%4] }},
		{"OppRG", SrcIA, func(ct *ConnType) { ct.Color = ColOpp }, SjOppRG, opp, konst(110 << 6)},
		{"OppGR", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = ColOpp, ChGreen }, SjOppGR, opp, konst(0)},
		{"OppBY", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = ColOpp, ChBlue }, SjOppBY, opp, konst(0)},
		{"OppYB", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan = ColOpp, ChAvg }, SjOppYB, opp, konst(115 << 6)},
		{"OppSub", SrcIA, func(ct *ConnType) { ct.Color, ct.Chan, ct.Nsa = ColOpp, ChSub, 4 }, SjOppSub, opp,
			func(lij, isyn int32) int32 { return [4]int32{7040, 0, 0, 7360}[isyn%4] }},
		{"VGByte", SrcVG, nil, SjVGByte, &SrcData{VGB: fill(36, 77)}, konst(77 << 6)},
		{"VGFloat", SrcVG, func(ct *ConnType) { ct.VGFloat = true }, SjVGFloat, &SrcData{VGF: vgf}, konst(8192)},
		{"Value", SrcValue, nil, SjValue, &SrcData{Val: val},
			func(lij, isyn int32) int32 { return lij*100 - 1000 }},
		{"User", SrcIA, func(ct *ConnType) { ct.User, ct.Chan = true, ChBlue }, SjUser,
			&SrcData{User: func(lij int32, ch int) int32 { return lij*10 + int32(ch) }},
			func(lij, isyn int32) int32 { return lij*10 + 2 }},
		{"Hand", SrcHand, nil, SjNone, &SrcData{S: s}, konst(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ly, ct := srcNet(t, tt.kind, 8, tt.set)
			require.Equal(t, tt.rule, ct.Rules.Sj)
			for cell := int32(0); cell < ly.NCells(); cell++ {
				eachConn(t, ly, cell, func(g *Gen) {
					assert.Equal(t, tt.want(g.Lij(), g.Isyn()), g.Sj(tt.src), "cell %d isyn %d", cell, g.Isyn())
					assert.Equal(t, int32(0), g.Sj(nil))
				})
			}
		})
	}
}

func TestPhase(t *testing.T) {
	ph := make([]uint8, 18)
	for i := range ph {
		ph[i] = uint8(i*7 + 3)
	}
	src := &SrcData{Phase: ph}

	ly, ct := srcNet(t, SrcRep, 6, func(ct *ConnType) { ct.Phase.Const = 21 })
	require.Equal(t, PhConst, ct.Rules.Phase)
	eachConn(t, ly, 3, func(g *Gen) {
		assert.Equal(t, int32(5), g.Phase(src))
	})

	ly, ct = srcNet(t, SrcRep, 6, func(ct *ConnType) { ct.Phase.Kind = PhInput })
	require.Equal(t, PhInput, ct.Rules.Phase)
	eachConn(t, ly, 2, func(g *Gen) {
		assert.Equal(t, (g.Lij()*7+3)&15, g.Phase(src))
		assert.Equal(t, int32(0), g.Phase(nil))
	})

	ly, ct = srcNet(t, SrcRep, 6, func(ct *ConnType) { ct.Phase.Kind = PhRandom })
	require.Equal(t, PhRandom, ct.Rules.Phase)
	for cell := int32(0); cell < ly.NCells(); cell++ {
		eachConn(t, ly, cell, func(g *Gen) {
			s := rnd.Skipped(ct.Seeds.P, uint64(cell*ct.Nc+g.Isyn())*PDraws)
			want := rnd.UdevN(&s, NPhases)
			assert.Equal(t, want, g.Phase(nil), "cell %d isyn %d", cell, g.Isyn())
			assert.Less(t, g.Phase(nil), int32(NPhases))
		})
	}

	ly, ct = srcNet(t, SrcRep, 6, func(ct *ConnType) { ct.Phase.Kind = PhUniform })
	require.Equal(t, PhUniform, ct.Rules.Phase)
	for cell := int32(0); cell < ly.NCells(); cell++ {
		s := rnd.Skipped(ct.Seeds.P, uint64(cell*ct.Nc)*PDraws)
		want := rnd.UdevN(&s, NPhases)
		eachConn(t, ly, cell, func(g *Gen) {
			assert.Equal(t, want, g.Phase(src), "cell %d", cell)
		})
	}

	g := NewGen(ly)
	assert.Equal(t, int32(0), g.Phase(src))
	assert.Equal(t, int32(0), g.Sj(src))
}
