// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigins(t *testing.T) {
	tests := []struct {
		name string
		fn   func(g int32) int32
		want []int32
	}{
		// 4 groups in hypergroups of 2 over 6: tiles at 0 and 3, boxes of 2 side by side
		{"hyper", func(g int32) int32 { return hyper(g, 4, 2, 6, 2) }, []int32{0, 2, 3, 5}},
		{"hyper3", func(g int32) int32 { return hyper(g, 3, 2, 5, 1) }, []int32{0, 1, 2}},
		{"hyper1", func(g int32) int32 { return hyper(g, 4, 1, 8, 2) }, []int32{0, 2, 4, 6}},
		{"joint", func(g int32) int32 { return joint(g, 4, 6, 3) }, []int32{0, 1, 2, 3}},
		{"joint3", func(g int32) int32 { return joint(g, 3, 5, 2) }, []int32{0, 1, 3}},
		{"joint1", func(g int32) int32 { return joint(g, 1, 6, 2) }, []int32{2}},
		{"topo", func(g int32) int32 { return topo(g, 4, 6) }, []int32{0, 2, 3, 5}},
		{"topo3", func(g int32) int32 { return topo(g, 3, 8) }, []int32{1, 4, 6}},
	}
	for _, tt := range tests {
		got := make([]int32, len(tt.want))
		for g := range got {
			got[g] = tt.fn(int32(g))
		}
		assert.Equal(t, tt.want, got, tt.name)
	}
	assert.Equal(t, int32(4), fit(6, 3))
	assert.Equal(t, int32(1), fit(2, 5))
}

func TestAdjArbor(t *testing.T) {
	_, ly, ct := oneConnNet(t, SrcRep, 4, KgU, KgA)
	require.NoError(t, ly.Dispatch(GenerateAll))
	require.Equal(t, LAdj, ct.Rules.Next)
	g := NewGen(ly)
	g.ct = ct

	// wrapped: the last source cell runs on to the first
	ar := &adjArbor{}
	ar.setOrigin(pos{X: 2, Y: 2, E: 1})
	assert.Equal(t, pos{X: 0, Y: 0, E: 0}, ar.at(g, 1, nil))
	assert.Equal(t, pos{X: 0, Y: 0, E: 1}, ar.at(g, 2, nil))
	ar.setOrigin(pos{X: 1, Y: 0, E: 1})
	assert.Equal(t, pos{X: 2, Y: 0, E: 0}, ar.at(g, 1, nil))
	assert.Equal(t, pos{X: 0, Y: 1, E: 0}, ar.at(g, 3, nil))

	// checked: cells carry into x only, and the run leaves at the right edge
	ar = &adjArbor{chk: true}
	ar.setOrigin(pos{X: 1, Y: 1, E: 1})
	assert.Equal(t, pos{X: 2, Y: 1, E: 0}, ar.at(g, 1, nil))
	assert.Equal(t, pos{X: 2, Y: 1, E: 1}, ar.at(g, 2, nil))
	p := ar.at(g, 3, nil)
	assert.Equal(t, pos{X: 3, Y: 1, E: 0}, p)
	_, ok := coord(p.X, ct.SrcNx, EdgeSkip)
	assert.False(t, ok)
}

func TestDiagArbor(t *testing.T) {
	_, ly, ct := oneConnNet(t, SrcRep, 4, KgU, KgD)
	ct.Geom.DiagDy = -1
	require.NoError(t, ly.Dispatch(GenerateAll))
	g := NewGen(ly)
	g.ct = ct
	ar := &diagArbor{}
	ar.setOrigin(pos{X: 0, Y: 2, E: 1})
	assert.Equal(t, pos{X: 1, Y: 1, E: 0}, ar.at(g, 1, nil))
	assert.Equal(t, pos{X: 1, Y: 1, E: 1}, ar.at(g, 2, nil))
	assert.Equal(t, pos{X: 2, Y: 0, E: 0}, ar.at(g, 3, nil))
	assert.Equal(t, pos{X: 3, Y: -1, E: 1}, ar.at(g, 6, nil))
}
