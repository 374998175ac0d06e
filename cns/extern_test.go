// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"bytes"
	"testing"

	"github.com/emer/cns/elij"
	"github.com/emer/cns/fixpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listBytes(t *testing.T, recs []elij.Record) []byte {
	var b bytes.Buffer
	wr := elij.NewWriter(&b)
	for _, rc := range recs {
		require.NoError(t, wr.Write(rc))
	}
	require.NoError(t, wr.Flush())
	return b.Bytes()
}

// externNet has a 4-cell source and a target of ncell cells reading a list
func externNet(t *testing.T, ncell int, recs []elij.Record) (*Network, *CellType) {
	net := NewNetwork("ExtNet")
	net.AddCellType("Src", 2, 2, 1)
	ly := net.AddCellType("Tgt", 1, 1, ncell)
	ct := ly.AddConnType("List", SrcRep, 4)
	ct.SrcName = "Src"
	ct.Opts.Set(KgE)
	ct.Cij.Kind = CijExtern
	ct.Cij.Nbc = 16
	ct.SetExtern(elij.NewReader(bytes.NewReader(listBytes(t, recs))))
	require.NoError(t, net.Build())
	require.NoError(t, net.Dispatch(GenerateAll))
	return net, ly
}

func TestExternSentinels(t *testing.T) {
	recs := []elij.Record{
		{Src: 2, Tgt: 0, Wt: 1000, Ict: 1},
		{Src: elij.SkipOne, Tgt: 0, Ict: 1},
		{Src: 3, Tgt: 0, Wt: -500, Ict: 1},
		{Src: 0, Tgt: 1, Wt: 7, Ict: 1},
		{Src: elij.SkipRest, Tgt: 1, Ict: 1},
		{Src: 1, Tgt: 1, Wt: 9, Ict: 1},
		{Src: 0, Tgt: 2, Ict: 1},
		{Src: 1, Tgt: 2, Ict: 1},
		{Src: 2, Tgt: 2, Ict: 1},
		{Src: 3, Tgt: 2, Ict: 1},
		{Src: 0, Tgt: 2, Ict: 1},
	}
	net, ly := externNet(t, 3, recs)
	require.NoError(t, net.Generate())
	cm := ly.Mem[0]

	assert.Equal(t, []int32{2, 3}, cm.Valid(0))
	assert.Equal(t, []int32{1}, cm.Skips(0))
	assert.Equal(t, int32(1000)<<16, expandAt(cm, 16, 0, 0))
	assert.Equal(t, int32(-500)<<16, expandAt(cm, 16, 0, 1))

	assert.Equal(t, []int32{0}, cm.Valid(1))
	assert.Empty(t, cm.Skips(1))

	assert.Equal(t, []int32{0, 1, 2, 3}, cm.Valid(2))
	assert.Empty(t, cm.Skips(2))

	assert.Equal(t, int64(7), ly.Stats.NConn)
	assert.Equal(t, int64(1), ly.Stats.NSkip)
	assert.Equal(t, int64(1), ly.Stats.NExtra)
}

// expandAt returns the stored weight of valid connection iv of the cell
func expandAt(cm *ConnMem, nbc int, cell int32, iv int) int32 {
	return fixpt.Expand(int32(cm.Cij[cm.Row(cell)+iv]), nbc)
}

func TestExternSkipMiddle(t *testing.T) {
	recs := []elij.Record{
		{Src: 3, Tgt: 5, Wt: 100, Ict: 1},
		{Src: elij.SkipOne, Tgt: 5, Ict: 1},
		{Src: 1, Tgt: 5, Wt: 200, Ict: 1},
	}
	_, ly := externNet(t, 6, recs)
	g := NewGen(ly)
	require.NoError(t, g.NewCell(5))
	cs, err := g.Collect(0)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, Conn{Isyn: 0, Lij: 3, Cij: 100 << 16}, cs[0])
	assert.Equal(t, Conn{Isyn: 2, Lij: 1, Cij: 200 << 16}, cs[1])
	assert.Equal(t, []int32{1}, g.Skipped)

	require.NoError(t, g.NewCell(4))
	cs, err = g.Collect(0)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestExternSrcRange(t *testing.T) {
	recs := []elij.Record{
		{Src: 0, Tgt: 0, Ict: 1},
		{Src: 4, Tgt: 0, Ict: 1},
	}
	net, _ := externNet(t, 3, recs)
	err := net.Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSrcRange)
	var fe *FatalError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrCodeSrcRange, fe.Code)
}

func TestExternLimit(t *testing.T) {
	recs := []elij.Record{
		{Src: 1, Tgt: 0, Ict: 1},
		{Src: 3, Tgt: 0, Ict: 1},
		{Src: 2, Tgt: 0, Ict: 1},
	}
	net, ly := externNet(t, 3, recs)
	ly.Conns[0].Limit = 3
	require.NoError(t, net.Generate())
	assert.Equal(t, []int32{1, 2}, ly.Mem[0].Valid(0))
	assert.Equal(t, []int32{1}, ly.Mem[0].Skips(0))
}

// scanNet has a target whose first connection type scans an input array
func scanNet(ext []byte) *Network {
	net := NewNetwork("ScanNet")
	ly := net.AddCellType("Tgt", 4, 3, 2)
	ct := ly.AddConnType("Scan", SrcIA, 9)
	ct.SrcNx = 8
	ct.SrcNy = 6
	ct.Cij.Nbc = 12
	if ext == nil {
		ct.Edge = EdgeSkip
		ct.Opts.Set(KgT, KgB)
		ct.Geom.Nux = 3
		ct.Geom.Nuy = 3
		ct.Geom.Xoff = -2
		ct.Geom.Yoff = -1
		ct.Cij.Sigma = 0.4
	} else {
		ct.Opts.Set(KgE)
		ct.Cij.Kind = CijExtern
		ct.SetExtern(elij.NewReader(bytes.NewReader(ext)))
	}
	return net
}

func TestWriteExternRoundTrip(t *testing.T) {
	net := scanNet(nil)
	require.NoError(t, net.Build())
	require.NoError(t, net.Dispatch(GenerateAll))
	require.NoError(t, net.Generate())
	ly := net.CellTypeByName("Tgt")
	require.Greater(t, ly.Stats.NSkip, int64(0))

	var b bytes.Buffer
	n, err := WriteExtern(&b, ly, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(b.Len()/elij.RecSize), n)

	enet := scanNet(b.Bytes())
	require.NoError(t, enet.Build())
	require.NoError(t, enet.Dispatch(GenerateAll))
	require.NoError(t, enet.Generate())
	ely := enet.CellTypeByName("Tgt")

	cm, ecm := ly.Mem[0], ely.Mem[0]
	for cell := int32(0); cell < ly.NCells(); cell++ {
		assert.Equal(t, cm.Valid(cell), ecm.Valid(cell), "cell %d", cell)
		assert.Equal(t, cm.Skips(cell), ecm.Skips(cell), "cell %d", cell)
		for iv := range cm.Valid(cell) {
			assert.Equal(t, expandAt(cm, 12, cell, iv), expandAt(ecm, 12, cell, iv))
		}
	}
	assert.Equal(t, ly.Stats.NConn, ely.Stats.NConn)
	assert.Equal(t, ly.Stats.NSkip, ely.Stats.NSkip)
}

func TestWriteExternNotBuilt(t *testing.T) {
	net := scanNet(nil)
	ly := net.CellTypeByName("Tgt")
	_, err := WriteExtern(&bytes.Buffer{}, ly, 0)
	assert.Error(t, err)
}
