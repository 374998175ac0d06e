// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"testing"

	"github.com/emer/cns/cns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNet(t *testing.T, gen bool) *cns.Network {
	net := cns.NewNetwork("StoreNet")
	net.AddCellType("In", 5, 4, 2)
	ly := net.AddCellType("Out", 3, 3, 2)
	ct := ly.AddConnType("Topo", cns.SrcRep, 6)
	ct.SrcName = "In"
	ct.Opts.Set(cns.KgT, cns.KgC)
	ct.Geom.Nux = 2
	ct.Geom.Nuy = 2
	ct.Dij.Kind = cns.DijUniform
	ct = ly.AddConnType("Scan", cns.SrcIA, 4)
	ct.SrcNx = 6
	ct.SrcNy = 6
	ct.Edge = cns.EdgeSkip
	ct.Opts.Set(cns.KgF)
	ct.Geom.Nux = 3
	ct.Geom.Nuy = 3
	require.NoError(t, net.Build())
	if gen {
		require.NoError(t, net.Dispatch(cns.GenerateAll))
		require.NoError(t, net.Generate())
	}
	return net
}

func netConns(t *testing.T, net *cns.Network) [][]cns.Conn {
	ly := net.CellTypeByName("Out")
	g := cns.NewGen(ly)
	var all [][]cns.Conn
	for cell := int32(0); cell < ly.NCells(); cell++ {
		require.NoError(t, g.NewCell(cell))
		for ict := range ly.Conns {
			cs, err := g.Collect(ict)
			require.NoError(t, err)
			all = append(all, cs)
		}
	}
	return all
}

func testRoundTrip(t *testing.T, st Store) {
	ctx := context.Background()
	require.NoError(t, st.Init(ctx))

	net := testNet(t, true)
	ids, err := SaveNetwork(ctx, st, net)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.NoError(t, net.Dispatch(cns.RunNormal))
	want := netConns(t, net)

	lst, err := st.ListSnapshots(ctx, "StoreNet")
	require.NoError(t, err)
	assert.Equal(t, ids, lst)

	loaded := testNet(t, false)
	n, err := LoadNetwork(ctx, st, loaded)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, loaded.Dispatch(cns.RunNormal))
	assert.Equal(t, want, netConns(t, loaded))

	snap, ok, err := st.GetSnapshot(ctx, ids[1])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Scan", snap.Conn)
	assert.Nil(t, snap.Mem.Dij)

	require.NoError(t, st.DeleteSnapshot(ctx, ids[0]))
	_, ok, err = st.GetSnapshot(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, ok)
	lst, err = st.ListSnapshots(ctx, "StoreNet")
	require.NoError(t, err)
	assert.Equal(t, ids[1:], lst)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	testRoundTrip(t, NewMemoryStore())
}

func TestRestoreMismatch(t *testing.T) {
	net := testNet(t, true)
	snap, err := NewSnapshot(net.Nm, net.CellTypeByName("Out"), 0)
	require.NoError(t, err)
	snap.Nc++
	assert.Error(t, snap.Restore(net))
	snap.Nc--
	snap.Layer = "None"
	assert.Error(t, snap.Restore(net))
}

func TestFactory(t *testing.T) {
	st, err := NewStore("memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, st)
	assert.NoError(t, CloseIfSupported(st))
	_, err = NewStore("bogus", "")
	assert.Error(t, err)
}
