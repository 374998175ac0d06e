// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xchg

import (
	"bytes"
	"sync"
	"testing"

	"github.com/emer/cns/cns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcastBytes(t *testing.T) {
	nds := NewLoopback(4)
	data := bytes.Repeat([]byte{1, 2, 3, 250}, 33)
	got := make([][]byte, len(nds))
	errs := make([]error, len(nds))
	var wg sync.WaitGroup
	for i, nd := range nds {
		wg.Add(1)
		go func(i int, nd *Loopback) {
			defer wg.Done()
			var in []byte
			if i == 2 {
				in = data
			}
			got[i], errs[i] = BcastBytes(nd, in, 2)
		}(i, nd)
	}
	wg.Wait()
	for i := range nds {
		require.NoError(t, errs[i])
		assert.Equal(t, data, got[i], "node %d", i)
	}
}

func TestReduceStats(t *testing.T) {
	nds := NewLoopback(3)
	sts := make([]cns.Stats, 3)
	for i := range sts {
		sts[i] = cns.Stats{NConn: int64(10 * (i + 1)), NSkip: int64(i), NSat: 1}
	}
	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i, nd := range nds {
		wg.Add(1)
		go func(i int, nd *Loopback) {
			defer wg.Done()
			errs[i] = ReduceStats(nd, &sts[i], 0)
		}(i, nd)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, cns.Stats{NConn: 60, NSkip: 3, NSat: 3}, sts[0])
}

func TestRecvLength(t *testing.T) {
	nds := NewLoopback(2)
	require.NoError(t, nds[0].Send([]byte{1, 2, 3}, 1, 7))
	assert.Error(t, nds[1].Recv(make([]byte, 2), 0, 7))
	assert.Error(t, nds[0].Send(nil, 5, 7))
}

func TestCellRange(t *testing.T) {
	ncell := int32(23)
	next := int32(0)
	for rank := 0; rank < 4; rank++ {
		st, ed := CellRange(ncell, rank, 4)
		assert.Equal(t, next, st)
		assert.GreaterOrEqual(t, ed-st, ncell/4)
		next = ed
	}
	assert.Equal(t, ncell, next)
}
