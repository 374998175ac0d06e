// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xchg is the node-to-node byte transport used to distribute
// connection generation: broadcasting external connection lists from the
// reading node and reducing generation counters back to it.
package xchg

import (
	"encoding/binary"
	"fmt"

	"github.com/emer/cns/cns"
)

// Transport sends and receives byte buffers between nodes.  Send and Recv
// block until the matching call on the other node; buffers must have the
// same length on both sides.
type Transport interface {
	Rank() int
	Size() int
	Send(buf []byte, dest, tag int) error
	Recv(buf []byte, src, tag int) error
}

// Tags used by the collective operations
const (
	TagBcastLen = 1000 + iota
	TagBcastData
	TagStats
)

// BcastBytes sends data from the root node to all others, returning the data
// on every node.  The data argument is ignored except on root.
func BcastBytes(tr Transport, data []byte, root int) ([]byte, error) {
	var hdr [8]byte
	if tr.Rank() == root {
		binary.BigEndian.PutUint64(hdr[:], uint64(len(data)))
		for nd := 0; nd < tr.Size(); nd++ {
			if nd == root {
				continue
			}
			if err := tr.Send(hdr[:], nd, TagBcastLen); err != nil {
				return nil, err
			}
			if len(data) == 0 {
				continue
			}
			if err := tr.Send(data, nd, TagBcastData); err != nil {
				return nil, err
			}
		}
		return data, nil
	}
	if err := tr.Recv(hdr[:], root, TagBcastLen); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint64(hdr[:])
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if err := tr.Recv(buf, root, TagBcastData); err != nil {
		return nil, err
	}
	return buf, nil
}

const statsLen = 5 * 8

func putStats(b []byte, st *cns.Stats) {
	vals := [5]int64{st.NConn, st.NSkip, st.NSelf, st.NSat, st.NExtra}
	for i, v := range vals {
		binary.BigEndian.PutUint64(b[8*i:], uint64(v))
	}
}

func getStats(b []byte) cns.Stats {
	v := func(i int) int64 { return int64(binary.BigEndian.Uint64(b[8*i:])) }
	return cns.Stats{NConn: v(0), NSkip: v(1), NSelf: v(2), NSat: v(3), NExtra: v(4)}
}

// ReduceStats sums the generation counters of all nodes into st on root
func ReduceStats(tr Transport, st *cns.Stats, root int) error {
	var buf [statsLen]byte
	if tr.Rank() != root {
		putStats(buf[:], st)
		return tr.Send(buf[:], root, TagStats)
	}
	for nd := 0; nd < tr.Size(); nd++ {
		if nd == root {
			continue
		}
		if err := tr.Recv(buf[:], nd, TagStats); err != nil {
			return fmt.Errorf("xchg: stats from node %d: %w", nd, err)
		}
		os := getStats(buf[:])
		st.Add(&os)
	}
	return nil
}

// CellRange returns the range of cells [st, ed) of ncell handled by node
// rank of size, in contiguous blocks
func CellRange(ncell int32, rank, size int) (st, ed int32) {
	per := ncell / int32(size)
	rem := ncell % int32(size)
	r := int32(rank)
	st = r*per + min(r, rem)
	ed = st + per
	if r < rem {
		ed++
	}
	return
}
