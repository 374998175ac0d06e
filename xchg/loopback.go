// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xchg

import (
	"fmt"
	"sync"
)

type chanKey struct {
	src, dest, tag int
}

// hub holds the channels shared by a set of loopback nodes
type hub struct {
	mu    sync.Mutex
	chans map[chanKey]chan []byte
}

func (hb *hub) ch(k chanKey) chan []byte {
	hb.mu.Lock()
	defer hb.mu.Unlock()
	c, ok := hb.chans[k]
	if !ok {
		c = make(chan []byte, 16)
		hb.chans[k] = c
	}
	return c
}

// Loopback is an in-process Transport node, for running distributed code
// with one goroutine per node
type Loopback struct {
	rank int
	size int
	hub  *hub
}

// NewLoopback returns n connected nodes
func NewLoopback(n int) []*Loopback {
	hb := &hub{chans: make(map[chanKey]chan []byte)}
	nds := make([]*Loopback, n)
	for i := range nds {
		nds[i] = &Loopback{rank: i, size: n, hub: hb}
	}
	return nds
}

func (lb *Loopback) Rank() int { return lb.rank }
func (lb *Loopback) Size() int { return lb.size }

func (lb *Loopback) Send(buf []byte, dest, tag int) error {
	if dest < 0 || dest >= lb.size {
		return fmt.Errorf("xchg: send to node %d of %d", dest, lb.size)
	}
	cp := make([]byte, len(buf))
	copy(cp, buf)
	lb.hub.ch(chanKey{lb.rank, dest, tag}) <- cp
	return nil
}

func (lb *Loopback) Recv(buf []byte, src, tag int) error {
	if src < 0 || src >= lb.size {
		return fmt.Errorf("xchg: recv from node %d of %d", src, lb.size)
	}
	msg := <-lb.hub.ch(chanKey{src, lb.rank, tag})
	if len(msg) != len(buf) {
		return fmt.Errorf("xchg: node %d tag %d sent %d bytes, expected %d", src, tag, len(msg), len(buf))
	}
	copy(buf, msg)
	return nil
}
