// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"github.com/emer/cns/elij"
)

// Stats are the counters updated by generation
type Stats struct {
	NConn  int64 `desc:"valid connections produced"`
	NSkip  int64 `desc:"connections skipped: out of bounds, self-avoided or skip sentinels"`
	NSelf  int64 `desc:"connections skipped by self-avoidance"`
	NSat   int64 `desc:"weights clamped by saturation"`
	NExtra int64 `desc:"external list records discarded as extras"`
}

// Init resets all counters
func (st *Stats) Init() {
	*st = Stats{}
}

// Add adds the counters of os
func (st *Stats) Add(os *Stats) {
	st.NConn += os.NConn
	st.NSkip += os.NSkip
	st.NSelf += os.NSelf
	st.NSat += os.NSat
	st.NExtra += os.NExtra
}

// CellGroup is the position of the current cell within the groups of its cell type
type CellGroup struct {
	Cell     int32 `desc:"cell number"`
	El       int32 `desc:"cell within its group"`
	Group    int32 `desc:"group number"`
	Gx       int32 `desc:"group x"`
	Gy       int32 `desc:"group y"`
	GRow     int32 `desc:"group row counter"`
	NewGroup bool  `desc:"this cell starts a new group"`
	NewRow   bool  `desc:"this cell starts a new row of groups"`
}

// ConnState is the per-cell working state of one connection type
type ConnState struct {
	Cell    int32 `desc:"cell this state was advanced to"`
	LSeed   int32 `desc:"Lij lane seed at connection 0 of the cell -- the restart seed"`
	CSeed   int32 `desc:"Cij lane seed at connection 0 of the cell"`
	DSeed   int32 `desc:"Dij lane seed at connection 0 of the cell"`
	PSeed   int32 `desc:"phase lane seed at connection 0 of the cell"`
	SysBase int32 `desc:"systematic rule offset of the cell"`
	GGroup  int32 `desc:"target group whose origin is in GOrigin, -1 if none"`
	GOrigin pos   `desc:"group origin for the group rule"`
}

// GenState is a comparable snapshot of a generation context
type GenState struct {
	Grp   CellGroup
	Conns []ConnState
}

// Gen is a generation context: the cursor state for generating or fetching
// the connections of one cell type, one (cell, connection type) at a time.
// A Gen must only be used by one goroutine; give each goroutine its own.
// Usage: NewCell(cell), then for each connection type Begin(ict), Next()
// until false, with Cij, Dij, Sj and Phase for each connection, then End.
type Gen struct {
	Ly        *CellType `desc:"cell type being generated"`
	Stateless bool      `desc:"always recompute cell state from the cell number, never advancing from the previous cell -- required when cells are visited out of order by concurrent contexts"`
	Stats     Stats     `desc:"counters since the context was made"`
	Skipped   []int32   `desc:"true synapse numbers skipped for the current cell and type, in order"`
	NoStore   bool      `desc:"generate without writing connection memory, even when the cell type is generating"`

	epoch int
	grp   CellGroup
	cts   []ConnState
	entry bool // a cell has been entered

	ict     int
	ct      *ConnType
	st      *ConnState
	mem     *ConnMem
	gen     bool
	store   bool
	done    bool
	pending bool
	isyn    int32
	nval    int32
	nskip   int32
	lseed   int32
	lij     int32
	origin  pos
	origin0 pos
	arb     arbor
	repLij  int32
	repOK   bool
	ext     elij.Record

	cijOK   bool
	cij     int32
	cijCode int32
	dijOK   bool
	dij     int32

	err error
}

// NewGen returns a generation context for the cell type, which must have
// been dispatched
func NewGen(ly *CellType) *Gen {
	g := &Gen{Ly: ly}
	g.epoch = ly.Epoch
	g.cts = make([]ConnState, len(ly.Conns))
	for i := range g.cts {
		g.cts[i].GGroup = -1
	}
	g.ict = -1
	return g
}

// Err returns the fatal error that stopped this context, if any
func (g *Gen) Err() error {
	return g.err
}

// fail makes err the sticky error of the context
func (g *Gen) fail(err error) error {
	if g.err == nil {
		g.err = err
	}
	g.done = true
	return g.err
}

// State returns a snapshot of the cell and per-type state
func (g *Gen) State() GenState {
	gs := GenState{Grp: g.grp}
	gs.Conns = make([]ConnState, len(g.cts))
	copy(gs.Conns, g.cts)
	return gs
}

// Cell returns the current cell, -1 before the first NewCell
func (g *Gen) Cell() int32 {
	if !g.entry {
		return -1
	}
	return g.grp.Cell
}

// Group returns the position of the current cell
func (g *Gen) Group() CellGroup {
	return g.grp
}

// Isyn returns the true synapse number of the current connection
func (g *Gen) Isyn() int32 {
	return g.isyn
}

// Lij returns the source of the current connection
func (g *Gen) Lij() int32 {
	return g.lij
}

// NVal returns the number of valid connections so far for the current type
func (g *Gen) NVal() int32 {
	return g.nval
}

// Conn is one produced connection
type Conn struct {
	Isyn int32 `desc:"true synapse number"`
	Lij  int32 `desc:"source cell"`
	Cij  int32 `desc:"weight, S31"`
	Dij  int32 `desc:"delay in cycles"`
}

// Conn returns the current connection with its weight and delay
func (g *Gen) Conn() Conn {
	return Conn{Isyn: g.isyn, Lij: g.lij, Cij: g.Cij(), Dij: g.Dij()}
}

// Collect runs connection type ict for the current cell and returns its
// connections
func (g *Gen) Collect(ict int) ([]Conn, error) {
	if err := g.Begin(ict); err != nil {
		return nil, err
	}
	var cs []Conn
	for {
		_, ok, err := g.Next()
		if err != nil {
			return cs, err
		}
		if !ok {
			break
		}
		cs = append(cs, g.Conn())
	}
	return cs, g.End()
}

// Generate enters the cell and runs all its connection types, storing them
// when the cell type is generating
func (g *Gen) Generate(cell int32) error {
	if err := g.NewCell(cell); err != nil {
		return err
	}
	for ict := range g.Ly.Conns {
		if _, err := g.Collect(ict); err != nil {
			return err
		}
	}
	return nil
}
