// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"errors"

	"github.com/emer/cns/elij"
	"github.com/emer/emergent/v2/edge"
	"github.com/goki/ki/ints"
)

// Begin starts the connections of type ict for the current cell.  The
// context must have entered a cell of the cell type it was made for, since
// the last Build or Dispatch, otherwise it is stale, which is fatal.
func (g *Gen) Begin(ict int) error {
	if g.err != nil {
		return g.err
	}
	ly := g.Ly
	if g.ict >= 0 {
		g.End()
	}
	switch {
	case g.epoch != ly.Epoch:
		return g.fail(fatal(ErrCodeStale, ly.Nm, ict, int64(g.Cell()), "cell type rebuilt or redispatched since context was made"))
	case !g.entry:
		return g.fail(fatal(ErrCodeStale, ly.Nm, ict, -1, "no cell entered"))
	case ict < 0 || ict >= len(ly.Conns):
		return g.fail(fatal(ErrCodeStale, ly.Nm, ict, int64(ict), "no such connection type"))
	}
	st := &g.cts[ict]
	if st.Cell != g.grp.Cell {
		return g.fail(fatal(ErrCodeStale, ly.Nm, ict, int64(st.Cell), "connection type state is for another cell"))
	}
	ct := ly.Conns[ict]
	if ct.Rules.First == LNoRule {
		return g.fail(fatal(ErrCodeBadRule, ly.Nm, ict, 0, "connection type not dispatched"))
	}
	g.ict = ict
	g.ct = ct
	g.st = st
	g.gen = ly.Generating()
	g.mem = nil
	if ict < len(ly.Mem) {
		g.mem = ly.Mem[ict]
	}
	g.store = g.gen && g.mem != nil && !g.NoStore
	g.done = false
	g.pending = false
	g.isyn = -1
	g.nval = 0
	g.nskip = 0
	g.lseed = st.LSeed
	g.lij = 0
	g.repOK = false
	g.Skipped = g.Skipped[:0]
	g.arb = newArbor(ct)

	needMem := ct.Rules.First == LFetch || ct.Rules.Cij == CijFetch || ct.Rules.Dij == DijFetch
	if needMem && g.mem == nil {
		return g.fail(fatal(ErrCodeConfig, ly.Nm, ict, 0, "fetching from a cell type that was not built"))
	}
	if g.store {
		g.mem.ResetCell(g.grp.Cell)
	}
	if ct.Rules.First == LExtern {
		if err := ct.Ext.Begin(g.grp.Cell, ict+1); err != nil {
			if errors.Is(err, elij.ErrOrder) {
				return g.fail(fatal(ErrCodeOrder, ly.Nm, ict, int64(g.grp.Cell), err.Error()))
			}
			return g.fail(fatal(ErrCodeExtRead, ly.Nm, ict, int64(g.grp.Cell), err.Error()))
		}
	}
	return nil
}

// Next produces the next valid connection of the current type, returning its
// source.  Connections that fall out of bounds, or on the cell itself under
// self-avoidance, are skipped and recorded in the skip list, and the next
// synapse is tried, until a valid one is produced or Nc synapses are used.
// Returns false when there are no more connections.
func (g *Gen) Next() (int32, bool, error) {
	if g.err != nil {
		return 0, false, g.err
	}
	if g.ict < 0 {
		return 0, false, g.fail(fatal(ErrCodeStale, g.Ly.Nm, -1, int64(g.Cell()), "Next without Begin"))
	}
	g.flush()
	if g.err != nil {
		return 0, false, g.err
	}
	if g.done {
		return 0, false, nil
	}
	switch g.ct.Rules.First {
	case LFetch:
		return g.nextFetch()
	case LExtern:
		return g.nextExtern()
	}
	ct := g.ct
	for {
		g.isyn++
		if g.isyn >= ct.Nc {
			g.done = true
			return 0, false, nil
		}
		if g.isyn > 0 {
			g.lseed = ct.Drv.LConn.Apply(g.lseed)
		}
		lij, ok, err := g.lijAt()
		if err != nil {
			return 0, false, g.fail(err)
		}
		if ok && g.selfHit(lij) {
			ok = false
			g.Stats.NSelf++
		}
		if !ok {
			g.skip()
			continue
		}
		g.accept(lij)
		return lij, true, nil
	}
}

// End finishes the current connection type, storing any pending values
func (g *Gen) End() error {
	if g.ict < 0 {
		return g.err
	}
	g.flush()
	if g.err == nil && !g.done && g.ct.Rules.First == LExtern {
		n, _ := g.ct.Ext.Finish()
		g.Stats.NExtra += int64(n)
	}
	g.ict = -1
	g.ct = nil
	g.st = nil
	return g.err
}

func (g *Gen) selfHit(lij int32) bool {
	ct := g.ct
	return g.Ly.SelfAvoid && !ct.SelfOK && ct.SrcKind == SrcRep && ct.Src == g.Ly && lij == g.grp.Cell
}

// skip records the current synapse as skipped
func (g *Gen) skip() {
	g.Stats.NSkip++
	g.Skipped = append(g.Skipped, g.isyn)
	if g.store {
		g.mem.AddSkip(g.grp.Cell, g.isyn)
	}
	g.nskip++
}

// accept makes lij the current valid connection
func (g *Gen) accept(lij int32) {
	g.lij = lij
	g.nval++
	g.pending = true
	g.cijOK = false
	g.dijOK = false
	g.Stats.NConn++
	if g.store {
		g.mem.AddValid(g.grp.Cell, lij)
	}
}

// flush stores the weight and delay of the pending connection.  Nothing is
// stored once the context has failed.
func (g *Gen) flush() {
	if !g.pending {
		return
	}
	g.pending = false
	if !g.store || g.err != nil {
		return
	}
	g.Cij()
	var d int32
	if g.mem.Dij != nil {
		d = g.Dij()
	}
	if g.err != nil {
		return
	}
	idx := g.mem.Row(g.grp.Cell) + int(g.nval-1)
	g.mem.Cij[idx] = int16(g.cijCode)
	if g.mem.Dij != nil {
		g.mem.Dij[idx] = uint8(d)
	}
}

// nextFetch replays the stored connections, consuming the skip list in order
func (g *Gen) nextFetch() (int32, bool, error) {
	cell := g.grp.Cell
	mem := g.mem
	for {
		g.isyn++
		if g.isyn >= g.ct.Nc {
			g.done = true
			return 0, false, nil
		}
		if g.nskip < mem.NSkip[cell] && mem.Skip(cell, g.nskip) == g.isyn {
			g.Stats.NSkip++
			g.Skipped = append(g.Skipped, g.isyn)
			g.nskip++
			continue
		}
		if g.nval >= mem.NVal[cell] {
			g.done = true
			return 0, false, nil
		}
		lij := mem.Lij[mem.Row(cell)+int(g.nval)]
		g.accept(lij)
		return lij, true, nil
	}
}

// nextExtern reads the next connection from the external list.  Records
// beyond Nc are discarded, too few records end the connections early, and
// sentinel sources skip one or all remaining connections.  Any other source
// outside the source layer is fatal.
func (g *Gen) nextExtern() (int32, bool, error) {
	ct := g.ct
	for {
		rec, ok, err := ct.Ext.Next()
		if err != nil {
			return 0, false, g.fail(fatal(ErrCodeExtRead, g.Ly.Nm, g.ict, int64(g.grp.Cell), err.Error()))
		}
		if !ok {
			g.done = true
			return 0, false, nil
		}
		if g.isyn+1 >= ct.Nc {
			n, _ := ct.Ext.Finish()
			g.Stats.NExtra += int64(n) + 1
			g.done = true
			return 0, false, nil
		}
		g.isyn++
		switch {
		case rec.Src == elij.SkipRest:
			ct.Ext.Finish()
			g.done = true
			return 0, false, nil
		case rec.Src == elij.SkipOne || rec.Src == ct.Limit:
			g.skip()
			continue
		case rec.Src < 0 || rec.Src >= ct.Drv.NSrc:
			return 0, false, g.fail(fatal(ErrCodeSrcRange, g.Ly.Nm, g.ict, int64(rec.Src), rec.String()))
		}
		g.ext = rec
		g.accept(rec.Src)
		return rec.Src, true, nil
	}
}

// lijAt computes the source of the current synapse under the subarbor
// policy, returning false if it is out of bounds
func (g *Gen) lijAt() (int32, bool, error) {
	ct := g.ct
	isyn := g.isyn
	switch ct.Rules.Sa {
	case SaClone:
		arb := isyn / ct.Nsa
		k := isyn % ct.Nsa
		shift := pos{X: arb * ct.SaDx, Y: arb * ct.SaDy}
		if k == 0 {
			g.lseed = g.st.LSeed
			if arb > 0 {
				return g.place(g.origin0.add(shift))
			}
		}
		p, err := g.ruleAt(k)
		if err != nil {
			return 0, false, err
		}
		if k == 0 {
			g.origin0 = p
		}
		return g.place(p.add(shift))
	case SaIndep:
		p, err := g.ruleAt(isyn % ct.Nsa)
		if err != nil {
			return 0, false, err
		}
		return g.place(p)
	case SaRepeat:
		if isyn%ct.Nsa > 0 {
			return g.repLij, g.repOK, nil
		}
		p, err := g.ruleAt(isyn / ct.Nsa)
		if err != nil {
			return 0, false, err
		}
		g.repLij, g.repOK, _ = g.place(p)
		return g.repLij, g.repOK, nil
	}
	p, err := g.ruleAt(isyn)
	if err != nil {
		return 0, false, err
	}
	return g.place(p)
}

// ruleAt applies the first rule at k == 0, or when every connection uses
// it, and the subsequent rule otherwise
func (g *Gen) ruleAt(k int32) (pos, error) {
	if k == 0 || g.ct.Rules.Next == LSame || g.arb == nil {
		p, err := g.first(k)
		if err != nil {
			return p, err
		}
		if k == 0 {
			g.origin = p
			if g.arb != nil {
				g.arb.setOrigin(p)
			}
		}
		return p, nil
	}
	s := g.lseed
	return g.arb.at(g, k, &s), nil
}

// place maps a position to a source index under the boundary policy,
// returning false if it is out of bounds
func (g *Gen) place(p pos) (int32, bool, error) {
	ct := g.ct
	if ct.Rules.First == LNone {
		return 0, true, nil
	}
	bnd := ct.Drv.Bound
	x, ok := coord(p.X, ct.SrcNx, bnd)
	if !ok {
		return 0, false, nil
	}
	y, ok := coord(p.Y, ct.SrcNy, bnd)
	if !ok {
		return 0, false, nil
	}
	e := mod32(p.E, ct.SrcNEl)
	return (y*ct.SrcNx+x)*ct.SrcNEl + e, true, nil
}

// coord applies the boundary policy to one coordinate
func coord(c, n int32, bnd EdgeModes) (int32, bool) {
	switch bnd {
	case EdgeSkip:
		ci, ok := edge.Edge(int(c), int(n), false)
		return int32(ci), ok
	case EdgeClip:
		return int32(ints.MinInt(ints.MaxInt(int(c), 0), int(n)-1)), true
	}
	ci, _ := edge.Edge(int(c%n), int(n), true)
	return int32(ci), true
}
