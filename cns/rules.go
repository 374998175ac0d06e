// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"fmt"

	"github.com/emer/cns/fixpt"
	"github.com/emer/cns/rnd"
	"github.com/goki/ki/ints"
)

// first applies the first-connection rule for rule position k.  All draws
// come from a copy of the connection's Lij lane seed, so they stay within
// the connection's block of LDraws.
func (g *Gen) first(k int32) (pos, error) {
	ct := g.ct
	gp := &ct.Geom
	dv := &ct.Drv
	ly := g.Ly
	cg := &g.grp
	nx, ny, nel := ct.SrcNx, ct.SrcNy, ct.SrcNEl
	s := g.lseed
	var p pos
	switch ct.Rules.First {
	case LNone:
	case LFloat:
		p.X = rnd.UdevN(&s, fit(nx, gp.Nux))
		p.Y = rnd.UdevN(&s, fit(ny, gp.Nuy))
		p.E = rnd.UdevN(&s, nel)
	case LFloatScan:
		p.X = rnd.UdevN(&s, nx) - gp.Nux/2 + gp.Xoff
		p.Y = rnd.UdevN(&s, ny) - gp.Nuy/2 + gp.Yoff
		p.E = rnd.UdevN(&s, nel)
	case LGroup, LGroupScan:
		p = g.groupOrigin()
		p.E = rnd.UdevN(&s, nel)
	case LHyper, LHyperScan:
		p.X = hyper(cg.Gx, ly.NGx, gp.HyperX, nx, gp.Nux) + gp.Xoff
		p.Y = hyper(cg.Gy, ly.NGy, gp.HyperY, ny, gp.Nuy) + gp.Yoff
		p.E = rnd.UdevN(&s, nel)
	case LJoint, LJointScan:
		p.X = joint(cg.Gx, ly.NGx, nx, gp.Nux) + gp.Xoff
		p.Y = joint(cg.Gy, ly.NGy, ny, gp.Nuy) + gp.Yoff
		p.E = rnd.UdevN(&s, nel)
	case LNorm, LNormScan:
		p.X = topo(cg.Gx, ly.NGx, nx) + gp.Xoff + normStep(&s, dv.Sig16)
		p.Y = topo(cg.Gy, ly.NGy, ny) + gp.Yoff + normStep(&s, dv.Sig16)
		p.E = rnd.UdevN(&s, nel)
	case LNormVG:
		c := topo(cg.Group, ly.NGroups(), dv.NSrc) + gp.Xoff + normStep(&s, dv.Sig16)
		p = ct.posOf(mod32(c, dv.NSrc))
	case LOther:
		ngs := dv.NSrcGrp
		gs := rnd.UdevN(&s, ngs-1)
		if gs >= cg.Group%ngs {
			gs++
		}
		p.X = gs % nx
		p.Y = gs / nx
		p.E = rnd.UdevN(&s, nel)
	case LTopo, LTopoScan:
		p.X = topo(cg.Gx, ly.NGx, nx) - gp.Nux/2 + gp.Xoff
		p.Y = topo(cg.Gy, ly.NGy, ny) - gp.Nuy/2 + gp.Yoff
		p.E = rnd.UdevN(&s, nel)
	case LUnif, LUnifVG:
		p = ct.posOf(rnd.UdevN(&s, dv.NSrc))
	case LSys, LSysVG:
		p = ct.posOf(int32(mod64(int64(g.st.SysBase)+int64(k), int64(dv.NSrc))))
	default:
		return p, fatal(ErrCodeBadRule, ly.Nm, g.ict, int64(ct.Rules.First), fmt.Sprintf("first rule %v cannot generate", ct.Rules.First))
	}
	return p, nil
}

// groupOrigin returns the box origin shared by all cells of the current
// target group, drawn from the group lane
func (g *Gen) groupOrigin() pos {
	st := g.st
	cg := &g.grp
	if st.GGroup == cg.Group {
		return st.GOrigin
	}
	ct := g.ct
	gp := &ct.Geom
	s := rnd.Skipped(ct.Seeds.G, uint64(cg.Group)*GDraws)
	var p pos
	if ct.Rules.First == LGroupScan {
		p.X = rnd.UdevN(&s, ct.SrcNx) - gp.Nux/2 + gp.Xoff
		p.Y = rnd.UdevN(&s, ct.SrcNy) - gp.Nuy/2 + gp.Yoff
	} else {
		p.X = rnd.UdevN(&s, fit(ct.SrcNx, gp.Nux))
		p.Y = rnd.UdevN(&s, fit(ct.SrcNy, gp.Nuy))
	}
	st.GGroup = cg.Group
	st.GOrigin = p
	return p
}

// posOf returns the position of a source cell index
func (ct *ConnType) posOf(i int32) pos {
	grp := i / ct.SrcNEl
	return pos{X: grp % ct.SrcNx, Y: grp / ct.SrcNx, E: i % ct.SrcNEl}
}

// fit is the number of box origins that keep a box of u inside n
func fit(n, u int32) int32 {
	return int32(ints.MaxInt(int(n-u+1), 1))
}

// topo is the source coordinate topographically under target group g of ng
func topo(g, ng, n int32) int32 {
	return int32((int64(2*g+1) * int64(n)) / int64(2*ng))
}

// hyper is the box origin of target group g, where target groups are
// gathered hs at a time into hypergroups that tile the source, and the
// groups of a hypergroup sit side by side within its tile
func hyper(g, ng, hs, n, u int32) int32 {
	nh := (ng + hs - 1) / hs
	return (g/hs)*n/nh + (g%hs)*u
}

// joint is the box origin of target group g when the ng boxes are spread
// evenly from one edge of the source to the other
func joint(g, ng, n, u int32) int32 {
	if ng <= 1 {
		return (n - u) / 2
	}
	return g * (n - u) / (ng - 1)
}

// normStep is a normal deviate in source groups for sigma in S16
func normStep(s *int32, sig16 int32) int32 {
	return int32(fixpt.RoundShift(int64(rnd.Ndev(s, 0, sig16)), 16))
}

// arbor is the working state of a subsequent-connection rule, one variant
// per rule family.  at returns the position of rule connection k > 0 of the
// arbor, drawing from s.
type arbor interface {
	setOrigin(p pos)
	at(g *Gen, k int32, s *int32) pos
}

// newArbor returns the arbor for the subsequent rule of the connection type,
// nil when the first rule is applied to every connection
func newArbor(ct *ConnType) arbor {
	switch ct.Rules.Next {
	case LAdj:
		return &adjArbor{}
	case LAdjChk:
		return &adjArbor{chk: true}
	case LBox, LBoxChk:
		return &boxArbor{}
	case LCrow, LCrowChk:
		return &crowArbor{}
	case LDiag, LDiagChk:
		return &diagArbor{}
	case LAnn, LAnnChk:
		return &annArbor{}
	case LPart:
		return &partArbor{}
	}
	return nil
}

type origin struct {
	o pos
}

func (or *origin) setOrigin(p pos) {
	or.o = p
}

// boxPos is position p of the box scan from the origin: cells fastest, then x, then y
func (or *origin) boxPos(ct *ConnType, p int32) pos {
	nel := ct.SrcNEl
	nux := ct.Geom.Nux
	p %= ct.Drv.BoxN
	return pos{X: or.o.X + (p/nel)%nux, Y: or.o.Y + p/(nel*nux), E: or.o.E + p%nel}
}

// adjArbor takes the cells following the origin.  Wrapped, it runs on
// through the whole source in index order.  Checked, cells carry into x only,
// so the run leaves the source at its right edge.
type adjArbor struct {
	origin
	chk bool
}

func (ar *adjArbor) at(g *Gen, k int32, s *int32) pos {
	ct := g.ct
	nel := ct.SrcNEl
	if ar.chk {
		e := ar.o.E + k
		return pos{X: ar.o.X + e/nel, Y: ar.o.Y, E: e % nel}
	}
	x := mod32(ar.o.X, ct.SrcNx)
	y := mod32(ar.o.Y, ct.SrcNy)
	i := (y*ct.SrcNx+x)*nel + mod32(ar.o.E, nel)
	return ct.posOf(int32(mod64(int64(i)+int64(k), int64(ct.Drv.NSrc))))
}

// boxArbor scans the Nux x Nuy box at the origin
type boxArbor struct {
	origin
}

func (ar *boxArbor) at(g *Gen, k int32, s *int32) pos {
	return ar.boxPos(g.ct, k)
}

// crowArbor draws at random within the box at the origin
type crowArbor struct {
	origin
}

func (ar *crowArbor) at(g *Gen, k int32, s *int32) pos {
	gp := &g.ct.Geom
	dx := rnd.UdevN(s, gp.Nux)
	dy := rnd.UdevN(s, gp.Nuy)
	e := rnd.UdevN(s, g.ct.SrcNEl)
	return pos{X: ar.o.X + dx, Y: ar.o.Y + dy, E: e}
}

// diagArbor steps along the diagonal from the origin, taking every cell of
// a group before stepping
type diagArbor struct {
	origin
}

func (ar *diagArbor) at(g *Gen, k int32, s *int32) pos {
	ct := g.ct
	nel := ct.SrcNEl
	e := ar.o.E + k
	step := e / nel
	return pos{X: ar.o.X + step*ct.Geom.DiagDx, Y: ar.o.Y + step*ct.Geom.DiagDy, E: e % nel}
}

// annArbor draws lattice offsets of the annulus around the center of the
// box at the origin
type annArbor struct {
	origin
}

func (ar *annArbor) at(g *Gen, k int32, s *int32) pos {
	ct := g.ct
	tab := ct.Drv.Ann
	d := tab[rnd.UdevN(s, int32(len(tab)))]
	e := rnd.UdevN(s, ct.SrcNEl)
	return pos{X: ar.o.X + ct.Geom.Nux/2 + d.X, Y: ar.o.Y + ct.Geom.Nuy/2 + d.Y, E: e}
}

// partArbor divides the box into one partition per rule connection and
// draws connection k within partition k
type partArbor struct {
	origin
}

func (ar *partArbor) at(g *Gen, k int32, s *int32) pos {
	pn := g.ct.Drv.PartN
	return ar.boxPos(g.ct, k*pn+rnd.UdevN(s, pn))
}
