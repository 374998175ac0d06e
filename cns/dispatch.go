// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/cns/fixpt"
	"github.com/emer/cns/rnd"
)

// Draws per unit on each random lane.  Every connection owns a fixed block
// of draws on each lane, so a connection's values never depend on how many
// draws other connections used.
const (
	LDraws = 8 // source (Lij) lane, per connection
	GDraws = 2 // group origin lane, per target group
	CDraws = 4 // weight lane, per connection
	DDraws = 2 // delay lane, per connection
	PDraws = 1 // phase lane, per connection
)

// Rules are the strategies selected by Dispatch for a connection type
type Rules struct {
	Cat   Cats        `desc:"source category"`
	First LRules      `desc:"first connection rule"`
	Next  LRules      `desc:"subsequent connection rule"`
	Sa    SaRules     `desc:"subarbor rule"`
	Cij   CijStrats   `desc:"weight strategy"`
	Dij   DijStrats   `desc:"delay strategy"`
	Sj    SjRules     `desc:"presynaptic value lookup"`
	Phase PhaseStrats `desc:"phase strategy"`
}

func (rl *Rules) String() string {
	return fmt.Sprintf("%v first: %v next: %v sa: %v cij: %v dij: %v sj: %v phase: %v", rl.Cat, rl.First, rl.Next, rl.Sa, rl.Cij, rl.Dij, rl.Sj, rl.Phase)
}

// pos is a source position in group coordinates, possibly outside the source
type pos struct {
	X, Y, E int32
}

func (p pos) add(o pos) pos {
	return pos{p.X + o.X, p.Y + o.Y, p.E + o.E}
}

// Derived are constants computed from the connection type by Dispatch
type Derived struct {
	NSrc    int32      `desc:"number of source cells"`
	NSrcGrp int32      `desc:"number of source groups"`
	BoxN    int32      `desc:"positions in the box, Nux * Nuy * SrcNEl"`
	NRule   int32      `desc:"connections per arbor that a subsequent rule spans"`
	PartN   int32      `desc:"box positions per partition (P)"`
	Stride  int32      `desc:"systematic advance per cell"`
	Sig16   int32      `desc:"normal rule sigma, S16"`
	Bound   EdgeModes  `desc:"boundary policy in effect"`
	Ann     []pos      `desc:"annulus lattice offsets"`
	LCell   rnd.Affine `desc:"Lij lane step per cell"`
	LConn   rnd.Affine `desc:"Lij lane step per connection"`
	CCell   rnd.Affine `desc:"Cij lane step per cell"`
	DCell   rnd.Affine `desc:"Dij lane step per cell"`
	PCell   rnd.Affine `desc:"phase lane step per cell"`
}

// firstTable maps a source category and first letter to its rule
var firstTable = [CatsN]map[KGen]LRules{
	CatRep: {
		KgE: LExtern, KgF: LFloat, KgG: LGroup, KgH: LHyper, KgJ: LJoint,
		KgN: LNorm, KgO: LOther, KgT: LTopo, KgU: LUnif, KgS: LSys,
	},
	CatIAKnown: {
		KgE: LExtern, KgF: LFloat, KgG: LGroup, KgH: LHyper, KgJ: LJoint,
		KgN: LNorm, KgT: LTopo, KgU: LUnif, KgS: LSys,
	},
	CatIAScan: {
		KgE: LExtern, KgF: LFloatScan, KgG: LGroupScan, KgH: LHyperScan, KgJ: LJointScan,
		KgN: LNormScan, KgT: LTopoScan, KgU: LUnif, KgS: LSys,
	},
	CatVG: {
		KgE: LExtern, KgN: LNormVG, KgT: LTopo, KgU: LUnifVG, KgS: LSysVG,
	},
}

// nextTable maps a source category and subsequent letter to its rule
var nextTable = [CatsN]map[KGen]LRules{
	CatRep:     {KgA: LAdj, KgB: LBox, KgC: LCrow, KgD: LDiag, KgQ: LAnn, KgP: LPart},
	CatIAKnown: {KgA: LAdj, KgB: LBox, KgC: LCrow, KgD: LDiag, KgQ: LAnn, KgP: LPart},
	CatIAScan:  {KgA: LAdjChk, KgB: LBoxChk, KgC: LCrowChk, KgD: LDiagChk, KgQ: LAnnChk, KgP: LPart},
	CatVG:      {KgA: LAdj, KgB: LBox, KgC: LCrow},
}

// ScanFirst returns true for first rules whose first connection may itself
// be out of bounds
func (lr LRules) ScanFirst() bool {
	switch lr {
	case LFloatScan, LGroupScan, LHyperScan, LJointScan, LNormScan, LTopoScan:
		return true
	}
	return false
}

// Dispatch selects the strategies of this connection type, the ict-th of
// cell type ly, for the given mode, and computes its derived constants.
// A letter combination with no rule is a fatal error.
func (ct *ConnType) Dispatch(ly *CellType, ict int, mode Modes) error {
	ct.Update()
	gen := mode == GenerateAll || (mode == Regenerate && ly.Regen)
	rl := Rules{Cat: ct.Category(), Sa: SaNone, Next: LSame}
	rl.Sj = ct.sjRule()
	rl.Phase = ct.Phase.Kind
	if gen {
		rl.Cij = ct.Cij.Kind
	} else {
		rl.Cij = CijFetch
	}
	switch {
	case !ct.Dij.Stored():
		rl.Dij = DijConst
	case gen:
		rl.Dij = ct.Dij.Kind
	default:
		rl.Dij = DijFetch
	}

	switch {
	case ct.SrcKind == SrcHand:
		rl.First = LNone
		rl.Next = LNone
	case !gen && (!ct.Recomp || mode == Regenerate):
		rl.First = LFetch
	default:
		first, err := ct.firstRule(ly, ict, rl.Cat)
		if err != nil {
			return err
		}
		rl.First = first
		if first != LExtern {
			next, err := ct.nextRule(ly, ict, rl.Cat, first)
			if err != nil {
				return err
			}
			rl.Next = next
			rl.Sa = ct.SubarborRule()
		}
	}
	ct.Rules = rl
	ct.derive()
	return nil
}

func (ct *ConnType) firstRule(ly *CellType, ict int, cat Cats) (LRules, error) {
	for _, lt := range FirstLetters {
		if !ct.Opts.Has(lt) {
			continue
		}
		if r := firstTable[cat][lt]; r != LNoRule {
			return r, nil
		}
		return LNoRule, fatal(ErrCodeNoRule, ly.Nm, ict, int64(ct.Opts), fmt.Sprintf("option %s invalid for %v source", lt.String()[2:], cat))
	}
	return LNoRule, fatal(ErrCodeNoRule, ly.Nm, ict, int64(ct.Opts), fmt.Sprintf("no first-connection option in %q", ct.Opts.Letters()))
}

func (ct *ConnType) nextRule(ly *CellType, ict int, cat Cats, first LRules) (LRules, error) {
	for _, lt := range NextLetters {
		if !ct.Opts.Has(lt) {
			continue
		}
		r := nextTable[cat][lt]
		if r == LNoRule {
			return LNoRule, fatal(ErrCodeNoRule, ly.Nm, ict, int64(ct.Opts), fmt.Sprintf("option %s invalid for %v source", lt.String()[2:], cat))
		}
		if r == LPart && first.ScanFirst() {
			return LNoRule, fatal(ErrCodePartition, ly.Nm, ict, int64(ct.Opts), "")
		}
		return r, nil
	}
	return LSame, nil
}

// sjRule selects the presynaptic lookup by source kind and color mode
func (ct *ConnType) sjRule() SjRules {
	if ct.User {
		return SjUser
	}
	switch ct.SrcKind {
	case SrcRep:
		return SjRep
	case SrcVG:
		if ct.VGFloat {
			return SjVGFloat
		}
		return SjVGByte
	case SrcValue:
		return SjValue
	case SrcHand:
		return SjNone
	}
	avg := ct.Chan == ChAvg
	switch ct.Color {
	case Col8:
		if avg {
			return SjCol8Avg
		}
		return SjCol8Chan
	case Col16:
		if avg {
			return SjCol16Avg
		}
		return SjCol16Chan
	case Col24:
		if avg {
			return SjCol24Avg
		}
		return SjCol24Chan
	case ColOpp:
		switch ct.Chan {
		case ChRed:
			return SjOppRG
		case ChGreen:
			return SjOppGR
		case ChBlue:
			return SjOppBY
		case ChAvg:
			return SjOppYB
		}
		return SjOppSub
	}
	return SjGray
}

// derive computes the Derived constants
func (ct *ConnType) derive() {
	dv := &ct.Drv
	gp := &ct.Geom
	dv.NSrc = ct.NSrc()
	dv.NSrcGrp = ct.SrcNx * ct.SrcNy
	dv.BoxN = gp.Nux * gp.Nuy * ct.SrcNEl
	switch ct.Rules.Sa {
	case SaClone, SaIndep:
		dv.NRule = ct.Nsa
	case SaRepeat:
		dv.NRule = ct.Nc / ct.Nsa
	default:
		dv.NRule = ct.Nc
	}
	dv.PartN = 1
	if dv.NRule > 0 && dv.BoxN/dv.NRule > 1 {
		dv.PartN = dv.BoxN / dv.NRule
	}
	dv.Stride = gp.Stride
	if dv.Stride == 0 {
		dv.Stride = ct.Nc
	}
	dv.Sig16, _ = fixpt.FromFloat(gp.Sigma, 16)
	switch ct.Rules.Cat {
	case CatIAKnown:
		dv.Bound = ct.Edge
	case CatIAScan:
		dv.Bound = EdgeSkip
	default:
		dv.Bound = EdgeWrap
	}
	dv.Ann = nil
	if ct.Rules.Next == LAnn || ct.Rules.Next == LAnnChk {
		dv.Ann = annulus(gp.Rin, gp.Rout)
	}
	nc := uint64(ct.Nc)
	dv.LCell = rnd.Pow(nc * LDraws)
	dv.LConn = rnd.Pow(LDraws)
	dv.CCell = rnd.Pow(nc * CDraws)
	dv.DCell = rnd.Pow(nc * DDraws)
	dv.PCell = rnd.Pow(nc * PDraws)
}

// annulus returns the lattice offsets whose distance from the center is in
// [rin, rout], in raster order
func annulus(rin, rout float32) []pos {
	r := int32(math32.Floor(rout))
	rin2 := rin * rin
	rout2 := rout * rout
	var tab []pos
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := float32(dx*dx + dy*dy)
			if d2 >= rin2 && d2 <= rout2 {
				tab = append(tab, pos{X: dx, Y: dy})
			}
		}
	}
	if len(tab) == 0 {
		tab = append(tab, pos{})
	}
	return tab
}

// Dispatch selects the strategies of all connection types for the mode.
// Existing generation contexts become stale.
func (ly *CellType) Dispatch(mode Modes) error {
	ly.Mode = mode
	ly.Epoch++
	for ict, ct := range ly.Conns {
		if err := ct.Dispatch(ly, ict, mode); err != nil {
			return err
		}
	}
	return nil
}
