// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"fmt"

	"github.com/emer/cns/rnd"
)

// NewCell enters the given cell, advancing the state of every connection
// type.  Entering the cell after the current one steps the state forward;
// any other cell recomputes it from the cell number.  Both give identical
// state.  The cell number must be valid for the cell type.
func (g *Gen) NewCell(cell int32) error {
	if g.err != nil {
		return g.err
	}
	ly := g.Ly
	if g.epoch != ly.Epoch || len(g.cts) != len(ly.Conns) {
		return g.fail(fatal(ErrCodeStale, ly.Nm, -1, int64(cell), "cell type rebuilt or redispatched since context was made"))
	}
	if cell < 0 || cell >= ly.NCells() {
		return g.fail(fatal(ErrCodeConfig, ly.Nm, -1, int64(cell), fmt.Sprintf("cell outside [0, %d)", ly.NCells())))
	}
	if g.ict >= 0 {
		g.End()
	}
	if !g.Stateless && g.entry && cell == g.grp.Cell+1 {
		g.stepCell()
	} else {
		g.setCell(cell)
	}
	g.entry = true
	return nil
}

// setCell computes the cell state from the cell number
func (g *Gen) setCell(cell int32) {
	ly := g.Ly
	cg := &g.grp
	cg.Cell = cell
	cg.El = cell % ly.NEl
	cg.Group = cell / ly.NEl
	cg.Gx = cg.Group % ly.NGx
	cg.Gy = cg.Group / ly.NGx
	cg.GRow = cg.Gy
	cg.NewGroup = cg.El == 0
	cg.NewRow = cg.NewGroup && cg.Gx == 0
	c := uint64(cell)
	for i, ct := range ly.Conns {
		st := &g.cts[i]
		nc := uint64(ct.Nc)
		st.Cell = cell
		st.LSeed = rnd.Skipped(ct.Seeds.L, c*nc*LDraws)
		st.CSeed = rnd.Skipped(ct.Seeds.C, c*nc*CDraws)
		st.DSeed = rnd.Skipped(ct.Seeds.D, c*nc*DDraws)
		st.PSeed = rnd.Skipped(ct.Seeds.P, c*nc*PDraws)
		st.SysBase = sysBase(ct, cell, cg.Group)
	}
}

// stepCell advances the cell state by one cell
func (g *Gen) stepCell() {
	ly := g.Ly
	cg := &g.grp
	cg.Cell++
	cg.El++
	cg.NewGroup = false
	cg.NewRow = false
	if cg.El == ly.NEl {
		cg.El = 0
		cg.Group++
		cg.Gx++
		cg.NewGroup = true
		if cg.Gx == ly.NGx {
			cg.Gx = 0
			cg.Gy++
			cg.GRow++
			cg.NewRow = true
		}
	}
	for i, ct := range ly.Conns {
		st := &g.cts[i]
		dv := &ct.Drv
		st.Cell = cg.Cell
		st.LSeed = dv.LCell.Apply(st.LSeed)
		st.CSeed = dv.CCell.Apply(st.CSeed)
		st.DSeed = dv.DCell.Apply(st.DSeed)
		st.PSeed = dv.PCell.Apply(st.PSeed)
		if dv.NSrc > 0 {
			sb := int64(st.SysBase) + int64(dv.Stride)
			if cg.NewGroup {
				sb += int64(ct.Geom.SysGrp)
			}
			st.SysBase = int32(mod64(sb, int64(dv.NSrc)))
		}
	}
}

// sysBase is the systematic offset of a cell computed directly
func sysBase(ct *ConnType, cell, group int32) int32 {
	n := int64(ct.Drv.NSrc)
	if n <= 0 {
		return 0
	}
	sb := int64(ct.Geom.SysOff) + int64(cell)*int64(ct.Drv.Stride) + int64(group)*int64(ct.Geom.SysGrp)
	return int32(mod64(sb, n))
}

func mod64(a, n int64) int64 {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func mod32(a, n int32) int32 {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func (cg *CellGroup) String() string {
	return fmt.Sprintf("cell: %d el: %d group: %d (%d, %d) row: %d", cg.Cell, cg.El, cg.Group, cg.Gx, cg.Gy, cg.GRow)
}
