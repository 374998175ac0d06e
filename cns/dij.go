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

// Dij returns the delay of the current connection, in cycles.  Hand-vision
// connections have no delay.
func (g *Gen) Dij() int32 {
	if g.dijOK {
		return g.dij
	}
	ct := g.ct
	if ct == nil || g.nval == 0 {
		return 0
	}
	g.dijOK = true
	dp := &ct.Dij
	var d int32
	switch {
	case ct.Rules.First == LNone:
	case ct.Rules.Dij == DijConst:
		d = dp.Const
	case ct.Rules.Dij == DijFetch:
		d = int32(g.mem.Dij[g.mem.Row(g.grp.Cell)+int(g.nval-1)])
	case ct.Rules.Dij == DijUniform:
		s := g.dijSeed()
		d = dp.Min + rnd.UdevN(&s, dp.Max-dp.Min+1)
	case ct.Rules.Dij == DijNormal:
		s := g.dijSeed()
		v := fixpt.RoundShift(int64(rnd.Ndev(&s, dp.Mean8, dp.Sigma8)), 8)
		d = int32(ints.MinInt(ints.MaxInt(int(v), int(dp.Min)), int(dp.Max)))
	case ct.Rules.Dij == DijUser:
		d = int32(ints.MinInt(ints.MaxInt(int(dp.Fn(g.grp.Cell, g.isyn, g.lij)), 0), MaxDelay))
	default:
		g.fail(fatal(ErrCodeBadRule, g.Ly.Nm, g.ict, int64(ct.Rules.Dij), fmt.Sprintf("delay strategy %v cannot generate", ct.Rules.Dij)))
	}
	g.dij = d
	return d
}

// dijSeed is the delay lane seed of the current connection
func (g *Gen) dijSeed() int32 {
	return rnd.Skipped(g.st.DSeed, uint64(g.isyn)*DDraws)
}
