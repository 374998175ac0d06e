// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"github.com/emer/cns/rnd"
)

// Phase returns the phase of the current connection, in [0, NPhases)
func (g *Gen) Phase(src *SrcData) int32 {
	ct := g.ct
	if ct == nil || g.nval == 0 {
		return 0
	}
	switch ct.Rules.Phase {
	case PhInput:
		if src == nil || int(g.lij) >= len(src.Phase) {
			return 0
		}
		return int32(src.Phase[g.lij]) & (NPhases - 1)
	case PhRandom:
		s := rnd.Skipped(g.st.PSeed, uint64(g.isyn)*PDraws)
		return rnd.UdevN(&s, NPhases)
	case PhUniform:
		s := g.st.PSeed
		return rnd.UdevN(&s, NPhases)
	}
	return ct.Phase.Const & (NPhases - 1)
}
