// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"log"

	"github.com/emer/emergent/v2/prjn"
	"github.com/emer/etable/v2/etensor"
)

// Pattern is a prjn.Pattern giving the connectivity of one connection type,
// so a generated connection type can drive an emergent projection.  The
// receiving shape must have the cells of the cell type and the sending shape
// the cells of the source.  The cell type must have been dispatched.
// Repeated connections to the same source collapse to one.  Connect never
// writes connection memory, even when the cell type is dispatched to generate.
type Pattern struct {
	Ly  *CellType `desc:"receiving cell type"`
	Ict int       `desc:"connection type number"`
}

var _ prjn.Pattern = (*Pattern)(nil)

// NewPattern returns a pattern for connection type ict of the cell type
func NewPattern(ly *CellType, ict int) *Pattern {
	return &Pattern{Ly: ly, Ict: ict}
}

func (pt *Pattern) Name() string {
	return "CNS " + pt.Ly.Conns[pt.Ict].Nm
}

func (pt *Pattern) Connect(send, recv *etensor.Shape, same bool) (sendn, recvn *etensor.Int32, cons *etensor.Bits) {
	sendn, recvn, cons = prjn.NewTensors(send, recv)
	ly := pt.Ly
	ct := ly.Conns[pt.Ict]
	nrecv := recv.Len()
	nsend := send.Len()
	if int32(nrecv) != ly.NCells() || int32(nsend) != ct.NSrc() {
		log.Printf("cns.Pattern %s: shapes %v -> %v do not match %d sources -> %d cells\n", pt.Name(), send.Shp, recv.Shp, ct.NSrc(), ly.NCells())
		return
	}
	g := NewGen(ly)
	g.NoStore = true
	for ri := 0; ri < nrecv; ri++ {
		if err := g.NewCell(int32(ri)); err != nil {
			log.Println(err)
			return
		}
		conns, err := g.Collect(pt.Ict)
		if err != nil {
			log.Println(err)
			return
		}
		off := ri * nsend
		for _, cn := range conns {
			si := int(cn.Lij)
			if cons.Values.Index(off + si) {
				continue
			}
			cons.Values.Set(off+si, true)
			recvn.Values[ri]++
			sendn.Values[si]++
		}
	}
	return
}
