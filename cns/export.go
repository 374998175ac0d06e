// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"fmt"
	"io"

	"github.com/emer/cns/elij"
	"github.com/emer/cns/fixpt"
)

// WriteExtern writes the stored connections of connection type ict to the
// external list format, in true synapse order with a skip-one record for each
// skipped connection, so the list read back with option E reproduces them.
// Weights keep their top 16 bits.  Returns the number of records written.
func WriteExtern(w io.Writer, ly *CellType, ict int) (int64, error) {
	if ict < 0 || ict >= len(ly.Mem) || ly.Mem[ict] == nil {
		return 0, fmt.Errorf("WriteExtern: %s connection type %d not built", ly.Nm, ict)
	}
	cm := ly.Mem[ict]
	nbc := ly.Conns[ict].Cij.Nbc
	wr := elij.NewWriter(w)
	nc := cm.NCells()
	for cell := int32(0); cell < nc; cell++ {
		row := cm.Row(cell)
		nv := cm.NVal[cell]
		ns := cm.NSkip[cell]
		var iv, is int32
		for iv < nv || is < ns {
			rc := elij.Record{Tgt: cell, Ict: int16(ict + 1)}
			if is < ns && cm.Skip(cell, is) == iv+is {
				rc.Src = elij.SkipOne
				is++
			} else {
				rc.Src = cm.Lij[row+int(iv)]
				rc.Wt = int16(fixpt.Expand(int32(cm.Cij[row+int(iv)]), nbc) >> 16)
				iv++
			}
			if err := wr.Write(rc); err != nil {
				return wr.NWrit, err
			}
		}
	}
	return wr.NWrit, wr.Flush()
}
