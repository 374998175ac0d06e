// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

// ConnMem is the stored connection data of one connection type over all cells
// of a cell type.  Each cell has a row of Nc Lij slots: the source indexes of
// its valid connections fill the row upward from slot 0, and the true synapse
// numbers of skipped connections fill it downward from slot Nc-1, so the skip
// list reads in generation order from the top.  Cij and Dij rows are indexed
// like the valid sources.
type ConnMem struct {
	Nc    int32   `desc:"connections per cell"`
	Lij   []int32 `desc:"source indexes, and the descending skip list"`
	Cij   []int16 `desc:"weight codes, valid connections only"`
	Dij   []uint8 `desc:"delays, nil when delays are constant"`
	NVal  []int32 `desc:"number of valid connections per cell"`
	NSkip []int32 `desc:"number of skip list entries per cell"`
}

// NewConnMem allocates memory for ncell cells
func NewConnMem(ncell, nc int32, delays bool) *ConnMem {
	cm := &ConnMem{Nc: nc}
	n := int(ncell) * int(nc)
	cm.Lij = make([]int32, n)
	cm.Cij = make([]int16, n)
	if delays {
		cm.Dij = make([]uint8, n)
	}
	cm.NVal = make([]int32, ncell)
	cm.NSkip = make([]int32, ncell)
	return cm
}

// NCells returns the number of cells
func (cm *ConnMem) NCells() int32 {
	return int32(len(cm.NVal))
}

// Row returns the start of the cell's row
func (cm *ConnMem) Row(cell int32) int {
	return int(cell) * int(cm.Nc)
}

// ResetCell clears the counts of a cell, before it is regenerated
func (cm *ConnMem) ResetCell(cell int32) {
	cm.NVal[cell] = 0
	cm.NSkip[cell] = 0
}

// AddValid stores the next valid connection source of the cell
func (cm *ConnMem) AddValid(cell, lij int32) {
	cm.Lij[cm.Row(cell)+int(cm.NVal[cell])] = lij
	cm.NVal[cell]++
}

// AddSkip records a skipped true synapse number for the cell
func (cm *ConnMem) AddSkip(cell, isyn int32) {
	cm.Lij[cm.Row(cell)+int(cm.Nc-1-cm.NSkip[cell])] = isyn
	cm.NSkip[cell]++
}

// Skip returns the i-th skipped synapse number of the cell, in generation order
func (cm *ConnMem) Skip(cell, i int32) int32 {
	return cm.Lij[cm.Row(cell)+int(cm.Nc-1-i)]
}

// Skips returns the skip list of the cell in generation order
func (cm *ConnMem) Skips(cell int32) []int32 {
	ns := cm.NSkip[cell]
	sk := make([]int32, ns)
	for i := int32(0); i < ns; i++ {
		sk[i] = cm.Skip(cell, i)
	}
	return sk
}

// Valid returns the source indexes of the valid connections of the cell
func (cm *ConnMem) Valid(cell int32) []int32 {
	r := cm.Row(cell)
	return cm.Lij[r : r+int(cm.NVal[cell])]
}

// SizeBytes returns the bytes used
func (cm *ConnMem) SizeBytes() int {
	return 4*len(cm.Lij) + 2*len(cm.Cij) + len(cm.Dij) + 4*len(cm.NVal) + 4*len(cm.NSkip)
}
