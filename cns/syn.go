// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/emer/cns/fixpt"
	"github.com/goki/ki/indent"
)

// Syn is one stored connection as float values, for reporting
type Syn struct {
	Lij  float32 `desc:"source cell index"`
	Cij  float32 `desc:"weight, in [-1, 1)"`
	Dij  float32 `desc:"delay, in cycles"`
	Isyn float32 `desc:"true synapse number, counting skipped connections"`
}

var SynVars = []string{"Lij", "Cij", "Dij", "Isyn"}

var SynVarsMap map[string]int

func init() {
	SynVarsMap = make(map[string]int, len(SynVars))
	for i, v := range SynVars {
		SynVarsMap[v] = i
	}
}

func (sy *Syn) VarNames() []string {
	return SynVars
}

// SynVarByName returns the index of the variable in the Syn, or error
func SynVarByName(varNm string) (int, error) {
	i, ok := SynVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Syn VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in SynVars list)
func (sy *Syn) VarByIndex(idx int) float32 {
	v := reflect.ValueOf(*sy)
	return v.Field(idx).Interface().(float32)
}

// VarByName returns variable by name, or error
func (sy *Syn) VarByName(varNm string) (float32, error) {
	i, err := SynVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByIndex(i), nil
}

// Syn returns stored connection iv of the cell in connection type ict
func (ly *CellType) Syn(ict int, cell int32, iv int) (Syn, error) {
	if ict < 0 || ict >= len(ly.Mem) || ly.Mem[ict] == nil {
		return Syn{}, fmt.Errorf("CellType %s: connection type %d not built", ly.Nm, ict)
	}
	cm := ly.Mem[ict]
	if cell < 0 || cell >= cm.NCells() || iv < 0 || iv >= int(cm.NVal[cell]) {
		return Syn{}, fmt.Errorf("CellType %s: connection %d of cell %d out of range", ly.Nm, iv, cell)
	}
	ct := ly.Conns[ict]
	idx := cm.Row(cell) + iv
	sy := Syn{Lij: float32(cm.Lij[idx])}
	sy.Cij = fixpt.ToFloat(fixpt.Expand(int32(cm.Cij[idx]), ct.Cij.Nbc), 31)
	if cm.Dij != nil {
		sy.Dij = float32(cm.Dij[idx])
	} else {
		sy.Dij = float32(ct.Dij.Const)
	}
	isyn := int32(iv)
	for _, sk := range cm.Skips(cell) {
		if sk > isyn {
			break
		}
		isyn++
	}
	sy.Isyn = float32(isyn)
	return sy, nil
}

// HasExtern returns true if any connection type reads an external list
func (ly *CellType) HasExtern() bool {
	for _, ct := range ly.Conns {
		if ct.Ext != nil && ct.Opts.Has(KgE) {
			return true
		}
	}
	return false
}

// WriteConnsJSON writes the stored connections of the cell type to a JSON
// format, one record per cell and connection type
func (ly *CellType) WriteConnsJSON(w io.Writer, depth int) {
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"CellType\": %q,\n", ly.Nm)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("\"Conns\": [\n"))
	depth++
	for ict, ct := range ly.Conns {
		cm := ly.Mem[ict]
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("{\n"))
		depth++
		w.Write(indent.TabBytes(depth))
		w.Write([]byte(fmt.Sprintf("\"ConnType\": %q,\n", ct.Nm)))
		w.Write(indent.TabBytes(depth))
		w.Write([]byte(fmt.Sprintf("\"Nc\": %d,\n", ct.Nc)))
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("\"Cells\": [\n"))
		depth++
		nc := cm.NCells()
		for cell := int32(0); cell < nc; cell++ {
			w.Write(indent.TabBytes(depth))
			w.Write([]byte(fmt.Sprintf("{\"Cell\": %d, \"Lij\": %s, \"Cij\": %s, \"Skip\": %s}", cell, intsJSON(cm.Valid(cell)), cijJSON(cm, cell, ct.Cij.Nbc), intsJSON(cm.Skips(cell)))))
			if cell < nc-1 {
				w.Write([]byte(",\n"))
			} else {
				w.Write([]byte("\n"))
			}
		}
		depth--
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("]\n"))
		depth--
		w.Write(indent.TabBytes(depth))
		if ict < len(ly.Conns)-1 {
			w.Write([]byte("},\n"))
		} else {
			w.Write([]byte("}\n"))
		}
	}
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("]\n"))
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("}\n"))
}

func intsJSON(vals []int32) string {
	b := []byte{'['}
	for i, v := range vals {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return string(append(b, ']'))
}

func cijJSON(cm *ConnMem, cell int32, nbc int) string {
	r := cm.Row(cell)
	b := []byte{'['}
	for i := 0; i < int(cm.NVal[cell]); i++ {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendFloat(b, float64(fixpt.ToFloat(fixpt.Expand(int32(cm.Cij[r+i]), nbc), 31)), 'g', 6, 32)
	}
	return string(append(b, ']'))
}
