// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"errors"
	"fmt"
	"log"

	"github.com/emer/emergent/v2/params"
)

// CellType is a homogeneous population of cells (a repertoire or layer),
// arranged as NGx x NGy groups of NEl cells each, owning the ordered list of
// connection types its cells receive.
type CellType struct {
	Nm        string      `desc:"name of the cell type -- must be unique in the network"`
	Cls       string      `desc:"class(es) for params styling, space separated"`
	NGx       int32       `min:"1" desc:"number of groups along x"`
	NGy       int32       `min:"1" desc:"number of groups along y"`
	NEl       int32       `min:"1" desc:"number of cells per group"`
	SelfAvoid bool        `desc:"never connect a cell to itself through a connection type whose source is this cell type"`
	Regen     bool        `desc:"cells of this type are regenerated in Regenerate mode"`
	Conns     []*ConnType `desc:"connection types received, in canonical generation order"`
	Mem       []*ConnMem  `view:"-" json:"-" desc:"connection memory per connection type, allocated by Build"`

	Mode  Modes `inactive:"+" desc:"mode of the last Dispatch"`
	Stats Stats `inactive:"+" desc:"counters accumulated by generation"`
	Epoch int   `view:"-" desc:"incremented by Build and Dispatch, so stale generation contexts can be detected"`
}

func (ly *CellType) Defaults() {
	ly.NGx = 1
	ly.NGy = 1
	ly.NEl = 1
}

// params.Styler interface
func (ly *CellType) TypeName() string { return "CellType" }
func (ly *CellType) Class() string    { return ly.Cls }
func (ly *CellType) Name() string     { return ly.Nm }

// NCells returns the number of cells
func (ly *CellType) NCells() int32 {
	return ly.NGx * ly.NGy * ly.NEl
}

// NGroups returns the number of groups
func (ly *CellType) NGroups() int32 {
	return ly.NGx * ly.NGy
}

// AddConnType adds a new connection type with defaults, receiving from the
// given kind of source
func (ly *CellType) AddConnType(name string, kind SrcKinds, nc int32) *ConnType {
	ct := &ConnType{}
	ct.Defaults()
	ct.Nm = name
	ct.SrcKind = kind
	ct.Nc = nc
	ct.Seeds.Defaults(int32(1009 + 7919*len(ly.Conns)))
	ly.Conns = append(ly.Conns, ct)
	return ct
}

// ConnTypeByName returns the connection type and its index, or nil, -1
func (ly *CellType) ConnTypeByName(name string) (*ConnType, int) {
	for i, ct := range ly.Conns {
		if ct.Nm == name {
			return ct, i
		}
	}
	return nil, -1
}

// Update updates derived parameters of all connection types
func (ly *CellType) Update() {
	for _, ct := range ly.Conns {
		ct.Update()
	}
}

// ApplyParams applies given parameter style Sheet to this cell type and its
// connection types.  Returns true if any params were set, and error if there
// were any errors.
func (ly *CellType) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied, rerr := pars.Apply(ly, setMsg)
	for _, ct := range ly.Conns {
		app, err := ct.ApplyParams(pars, setMsg)
		if app {
			applied = true
		}
		if err != nil {
			rerr = err
		}
	}
	return applied, rerr
}

// Validate tests the cell type and its connection types -- returns error
// message or nil if no problems (and logs them if logmsg = true)
func (ly *CellType) Validate(logmsg bool) error {
	emsg := ""
	if ly.NGx < 1 || ly.NGy < 1 || ly.NEl < 1 {
		emsg += fmt.Sprintf("geometry %dx%dx%d must be positive; ", ly.NGx, ly.NGy, ly.NEl)
	}
	for _, ct := range ly.Conns {
		if err := ct.Validate(false); err != nil {
			emsg += err.Error()
		}
	}
	if emsg != "" {
		err := errors.New(ly.Nm + ": " + emsg)
		if logmsg {
			log.Println(err)
		}
		return err
	}
	return nil
}

// Build allocates connection memory for all connection types.  This is the
// structural reload point: any generation context made before is stale.
func (ly *CellType) Build() error {
	ly.Update()
	if err := ly.Validate(true); err != nil {
		return err
	}
	ncell := ly.NCells()
	ly.Mem = make([]*ConnMem, len(ly.Conns))
	for i, ct := range ly.Conns {
		ly.Mem[i] = NewConnMem(ncell, ct.Nc, ct.Dij.Stored())
	}
	ly.Epoch++
	return nil
}

// Generating returns true if the current mode generates and stores this
// cell type's connections, false if they are fetched
func (ly *CellType) Generating() bool {
	switch ly.Mode {
	case GenerateAll:
		return true
	case Regenerate:
		return ly.Regen
	}
	return false
}

// SizeBytes returns the bytes of connection memory
func (ly *CellType) SizeBytes() int {
	n := 0
	for _, cm := range ly.Mem {
		if cm != nil {
			n += cm.SizeBytes()
		}
	}
	return n
}
