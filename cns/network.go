// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/params"
	"github.com/emer/emergent/v2/timer"
	"github.com/goki/ki/ints"
)

// Network holds the cell types of a model and runs connection generation
// over them
type Network struct {
	Nm       string                 `desc:"overall name of network -- helps discriminate if there are multiple"`
	Layers   []*CellType            `desc:"cell types, in canonical generation order"`
	LayMap   map[string]*CellType   `view:"-" desc:"map of name to cell types -- names must be unique"`
	Stats    Stats                  `inactive:"+" desc:"counters accumulated over all cell types"`
	FunTimes map[string]*timer.Time `view:"-" desc:"timers for each major function"`
}

// NewNetwork returns a new empty network
func NewNetwork(name string) *Network {
	return &Network{Nm: name}
}

// AddCellType adds a new cell type of NGx x NGy groups of NEl cells
func (nt *Network) AddCellType(name string, ngx, ngy, nel int) *CellType {
	ly := &CellType{}
	ly.Defaults()
	ly.Nm = name
	ly.NGx = int32(ngx)
	ly.NGy = int32(ngy)
	ly.NEl = int32(nel)
	nt.Layers = append(nt.Layers, ly)
	nt.MakeLayMap()
	return ly
}

// CellTypeByName returns a cell type by name, nil if not found
func (nt *Network) CellTypeByName(name string) *CellType {
	if nt.LayMap == nil || len(nt.LayMap) != len(nt.Layers) {
		nt.MakeLayMap()
	}
	return nt.LayMap[name]
}

// CellTypeByNameTry returns a cell type by name -- emits a log error message
// if it is not found
func (nt *Network) CellTypeByNameTry(name string) (*CellType, error) {
	ly := nt.CellTypeByName(name)
	if ly == nil {
		err := fmt.Errorf("CellType named: %v not found in Network: %v", name, nt.Nm)
		log.Println(err)
		return nil, err
	}
	return ly, nil
}

// MakeLayMap updates the cell type map based on current cell types
func (nt *Network) MakeLayMap() {
	nt.LayMap = make(map[string]*CellType, len(nt.Layers))
	for _, ly := range nt.Layers {
		nt.LayMap[ly.Nm] = ly
	}
}

// ApplyParams applies given parameter style Sheet to cell types and
// connection types in this network.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (nt *Network) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	var rerr error
	for _, ly := range nt.Layers {
		app, err := ly.ApplyParams(pars, setMsg)
		if app {
			applied = true
		}
		if err != nil {
			rerr = err
		}
	}
	return applied, rerr
}

// Build resolves the repertoire sources of all connection types by name and
// allocates connection memory.  Generation contexts made before are stale.
func (nt *Network) Build() error {
	nt.MakeLayMap()
	nt.FunTimes = make(map[string]*timer.Time)
	emsg := ""
	for _, ly := range nt.Layers {
		for _, ct := range ly.Conns {
			if ct.SrcKind != SrcRep {
				continue
			}
			src := nt.CellTypeByName(ct.SrcName)
			if src == nil {
				emsg += fmt.Sprintf("%s: %s: source cell type %q not found\n", ly.Nm, ct.Nm, ct.SrcName)
				continue
			}
			ct.Src = src
		}
	}
	for _, ly := range nt.Layers {
		if err := ly.Build(); err != nil {
			emsg += err.Error() + "\n"
		}
	}
	if emsg != "" {
		return errors.New(emsg)
	}
	return nil
}

// Validate tests all cell types for consistent settings
func (nt *Network) Validate(logmsg bool) error {
	emsg := ""
	for _, ly := range nt.Layers {
		ly.Update()
		if err := ly.Validate(logmsg); err != nil {
			emsg += err.Error() + "\n"
		}
	}
	if emsg != "" {
		return errors.New(emsg)
	}
	return nil
}

// Dispatch selects the strategies of every connection type for the mode.
// The first fatal error is returned.
func (nt *Network) Dispatch(mode Modes) error {
	for _, ly := range nt.Layers {
		if err := ly.Dispatch(mode); err != nil {
			return err
		}
	}
	return nil
}

// Generate runs every cell of every cell type in canonical order, storing the
// connections of generating cell types.
func (nt *Network) Generate() error {
	nt.FunTimerStart("Generate")
	defer nt.FunTimerStop("Generate")
	for _, ly := range nt.Layers {
		if err := nt.generateCells(ly, 0, ly.NCells()); err != nil {
			return err
		}
	}
	return nil
}

// GenerateCells runs cells [st, ed) of the cell type in order
func (nt *Network) GenerateCells(ly *CellType, st, ed int32) error {
	return nt.generateCells(ly, st, ed)
}

func (nt *Network) generateCells(ly *CellType, st, ed int32) error {
	g := NewGen(ly)
	for cell := st; cell < ed; cell++ {
		if err := g.Generate(cell); err != nil {
			return err
		}
	}
	nt.addStats(ly, &g.Stats)
	return nil
}

// addStats accumulates generation counters into the cell type and network
func (nt *Network) addStats(ly *CellType, st *Stats) {
	ly.Stats.Add(st)
	nt.Stats.Add(st)
}

// Regenerate regenerates the listed cells of each named cell type, which
// must be marked Regen, leaving the memory of all other cells untouched.
// Cells are entered through the slow path, in the order given.  The names are
// checked before anything is dispatched, and the network is redispatched to
// RunNormal afterward, also when generation fails.
func (nt *Network) Regenerate(cells map[string][]int32) error {
	nt.FunTimerStart("Regenerate")
	defer nt.FunTimerStop("Regenerate")
	names := make([]string, 0, len(cells))
	for nm := range cells {
		names = append(names, nm)
	}
	sort.Strings(names)
	lys := make([]*CellType, len(names))
	for i, nm := range names {
		ly, err := nt.CellTypeByNameTry(nm)
		if err != nil {
			return err
		}
		if !ly.Regen {
			return fatal(ErrCodeConfig, ly.Nm, -1, 0, "cell type is not marked for regeneration")
		}
		lys[i] = ly
	}
	if err := nt.Dispatch(Regenerate); err != nil {
		return err
	}
	for i, ly := range lys {
		g := NewGen(ly)
		g.Stateless = true
		for _, cell := range cells[names[i]] {
			if err := g.Generate(cell); err != nil {
				nt.Dispatch(RunNormal)
				return err
			}
		}
		nt.addStats(ly, &g.Stats)
	}
	return nt.Dispatch(RunNormal)
}

// GenerateParallel generates all cell types using nthr goroutines per cell
// type, each with its own stateless generation context over an interleaved
// share of the cells.  Cell types with an external list are generated
// sequentially, since the list is read in cell order.
func (nt *Network) GenerateParallel(nthr int) error {
	nt.FunTimerStart("GenerateParallel")
	defer nt.FunTimerStop("GenerateParallel")
	nthr = ints.MaxInt(nthr, 1)
	for _, ly := range nt.Layers {
		if nthr == 1 || ly.HasExtern() {
			if err := nt.generateCells(ly, 0, ly.NCells()); err != nil {
				return err
			}
			continue
		}
		gens := make([]*Gen, nthr)
		errs := make([]error, nthr)
		var wg sync.WaitGroup
		for th := 0; th < nthr; th++ {
			g := NewGen(ly)
			g.Stateless = true
			gens[th] = g
			wg.Add(1)
			go func(th int) {
				defer wg.Done()
				for cell := int32(th); cell < ly.NCells(); cell += int32(nthr) {
					if err := gens[th].Generate(cell); err != nil {
						errs[th] = err
						return
					}
				}
			}(th)
		}
		wg.Wait()
		for th, g := range gens {
			if errs[th] != nil {
				return errs[th]
			}
			nt.addStats(ly, &g.Stats)
		}
	}
	return nil
}

// ConnValue returns the value of variable varNm for stored connection iv of
// cell in connection type ict of the named cell type
func (nt *Network) ConnValue(layer string, ict int, cell int32, iv int, varNm string) (float32, error) {
	ly, err := nt.CellTypeByNameTry(layer)
	if err != nil {
		return 0, err
	}
	sy, err := ly.Syn(ict, cell, iv)
	if err != nil {
		return 0, err
	}
	return sy.VarByName(varNm)
}

// SizeBytes returns the bytes of connection memory of all cell types
func (nt *Network) SizeBytes() int {
	n := 0
	for _, ly := range nt.Layers {
		n += ly.SizeBytes()
	}
	return n
}

// SizeReport returns a string reporting the connection memory of each cell
// type and connection type
func (nt *Network) SizeReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network: %s connection memory: %s\n", nt.Nm, datasize.ByteSize(nt.SizeBytes()).HumanReadable())
	for _, ly := range nt.Layers {
		fmt.Fprintf(&b, "%14s:\t cells: %d\t %s\n", ly.Nm, ly.NCells(), datasize.ByteSize(ly.SizeBytes()).HumanReadable())
		for i, ct := range ly.Conns {
			sz := 0
			if i < len(ly.Mem) && ly.Mem[i] != nil {
				sz = ly.Mem[i].SizeBytes()
			}
			fmt.Fprintf(&b, "\t%14s:\t nc: %d\t %s\n", ct.Nm, ct.Nc, datasize.ByteSize(sz).HumanReadable())
		}
	}
	return b.String()
}

// StatsReport returns the generation counters of each cell type
func (nt *Network) StatsReport() string {
	var b strings.Builder
	for _, ly := range nt.Layers {
		st := &ly.Stats
		fmt.Fprintf(&b, "%14s:\t conns: %d\t skips: %d\t self: %d\t sat: %d\t extra: %d\n", ly.Nm, st.NConn, st.NSkip, st.NSelf, st.NSat, st.NExtra)
	}
	return b.String()
}

// FunTimerStart starts function timer for given function name -- ensures creation of timer
func (nt *Network) FunTimerStart(fun string) {
	if nt.FunTimes == nil {
		nt.FunTimes = make(map[string]*timer.Time)
	}
	ft, ok := nt.FunTimes[fun]
	if !ok {
		ft = &timer.Time{}
		nt.FunTimes[fun] = ft
	}
	ft.Start()
}

// FunTimerStop stops function timer -- timer must already exist
func (nt *Network) FunTimerStop(fun string) {
	ft := nt.FunTimes[fun]
	ft.Stop()
}

// TimerReport reports the amount of time spent in each function
func (nt *Network) TimerReport() {
	fmt.Printf("TimerReport: %v\n", nt.Nm)
	fmt.Printf("\tFunction Name\tTotal Secs\n")
	fnms := make([]string, 0, len(nt.FunTimes))
	for k := range nt.FunTimes {
		fnms = append(fnms, k)
	}
	sort.Strings(fnms)
	for _, fn := range fnms {
		fmt.Printf("\t%v \t%6.4g\n", fn, nt.FunTimes[fn].TotalSecs())
	}
}
