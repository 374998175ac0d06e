// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"errors"
	"fmt"
	"log"

	"github.com/emer/cns/elij"
	"github.com/emer/cns/fixpt"
	"github.com/emer/emergent/v2/params"
	"github.com/emer/etable/v2/etensor"
)

// GeomParams are the geometric parameters of the topology rules
type GeomParams struct {
	Nux    int32   `def:"1" min:"1" desc:"box width in source groups (pixels for input arrays)"`
	Nuy    int32   `def:"1" min:"1" desc:"box height in source groups"`
	Xoff   int32   `desc:"x offset added to topographic and scanned origins"`
	Yoff   int32   `desc:"y offset added to topographic and scanned origins"`
	Rin    float32 `def:"0" desc:"inner radius of the annulus (Q), inclusive"`
	Rout   float32 `def:"1" desc:"outer radius of the annulus (Q), inclusive"`
	DiagDx int32   `def:"1" desc:"x step of the diagonal (D)"`
	DiagDy int32   `def:"1" desc:"y step of the diagonal (D)"`
	HyperX int32   `def:"2" min:"1" desc:"target groups per hypergroup along x (H)"`
	HyperY int32   `def:"2" min:"1" desc:"target groups per hypergroup along y (H)"`
	Stride int32   `def:"0" desc:"systematic (S) offset advance per cell -- 0 means Nc"`
	SysOff int32   `desc:"systematic (S) offset of cell 0"`
	SysGrp int32   `desc:"extra systematic (S) offset added at each new target group"`
	Sigma  float32 `def:"1" desc:"standard deviation of the normal (N) rule, in source groups"`
}

func (gp *GeomParams) Defaults() {
	gp.Nux = 1
	gp.Nuy = 1
	gp.Rin = 0
	gp.Rout = 1
	gp.DiagDx = 1
	gp.DiagDy = 1
	gp.HyperX = 2
	gp.HyperY = 2
	gp.Sigma = 1
}

func (gp *GeomParams) Update() {
	if gp.Nux < 1 {
		gp.Nux = 1
	}
	if gp.Nuy < 1 {
		gp.Nuy = 1
	}
	if gp.HyperX < 1 {
		gp.HyperX = 1
	}
	if gp.HyperY < 1 {
		gp.HyperY = 1
	}
}

// CijParams are the weight generation parameters
type CijParams struct {
	Kind      CijStrats        `desc:"how weights are generated"`
	Nbc       int              `def:"8" min:"2" max:"16" desc:"number of bits in a stored weight"`
	Mean      float32          `def:"0" desc:"mean weight (Gaussian), in [-1, 1)"`
	Sigma     float32          `def:"0.1" desc:"weight standard deviation (Gaussian)"`
	Corners   [4]float32       `desc:"gradient weights at the target layer corners: (0,0), (1,0), (0,1), (1,1)"`
	Rot       int32            `desc:"gradient rotation in quarter turns"`
	Mirror    bool             `desc:"mirror the gradient along x before rotating"`
	NoiseSig  float32          `desc:"gradient noise standard deviation"`
	NoiseFrac float32          `desc:"fraction of gradient weights that get noise"`
	Mat       *etensor.Float32 `view:"-" desc:"coefficient matrix for Matrix and MatAvg"`
	Share     bool             `desc:"share one run of matrix coefficients across every subarbor"`
	MatStride int32            `def:"1" min:"1" desc:"consecutive connections sharing one matrix coefficient"`
	AvgN      int32            `def:"1" min:"1" desc:"number of coefficients averaged per connection (MatAvg)"`

	Mean24    int32    `view:"-" desc:"Mean in S24"`
	Sigma24   int32    `view:"-" desc:"Sigma in S24"`
	Corners24 [4]int32 `view:"-" desc:"Corners in S24"`
	Noise24   int32    `view:"-" desc:"NoiseSig in S24"`
	Frac31    int32    `view:"-" desc:"NoiseFrac in S31"`
}

func (cp *CijParams) Defaults() {
	cp.Kind = CijGaussian
	cp.Nbc = 8
	cp.Mean = 0
	cp.Sigma = 0.1
	cp.MatStride = 1
	cp.AvgN = 1
	cp.Update()
}

func (cp *CijParams) Update() {
	if cp.MatStride < 1 {
		cp.MatStride = 1
	}
	if cp.AvgN < 1 {
		cp.AvgN = 1
	}
	cp.Mean24, _ = fixpt.FromFloat(cp.Mean, 24)
	cp.Sigma24, _ = fixpt.FromFloat(cp.Sigma, 24)
	for i, c := range cp.Corners {
		cp.Corners24[i], _ = fixpt.FromFloat(c, 24)
	}
	cp.Noise24, _ = fixpt.FromFloat(cp.NoiseSig, 24)
	cp.Frac31, _ = fixpt.FromFloat(cp.NoiseFrac, 31)
}

// DijParams are the delay parameters, in cycles
type DijParams struct {
	Kind  DijStrats `desc:"how delays are generated"`
	Const int32     `def:"0" desc:"delay for DijConst"`
	Min   int32     `def:"0" desc:"smallest delay"`
	Max   int32     `def:"10" max:"255" desc:"largest delay"`
	Mean  float32   `desc:"mean delay (DijNormal)"`
	Sigma float32   `desc:"delay standard deviation (DijNormal)"`

	Fn func(cell, isyn, lij int32) int32 `view:"-" json:"-" desc:"user delay function for DijUser"`

	Mean8  int32 `view:"-" desc:"Mean in S8"`
	Sigma8 int32 `view:"-" desc:"Sigma in S8"`
}

// MaxDelay is the largest storable delay
const MaxDelay = 255

func (dp *DijParams) Defaults() {
	dp.Kind = DijConst
	dp.Const = 0
	dp.Min = 0
	dp.Max = 10
	dp.Update()
}

func (dp *DijParams) Update() {
	if dp.Max > MaxDelay {
		dp.Max = MaxDelay
	}
	if dp.Min < 0 {
		dp.Min = 0
	}
	dp.Mean8, _ = fixpt.FromFloat(dp.Mean, 8)
	dp.Sigma8, _ = fixpt.FromFloat(dp.Sigma, 8)
}

// Stored returns true if delays are materialized in memory
func (dp *DijParams) Stored() bool {
	return dp.Kind != DijConst
}

// PhaseParams are the phase parameters
type PhaseParams struct {
	Kind  PhaseStrats `desc:"how connection phases are determined"`
	Const int32       `min:"0" max:"15" desc:"phase for PhConst"`
}

// NPhases is the number of phases
const NPhases = 16

func (pp *PhaseParams) Defaults() {
	pp.Kind = PhConst
	pp.Const = 0
}

// SeedParams are the base seeds of the independent random lanes
type SeedParams struct {
	L int32 `desc:"connection source (Lij) seed"`
	G int32 `desc:"group origin seed"`
	C int32 `desc:"weight (Cij) seed"`
	D int32 `desc:"delay (Dij) seed"`
	P int32 `desc:"phase seed"`
}

// Defaults derives all seeds from one
func (sp *SeedParams) Defaults(seed int32) {
	sp.L = seed
	sp.G = seed ^ 0x2c9277b5
	sp.C = seed ^ 0x5bd1e995
	sp.D = seed ^ 0x1b873593
	sp.P = seed ^ 0x6a09e667
}

// ConnType is one type of connection received by a cell type: a family of
// synapses from one source sharing a topology rule and parameters.
type ConnType struct {
	Nm      string     `desc:"name of the connection type"`
	Cls     string     `desc:"class(es) for params styling, space separated"`
	SrcKind SrcKinds   `desc:"kind of source"`
	SrcName string     `desc:"name of the source cell type, for SrcRep"`
	SrcNx   int32      `desc:"source width in groups (pixels, virtual groups) -- set from the source cell type for SrcRep"`
	SrcNy   int32      `desc:"source height in groups -- 1 for one-dimensional sources"`
	SrcNEl  int32      `desc:"cells per source group -- 1 for pixel and value sources"`
	Color   ColorModes `desc:"pixel encoding of an input array source"`
	Chan    ColorChans `desc:"color channel read from an input array source"`
	VGFloat bool       `desc:"virtual group values are floats rather than bytes"`
	User    bool       `desc:"source values come from the user callback of the source data"`
	Nc      int32      `min:"1" desc:"number of connections per cell"`
	Nsa     int32      `def:"1" min:"1" desc:"connections per subarbor -- Nc must be a multiple"`
	SaOpt   SaRules    `desc:"subarbor policy when Nsa > 1"`
	SaDx    int32      `def:"1" desc:"x shift of the origin per cloned subarbor"`
	SaDy    int32      `def:"0" desc:"y shift of the origin per cloned subarbor"`
	Opts    KGen       `desc:"generation option letters"`
	Geom    GeomParams `view:"inline" desc:"geometry of the topology rules"`
	Edge    EdgeModes  `desc:"boundary policy for input array sources -- EdgeSkip makes the source scanned"`
	Limit   int32      `def:"-1" desc:"additional skip-one sentinel source value in external lists"`
	Recomp  bool       `desc:"recompute source indexes from seeds in RunNormal mode instead of fetching them"`
	SelfOK  bool       `desc:"allow connections from a cell to itself even when the cell type avoids them"`

	Cij   CijParams   `view:"inline" desc:"weight generation"`
	Dij   DijParams   `view:"inline" desc:"delay generation"`
	Phase PhaseParams `view:"inline" desc:"phase generation"`
	Seeds SeedParams  `desc:"random lane seeds"`

	Ext *elij.Reader `view:"-" json:"-" desc:"external connection list, for option E"`

	Src   *CellType `view:"-" json:"-" desc:"resolved source cell type for SrcRep"`
	Rules Rules     `inactive:"+" desc:"strategies selected by Dispatch"`
	Drv   Derived   `view:"-" json:"-" desc:"derived constants computed by Dispatch"`
}

func (ct *ConnType) Defaults() {
	ct.SrcKind = SrcRep
	ct.SrcNy = 1
	ct.SrcNEl = 1
	ct.Nc = 1
	ct.Nsa = 1
	ct.SaOpt = SaNone
	ct.SaDx = 1
	ct.Limit = -1
	ct.Geom.Defaults()
	ct.Cij.Defaults()
	ct.Dij.Defaults()
	ct.Phase.Defaults()
	ct.Seeds.Defaults(1009)
}

// Update updates all derived parameter values
func (ct *ConnType) Update() {
	ct.Geom.Update()
	ct.Cij.Update()
	ct.Dij.Update()
	if ct.Nsa < 1 {
		ct.Nsa = 1
	}
	if ct.Src != nil {
		ct.SrcNx = ct.Src.NGx
		ct.SrcNy = ct.Src.NGy
		ct.SrcNEl = ct.Src.NEl
	}
	if ct.SrcKind != SrcRep {
		if ct.SrcNy < 1 {
			ct.SrcNy = 1
		}
		if ct.SrcKind != SrcVG || ct.SrcNEl < 1 {
			ct.SrcNEl = 1
		}
	}
}

// params.Styler interface
func (ct *ConnType) TypeName() string { return "ConnType" }
func (ct *ConnType) Class() string    { return ct.SrcKind.String() + " " + ct.Cls }
func (ct *ConnType) Name() string     { return ct.Nm }

// ApplyParams applies given parameter style Sheet to this connection type.
// Calls Update if anything set to ensure derived parameters are all updated.
func (ct *ConnType) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(ct, setMsg)
	if app {
		ct.Update()
	}
	return app, err
}

// NSrc returns the number of cells in the source
func (ct *ConnType) NSrc() int32 {
	return ct.SrcNx * ct.SrcNy * ct.SrcNEl
}

// Category returns the source category that indexes the rule tables
func (ct *ConnType) Category() Cats {
	switch ct.SrcKind {
	case SrcRep:
		return CatRep
	case SrcIA:
		if ct.Edge == EdgeSkip {
			return CatIAScan
		}
		return CatIAKnown
	}
	return CatVG
}

// SubarborRule returns the configured subarbor policy, SaNone without subarbors
func (ct *ConnType) SubarborRule() SaRules {
	if ct.Nsa <= 1 {
		return SaNone
	}
	return ct.SaOpt
}

// Validate tests for consistent settings -- returns error message or nil if
// no problems (and logs them if logmsg = true)
func (ct *ConnType) Validate(logmsg bool) error {
	emsg := ""
	if ct.Nc < 1 {
		emsg += fmt.Sprintf("Nc %d < 1; ", ct.Nc)
	}
	if ct.Nsa > 1 && ct.Nc%ct.Nsa != 0 {
		emsg += fmt.Sprintf("Nc %d not a multiple of Nsa %d; ", ct.Nc, ct.Nsa)
	}
	if ct.SrcKind == SrcRep && ct.Src == nil {
		emsg += fmt.Sprintf("source cell type %q not resolved; ", ct.SrcName)
	}
	if ct.SrcKind != SrcHand && ct.NSrc() < 1 {
		emsg += "empty source; "
	}
	if ct.Cij.Nbc < fixpt.MinNbc || ct.Cij.Nbc > fixpt.MaxNbc {
		emsg += fmt.Sprintf("Cij.Nbc %d outside [%d, %d]; ", ct.Cij.Nbc, fixpt.MinNbc, fixpt.MaxNbc)
	}
	if ct.Cij.Kind == CijFetch {
		emsg += "Cij.Kind cannot be CijFetch; "
	}
	if ct.Cij.Kind == CijExtern && !ct.Opts.Has(KgE) {
		emsg += "CijExtern requires option E; "
	}
	if (ct.Cij.Kind == CijMatrix || ct.Cij.Kind == CijMatAvg) && (ct.Cij.Mat == nil || ct.Cij.Mat.Len() == 0) {
		emsg += "matrix weights without a matrix; "
	}
	if ct.Dij.Kind == DijFetch {
		emsg += "Dij.Kind cannot be DijFetch; "
	}
	if ct.Dij.Kind == DijUser && ct.Dij.Fn == nil {
		emsg += "DijUser without Fn; "
	}
	if ct.Dij.Min > ct.Dij.Max {
		emsg += fmt.Sprintf("Dij.Min %d > Dij.Max %d; ", ct.Dij.Min, ct.Dij.Max)
	}
	if ct.Opts.Has(KgE) && ct.Ext == nil {
		emsg += "option E without an external list; "
	}
	if ct.Opts.Has(KgQ) && ct.Geom.Rout < ct.Geom.Rin {
		emsg += "annulus Rout < Rin; "
	}
	if ct.Opts.Has(KgO) && ct.SrcNx*ct.SrcNy < 2 {
		emsg += "other-group option needs at least 2 source groups; "
	}
	if emsg != "" {
		err := errors.New(ct.Nm + ": " + emsg)
		if logmsg {
			log.Println(err)
		}
		return err
	}
	return nil
}

// SetExtern attaches an external connection list for option E
func (ct *ConnType) SetExtern(rd *elij.Reader) {
	ct.Ext = rd
}
