// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"github.com/goki/ki/bitflag"
	"github.com/goki/ki/kit"
)

//////////////////////////////////////////////////////////////////////
// Modes

// Modes are the generation modes a cell type can be dispatched for
type Modes int32

//go:generate stringer -type=Modes

var KiT_Modes = kit.Enums.AddEnum(ModesN, kit.NotBitFlag, nil)

func (ev Modes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Modes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// GenerateAll generates every connection from its seeds and stores it
	GenerateAll Modes = iota

	// RunNormal fetches connections from memory, regenerating only the source
	// indexes of types flagged RecomputeLij
	RunNormal

	// Regenerate regenerates the cells of cell types flagged Regen, and
	// fetches everything else
	Regenerate

	ModesN
)

//////////////////////////////////////////////////////////////////////
// Source description

// SrcKinds are the kinds of presynaptic source a connection type reads
type SrcKinds int32

//go:generate stringer -type=SrcKinds

var KiT_SrcKinds = kit.Enums.AddEnum(SrcKindsN, kit.NotBitFlag, nil)

func (ev SrcKinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SrcKinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// SrcRep is another (or the same) cell type, a repertoire
	SrcRep SrcKinds = iota

	// SrcIA is the input array of pixels
	SrcIA

	// SrcVG is a virtual group array of sensor values
	SrcVG

	// SrcValue is an externally supplied value array
	SrcValue

	// SrcHand is hand-vision input, which always reads as zero
	SrcHand

	SrcKindsN
)

// ColorModes are the pixel encodings of an input array source
type ColorModes int32

//go:generate stringer -type=ColorModes

var KiT_ColorModes = kit.Enums.AddEnum(ColorModesN, kit.NotBitFlag, nil)

func (ev ColorModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ColorModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// ColGray is one byte of gray level per pixel
	ColGray ColorModes = iota

	// Col8 is one byte per pixel packed 3-3-2 red, green, blue
	Col8

	// Col16 is two big-endian bytes per pixel packed 5-6-5
	Col16

	// Col24 is three bytes per pixel, red, green, blue
	Col24

	// ColOpp is Col24 pixels read as color-opponent channels
	ColOpp

	ColorModesN
)

// ColorChans select which channel of a color pixel is read
type ColorChans int32

//go:generate stringer -type=ColorChans

var KiT_ColorChans = kit.Enums.AddEnum(ColorChansN, kit.NotBitFlag, nil)

func (ev ColorChans) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ColorChans) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// ChRed is red, or red-minus-green for opponent pixels
	ChRed ColorChans = iota

	// ChGreen is green, or green-minus-red
	ChGreen

	// ChBlue is blue, or blue-minus-yellow
	ChBlue

	// ChAvg is the average of the channels, or yellow-minus-blue
	ChAvg

	// ChSub takes the channel from the position within the subarbor, for
	// repeated subarbors that sample every channel of one pixel
	ChSub

	ColorChansN
)

// EdgeModes are the boundary policies for coordinates that leave an input array
type EdgeModes int32

//go:generate stringer -type=EdgeModes

var KiT_EdgeModes = kit.Enums.AddEnum(EdgeModesN, kit.NotBitFlag, nil)

func (ev EdgeModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EdgeModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// EdgeWrap wraps around toroidally
	EdgeWrap EdgeModes = iota

	// EdgeClip clamps to the nearest edge
	EdgeClip

	// EdgeSkip treats the connection as out of bounds, so it is skipped
	EdgeSkip

	EdgeModesN
)

// Cats are the source categories that index the rule tables
type Cats int32

//go:generate stringer -type=Cats

var KiT_Cats = kit.Enums.AddEnum(CatsN, kit.NotBitFlag, nil)

func (ev Cats) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Cats) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// CatRep is a repertoire, whose coordinates always wrap
	CatRep Cats = iota

	// CatIAKnown is an input array whose coordinates wrap or clip, so a
	// connection can never fall outside it
	CatIAKnown

	// CatIAScan is an input array scanned with EdgeSkip, where any
	// connection, including the first, may fall outside it
	CatIAScan

	// CatVG is a one-dimensional virtual group, value or camera source
	CatVG

	CatsN
)

//////////////////////////////////////////////////////////////////////
// KGen option letters

// KGen is the set of connection generation option letters, as a bitflag.
// The letter constants are bit positions -- use Set, Has etc to access.
type KGen int32

//go:generate stringer -type=KGen

var KiT_KGen = kit.Enums.AddEnum(KGenN, kit.BitFlag, nil)

func (ev KGen) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *KGen) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// KgA adjacent: connections follow the first one in raster order
	KgA KGen = iota

	// KgB box: connections scan a Nux x Nuy box from the origin
	KgB

	// KgC crow's foot: connections fall at random within the box
	KgC

	// KgD diagonal: connections step along a diagonal from the origin
	KgD

	// KgE external: connections are read from an external list
	KgE

	// KgF floating: the origin is random for each cell
	KgF

	// KgG group: the origin is random for each target group
	KgG

	// KgH hypergroup: target groups tile boxes within topographic hypergroups
	KgH

	// KgJ joint: box origins are spread so the boxes jointly cover the source
	KgJ

	// KgN normal: connections fall normally around the topographic center
	KgN

	// KgO other group: uniform over the source, excluding the target's own group
	KgO

	// KgP partitioned: the box is split into one partition per connection
	KgP

	// KgQ annulus: connections fall at random in a ring around the origin
	KgQ

	// KgS systematic: consecutive source cells from a per-cell offset
	KgS

	// KgT topographic: the origin maps the target group onto the source
	KgT

	// KgU uniform: connections fall uniformly over the whole source
	KgU

	KGenN
)

// FirstLetters are the letters that select a first-connection rule, in the
// priority order they are tested.
var FirstLetters = []KGen{KgE, KgF, KgG, KgH, KgJ, KgN, KgO, KgT, KgU, KgS}

// NextLetters are the letters that select a subsequent-connection rule, in
// priority order.
var NextLetters = []KGen{KgA, KgB, KgC, KgD, KgQ, KgP}

// Has returns true if the given letter is set
func (kg KGen) Has(lt KGen) bool {
	return bitflag.Has32(int32(kg), int(lt))
}

// Set sets the given letters
func (kg *KGen) Set(lts ...KGen) {
	for _, lt := range lts {
		bitflag.Set32((*int32)(kg), int(lt))
	}
}

// Clear clears the given letters
func (kg *KGen) Clear(lts ...KGen) {
	for _, lt := range lts {
		bitflag.Clear32((*int32)(kg), int(lt))
	}
}

// Letters returns the set letters as a string, e.g. "BT"
func (kg KGen) Letters() string {
	s := ""
	for lt := KgA; lt < KGenN; lt++ {
		if kg.Has(lt) {
			s += lt.String()[2:]
		}
	}
	return s
}

// KGenFromLetters returns the bitflag for a string of letters such as "TB".
// Unknown letters are returned in bad.
func KGenFromLetters(s string) (kg KGen, bad string) {
	for _, r := range s {
		found := false
		for lt := KgA; lt < KGenN; lt++ {
			if lt.String()[2:] == string(r) {
				kg.Set(lt)
				found = true
				break
			}
		}
		if !found {
			bad += string(r)
		}
	}
	return
}

//////////////////////////////////////////////////////////////////////
// Resolved strategies

// LRules are the connection (Lij) generation rules, first and subsequent
type LRules int32

//go:generate stringer -type=LRules

var KiT_LRules = kit.Enums.AddEnum(LRulesN, kit.NotBitFlag, nil)

func (ev LRules) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *LRules) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// LNoRule is the unassigned rule -- reaching generation with it is fatal
	LNoRule LRules = iota

	// LNone produces source 0 with zero values, for hand-vision sources
	LNone

	// LFetch replays connections stored in memory
	LFetch

	// LExtern reads connections from an external list
	LExtern

	// LFloat: random origin with the box inside the source
	LFloat

	// LFloatScan: random origin anywhere, box may overhang
	LFloatScan

	// LGroup: random origin per target group, box inside the source
	LGroup

	// LGroupScan: random origin per target group, box may overhang
	LGroupScan

	// LHyper: hypergroup tiling, wrapped
	LHyper

	// LHyperScan: hypergroup tiling, may leave the source
	LHyperScan

	// LJoint: jointly covering box origins, wrapped
	LJoint

	// LJointScan: jointly covering box origins with offsets, may leave the source
	LJointScan

	// LNorm: normal around the topographic center, wrapped
	LNorm

	// LNormScan: normal around the topographic center, may leave the source
	LNormScan

	// LNormVG: normal over a one-dimensional source
	LNormVG

	// LOther: uniform excluding the target's own group
	LOther

	// LTopo: topographic origin, wrapped
	LTopo

	// LTopoScan: topographic origin with offsets, may leave the source
	LTopoScan

	// LUnif: uniform over the source
	LUnif

	// LUnifVG: uniform over a one-dimensional source
	LUnifVG

	// LSys: systematic from a per-cell offset
	LSys

	// LSysVG: systematic over a one-dimensional source
	LSysVG

	// LSame re-applies the first rule for every connection
	LSame

	// LAdj: adjacent, wrapped
	LAdj

	// LAdjChk: adjacent, checked against the edges
	LAdjChk

	// LBox: box scan, wrapped
	LBox

	// LBoxChk: box scan, checked
	LBoxChk

	// LCrow: crow's foot, wrapped
	LCrow

	// LCrowChk: crow's foot, checked
	LCrowChk

	// LDiag: diagonal, wrapped
	LDiag

	// LDiagChk: diagonal, checked
	LDiagChk

	// LAnn: annulus, wrapped
	LAnn

	// LAnnChk: annulus, checked
	LAnnChk

	// LPart: partitioned box
	LPart

	LRulesN
)

// SaRules are the subarbor policies
type SaRules int32

//go:generate stringer -type=SaRules

var KiT_SaRules = kit.Enums.AddEnum(SaRulesN, kit.NotBitFlag, nil)

func (ev SaRules) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SaRules) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// SaNone: no subarbors
	SaNone SaRules = iota

	// SaClone: each subarbor replays the first one's seeds from an origin
	// shifted by one subarbor grid step
	SaClone

	// SaIndep: each subarbor is an independent arbor with its own first connection
	SaIndep

	// SaRepeat: each connection repeats the subarbor's first source Nsa times
	SaRepeat

	SaRulesN
)

// CijStrats are the weight strategies
type CijStrats int32

//go:generate stringer -type=CijStrats

var KiT_CijStrats = kit.Enums.AddEnum(CijStratsN, kit.NotBitFlag, nil)

func (ev CijStrats) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CijStrats) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// CijFetch reads the stored weight
	CijFetch CijStrats = iota

	// CijGaussian draws a normal-like weight
	CijGaussian

	// CijGradient interpolates corner weights across the target layer
	CijGradient

	// CijExtern takes the weight from the external list record
	CijExtern

	// CijMatrix looks the weight up in a coefficient matrix
	CijMatrix

	// CijMatAvg averages a run of coefficient matrix entries
	CijMatAvg

	CijStratsN
)

// DijStrats are the delay strategies
type DijStrats int32

//go:generate stringer -type=DijStrats

var KiT_DijStrats = kit.Enums.AddEnum(DijStratsN, kit.NotBitFlag, nil)

func (ev DijStrats) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *DijStrats) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// DijConst is one delay for all connections, not stored
	DijConst DijStrats = iota

	// DijFetch reads the stored delay
	DijFetch

	// DijUniform draws uniformly in [Min, Max]
	DijUniform

	// DijNormal draws normally, clamped to [Min, Max]
	DijNormal

	// DijUser calls the connection type's Fn
	DijUser

	DijStratsN
)

// PhaseStrats are the phase strategies
type PhaseStrats int32

//go:generate stringer -type=PhaseStrats

var KiT_PhaseStrats = kit.Enums.AddEnum(PhaseStratsN, kit.NotBitFlag, nil)

func (ev PhaseStrats) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PhaseStrats) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// PhConst is one phase for all connections
	PhConst PhaseStrats = iota

	// PhInput reads the phase of the source cell
	PhInput

	// PhRandom draws a phase per connection
	PhRandom

	// PhUniform draws one phase per cell, shared by all its connections
	PhUniform

	PhaseStratsN
)

// SjRules are the presynaptic value lookups, by source kind and color mode
type SjRules int32

//go:generate stringer -type=SjRules

var KiT_SjRules = kit.Enums.AddEnum(SjRulesN, kit.NotBitFlag, nil)

func (ev SjRules) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SjRules) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	SjNone SjRules = iota
	SjRep
	SjGray
	SjCol8Chan
	SjCol8Avg
	SjCol16Chan
	SjCol16Avg
	SjCol24Chan
	SjCol24Avg
	SjOppRG
	SjOppGR
	SjOppBY
	SjOppYB
	SjOppSub
	SjVGByte
	SjVGFloat
	SjValue
	SjUser

	SjRulesN
)
