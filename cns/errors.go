// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cns

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrCodes identify fatal connection generation errors
type ErrCodes int32

const (
	// ErrCodeNoRule: no generation rule for the requested option letters
	ErrCodeNoRule ErrCodes = 1 + iota

	// ErrCodeSrcRange: external list source outside the source layer
	ErrCodeSrcRange

	// ErrCodeBadRule: an unassigned or unknown rule reached generation
	ErrCodeBadRule

	// ErrCodeStale: the generation context does not match the cell or type
	ErrCodeStale

	// ErrCodeOrder: an external list cannot be revisited
	ErrCodeOrder

	// ErrCodePartition: partitioned boxes from an origin that may be out of bounds
	ErrCodePartition

	// ErrCodeConfig: inconsistent connection type geometry
	ErrCodeConfig

	// ErrCodeExtRead: an external list could not be read
	ErrCodeExtRead
)

var (
	ErrNoRule    = errors.New("no connection generation rule assigned")
	ErrSrcRange  = errors.New("external connection source out of range")
	ErrBadRule   = errors.New("connection rule cannot generate")
	ErrStale     = errors.New("generation context does not match cell or connection type")
	ErrOrder     = errors.New("external connection list cannot be revisited")
	ErrPartition = errors.New("partitioned box requires an in-bounds first connection")
	ErrConfig    = errors.New("inconsistent connection type configuration")
	ErrExtRead   = errors.New("external connection list read failed")
)

var codeErrs = map[ErrCodes]error{
	ErrCodeNoRule:    ErrNoRule,
	ErrCodeSrcRange:  ErrSrcRange,
	ErrCodeBadRule:   ErrBadRule,
	ErrCodeStale:     ErrStale,
	ErrCodeOrder:     ErrOrder,
	ErrCodePartition: ErrPartition,
	ErrCodeConfig:    ErrConfig,
	ErrCodeExtRead:   ErrExtRead,
}

// FatalError is a configuration or logic error that ends generation.
// No output produced after one is valid.
type FatalError struct {
	Code   ErrCodes `desc:"error code"`
	Layer  string   `desc:"name of the cell type"`
	Ict    int      `desc:"connection type number, 1-based, 0 if not type specific"`
	Detail int64    `desc:"numeric detail, e.g. the offending value"`
	Msg    string   `desc:"additional diagnostic"`
}

func (fe *FatalError) Error() string {
	s := fmt.Sprintf("cns error %d: %v: layer %s", fe.Code, codeErrs[fe.Code], fe.Layer)
	if fe.Ict > 0 {
		s += fmt.Sprintf(" conntype %d", fe.Ict)
	}
	s += fmt.Sprintf(" (detail %d)", fe.Detail)
	if fe.Msg != "" {
		s += ": " + fe.Msg
	}
	return s
}

// Unwrap returns the sentinel error for the code, for errors.Is
func (fe *FatalError) Unwrap() error {
	return codeErrs[fe.Code]
}

// fatal returns a FatalError for the connection type, with ict given 0-based
func fatal(code ErrCodes, ly string, ict int, detail int64, msg string) *FatalError {
	return &FatalError{Code: code, Layer: ly, Ict: ict + 1, Detail: detail, Msg: msg}
}

// Exit is called by Abort after reporting -- replaceable for embedding
var Exit = os.Exit

// Abort reports a fatal error and ends the run through Exit.
func Abort(err error) {
	var fe *FatalError
	code := 1
	if errors.As(err, &fe) {
		code = 100 + int(fe.Code)
	}
	log.Println(err)
	Exit(code)
}
