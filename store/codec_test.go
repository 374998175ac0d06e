// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/emer/cns/cns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVersion(t *testing.T) {
	snap := Snapshot{SchemaVersion: CurrentSchemaVersion + 1, ID: "x", Mem: cns.NewConnMem(2, 3, false)}
	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	_, err = DecodeSnapshot(data)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	snap.SchemaVersion = CurrentSchemaVersion
	snap.Mem.AddValid(1, 17)
	snap.Mem.AddSkip(1, 0)
	data, err = EncodeSnapshot(snap)
	require.NoError(t, err)
	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, []int32{17}, got.Mem.Valid(1))
	assert.Equal(t, []int32{0}, got.Mem.Skips(1))
}
