// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"encoding/json"
	"errors"
)

const CurrentSchemaVersion = 1

var ErrVersionMismatch = errors.New("snapshot schema version mismatch")

func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	if snap.SchemaVersion != CurrentSchemaVersion {
		return Snapshot{}, ErrVersionMismatch
	}
	return snap, nil
}
