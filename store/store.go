// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store persists generated connection memory, so a network generated
// once can be reloaded and run in fetch mode without regenerating.
package store

import (
	"context"
	"fmt"

	"github.com/emer/cns/cns"
	"github.com/google/uuid"
)

// Snapshot is the connection memory of one connection type of one cell type
type Snapshot struct {
	SchemaVersion int          `json:"schema_version"`
	ID            string       `json:"id"`
	Net           string       `json:"net"`
	Layer         string       `json:"layer"`
	Ict           int          `json:"ict"`
	Conn          string       `json:"conn"`
	Nc            int32        `json:"nc"`
	NCells        int32        `json:"ncells"`
	Mem           *cns.ConnMem `json:"mem"`
}

// Store saves and loads snapshots
type Store interface {
	Init(ctx context.Context) error
	SaveSnapshot(ctx context.Context, snap Snapshot) error
	GetSnapshot(ctx context.Context, id string) (Snapshot, bool, error)
	ListSnapshots(ctx context.Context, net string) ([]string, error)
	DeleteSnapshot(ctx context.Context, id string) error
}

// NewSnapshot captures the memory of connection type ict of the cell type,
// with a new ID
func NewSnapshot(net string, ly *cns.CellType, ict int) (Snapshot, error) {
	if ict < 0 || ict >= len(ly.Mem) || ly.Mem[ict] == nil {
		return Snapshot{}, fmt.Errorf("store: %s connection type %d not built", ly.Nm, ict)
	}
	ct := ly.Conns[ict]
	return Snapshot{
		SchemaVersion: CurrentSchemaVersion,
		ID:            uuid.NewString(),
		Net:           net,
		Layer:         ly.Nm,
		Ict:           ict,
		Conn:          ct.Nm,
		Nc:            ct.Nc,
		NCells:        ly.NCells(),
		Mem:           ly.Mem[ict],
	}, nil
}

// Restore installs the snapshot memory into the matching connection type of
// the network, which must have the same geometry
func (s *Snapshot) Restore(net *cns.Network) error {
	ly, err := net.CellTypeByNameTry(s.Layer)
	if err != nil {
		return err
	}
	if s.Ict < 0 || s.Ict >= len(ly.Conns) || s.Ict >= len(ly.Mem) {
		return fmt.Errorf("store: snapshot %s: %s has no connection type %d", s.ID, s.Layer, s.Ict)
	}
	ct := ly.Conns[s.Ict]
	if ct.Nm != s.Conn || ct.Nc != s.Nc || ly.NCells() != s.NCells || s.Mem == nil {
		return fmt.Errorf("store: snapshot %s: %s/%s does not match the network", s.ID, s.Layer, s.Conn)
	}
	if (s.Mem.Dij != nil) != ct.Dij.Stored() {
		return fmt.Errorf("store: snapshot %s: %s/%s delay storage differs", s.ID, s.Layer, s.Conn)
	}
	ly.Mem[s.Ict] = s.Mem
	return nil
}

// SaveNetwork saves a snapshot of every connection type of the network,
// returning their IDs in network order
func SaveNetwork(ctx context.Context, st Store, net *cns.Network) ([]string, error) {
	var ids []string
	for _, ly := range net.Layers {
		for ict := range ly.Conns {
			snap, err := NewSnapshot(net.Nm, ly, ict)
			if err != nil {
				return ids, err
			}
			if err := st.SaveSnapshot(ctx, snap); err != nil {
				return ids, err
			}
			ids = append(ids, snap.ID)
		}
	}
	return ids, nil
}

// LoadNetwork restores every snapshot saved for the network
func LoadNetwork(ctx context.Context, st Store, net *cns.Network) (int, error) {
	ids, err := st.ListSnapshots(ctx, net.Nm)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, id := range ids {
		snap, ok, err := st.GetSnapshot(ctx, id)
		if err != nil {
			return n, err
		}
		if !ok {
			continue
		}
		if err := snap.Restore(net); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
