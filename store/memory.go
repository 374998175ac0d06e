// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps encoded snapshots in memory
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	snaps       map[string][]byte
	nets        map[string]string
	order       map[string]int
	seq         int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.snaps = make(map[string][]byte)
	s.nets = make(map[string]string)
	s.order = make(map[string]int)
	return nil
}

// SaveSnapshot stores an encoded copy, so later changes to the memory are not seen
func (s *MemoryStore) SaveSnapshot(_ context.Context, snap Snapshot) error {
	payload, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.order[snap.ID]; !ok {
		s.order[snap.ID] = s.seq
		s.seq++
	}
	s.snaps[snap.ID] = payload
	s.nets[snap.ID] = snap.Net
	return nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, id string) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.snaps[id]
	if !ok {
		return Snapshot{}, false, nil
	}
	snap, err := DecodeSnapshot(payload)
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

// ListSnapshots returns the IDs saved for the network, in save order
func (s *MemoryStore) ListSnapshots(_ context.Context, net string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, nm := range s.nets {
		if nm == net {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return s.order[ids[i]] < s.order[ids[j]] })
	return ids, nil
}

func (s *MemoryStore) DeleteSnapshot(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snaps, id)
	delete(s.nets, id)
	delete(s.order, id)
	return nil
}
