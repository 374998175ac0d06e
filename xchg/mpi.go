// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xchg

import (
	"github.com/emer/empi/v2/mpi"
)

// MPI is a Transport over an MPI communicator.  Without the mpi build tag
// the communicator is a single node.
type MPI struct {
	Comm *mpi.Comm
}

// NewMPI returns a transport over all procs
func NewMPI() (*MPI, error) {
	comm, err := mpi.NewComm(nil)
	if err != nil {
		return nil, err
	}
	return &MPI{Comm: comm}, nil
}

func (mp *MPI) Rank() int { return mp.Comm.Rank() }
func (mp *MPI) Size() int { return mp.Comm.Size() }

func (mp *MPI) Send(buf []byte, dest, tag int) error {
	return mp.Comm.SendU8(dest, tag, buf)
}

func (mp *MPI) Recv(buf []byte, src, tag int) error {
	return mp.Comm.RecvU8(src, tag, buf)
}
