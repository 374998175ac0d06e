// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cns is the overall repository for the connection generation and lookup
core of the CNS / Darwin III style cell network simulator, implemented in the
Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* cns: cell types, connection types, the dispatch table builder, and the
generation context (Gen) that produces the source (Lij), weight (Cij), delay
(Dij), presynaptic value (Sj) and phase of every connection, deterministically
from seeds, whether the cells are entered in order or at random, and whether
the connections are generated, recomputed or fetched from memory.

* rnd: the seeded linear congruential stream with O(log n) skip ahead, and the
normal and thresholded noise deviates built on it.

* fixpt: saturating fixed-point arithmetic and the weight quantization with its
signed-zero code.

* decay: the fixed-point exponential, limiting and saturating decay filter.

* elij: the external connection list record format, reader and writer.

* store: persistence of generated connection memory snapshots, in memory or
in SQLite.

* xchg: the node-to-node byte transport, over MPI or in-process loopback.

* examples: examples/conngen builds a network from a config file and generates
it, optionally across MPI nodes, and examples/bench times generation and
fetching for different size networks.
*/
package cns
