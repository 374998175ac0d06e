// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cns generates and looks up the connections of a network of cell types.

A CellType is a population of NGx x NGy groups of NEl cells, receiving an
ordered list of ConnTypes.  Each ConnType names a source and a rule for placing
its Nc connections per cell, selected by option letters (KGen):

	first connection:  E F G H J N O T U S  (first present wins)
	later connections: A B C D Q P          (first present wins, else repeat the first rule)

Dispatch resolves the letters, the source kind and the mode into strategies
(Rules) once per cell type and mode.  A letter combination with no rule is a
FatalError, never defaulted.

A Gen is the generation context.  For each cell, NewCell, then for each
connection type Begin, Next until it returns false, and End.  Cij, Dij, Sj and
Phase evaluate the current connection.  Out of bounds and self-avoided
connections are skipped and recorded, in generating modes, in the skip list of
the cell's connection memory, which fetch mode replays.

Every random value comes from a lane of the rnd stream at a fixed offset given
by the cell and true synapse number, so the results never depend on the order
cells are entered in, which makes GenerateParallel identical to Generate.
*/
package cns
