/*
 * doc.go, part of goplif.
 *
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goplif is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package plif normalizes molecular topologies for protein-ligand
interaction fingerprinting.

Trajectory and structure formats used in molecular dynamics carry
connectivity but no bond orders or formal charges. UpdateBondsAndCharges
recovers both from the valences of an already-bonded, fully-hydrogenated
molecular graph, mutating the graph in place. Connectivity is trusted and
never altered: the only legal repairs are strengthening an existing bond
or assigning a formal charge.

The package also reads the TRIPOS mol2 format, splitting each molecule
block into one molecule per residue (ligand, waters, ions...), with atoms
and bonds renumbered to be locally contiguous. Bonds crossing between two
residues cannot be represented in a single-residue block and are dropped.

Compressed mol2 files (gzip, zstd) are read transparently, based on the
file suffix.

The chemgraph subpackage exposes a molecule as a gonum graph, for
connectivity queries such as splitting a molecule into fragments.
*/
package plif
