/*
 * chem.go, part of goplif.
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

package plif

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/**Note: Some functions here panic instead of returning errors, as in other
 * libraries of this family. They are "fundamental" functions: if something
 * goes wrong in them, the program is way-most likely wrong and should crash.
 * The panics are related to using a function on a nil object or trying to
 * access out-of-bounds fields**/

//Atom is a node of the molecular graph. It contains the atom's identity as
//read from the source plus the two mutable degrees of freedom of the valence
//repair: its formal charge, and the orders of the bonds attached to it.
type Atom struct {
	Name    string //name in the source file, e.g. "CA"
	ID      int    //1-based id within the molecule, as read from the source
	Symbol  string
	Z       int    //atomic number
	Molname string //the name of the residue this atom belongs to
	Molid   int    //the id of the residue this atom belongs to
	Charge  int    //formal charge
	Bonds   []*Bond
	index   int //position in the topology's atom slice
	valence int //cached sum of bond orders, maintained by RefreshValences
}

//Index returns the position of the atom in its topology's atom slice.
func (A *Atom) Index() int {
	return A.index
}

//TotalValence returns the cached sum of the orders of the bonds attached
//to the atom. The cache is only as fresh as the last RefreshValences call
//on the topology.
func (A *Atom) TotalValence() int {
	return A.valence
}

//Neighbors returns the atoms bonded to A, in the order of A's bonds.
func (A *Atom) Neighbors() []*Atom {
	neig := make([]*Atom, 0, len(A.Bonds))
	for _, v := range A.Bonds {
		neig = append(neig, v.Cross(A))
	}
	return neig
}

//Copy returns a copy of the Atom object, without its bonds.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.ID = A.ID
	Newat.Symbol = A.Symbol
	Newat.Z = A.Z
	Newat.Molname = A.Molname
	Newat.Molid = A.Molid
	Newat.Charge = A.Charge
	Newat.index = A.index
	Newat.valence = A.valence
	return Newat
}

/*****Topology type***/

//Topology is an owned, mutable molecular graph: a set of atoms plus the
//bonds connecting them. The valence repair mutates it in place.
type Topology struct {
	atoms []*Atom
	bonds []*Bond
}

//NewTopology builds a topology from the given atoms and bonds. It wires
//each bond into the Bonds slice of both its atoms (overwriting whatever
//was there), fills the atom indexes and refreshes the cached valences.
//It returns an error if ats is nil or a bond references an atom not in ats.
func NewTopology(ats []*Atom, bonds []*Bond) (*Topology, error) {
	if ats == nil {
		err := new(CError)
		err.msg = "NewTopology: nil atoms given"
		return nil, err
	}
	T := new(Topology)
	T.atoms = ats
	T.bonds = bonds
	T.FillIndexes()
	contains := make(map[*Atom]bool, len(ats))
	for _, v := range ats {
		v.Bonds = nil
		contains[v] = true
	}
	for i, v := range bonds {
		if !contains[v.At1] || !contains[v.At2] {
			err := new(CError)
			err.msg = fmt.Sprintf("NewTopology: bond %d references an atom outside the topology", i)
			return nil, err
		}
		v.Index = i
		v.At1.Bonds = append(v.At1.Bonds, v)
		v.At2.Bonds = append(v.At2.Bonds, v)
	}
	RefreshValences(T)
	return T, nil
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

//Bond returns the Bond corresponding to the index i
//of the bond slice in the Topology. Panics if out of range.
func (T *Topology) Bond(i int) *Bond {
	if i >= T.NBonds() {
		panic("Topology: Requested Bond out of bounds")
	}
	return T.bonds[i]
}

//NBonds returns the number of bonds in the topology.
func (T *Topology) NBonds() int {
	return len(T.bonds)
}

//FillIndexes sets the index of every atom to its current position in the
//topology's atom slice.
func (T *Topology) FillIndexes() {
	for i, v := range T.atoms {
		v.index = i
	}
}

/**Type Molecule**/

//Molecule is a topology plus a name and one conformer of coordinates,
//as an n x 3 gonum matrix.
type Molecule struct {
	*Topology
	Name   string
	Coords *mat.Dense
}

//NewMolecule builds a molecule from a topology, a name and coordinates.
//coords can be nil for a molecule without a conformer; if given, it must
//have one 3D row per atom.
func NewMolecule(top *Topology, name string, coords *mat.Dense) (*Molecule, error) {
	if top == nil {
		err := new(CError)
		err.msg = "NewMolecule: nil topology given"
		return nil, err
	}
	if coords != nil {
		r, c := coords.Dims()
		if r != top.Len() || c != 3 {
			err := new(CError)
			err.msg = fmt.Sprintf("NewMolecule: inconsistent coordinates/atoms: atoms %d, coords %dx%d", top.Len(), r, c)
			return nil, err
		}
	}
	return &Molecule{Topology: top, Name: name, Coords: coords}, nil
}
