/*
 * graph.go, part of goplif.
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

//Package chemgraph exposes a goplif topology as a gonum graph, so the
//gonum graph algorithms can be used for connectivity queries.
package chemgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	plif "github.com/rmera/goplif"
)

type Atom struct {
	*plif.Atom
}

func (A *Atom) ID() int64 {
	return int64(A.Index())
}

type Bond struct {
	*plif.Bond
	at1, at2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.at1
}

func (B *Bond) To() graph.Node {
	return B.at2
}

//bonds are not directional, so the reversed edge is a new view of the
//same bond with the atoms swapped.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, at1: B.at2, at2: B.at1}
}

//Atoms implements graph.Nodes
type Atoms struct {
	atoms []*Atom
	curr  int
}

func (A *Atoms) Len() int {
	return len(A.atoms) - A.curr
}

func (A *Atoms) Reset() {
	A.curr = 0
}

func (A *Atoms) Next() bool {
	if A.curr >= len(A.atoms) {
		return false
	}
	A.curr++
	return true
}

func (A *Atoms) Node() graph.Node {
	return A.atoms[A.curr-1]
}

//Topology implements the gonum graph.Graph and graph.Undirected
//interfaces over a goplif topology.
type Topology struct {
	atoms []*Atom
	bonds []*Bond
}

//FromTopology builds a graph view of top. The view shares the underlying
//atoms and bonds: mutations to top (e.g. a valence repair) are visible
//through it, but atoms and bonds must not be added or removed while the
//view is in use.
func FromTopology(top *plif.Topology) *Topology {
	top.FillIndexes()
	atoms := make([]*Atom, top.Len())
	for i := 0; i < top.Len(); i++ {
		atoms[i] = &Atom{Atom: top.Atom(i)}
	}
	bonds := make([]*Bond, top.NBonds())
	for i := 0; i < top.NBonds(); i++ {
		b := top.Bond(i)
		bonds[i] = &Bond{Bond: b, at1: atoms[b.At1.Index()], at2: atoms[b.At2.Index()]}
	}
	return &Topology{atoms: atoms, bonds: bonds}
}

func (T *Topology) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(T.atoms)) {
		return nil
	}
	return T.atoms[id]
}

func (T *Topology) Nodes() graph.Nodes {
	return &Atoms{atoms: T.atoms}
}

func (T *Topology) From(id int64) graph.Nodes {
	ret := make([]*Atom, 0)
	for _, b := range T.bonds {
		//undirected graph
		if b.at1.ID() == id {
			ret = append(ret, b.at2)
		} else if b.at2.ID() == id {
			ret = append(ret, b.at1)
		}
	}
	return &Atoms{atoms: ret}
}

func (T *Topology) HasEdgeBetween(id1, id2 int64) bool {
	return T.Edge(id1, id2) != nil
}

func (T *Topology) Edge(id1, id2 int64) graph.Edge {
	for _, b := range T.bonds {
		//the graph is always undirected
		if (b.at1.ID() == id1 && b.at2.ID() == id2) || (b.at1.ID() == id2 && b.at2.ID() == id1) {
			return b
		}
	}
	return nil
}

func (T *Topology) EdgeBetween(id1, id2 int64) graph.Edge {
	return T.Edge(id1, id2)
}

//Fragments returns the connected components of the topology, as slices
//of goplif atoms. A molecule read from a clean single-residue block has
//exactly one fragment; disconnected waters, ions or leftover pieces each
//form their own.
func Fragments(top *plif.Topology) [][]*plif.Atom {
	T := FromTopology(top)
	comps := topo.ConnectedComponents(T)
	frags := make([][]*plif.Atom, len(comps))
	for i, comp := range comps {
		frags[i] = make([]*plif.Atom, len(comp))
		for j, node := range comp {
			frags[i][j] = node.(*Atom).Atom
		}
	}
	return frags
}
