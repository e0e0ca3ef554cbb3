/*
 * graph_test.go
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
 */

package chemgraph

import (
	"testing"

	plif "github.com/rmera/goplif"
)

//a bonded C-C pair plus a lone O: two fragments.
func testTopology(Te *testing.T) *plif.Topology {
	c1 := &plif.Atom{Name: "C1", ID: 1, Symbol: "C", Z: 6}
	c2 := &plif.Atom{Name: "C2", ID: 2, Symbol: "C", Z: 6}
	o := &plif.Atom{Name: "O", ID: 3, Symbol: "O", Z: 8}
	bonds := []*plif.Bond{{At1: c1, At2: c2, Order: plif.Single}}
	top, err := plif.NewTopology([]*plif.Atom{c1, c2, o}, bonds)
	if err != nil {
		Te.Fatal(err)
	}
	return top
}

func TestEdgeQueries(Te *testing.T) {
	T := FromTopology(testTopology(Te))
	if !T.HasEdgeBetween(0, 1) {
		Te.Error("C1-C2 bond not seen by the graph view")
	}
	if T.HasEdgeBetween(0, 2) || T.HasEdgeBetween(1, 2) {
		Te.Error("the graph view invented a bond to the lone O")
	}
	if T.Node(2) == nil || T.Node(3) != nil {
		Te.Error("node lookup out of sync with the topology")
	}
}

func TestFragments(Te *testing.T) {
	top := testTopology(Te)
	frags := Fragments(top)
	if len(frags) != 2 {
		Te.Fatalf("got %d fragments, want 2", len(frags))
	}
	total := 0
	for _, f := range frags {
		total += len(f)
	}
	if total != top.Len() {
		Te.Errorf("fragments cover %d atoms, want %d", total, top.Len())
	}
	for _, f := range frags {
		if len(f) == 1 && f[0].Symbol != "O" {
			Te.Errorf("the singleton fragment is %q, want O", f[0].Symbol)
		}
	}
}
