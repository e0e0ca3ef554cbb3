/*
 * mol2_test.go
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

package plif

import (
	"strings"
	"testing"
)

//A two-residue molecule: a 3-carbon ligand fragment (atom ids 5, 6 and 7,
//one bond 5-6) and a water (ids 9 and 10, one bond 9-10), connected by an
//inter-residue bond 7-9.
const twoResMol2 = `@<TRIPOS>MOLECULE
test-complex
5 3
SMALL
USER_CHARGES
@<TRIPOS>ATOM
      5 C1         0.0000    0.0000    0.0000 C.3     1  LIG1        0.0000
      6 C2         1.5200    0.0000    0.0000 C.3     1  LIG1        0.0000
      7 C3         3.0400    0.0000    0.0000 C.3     1  LIG1        0.0000
      9 O          6.0000    0.0000    0.0000 O.3     2  WAT1        0.0000
     10 H          6.9600    0.0000    0.0000 H       2  WAT1        0.0000
@<TRIPOS>BOND
     1     5     6 1
     2     9    10 1
     3     7     9 1`

//A second, single-residue molecule record, appended to the first in the
//multi-record tests.
const ethaneMol2 = `@<TRIPOS>MOLECULE
ethane
2 1
SMALL
USER_CHARGES
@<TRIPOS>ATOM
      1 C1         0.0000    0.0000    0.0000 C.3     1  ETH1        0.0000
      2 C2         1.5200    0.0000    0.0000 C.3     1  ETH1        0.0000
@<TRIPOS>BOND
     1     1     2 1`

func TestScanMol2Records(Te *testing.T) {
	lines := strings.Split(twoResMol2+"\n"+ethaneMol2, "\n")
	mols, atoms, bonds := scanMol2Records(lines)
	if len(mols) != 2 || len(atoms) != 2 || len(bonds) != 2 {
		Te.Fatalf("got %d MOLECULE, %d ATOM and %d BOND records, want 2 of each", len(mols), len(atoms), len(bonds))
	}
	for i := 0; i < 2; i++ {
		if !(mols[i] < atoms[i] && atoms[i] < bonds[i]) {
			Te.Errorf("records of molecule %d out of order: %d %d %d", i, mols[i], atoms[i], bonds[i])
		}
	}
	if mols[1] < bonds[0] {
		Te.Errorf("molecule records not in file order: %v", mols)
	}
}

//TestSplitResidues runs the full two-residue example: the split must
//yield LIG1 with local ids {1,2,3} and one bond 1-2, and WAT1 with local
//ids {1,2} and one bond 1-2. The inter-residue bond 7-9 must appear in
//neither.
func TestSplitResidues(Te *testing.T) {
	block := strings.Split(twoResMol2, "\n")
	residues, err := SplitResidues(block, false)
	if err != nil {
		Te.Fatal(err)
	}
	if len(residues) != 2 {
		Te.Fatalf("got %d residues, want 2", len(residues))
	}
	lig, wat := residues[0], residues[1]
	if lig.Name != "LIG1" || wat.Name != "WAT1" {
		Te.Fatalf("got residues %q and %q, want LIG1 and WAT1", lig.Name, wat.Name)
	}
	if lig.Len() != 3 || wat.Len() != 2 {
		Te.Errorf("got %d and %d atoms, want 3 and 2", lig.Len(), wat.Len())
	}
	if lig.NBonds() != 1 || wat.NBonds() != 1 {
		Te.Errorf("got %d and %d bonds, want 1 and 1", lig.NBonds(), wat.NBonds())
	}
	//the combined counts match the original block, minus the
	//inter-residue bond.
	if lig.Len()+wat.Len() != 5 {
		Te.Errorf("atoms were lost or duplicated in the split")
	}
	if lig.NBonds()+wat.NBonds() >= 3 {
		Te.Errorf("the inter-residue bond was kept")
	}
	for _, res := range residues {
		for i := 0; i < res.Len(); i++ {
			if res.Atom(i).ID != i+1 {
				Te.Errorf("residue %s: atom at position %d has id %d, want %d", res.Name, i, res.Atom(i).ID, i+1)
			}
		}
		b := res.Bond(0)
		if b.At1.ID != 1 || b.At2.ID != 2 {
			Te.Errorf("residue %s: bond connects ids %d-%d, want 1-2", res.Name, b.At1.ID, b.At2.ID)
		}
	}
}

//TestSplitResiduesIgnoreH checks hydrogen exclusion: the water loses its
//H and the bond to it.
func TestSplitResiduesIgnoreH(Te *testing.T) {
	block := strings.Split(twoResMol2, "\n")
	residues, err := SplitResidues(block, true)
	if err != nil {
		Te.Fatal(err)
	}
	if len(residues) != 2 {
		Te.Fatalf("got %d residues, want 2", len(residues))
	}
	wat := residues[1]
	if wat.Len() != 1 || wat.NBonds() != 0 {
		Te.Errorf("water with hydrogens excluded has %d atoms and %d bonds, want 1 and 0", wat.Len(), wat.NBonds())
	}
	if wat.Atom(0).Symbol != "O" {
		Te.Errorf("the atom left in the water is %q, want O", wat.Atom(0).Symbol)
	}
}

//TestRoundTrip re-parses each synthesized residue block and checks the
//atom counts survive the trip.
func TestRoundTrip(Te *testing.T) {
	block := strings.Split(twoResMol2, "\n")
	residues, err := SplitResidues(block, false)
	if err != nil {
		Te.Fatal(err)
	}
	want := map[string]int{"LIG1": 3, "WAT1": 2}
	for _, res := range residues {
		if res.Len() != want[res.Name] {
			Te.Errorf("residue %s has %d atoms, want %d", res.Name, res.Len(), want[res.Name])
		}
	}
}

func TestParseMol2Block(Te *testing.T) {
	mol, err := ParseMol2Block(strings.Split(ethaneMol2, "\n"), false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Name != "ethane" {
		Te.Errorf("molecule name is %q, want ethane", mol.Name)
	}
	if mol.Len() != 2 || mol.NBonds() != 1 {
		Te.Fatalf("got %d atoms and %d bonds, want 2 and 1", mol.Len(), mol.NBonds())
	}
	at := mol.Atom(1)
	if at.Symbol != "C" || at.Z != 6 || at.Molname != "ETH1" {
		Te.Errorf("second atom read as %q (Z %d) in residue %q", at.Symbol, at.Z, at.Molname)
	}
	if x := mol.Coords.At(1, 0); x != 1.52 {
		Te.Errorf("second atom x coordinate is %v, want 1.52", x)
	}
}

func TestMol2ReaderRead(Te *testing.T) {
	rd := strings.NewReader(twoResMol2 + "\n" + ethaneMol2 + "\n")
	mols, err := Mol2ReaderRead(rd, false)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 3 {
		Te.Fatalf("got %d residues, want 3", len(mols))
	}
	names := []string{"LIG1", "WAT1", "ETH1"}
	for i, v := range mols {
		if v.Name != names[i] {
			Te.Errorf("residue %d is %q, want %q", i, v.Name, names[i])
		}
	}
}

//TestMol2MissingRecord checks that a file with a missing BOND record is
//reported as a data error instead of being silently repaired by the
//positional pairing of the records.
func TestMol2MissingRecord(Te *testing.T) {
	mangled := strings.Replace(twoResMol2, mol2Bond+"\n", "", 1)
	_, err := Mol2ReaderRead(strings.NewReader(mangled), false)
	if err == nil {
		Te.Fatal("expected an error for a file without a BOND record")
	}
}

//TestMol2BadCounts checks that declared counts exceeding the available
//lines surface as an error rather than a truncated read.
func TestMol2BadCounts(Te *testing.T) {
	mangled := strings.Replace(twoResMol2, "\n5 3\n", "\n50 3\n", 1)
	_, err := Mol2ReaderRead(strings.NewReader(mangled), false)
	if err == nil {
		Te.Fatal("expected an error for counts pointing past the end of the file")
	}
}

func TestMol2FileRead(Te *testing.T) {
	mols, err := Mol2FileRead("testdata/test.mol2", false)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 3 {
		Te.Fatalf("got %d residues, want 3", len(mols))
	}
}

func TestMol2FileReadGz(Te *testing.T) {
	mols, err := Mol2FileRead("testdata/test.mol2.gz", false)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 3 {
		Te.Fatalf("got %d residues, want 3", len(mols))
	}
}
