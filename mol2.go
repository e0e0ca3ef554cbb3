/*
 * mol2.go, part of goplif.
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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//The TRIPOS record markers. A mol2 file is a sequence of records, each
//started by one of these lines.
const (
	mol2Molecule = "@<TRIPOS>MOLECULE"
	mol2Atom     = "@<TRIPOS>ATOM"
	mol2Bond     = "@<TRIPOS>BOND"
)

//scanMol2Records searches lines for the MOLECULE, ATOM and BOND records of
//a mol2 file in a single pass. It returns three lists of indexes of the
//lines where each kind of record starts, in file order.
func scanMol2Records(lines []string) (mols, atoms, bonds []int) {
	for i, line := range lines {
		switch {
		case strings.Contains(line, mol2Molecule):
			mols = append(mols, i)
		case strings.Contains(line, mol2Atom):
			atoms = append(atoms, i)
		case strings.Contains(line, mol2Bond):
			bonds = append(bonds, i)
		}
	}
	return mols, atoms, bonds
}

//mol2Counts reads the number of atoms and bonds of a molecule from the
//second line after its MOLECULE record (the first one holds the name).
func mol2Counts(lines []string, molLine int) (int, int, error) {
	if molLine+2 >= len(lines) {
		err := new(CError)
		err.msg = "mol2: MOLECULE record truncated before the atom/bond counts line"
		return 0, 0, err
	}
	fields := strings.Fields(lines[molLine+2])
	if len(fields) < 2 {
		err := new(CError)
		err.msg = fmt.Sprintf("mol2: malformed counts line %q", lines[molLine+2])
		return 0, 0, err
	}
	natoms, err1 := strconv.Atoi(fields[0])
	nbonds, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		err := new(CError)
		err.msg = fmt.Sprintf("mol2: malformed counts line %q", lines[molLine+2])
		return 0, 0, err
	}
	return natoms, nbonds, nil
}

//extractMol2Block slices the raw lines of one molecule out of a mol2 file,
//from its MOLECULE record through its full BOND record, using the declared
//atom and bond counts. It returns an error if the declared counts exceed
//the lines available, rather than silently truncating.
func extractMol2Block(lines []string, molLine, atomLine, bondLine int) ([]string, error) {
	natoms, nbonds, err := mol2Counts(lines, molLine)
	if err != nil {
		return nil, errDecorate(err, "extractMol2Block")
	}
	end := atomLine + natoms + 1 + nbonds + 1
	if end > len(lines) || bondLine+nbonds+1 > len(lines) {
		err := new(CError)
		err.msg = fmt.Sprintf("mol2: %d atoms and %d bonds declared, but the file ends at line %d", natoms, nbonds, len(lines))
		err.Decorate("extractMol2Block")
		return nil, err
	}
	return lines[molLine:end], nil
}

//SplitResidues decomposes the raw lines of a single-molecule mol2 block
//into one molecule per residue, using the residue-name field of the atom
//lines as the partition key. Atoms and bonds are renumbered to be 1-based
//and contiguous within each residue; bonds whose atoms belong to two
//different residues cannot be represented in a single-residue block and
//are dropped. Each synthesized block is parsed with ParseMol2Block; if
//ignoreH is true, hydrogens are excluded from the parsed molecules. A
//residue that fails to parse is logged and dropped, without aborting the
//split. Residues are returned in the order in which they first appear in
//the block.
func SplitResidues(block []string, ignoreH bool) ([]*Molecule, error) {
	mols, atoms, bonds := scanMol2Records(block)
	if len(mols) == 0 || len(atoms) == 0 || len(bonds) == 0 {
		err := new(CError)
		err.msg = fmt.Sprintf("mol2: block is missing a record: %d MOLECULE, %d ATOM and %d BOND records found", len(mols), len(atoms), len(bonds))
		err.Decorate("SplitResidues")
		return nil, err
	}
	molLine, atomLine, bondLine := mols[0], atoms[0], bonds[0]
	natoms, nbonds, err := mol2Counts(block, molLine)
	if err != nil {
		return nil, errDecorate(err, "SplitResidues")
	}
	if atomLine+natoms+1 > len(block) || bondLine+nbonds+1 > len(block) {
		err := new(CError)
		err.msg = fmt.Sprintf("mol2: %d atoms and %d bonds declared, but the block has only %d lines", natoms, nbonds, len(block))
		err.Decorate("SplitResidues")
		return nil, err
	}
	//assign atom lines to residues, keeping the order in which
	//both residues and atoms appear.
	resnames := make([]string, 0, 2)
	resAtoms := make(map[string][]string)
	res4atom := make(map[string]string, natoms) //atom id field -> residue name
	for _, line := range block[atomLine+1 : atomLine+natoms+1] {
		fields := strings.Fields(line)
		if len(fields) < 8 {
			err := new(CError)
			err.msg = fmt.Sprintf("mol2: atom line %q has no residue-name field", line)
			err.Decorate("SplitResidues")
			return nil, err
		}
		id, resname := fields[0], fields[7]
		if _, ok := resAtoms[resname]; !ok {
			resnames = append(resnames, resname)
		}
		resAtoms[resname] = append(resAtoms[resname], line)
		res4atom[id] = resname
	}
	//assign bond lines to residues. A bond is kept only if both its atoms
	//belong to the same residue.
	resBonds := make(map[string][]string)
	for _, line := range block[bondLine+1 : bondLine+nbonds+1] {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			err := new(CError)
			err.msg = fmt.Sprintf("mol2: malformed bond line %q", line)
			err.Decorate("SplitResidues")
			return nil, err
		}
		at1, at2 := fields[1], fields[2]
		if res4atom[at1] == res4atom[at2] {
			resname := res4atom[at1]
			resBonds[resname] = append(resBonds[resname], line)
		}
	}
	residues := make([]*Molecule, 0, len(resnames))
	for _, resname := range resnames {
		sub := residueBlock(resname, resAtoms[resname], resBonds[resname])
		residue, err := ParseMol2Block(sub, ignoreH)
		if err != nil {
			log.Printf("goplif: dropping residue %s: %v", resname, err)
			continue
		}
		residue.Name = resname
		residues = append(residues, residue)
	}
	return residues, nil
}

//residueBlock synthesizes a single-molecule mol2 block for one residue,
//with the residue name as the molecule name. Atom lines get their leading
//id field replaced by a new 1-based contiguous id, preserving all trailing
//fields; bond lines are rebuilt with a sequential bond id and both atom
//ids rewritten through the new numbering.
func residueBlock(resname string, atomLines, bondLines []string) []string {
	newID := make(map[string]int, len(atomLines))
	block := make([]string, 0, len(atomLines)+len(bondLines)+7)
	block = append(block, mol2Molecule, resname,
		fmt.Sprintf("%d %d", len(atomLines), len(bondLines)),
		"SMALL", "USER_CHARGES", mol2Atom)
	for i, line := range atomLines {
		id := strings.Fields(line)[0]
		newID[id] = i + 1
		trimmed := strings.TrimLeft(line, " \t")
		block = append(block, strconv.Itoa(i+1)+trimmed[len(id):])
	}
	block = append(block, mol2Bond)
	for i, line := range bondLines {
		fields := strings.Fields(line)
		block = append(block, fmt.Sprintf("%d %d %d %s", i+1, newID[fields[1]], newID[fields[2]], fields[3]))
	}
	return block
}

//mol2BondOrder translates a TRIPOS bond type into a bond order.
func mol2BondOrder(bondtype string) (float64, error) {
	switch bondtype {
	case "1", "am", "du": //amides and dummies read as single bonds
		return Single, nil
	case "2":
		return Double, nil
	case "3":
		return Triple, nil
	case "ar":
		return Aromatic, nil
	}
	err := new(CError)
	err.msg = fmt.Sprintf("mol2: unknown bond type %q", bondtype)
	return 0, err
}

//ParseMol2Block materializes a molecule from the raw lines of a
//single-molecule mol2 block. If ignoreH is true, hydrogens and the bonds
//to them are left out. The molecule is sanitized before being returned:
//a chemically inconsistent block yields a *SanitizationError.
func ParseMol2Block(block []string, ignoreH bool) (*Molecule, error) {
	mols, atomsRec, bondsRec := scanMol2Records(block)
	if len(mols) == 0 || len(atomsRec) == 0 || len(bondsRec) == 0 {
		err := new(CError)
		err.msg = fmt.Sprintf("mol2: block is missing a record: %d MOLECULE, %d ATOM and %d BOND records found", len(mols), len(atomsRec), len(bondsRec))
		err.Decorate("ParseMol2Block")
		return nil, err
	}
	molLine, atomLine, bondLine := mols[0], atomsRec[0], bondsRec[0]
	natoms, nbonds, err := mol2Counts(block, molLine)
	if err != nil {
		return nil, errDecorate(err, "ParseMol2Block")
	}
	name := strings.TrimSpace(block[molLine+1])
	if atomLine+natoms+1 > len(block) || bondLine+nbonds+1 > len(block) {
		err := new(CError)
		err.msg = fmt.Sprintf("mol2: %d atoms and %d bonds declared, but the block has only %d lines", natoms, nbonds, len(block))
		err.Decorate("ParseMol2Block")
		return nil, err
	}
	atoms := make([]*Atom, 0, natoms)
	coords := make([]float64, 0, natoms*3)
	kept := make(map[int]int, natoms) //source atom id -> index in the atoms slice
	for _, line := range block[atomLine+1 : atomLine+natoms+1] {
		fields := strings.Fields(line)
		if len(fields) < 8 {
			err := new(CError)
			err.msg = fmt.Sprintf("mol2: malformed atom line %q", line)
			err.Decorate("ParseMol2Block")
			return nil, err
		}
		at := new(Atom)
		errs := make([]error, 6)
		at.ID, errs[0] = strconv.Atoi(fields[0])
		at.Name = fields[1]
		var x, y, z float64
		x, errs[1] = strconv.ParseFloat(fields[2], 64)
		y, errs[2] = strconv.ParseFloat(fields[3], 64)
		z, errs[3] = strconv.ParseFloat(fields[4], 64)
		at.Symbol = strings.SplitN(fields[5], ".", 2)[0] //SYBYL types, e.g. "C.3"
		at.Molid, errs[4] = strconv.Atoi(fields[6])
		at.Molname = fields[7]
		at.Z = symbol2Z[at.Symbol]
		if at.Z == 0 {
			errs[5] = fmt.Errorf("unknown element %q", at.Symbol)
		}
		for _, v := range errs {
			if v != nil {
				err := new(CError)
				err.msg = fmt.Sprintf("mol2: atom line %q: %v", line, v)
				err.Decorate("ParseMol2Block")
				return nil, err
			}
		}
		if ignoreH && at.Z == 1 {
			continue
		}
		kept[at.ID] = len(atoms)
		atoms = append(atoms, at)
		coords = append(coords, x, y, z)
	}
	bonds := make([]*Bond, 0, nbonds)
	for _, line := range block[bondLine+1 : bondLine+nbonds+1] {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			err := new(CError)
			err.msg = fmt.Sprintf("mol2: malformed bond line %q", line)
			err.Decorate("ParseMol2Block")
			return nil, err
		}
		id1, err1 := strconv.Atoi(fields[1])
		id2, err2 := strconv.Atoi(fields[2])
		order, err3 := mol2BondOrder(fields[3])
		if err1 != nil || err2 != nil || err3 != nil {
			err := new(CError)
			err.msg = fmt.Sprintf("mol2: malformed bond line %q", line)
			err.Decorate("ParseMol2Block")
			return nil, err
		}
		i1, ok1 := kept[id1]
		i2, ok2 := kept[id2]
		if !ok1 || !ok2 {
			continue //a bond to a stripped hydrogen
		}
		bonds = append(bonds, &Bond{At1: atoms[i1], At2: atoms[i2], Order: order})
	}
	if len(atoms) == 0 {
		err := new(CError)
		err.msg = "mol2: block has no atoms left"
		err.Decorate("ParseMol2Block")
		return nil, err
	}
	top, err := NewTopology(atoms, bonds)
	if err != nil {
		return nil, errDecorate(err, "ParseMol2Block")
	}
	if err := Sanitize(top); err != nil {
		return nil, errDecorate(err, "ParseMol2Block")
	}
	return NewMolecule(top, name, mat.NewDense(len(atoms), 3, coords))
}

//Mol2ReaderRead reads a multi-molecule mol2 stream and returns its
//residues, each as its own molecule, tagged with the residue name. If
//ignoreH is true, hydrogens are excluded. A well-formed file has the same
//number of MOLECULE, ATOM and BOND records; anything else is a data
//error, not silently repaired.
func Mol2ReaderRead(rd io.Reader, ignoreH bool) ([]*Molecule, error) {
	lines := make([]string, 0, 100)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		cerr := new(CError)
		cerr.msg = "mol2: " + err.Error()
		cerr.Decorate("Mol2ReaderRead")
		return nil, cerr
	}
	mols, atoms, bonds := scanMol2Records(lines)
	if len(mols) == 0 {
		err := new(CError)
		err.msg = "mol2: no MOLECULE records found"
		err.Decorate("Mol2ReaderRead")
		return nil, err
	}
	if len(mols) != len(atoms) || len(mols) != len(bonds) {
		err := new(CError)
		err.msg = fmt.Sprintf("mol2: mismatched records: %d MOLECULE, %d ATOM and %d BOND records found", len(mols), len(atoms), len(bonds))
		err.Decorate("Mol2ReaderRead")
		return nil, err
	}
	molecules := make([]*Molecule, 0, len(mols))
	for i := range mols {
		block, err := extractMol2Block(lines, mols[i], atoms[i], bonds[i])
		if err != nil {
			return nil, errDecorate(err, "Mol2ReaderRead")
		}
		residues, err := SplitResidues(block, ignoreH)
		if err != nil {
			return nil, errDecorate(err, "Mol2ReaderRead")
		}
		molecules = append(molecules, residues...)
	}
	return molecules, nil
}

//Mol2FileRead reads the mol2 file name and returns its residues, each as
//its own molecule. Files ending in ".gz" or ".zst" are decompressed on
//the fly.
func Mol2FileRead(name string, ignoreH bool) ([]*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		cerr := new(CError)
		cerr.msg = "Unable to open file: " + err.Error()
		cerr.Decorate("Mol2FileRead")
		return nil, cerr
	}
	defer f.Close()
	var rd io.Reader = f
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			cerr := new(CError)
			cerr.msg = "Unable to read gzip header: " + err.Error()
			cerr.Decorate("Mol2FileRead")
			return nil, cerr
		}
		defer gz.Close()
		rd = gz
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			cerr := new(CError)
			cerr.msg = "Unable to read zstd header: " + err.Error()
			cerr.Decorate("Mol2FileRead")
			return nil, cerr
		}
		defer zr.Close()
		rd = zr
	}
	mols, err := Mol2ReaderRead(rd, ignoreH)
	if err != nil {
		return nil, errDecorate(err, "Mol2FileRead")
	}
	return mols, nil
}
