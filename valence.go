/*
 * valence.go, part of goplif.
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
	"math"
)

//RefreshValences recomputes the cached total valence of every atom in mol
//from the authoritative bond data. It is a pure recomputation, cheap enough
//to call after every mutation.
func RefreshValences(mol Atomer) {
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		sum := 0.0
		for _, v := range at.Bonds {
			sum += v.Order
		}
		at.valence = int(math.Round(sum))
	}
}

//deficits returns, for each allowed valence of the atom's element, the
//difference between that valence and the atom's current total valence.
//A positive deficit means the atom is missing bonds or a positive charge,
//a negative one that it has too many bonds for that valence. The slice
//is empty for elements without valence data.
func deficits(at *Atom) []int {
	allowed := valences[at.Z]
	def := make([]int, 0, len(allowed))
	for _, v := range allowed {
		def = append(def, v-at.valence)
	}
	return def
}

//minCommon returns the smallest value present in both slices, and whether
//any common value exists at all.
func minCommon(a, b []int) (int, bool) {
	min := 0
	found := false
	for _, x := range a {
		for _, y := range b {
			if x == y && (!found || x < min) {
				min = x
				found = true
			}
		}
	}
	return min, found
}

//UpdateBondsAndCharges infers bond orders and formal charges from the
//valences of mol, in place. mol must have all its hydrogens and its
//connectivity set; since that connectivity comes from a topology and is
//trusted, the only repairs performed are strengthening an existing bond
//or assigning a formal charge. Atoms are processed in their native order,
//and for each atom the first neighbor with a matching valence need wins,
//with no backtracking; this does not always yield an optimal Kekulé
//structure, only a chemically valid one. It returns a *SanitizationError
//if the molecule is still inconsistent after all atoms are processed.
func UpdateBondsAndCharges(mol Atomer) error {
	RefreshValences(mol)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		def := deficits(at)
		if len(def) == 0 {
			continue //no valence data for this element, nothing we can say about it
		}
		//the only option is to add a positive charge
		if len(def) == 1 && def[0] < 0 {
			at.Charge = -def[0]
			RefreshValences(mol)
			continue
		}
		neig := at.Neighbors()
		for j, na := range neig {
			common, ok := minCommon(def, deficits(na))
			if !ok {
				//no valence need in common with this neighbor. If it was the
				//last option available, settle for compensating with a charge.
				if j == len(neig)-1 {
					at.Charge = -def[0]
					RefreshValences(mol)
				}
				continue
			}
			if common == 0 {
				continue //neither atom has an unmet need here
			}
			//they both need a supplementary bond
			bond := bondBetween(at, na)
			if common == 1 {
				bond.Order = Double
			} else if common == 2 {
				bond.Order = Triple
			}
			RefreshValences(mol)
			break //out of the neighbors loop: first compatible neighbor wins
		}
	}
	if err := Sanitize(mol); err != nil {
		return errDecorate(err, "UpdateBondsAndCharges")
	}
	return nil
}

//Sanitize checks that mol is chemically consistent: no atom may exceed
//the maximum allowed valence for its element, once its formal charge is
//accounted for. Valences below the allowed values are not an error, as
//they are reconciled with implicit hydrogens downstream. Atoms of
//elements without valence data are skipped. The cached valences are
//refreshed before checking.
func Sanitize(mol Atomer) error {
	RefreshValences(mol)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		allowed := valences[at.Z]
		if len(allowed) == 0 {
			continue
		}
		max := allowed[len(allowed)-1] //the table is in increasing order
		if at.valence-at.Charge > max {
			err := new(SanitizationError)
			err.msg = fmt.Sprintf("Sanitize: atom %d (%s) has total valence %d and formal charge %d, which exceeds the maximum allowed valence %d", at.ID, at.Symbol, at.valence, at.Charge, max)
			return err
		}
	}
	return nil
}
