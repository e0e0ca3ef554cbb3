/*
 * bonds.go, part of goplif.
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

//Bond order values. Aromatic bonds contribute 1.5 to the total valence
//of each of their atoms, which reproduces the totals of a kekulized ring.
const (
	Single   = 1.0
	Aromatic = 1.5
	Double   = 2.0
	Triple   = 3.0
)

//Bond is an edge of the molecular graph. Its order is the only mutable
//field: the valence repair may strengthen a bond but never removes one.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Order float64 //Order 0 means undetermined
}

//Cross, given one atom of the bond, returns the other one.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //this got to be a programming error, so a panic is warranted.
}

//bondBetween returns the bond connecting a and b, or nil if they are
//not bonded.
func bondBetween(a, b *Atom) *Bond {
	for _, v := range a.Bonds {
		if v.Cross(a) == b {
			return v
		}
	}
	return nil
}
