/*
 * atomicdata.go, part of goplif.
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

//A map for assigning atomic numbers to element symbols.
//Note that just common "bio-elements" are present
var symbol2Z = map[string]int{
	"H":  1,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Na": 11,
	"Mg": 12,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"K":  19,
	"Ca": 20,
	"Zn": 30,
	"Se": 34,
	"Br": 35,
	"I":  53,
}

//Allowed total-valence values per atomic number, in increasing order.
//Same values as in the RDKit periodic table for these elements.
//Elements without an entry (e.g. metals) are not checked during
//sanitization and are never mutated by the valence repair.
var valences = map[int][]int{
	1:  {1},       //H
	5:  {3},       //B
	6:  {4},       //C
	7:  {3},       //N
	8:  {2},       //O
	9:  {1},       //F
	11: {1},       //Na
	12: {2},       //Mg
	14: {4},       //Si
	15: {3, 5},    //P
	16: {2, 4, 6}, //S
	17: {1},       //Cl
	19: {1},       //K
	20: {2},       //Ca
	34: {2, 4, 6}, //Se
	35: {1},       //Br
	53: {1, 3, 5}, //I
}
