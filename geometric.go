/*
 * geometric.go, part of goplif.
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
	"regexp"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

//Centroid returns the geometric center of coord, an n x 3 matrix of
//coordinates such as Molecule.Coords.
func Centroid(coord *mat.Dense) ([]float64, error) {
	r, c := coord.Dims()
	if r == 0 || c != 3 {
		err := new(CError)
		err.msg = fmt.Sprintf("Centroid: need an n x 3 matrix with n>0, got %d x %d", r, c)
		return nil, err
	}
	cen := make([]float64, 3)
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			cen[j] += coord.At(i, j)
		}
	}
	for j := range cen {
		cen[j] /= float64(r)
	}
	return cen, nil
}

//NormalVector returns a vector perpendicular to v. It returns an error
//for the null vector, which has no normal.
func NormalVector(v []float64) ([]float64, error) {
	if len(v) != 3 {
		err := new(CError)
		err.msg = fmt.Sprintf("NormalVector: need a 3D vector, got %d elements", len(v))
		return nil, err
	}
	if v[0] == 0 && v[1] == 0 {
		if v[2] == 0 {
			err := new(CError)
			err.msg = "NormalVector: the null vector has no normal vector"
			return nil, err
		}
		return []float64{0, 1, 0}, nil
	}
	return []float64{-v[1], v[0], 0}, nil
}

//InAngleLimits reports whether angle, in degrees, lies between min and
//max, considering also its supplementary angle (so a nearly-antiparallel
//pair counts as much as a nearly-parallel one).
func InAngleLimits(angle, min, max float64) bool {
	if min <= angle && angle <= max {
		return true
	}
	if min <= 180-angle && 180-angle <= max {
		return true
	}
	return false
}

var resnum = regexp.MustCompile(`\d+`)

//ResNumber extracts the residue number from a residue name such as
//"LIG1" or "TYR76". It returns an error if the name contains no digits.
func ResNumber(resname string) (int, error) {
	digits := resnum.FindString(resname)
	if digits == "" {
		err := new(CError)
		err.msg = fmt.Sprintf("ResNumber: no residue number in %q", resname)
		return 0, err
	}
	return strconv.Atoi(digits)
}
