/*
 * errors.go, part of goplif.
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

// CError is the concrete error type for general errors in the library.
// It implements the Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds new information to the error and returns the "decoration" slice
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// SanitizationError signals that a molecule is chemically inconsistent:
// after all per-atom repairs, at least one atom exceeds its maximum
// allowed valence, even accounting for its formal charge. It is a
// distinct type so callers can tell a bad molecule apart from a
// malformed file.
type SanitizationError struct {
	msg  string
	deco []string
}

func (err *SanitizationError) Error() string { return err.msg }

//Decorate adds new information to the error and returns the "decoration" slice
func (err *SanitizationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate is a helper function that asserts that the error
//implements the Error interface and decorates the error with the
//caller's name before returning it. If used with an error from
//outside the library, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
