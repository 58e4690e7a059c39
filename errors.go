/*
 * errors.go, part of cytotraj.
 *
 * Copyright 2026 The cytotraj authors
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

package cyto

import (
	"fmt"
	"strings"
)

// CError is the general error of the cyto package, for inconsistent
// model data (duplicated ids, wrong number of sites, and so on).
type CError struct {
	msg  string
	deco []string
}

// NewCError returns a *CError with the given message, decorated with caller.
func NewCError(caller, msg string) *CError {
	return &CError{msg: msg, deco: []string{caller}}
}

func (err *CError) Error() string { return "cyto: " + err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// DegenerateInputError is returned when a computation gets input it cannot work
// with: an empty point set, a zero-length segment, a filament with a single bead.
type DegenerateInputError struct {
	msg  string
	deco []string
}

// NewDegenerateInputError builds a *DegenerateInputError with a formatted message.
func NewDegenerateInputError(caller, format string, a ...interface{}) *DegenerateInputError {
	return &DegenerateInputError{msg: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func (err *DegenerateInputError) Error() string {
	return "degenerate input: " + err.msg
}

// Decorate adds dec to the call stack information of the error and returns it.
func (err *DegenerateInputError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ReplicateMismatchError is returned when replicate series of different
// lengths are averaged.
type ReplicateMismatchError struct {
	Lengths []int //length of each replicate, in input order
	deco    []string
}

// NewReplicateMismatchError returns an error listing the lengths of every replicate.
func NewReplicateMismatchError(caller string, lengths []int) *ReplicateMismatchError {
	l := make([]int, len(lengths))
	copy(l, lengths)
	return &ReplicateMismatchError{Lengths: l, deco: []string{caller}}
}

func (err *ReplicateMismatchError) Error() string {
	s := make([]string, len(err.Lengths))
	for i, v := range err.Lengths {
		s[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("replicates have different lengths: [%s]", strings.Join(s, " "))
}

// Decorate adds dec to the call stack information of the error and returns it.
func (err *ReplicateMismatchError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ErrDecorate asserts that the error implements Error and, if so, decorates it with
// the caller's name before returning it. Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
