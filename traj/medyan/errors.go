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

package medyan

import (
	"fmt"

	cyto "github.com/cytoskel/cytotraj"
)

//errDecorate is a helper function that asserts that the error
//implements cyto.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(cyto.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// Error is the general structure for trajectory errors, including parse errors.
// It fullfills cyto.Error and cyto.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //the line where the problem was found, 0 if none.
	deco     []string
	critical bool
}

func newError(message, filename string, line int, caller string) *Error {
	return &Error{message: message, filename: filename, line: line, deco: []string{caller}, critical: true}
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("trajectory %s line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("trajectory %s: %s", err.filename, err.message)
}

// Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the name of the file associated to the error
func (err *Error) FileName() string { return err.filename }

// Line returns the line of the file where the error was found, or 0.
func (err *Error) Line() int { return err.line }

// Format returns the format of the file (always "medyan") associated to the error
func (err *Error) Format() string { return "medyan" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	UnableToOpen   = "Unable to open file"
	NilSnapshot    = "No snapshot given"
)

//lastFrameError implements cyto.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "medyan" }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
