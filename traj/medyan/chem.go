/*
 * chem.go, part of cytotraj.
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
	"io"
	"strconv"
	"strings"

	cyto "github.com/cytoskel/cytotraj"
)

// ChemR reads chemistry snapshots. It implements cyto.ChemTraj.
type ChemR struct {
	l        *lineReader
	filename string
	readable bool
}

// NewChem opens a chemistry trajectory for reading.
func NewChem(name string) (*ChemR, error) {
	l, err := openLines(name)
	if err != nil {
		return nil, errDecorate(err, "NewChem")
	}
	return &ChemR{l: l, filename: name, readable: true}, nil
}

// NewChemReader returns a handle that reads chemistry snapshots from r.
func NewChemReader(r io.Reader, name string) (*ChemR, error) {
	l, err := newLines(r, name)
	if err != nil {
		return nil, errDecorate(err, "NewChemReader")
	}
	return &ChemR{l: l, filename: name, readable: true}, nil
}

// Readable returns true if it is possible to call Next on the handle.
func (C *ChemR) Readable() bool { return C.readable }

// Close closes the object, and marks it as unreadable
func (C *ChemR) Close() {
	if !C.readable {
		return
	}
	C.l.close()
	C.readable = false
}

func (C *ChemR) errorf(format string, a ...interface{}) error {
	return newError(fmt.Sprintf(format, a...), C.filename, C.l.line, "Next")
}

// Next returns the next chemistry snapshot. At the end of the trajectory it
// returns a cyto.LastFrameError.
func (C *ChemR) Next() (*cyto.ChemSnapshot, error) {
	if !C.readable {
		return nil, newError(TrajUnIniRead, C.filename, 0, "Next")
	}
	S, err := C.next()
	if err != nil {
		C.Close()
		return nil, err
	}
	return S, nil
}

func (C *ChemR) next() (*cyto.ChemSnapshot, error) {
	var line string
	var err error
	for line == "" {
		line, err = C.l.next()
		if err == io.EOF {
			return nil, newlastFrameError(C.filename, "Next")
		} else if err != nil {
			return nil, C.errorf("%s", err.Error())
		}
	}
	f := strings.Fields(line)
	if len(f) != 2 {
		return nil, C.errorf("chemistry frame header needs 2 fields, got %q", line)
	}
	step, err1 := strconv.ParseFloat(f[0], 64)
	time, err2 := strconv.ParseFloat(f[1], 64)
	if err1 != nil || err2 != nil {
		return nil, C.errorf("malformed chemistry frame header %q", line)
	}
	B := cyto.NewChemBuilder(step, time)
	for {
		line, err = C.l.next()
		if err != nil && err != io.EOF {
			return nil, C.errorf("%s", err.Error())
		}
		if line == "" {
			break
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, C.errorf("species line needs 2 fields, got %q", line)
		}
		colon := strings.LastIndex(f[0], ":")
		if colon <= 0 {
			return nil, C.errorf("species %q is not in NAME:TYPE form", f[0])
		}
		kind, err := cyto.ParseSpeciesKind(f[0][colon+1:])
		if err != nil {
			return nil, C.errorf("%s", err.Error())
		}
		val, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, C.errorf("malformed value %q for species %s", f[1], f[0])
		}
		if err := B.Add(kind, f[0][:colon], val); err != nil {
			return nil, C.errorf("%s", err.Error())
		}
	}
	return B.Snapshot(), nil
}

// ReadChemAll reads every snapshot in the given chemistry file.
func ReadChemAll(name string) ([]*cyto.ChemSnapshot, error) {
	C, err := NewChem(name)
	if err != nil {
		return nil, errDecorate(err, "ReadChemAll")
	}
	return readChemAll(C)
}

func readChemAll(C cyto.ChemTraj) ([]*cyto.ChemSnapshot, error) {
	var ret []*cyto.ChemSnapshot
	for {
		S, err := C.Next()
		if err != nil {
			if _, ok := err.(cyto.LastFrameError); ok {
				return ret, nil
			}
			return nil, errDecorate(err, "ReadChemAll")
		}
		ret = append(ret, S)
	}
}
