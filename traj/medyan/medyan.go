/*
 * medyan.go, part of cytotraj.
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
	v3 "github.com/cytoskel/cytotraj/v3"
)

//Read!

// TrajR reads snapshots from a trajectory. It implements cyto.Traj.
type TrajR struct {
	l        *lineReader
	filename string
	readable bool
}

// New opens a snapshot trajectory for reading, and returns a pointer
// to the handle or an error.
func New(name string) (*TrajR, error) {
	l, err := openLines(name)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	return &TrajR{l: l, filename: name, readable: true}, nil
}

// NewReader returns a handle that reads snapshots from r. The name is
// used to pick a decompressor and for error messages.
func NewReader(r io.Reader, name string) (*TrajR, error) {
	l, err := newLines(r, name)
	if err != nil {
		return nil, errDecorate(err, "NewReader")
	}
	return &TrajR{l: l, filename: name, readable: true}, nil
}

// Readable returns true if the handle is readable (if it is possible to call Next on it)
func (T *TrajR) Readable() bool {
	return T.readable
}

// Close closes the object, and marks it as unreadable
func (T *TrajR) Close() {
	if !T.readable {
		return
	}
	T.l.close()
	T.readable = false
}

func (T *TrajR) errorf(caller string, format string, a ...interface{}) error {
	return newError(fmt.Sprintf(format, a...), T.filename, T.l.line, caller)
}

// frameHeader is the first line of a frame.
type frameHeader struct {
	step, time float64
	counts     cyto.Counts
}

func parseFrameHeader(s string) (frameHeader, error) {
	var h frameHeader
	f := strings.Fields(s)
	if len(f) != 5 && len(f) != 6 {
		return h, fmt.Errorf("frame header needs 5 or 6 fields, got %d: %q", len(f), s)
	}
	vals := make([]float64, 6)
	for i, v := range f {
		var err error
		vals[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return h, fmt.Errorf("malformed number %q in frame header", v)
		}
	}
	for _, v := range vals[2:] {
		if v < 0 {
			return h, fmt.Errorf("negative entity count in frame header %q", s)
		}
	}
	h.step, h.time = vals[0], vals[1]
	h.counts = cyto.Counts{Filaments: int(vals[2]), Linkers: int(vals[3]), Motors: int(vals[4]), Branchers: int(vals[5])}
	return h, nil
}

func parseInts(f []string, n int) ([]int, error) {
	if len(f) != n {
		return nil, fmt.Errorf("%d fields expected, got %d", n, len(f))
	}
	ret := make([]int, n)
	for i, v := range f {
		var err error
		ret[i], err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("malformed integer %q", v)
		}
	}
	return ret, nil
}

func parseCoords(s string) (*v3.Matrix, error) {
	f := strings.Fields(s)
	if len(f) == 0 || len(f)%3 != 0 {
		return nil, fmt.Errorf("%d coordinates, not a positive multiple of 3", len(f))
	}
	data := make([]float64, len(f))
	for i, v := range f {
		var err error
		data[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed coordinate %q", v)
		}
	}
	return v3.NewMatrix(data)
}

// Next reads the next snapshot of the trajectory and returns it. At the end of the
// trajectory it returns a cyto.LastFrameError and closes the handle. Any other error
// is critical and leaves the handle unreadable.
func (T *TrajR) Next() (*cyto.Snapshot, error) {
	if !T.readable {
		return nil, newError(TrajUnIniRead, T.filename, 0, "Next")
	}
	S, err := T.next()
	if err != nil {
		T.Close()
		return nil, err
	}
	return S, nil
}

func (T *TrajR) next() (*cyto.Snapshot, error) {
	var line string
	var err error
	for line == "" {
		line, err = T.l.next()
		if err == io.EOF {
			return nil, newlastFrameError(T.filename, "Next")
		} else if err != nil {
			return nil, T.errorf("Next", "%s", err.Error())
		}
	}
	h, err := parseFrameHeader(line)
	if err != nil {
		return nil, T.errorf("Next", "%s", err.Error())
	}
	var (
		filaments []*cyto.Filament
		linkers   []*cyto.Linker
		motors    []*cyto.Motor
		branchers []*cyto.Brancher
	)
	for {
		line, err = T.l.next()
		if err != nil && err != io.EOF {
			return nil, T.errorf("Next", "%s", err.Error())
		}
		if line == "" {
			break //blank line or end of input, the frame is over.
		}
		fields := strings.Fields(line)
		tag := fields[0]
		coordline, err := T.l.next()
		if err == io.EOF || (err == nil && coordline == "") {
			return nil, T.errorf("Next", "entity %q has no coordinate line", line)
		} else if err != nil {
			return nil, T.errorf("Next", "%s", err.Error())
		}
		coords, err := parseCoords(coordline)
		if err != nil {
			return nil, T.errorf("Next", "%s", err.Error())
		}
		switch tag {
		case "F":
			v, err := parseInts(fields[1:], 4)
			if err != nil {
				return nil, T.errorf("Next", "filament header %q: %s", line, err.Error())
			}
			if coords.NVecs() != v[1] {
				return nil, T.errorf("Next", "filament %d declares %d beads but has %d", v[0], v[1], coords.NVecs())
			}
			fil, err := cyto.NewFilament(v[0], coords, v[2], v[3])
			if err != nil {
				return nil, T.errorf("Next", "%s", err.Error())
			}
			filaments = append(filaments, fil)
		case "L", "M", "B":
			v, err := parseInts(fields[1:], 2)
			if err != nil {
				return nil, T.errorf("Next", "header %q: %s", line, err.Error())
			}
			switch tag {
			case "L":
				l, err := cyto.NewLinker(v[0], v[1], coords)
				if err != nil {
					return nil, T.errorf("Next", "%s", err.Error())
				}
				linkers = append(linkers, l)
			case "M":
				m, err := cyto.NewMotor(v[0], v[1], coords)
				if err != nil {
					return nil, T.errorf("Next", "%s", err.Error())
				}
				motors = append(motors, m)
			default:
				b, err := cyto.NewBrancher(v[0], v[1], coords)
				if err != nil {
					return nil, T.errorf("Next", "%s", err.Error())
				}
				branchers = append(branchers, b)
			}
		default:
			return nil, T.errorf("Next", "unexpected entity tag %q", tag)
		}
	}
	got := cyto.Counts{Filaments: len(filaments), Linkers: len(linkers), Motors: len(motors), Branchers: len(branchers)}
	if got != h.counts {
		return nil, T.errorf("Next", "frame at step %g declares %s, but contains %s", h.step, h.counts, got)
	}
	S, err := cyto.NewSnapshot(h.step, h.time, filaments, linkers, motors, branchers)
	if err != nil {
		return nil, T.errorf("Next", "%s", err.Error())
	}
	return S, nil
}

// ReadAll reads every snapshot in the given trajectory file.
// On error, no snapshot is returned.
func ReadAll(name string) ([]*cyto.Snapshot, error) {
	T, err := New(name)
	if err != nil {
		return nil, errDecorate(err, "ReadAll")
	}
	return readAll(T)
}

func readAll(T cyto.Traj) ([]*cyto.Snapshot, error) {
	ret := make([]*cyto.Snapshot, 0, 16)
	for {
		S, err := T.Next()
		if err != nil {
			if _, ok := err.(cyto.LastFrameError); ok {
				return ret, nil
			}
			return nil, errDecorate(err, "ReadAll")
		}
		ret = append(ret, S)
	}
}
