/*
 * writer.go, part of cytotraj.
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
	"bufio"
	"io"
	"os"
	"strconv"

	cyto "github.com/cytoskel/cytotraj"
	v3 "github.com/cytoskel/cytotraj/v3"
)

//Write!

// TrajW writes snapshots in the format read by TrajR.
type TrajW struct {
	f         *os.File //nil for stream writers
	c         io.WriteCloser
	h         *bufio.Writer
	filename  string
	writeable bool
	buf       []byte
}

// NewWriter creates the file name and returns a handle to write snapshots to it.
// The output is compressed with zstd or gzip if the name ends in .zst/.zstd or .gz.
func NewWriter(name string) (*TrajW, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, newError(UnableToOpen+": "+err.Error(), name, 0, "NewWriter")
	}
	c, err := newCompressor(f, name)
	if err != nil {
		f.Close()
		return nil, newError("Can't start compressor: "+err.Error(), name, 0, "NewWriter")
	}
	return &TrajW{f: f, c: c, h: bufio.NewWriter(c), filename: name, writeable: true}, nil
}

// NewStreamWriter returns a handle that writes uncompressed snapshots to w.
// Closing the handle does not close w.
func NewStreamWriter(w io.Writer) *TrajW {
	return &TrajW{c: nopWriteCloser{w}, h: bufio.NewWriter(w), filename: "stream", writeable: true}
}

func (W *TrajW) putFloat(f float64) {
	W.buf = strconv.AppendFloat(W.buf, f, 'g', -1, 64)
}

func (W *TrajW) putInt(i int) {
	W.buf = strconv.AppendInt(W.buf, int64(i), 10)
}

func (W *TrajW) coords(m *v3.Matrix) {
	for i := 0; i < m.NVecs(); i++ {
		v := m.Vec(i)
		for j, c := range v {
			if i > 0 || j > 0 {
				W.buf = append(W.buf, ' ')
			}
			W.putFloat(c)
		}
	}
	W.buf = append(W.buf, '\n')
}

func (W *TrajW) header(tag byte, ints ...int) {
	W.buf = append(W.buf, tag)
	for _, v := range ints {
		W.buf = append(W.buf, ' ')
		W.putInt(v)
	}
	W.buf = append(W.buf, '\n')
}

// WNext writes a snapshot, entities sorted by id.
func (W *TrajW) WNext(S *cyto.Snapshot) error {
	if !W.writeable {
		return newError(TrajUnIniWrite, W.filename, 0, "WNext")
	}
	if S == nil {
		return newError(NilSnapshot, W.filename, 0, "WNext")
	}
	W.buf = W.buf[:0]
	c := S.Counts()
	W.putFloat(S.Step)
	W.buf = append(W.buf, ' ')
	W.putFloat(S.Time)
	for _, v := range []int{c.Filaments, c.Linkers, c.Motors, c.Branchers} {
		W.buf = append(W.buf, ' ')
		W.putInt(v)
	}
	W.buf = append(W.buf, '\n')
	for _, id := range S.FilamentIDs() {
		f := S.Filaments[id]
		W.header('F', f.ID, f.Len(), f.DeltaLeft, f.DeltaRight)
		W.coords(f.Beads)
	}
	for _, id := range S.LinkerIDs() {
		l := S.Linkers[id]
		W.header('L', l.ID, l.Type)
		W.coords(l.Sites)
	}
	for _, id := range S.MotorIDs() {
		m := S.Motors[id]
		W.header('M', m.ID, m.Type)
		W.coords(m.Sites)
	}
	for _, id := range S.BrancherIDs() {
		b := S.Branchers[id]
		W.header('B', b.ID, b.Type)
		W.coords(b.Site)
	}
	W.buf = append(W.buf, '\n')
	if _, err := W.h.Write(W.buf); err != nil {
		return newError(err.Error(), W.filename, 0, "WNext")
	}
	return nil
}

// WChemNext writes a chemistry snapshot, species sorted by kind and name.
func (W *TrajW) WChemNext(S *cyto.ChemSnapshot) error {
	if !W.writeable {
		return newError(TrajUnIniWrite, W.filename, 0, "WChemNext")
	}
	if S == nil {
		return newError(NilSnapshot, W.filename, 0, "WChemNext")
	}
	W.buf = W.buf[:0]
	W.putFloat(S.Step)
	W.buf = append(W.buf, ' ')
	W.putFloat(S.Time)
	W.buf = append(W.buf, '\n')
	for k := 0; k < cyto.NSpeciesKinds; k++ {
		kind := cyto.SpeciesKind(k)
		for _, name := range S.Names(kind) {
			v, _ := S.Value(kind, name)
			W.buf = append(W.buf, name...)
			W.buf = append(W.buf, ':')
			W.buf = append(W.buf, kind.String()...)
			W.buf = append(W.buf, ' ')
			W.putFloat(v)
			W.buf = append(W.buf, '\n')
		}
	}
	W.buf = append(W.buf, '\n')
	if _, err := W.h.Write(W.buf); err != nil {
		return newError(err.Error(), W.filename, 0, "WChemNext")
	}
	return nil
}

// Close flushes the output and closes the handle. It can not be used after this call.
func (W *TrajW) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.h.Flush()
	if err2 := W.c.Close(); err == nil {
		err = err2
	}
	if W.f != nil {
		if err2 := W.f.Close(); err == nil {
			err = err2
		}
	}
	if err != nil {
		return newError(err.Error(), W.filename, 0, "Close")
	}
	return nil
}
