/*
 * stream.go, part of cytotraj.
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
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.Decoder.Close()
	return nil
}

type compression int

const (
	plain compression = iota
	zst
	gz
)

func compressionFor(name string) compression {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return zst
	case strings.HasSuffix(n, ".gz"):
		return gz
	default:
		return plain
	}
}

// lineReader reads a, possibly compressed, text stream line by line,
// keeping count of the line number.
type lineReader struct {
	f    io.Closer     //the file, if we opened it
	dec  io.ReadCloser //the decompressor, if any
	h    *bufio.Reader
	line int
}

func openLines(name string) (*lineReader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(UnableToOpen+": "+err.Error(), name, 0, "openLines")
	}
	L, err := newLines(f, name)
	if err != nil {
		f.Close()
		return nil, err
	}
	L.f = f
	return L, nil
}

func newLines(r io.Reader, name string) (*lineReader, error) {
	L := new(lineReader)
	intermediate := bufio.NewReader(r)
	switch compressionFor(name) {
	case zst:
		d, err := zstd.NewReader(intermediate)
		if err != nil {
			return nil, newError("Can't start zstd decoder: "+err.Error(), name, 0, "newLines")
		}
		L.dec = stdql{d}
	case gz:
		d, err := gzip.NewReader(intermediate)
		if err != nil {
			return nil, newError("Can't start gzip decoder: "+err.Error(), name, 0, "newLines")
		}
		L.dec = d
	}
	if L.dec != nil {
		L.h = bufio.NewReader(L.dec)
	} else {
		L.h = intermediate
	}
	return L, nil
}

// next returns the next line, with surrounding whitespace removed.
// It returns io.EOF only when no more text is left.
func (L *lineReader) next() (string, error) {
	s, err := L.h.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(s) > 0 {
			L.line++
			return strings.TrimSpace(s), nil
		}
		return "", err
	}
	L.line++
	return strings.TrimSpace(s), nil
}

func (L *lineReader) close() {
	if L.dec != nil {
		L.dec.Close()
	}
	if L.f != nil {
		L.f.Close()
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// newCompressor wraps w in the compressor matching the name's suffix.
func newCompressor(w io.Writer, name string) (io.WriteCloser, error) {
	switch compressionFor(name) {
	case zst:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case gz:
		return gzip.NewWriterLevel(w, gzip.DefaultCompression)
	default:
		return nopWriteCloser{w}, nil
	}
}
